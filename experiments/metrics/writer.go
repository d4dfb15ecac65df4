package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig describes one contestant in an experiment.
type AgentConfig struct {
	ID    int
	Name  string
	Depth int // 0 for agents that do not search
}

// GameRecord ties a finished game to the agents that played it.
type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, playing Max
	Agent2 int // AgentConfig.ID, playing Min
	GameMetric
}

// MoveRecord ties a search to the game it was part of.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subfolder under dir to hold one
// experiment's CSV files.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	path := filepath.Join(w.baseDir, "agent_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create agent configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "name", "depth"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write agent configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			config.Name,
			strconv.Itoa(config.Depth),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write agent config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "agent1", "agent2", "winner", "total_moves", "start_time", "end_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.Winner,
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "move_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "step", "player", "depth", "duration", "decisions", "chances", "terminals", "cutoffs"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.Itoa(record.Decisions),
			strconv.Itoa(record.Chances),
			strconv.Itoa(record.Terminals),
			strconv.Itoa(record.Cutoffs),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	return nil
}
