package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	writer, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	t.Run("writes agent configs", func(t *testing.T) {
		configs := []AgentConfig{
			{ID: 1, Name: "random", Depth: 0},
			{ID: 2, Name: "depth4", Depth: 4},
		}

		err := writer.WriteAgentConfigs(configs)

		require.NoError(t, err)
		rows := readCSV(t, filepath.Join(writer.baseDir, "agent_configs.csv"))
		require.Len(t, rows, 3, "header plus one row per config")
		require.Equal(t, []string{"id", "name", "depth"}, rows[0])
		require.Equal(t, []string{"2", "depth4", "4"}, rows[2])
	})

	t.Run("writes game records", func(t *testing.T) {
		now := time.Now()
		records := []GameRecord{
			{ID: 1, Agent1: 1, Agent2: 2, GameMetric: GameMetric{
				Winner:     "draw",
				StartTime:  now,
				EndTime:    now.Add(time.Second),
				Duration:   time.Second,
				TotalMoves: 9,
			}},
		}

		err := writer.WriteGameRecords(records)

		require.NoError(t, err)
		rows := readCSV(t, filepath.Join(writer.baseDir, "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "draw", rows[1][3])
		require.Equal(t, "9", rows[1][4])
	})

	t.Run("writes move records", func(t *testing.T) {
		records := []MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{
				Step:   0,
				Player: "max",
				SearchMetric: SearchMetric{
					Depth:     4,
					Decisions: 10,
					Terminals: 7,
				},
			}},
		}

		err := writer.WriteMoveRecords(records)

		require.NoError(t, err)
		rows := readCSV(t, filepath.Join(writer.baseDir, "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "max", rows[1][2])
		require.Equal(t, "10", rows[1][5])
	})
}
