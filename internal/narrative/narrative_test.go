package narrative

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

const statsCSV = `Cluster,Start_ID,End_ID,Length,Valence_Mean,Valence_Std,Arousal_Mean,Arousal_Std
1,0,11,12,0.42,0.08,0.31,0.05
2,12,25,14,-0.15,0.11,0.52,0.09
`

const clusteredCSV = `ID,text,V_pred,A_pred
0,The carnival arrived overnight.,0.41,0.30
1,Nobody in town could say who had invited it.,0.38,0.28
2,By morning the square was a maze of striped tents.,0.45,0.35
`

func TestLoadClusterStats(t *testing.T) {
	t.Run("parses valid file", func(t *testing.T) {
		stats, err := LoadClusterStats(writeFile(t, "statistics.csv", statsCSV))

		require.NoError(t, err)
		require.Len(t, stats, 2)
		require.Equal(t, ClusterStat{
			Cluster: 1, StartID: 0, EndID: 11, Length: 12,
			ValenceMean: 0.42, ValenceStd: 0.08, ArousalMean: 0.31, ArousalStd: 0.05,
		}, stats[0])
	})

	t.Run("rejects end id before start id", func(t *testing.T) {
		bad := `Cluster,Start_ID,End_ID,Length,Valence_Mean,Valence_Std,Arousal_Mean,Arousal_Std
1,10,3,8,0.1,0.1,0.1,0.1
`
		_, err := LoadClusterStats(writeFile(t, "statistics.csv", bad))

		require.Error(t, err)
		require.Contains(t, err.Error(), "row 1")
	})

	t.Run("rejects missing column", func(t *testing.T) {
		bad := `Cluster,Start_ID,End_ID
1,0,11
`
		_, err := LoadClusterStats(writeFile(t, "statistics.csv", bad))

		require.Error(t, err)
		require.Contains(t, err.Error(), "missing column")
	})

	t.Run("fails on missing file", func(t *testing.T) {
		_, err := LoadClusterStats(filepath.Join(t.TempDir(), "absent.csv"))

		require.Error(t, err)
	})
}

func TestLoadSentences(t *testing.T) {
	t.Run("parses valid file", func(t *testing.T) {
		sentences, err := LoadSentences(writeFile(t, "clustered.csv", clusteredCSV))

		require.NoError(t, err)
		require.Len(t, sentences, 3)
		require.Equal(t, 0, sentences[0].ID)
		require.Equal(t, "The carnival arrived overnight.", sentences[0].Text)
		require.InDelta(t, 0.41, sentences[0].VPred, 1e-9)
		require.InDelta(t, 0.30, sentences[0].APred, 1e-9)
	})

	t.Run("rejects non-ascending ids", func(t *testing.T) {
		bad := `ID,text,V_pred,A_pred
1,first.,0.1,0.1
1,second.,0.2,0.2
`
		_, err := LoadSentences(writeFile(t, "clustered.csv", bad))

		require.Error(t, err)
		require.Contains(t, err.Error(), "does not ascend")
	})

	t.Run("rejects empty text", func(t *testing.T) {
		bad := `ID,text,V_pred,A_pred
0,,0.1,0.1
`
		_, err := LoadSentences(writeFile(t, "clustered.csv", bad))

		require.Error(t, err)
	})

	t.Run("rejects unparsable prediction", func(t *testing.T) {
		bad := `ID,text,V_pred,A_pred
0,fine.,not-a-number,0.1
`
		_, err := LoadSentences(writeFile(t, "clustered.csv", bad))

		require.Error(t, err)
		require.Contains(t, err.Error(), "V_pred")
	})
}

func TestSentenceHelpers(t *testing.T) {
	sentences := []Sentence{
		{ID: 0, Text: "one two three"},
		{ID: 1, Text: "  padded   words here  "},
		{ID: 2, Text: "solo"},
	}

	t.Run("word count splits on whitespace", func(t *testing.T) {
		require.Equal(t, 3, sentences[0].WordCount())
		require.Equal(t, 3, sentences[1].WordCount())
		require.Equal(t, 1, sentences[2].WordCount())
	})

	t.Run("in range filters inclusively", func(t *testing.T) {
		selected := InRange(sentences, 1, 2)

		require.Len(t, selected, 2)
		require.Equal(t, 1, selected[0].ID)
		require.Equal(t, 2, selected[1].ID)
	})

	t.Run("units carry word-count weights", func(t *testing.T) {
		units := Units(sentences)

		require.Len(t, units, 3)
		require.Equal(t, 3, units[0].Weight)
		require.Equal(t, "solo", units[2].Text)
		require.Equal(t, 2, units[2].ID)
	})
}
