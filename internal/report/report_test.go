package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luckydeignan/audioFloInterpolationGenerator/internal/narrative"
	"github.com/luckydeignan/audioFloInterpolationGenerator/types"
)

func testPlan() types.PartitionPlan {
	return types.PartitionPlan{
		Story:      "carnival",
		Transition: "1to2",
		Partitions: []types.Partition{
			{Index: 1, Units: []types.NarrativeUnit{
				{ID: 0, Weight: 4, Text: "The carnival arrived overnight."},
				{ID: 1, Weight: 9, Text: "Nobody in town could say who had invited it."},
			}, Weight: 13},
			{Index: 2, Units: []types.NarrativeUnit{
				{ID: 2, Weight: 10, Text: "By morning the square was a maze of striped tents."},
			}, Weight: 10},
		},
	}
}

func testSentences() []narrative.Sentence {
	return []narrative.Sentence{
		{ID: 0, Text: "The carnival arrived overnight.", VPred: 0.41, APred: 0.30},
		{ID: 1, Text: "Nobody in town could say who had invited it.", VPred: 0.38, APred: 0.28},
		{ID: 2, Text: "By morning the square was a maze of striped tents.", VPred: 0.45, APred: 0.35},
	}
}

func TestSummaryRows(t *testing.T) {
	rows := SummaryRows(1, "1to2", testPlan())

	require.Len(t, rows, 2)
	require.Equal(t, SummaryRow{
		Cluster: 1, Transition: "1to2", Partition: 1,
		NumSentences: 2, WordCount: 13, SentenceIDs: "0,1",
	}, rows[0])
	require.Equal(t, "2", rows[1].SentenceIDs)
}

func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "carnival_summary.csv")

	require.NoError(t, WriteSummary(path, SummaryRows(1, "1to2", testPlan())))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t,
		"Cluster,Transition,Partition,Num_Sentences,Word_Count,Sentence_IDs\n"+
			"1,1to2,1,2,13,\"0,1\"\n"+
			"1,1to2,2,1,10,2\n",
		string(content))
}

func TestWriteDetail(t *testing.T) {
	t.Run("writes one row per sentence", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out", "carnival_cluster_1_partitions.csv")

		require.NoError(t, WriteDetail(path, testPlan(), testSentences()))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t,
			"Partition,ID,Text,V_pred,A_pred,Word_Count\n"+
				"1,0,The carnival arrived overnight.,0.41,0.3,4\n"+
				"1,1,Nobody in town could say who had invited it.,0.38,0.28,9\n"+
				"2,2,By morning the square was a maze of striped tents.,0.45,0.35,10\n",
			string(content))
	})

	t.Run("fails on unknown sentence id", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "detail.csv")

		err := WriteDetail(path, testPlan(), testSentences()[:1])
		require.Error(t, err)
		require.Contains(t, err.Error(), "no sentence with id")
	})
}

func TestMappingEntries(t *testing.T) {
	plan := testPlan()
	assignment := types.MediaAssignment{
		Story:      "carnival",
		Transition: "1to2",
		Slots: []types.MediaSlot{
			{Partition: 1, Offset: 0, Count: 2},
			{Partition: 2, Offset: 2, Count: 1},
		},
		Total: 3,
	}
	media := []types.MediaUnit{"interp_00.mid", "interp_01.mid", "interp_02.mid"}

	t.Run("pairs partitions with media files", func(t *testing.T) {
		entries, err := MappingEntries(plan, assignment, media)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		require.Equal(t, MappingEntry{
			Partition: 1, SentenceIDs: "0,1", NumSentences: 2, WordCount: 13,
			MidiFiles: []string{"interp_00.mid", "interp_01.mid"},
		}, entries[0])
		require.Equal(t, []string{"interp_02.mid"}, entries[1].MidiFiles)
	})

	t.Run("fails on media length mismatch", func(t *testing.T) {
		_, err := MappingEntries(plan, assignment, media[:2])

		require.Error(t, err)
	})
}

func TestWriteMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "carnival_midi_mapping.json")
	mapping := map[string][]MappingEntry{
		"1to2": {{
			Partition: 1, SentenceIDs: "0,1", NumSentences: 2, WordCount: 13,
			MidiFiles: []string{"interp_00.mid"},
		}},
	}

	require.NoError(t, WriteMapping(path, mapping))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string][]MappingEntry
	require.NoError(t, json.Unmarshal(content, &decoded))
	require.Equal(t, mapping, decoded)
}
