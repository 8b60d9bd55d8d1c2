package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	audioflo "github.com/luckydeignan/audioFloInterpolationGenerator"
	"github.com/luckydeignan/audioFloInterpolationGenerator/internal/logger"
	"github.com/luckydeignan/audioFloInterpolationGenerator/internal/report"
)

const fixtureStats = `Cluster,Start_ID,End_ID,Length,Valence_Mean,Valence_Std,Arousal_Mean,Arousal_Std
1,0,3,4,0.42,0.08,0.31,0.05
2,4,5,2,-0.15,0.11,0.52,0.09
`

const fixtureClustered = `ID,text,V_pred,A_pred
0,The carnival arrived overnight.,0.41,0.30
1,Nobody in town could say who had invited it.,0.38,0.28
2,By morning the square was a maze of striped tents.,0.45,0.35
3,Children pressed against the gates.,0.40,0.33
4,The lanterns flickered awake.,0.10,0.50
5,Smoke curled over the rooftops and settled in the lanes.,0.05,0.55
`

func fixturePipeline(t *testing.T) (*pipeline, string) {
	t.Helper()
	root := t.TempDir()

	clusterDir := filepath.Join(root, "cluster_outputs")
	storyDir := filepath.Join(clusterDir, "carnival_predictions_output")
	require.NoError(t, os.MkdirAll(storyDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(storyDir, "statistics.csv"), []byte(fixtureStats), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(storyDir, "clustered.csv"), []byte(fixtureClustered), 0o644))

	melodyDir := filepath.Join(root, "melodies")
	interp12 := filepath.Join(melodyDir, "carnival", "2bar", "interpolations", "1to2")
	require.NoError(t, os.MkdirAll(interp12, 0o755))
	for _, name := range []string{
		"interp_00.mid", "interp_01.mid", "interp_02.mid", "interp_03.mid", "interp_04.mid",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(interp12, name), nil, 0o644))
	}

	interp23 := filepath.Join(melodyDir, "carnival", "2bar", "interpolations", "2to3")
	require.NoError(t, os.MkdirAll(interp23, 0o755))
	for _, name := range []string{"interp_00.mid", "interp_01.mid", "interp_02.mid", "interp_03.mid"} {
		require.NoError(t, os.WriteFile(filepath.Join(interp23, name), nil, 0o644))
	}

	outputDir := filepath.Join(root, "sentence_to_midi")
	cfg := Config{
		Stories:     []string{"carnival"},
		ClusterDir:  clusterDir,
		MelodyDir:   melodyDir,
		OutputDir:   outputDir,
		Transitions: []string{"1to2", "2to3", "3to4"},
	}

	aligner, err := audioflo.NewAligner()
	require.NoError(t, err)

	return &pipeline{cfg: cfg, logger: logger.NewTest(t), aligner: aligner}, outputDir
}

func TestPipeline_Run(t *testing.T) {
	p, outputDir := fixturePipeline(t)

	require.NoError(t, p.run())

	t.Run("writes the story summary", func(t *testing.T) {
		content, err := os.ReadFile(filepath.Join(outputDir, "carnival", "carnival_summary.csv"))
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(content)), "\n")
		require.Equal(t, "Cluster,Transition,Partition,Num_Sentences,Word_Count,Sentence_IDs", lines[0])
		// 1to2 has 5 MIDI files -> 2 partitions; 2to3 has 4 -> 2 partitions.
		require.Len(t, lines, 5)
		require.True(t, strings.HasPrefix(lines[1], "1,1to2,1,"))
		require.True(t, strings.HasPrefix(lines[3], "2,2to3,1,"))
	})

	t.Run("writes partition details per transition", func(t *testing.T) {
		detail, err := os.ReadFile(filepath.Join(
			outputDir, "carnival", "cluster_1to2", "carnival_cluster_1_partitions.csv"))
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(detail)), "\n")
		require.Equal(t, "Partition,ID,Text,V_pred,A_pred,Word_Count", lines[0])
		require.Len(t, lines, 5) // 4 sentences in cluster 1
	})

	t.Run("writes the midi mapping", func(t *testing.T) {
		content, err := os.ReadFile(filepath.Join(outputDir, "carnival", "carnival_midi_mapping.json"))
		require.NoError(t, err)

		var mapping map[string][]report.MappingEntry
		require.NoError(t, json.Unmarshal(content, &mapping))
		require.Len(t, mapping, 2)

		// 5 media across 2 partitions: the heavier partition gets 3.
		counts := 0
		for _, entry := range mapping["1to2"] {
			counts += len(entry.MidiFiles)
		}
		require.Equal(t, 5, counts)

		// 3to4 had no interpolation directory and must be absent.
		require.NotContains(t, mapping, "3to4")
	})
}

func TestPipeline_SkipsMissingStory(t *testing.T) {
	p, outputDir := fixturePipeline(t)
	p.cfg.Stories = []string{"carnival", "lantern"}

	require.NoError(t, p.run())

	_, err := os.Stat(filepath.Join(outputDir, "lantern"))
	require.True(t, os.IsNotExist(err))
}

func TestPipeline_SkipsEmptyTransition(t *testing.T) {
	p, outputDir := fixturePipeline(t)

	// Empty directory: media present but no .mid files -> partition count 0.
	empty := p.transitionDir("carnival", "3to4")
	require.NoError(t, os.MkdirAll(empty, 0o755))

	require.NoError(t, p.run())

	content, err := os.ReadFile(filepath.Join(outputDir, "carnival", "carnival_midi_mapping.json"))
	require.NoError(t, err)

	var mapping map[string][]report.MappingEntry
	require.NoError(t, json.Unmarshal(content, &mapping))
	require.NotContains(t, mapping, "3to4")
}
