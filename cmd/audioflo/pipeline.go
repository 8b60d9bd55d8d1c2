package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	audioflo "github.com/luckydeignan/audioFloInterpolationGenerator"
	"github.com/luckydeignan/audioFloInterpolationGenerator/internal/mediafs"
	"github.com/luckydeignan/audioFloInterpolationGenerator/internal/narrative"
	"github.com/luckydeignan/audioFloInterpolationGenerator/internal/report"
	"github.com/luckydeignan/audioFloInterpolationGenerator/types"
)

// pipeline runs the batch alignment over the configured stories.
//
// Failure policy: a story or transition with missing inputs is skipped with
// a warning and the batch continues; only output-write failures abort the
// run, since partial output directories are worse than a loud stop.
type pipeline struct {
	cfg     Config
	logger  types.Logger
	aligner *audioflo.Aligner
}

func (p *pipeline) run() error {
	for _, story := range p.cfg.Stories {
		if err := p.processStory(story); err != nil {
			return fmt.Errorf("story %s: %w", story, err)
		}
	}

	return nil
}

// storyInputs locates the clustering outputs for a story.
func (p *pipeline) storyInputs(story string) (statsPath, clusteredPath string) {
	dir := filepath.Join(p.cfg.ClusterDir, story+"_predictions_output")

	return filepath.Join(dir, "statistics.csv"), filepath.Join(dir, "clustered.csv")
}

// transitionDir locates the interpolation MIDI directory for a transition.
func (p *pipeline) transitionDir(story, transition string) string {
	return filepath.Join(p.cfg.MelodyDir, story, "2bar", "interpolations", transition)
}

func (p *pipeline) processStory(story string) error {
	statsPath, clusteredPath := p.storyInputs(story)

	stats, err := narrative.LoadClusterStats(statsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			p.logger.Warn("skipping story: cluster stats not found", "story", story, "path", statsPath)
			return nil
		}
		return err
	}

	sentences, err := narrative.LoadSentences(clusteredPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			p.logger.Warn("skipping story: clustered sentences not found", "story", story, "path", clusteredPath)
			return nil
		}
		return err
	}

	p.logger.Info("segmenting story", "story", story, "clusters", len(stats), "sentences", len(sentences))

	var summaryRows []report.SummaryRow
	mapping := make(map[string][]report.MappingEntry)

	for i, transition := range p.cfg.Transitions {
		// Transition i draws its sentences from cluster stats row i; a story
		// with fewer clusters than transitions simply has fewer transitions.
		if i >= len(stats) {
			break
		}

		rows, entries, err := p.processTransition(story, transition, stats[i], sentences)
		if err != nil {
			return fmt.Errorf("transition %s: %w", transition, err)
		}
		if entries == nil {
			continue
		}

		summaryRows = append(summaryRows, rows...)
		mapping[transition] = entries
	}

	if len(summaryRows) == 0 {
		p.logger.Warn("story produced no partitions", "story", story)
		return nil
	}

	storyDir := filepath.Join(p.cfg.OutputDir, story)
	summaryPath := filepath.Join(storyDir, story+"_summary.csv")
	if err := report.WriteSummary(summaryPath, summaryRows); err != nil {
		return err
	}

	mappingPath := filepath.Join(storyDir, story+"_midi_mapping.json")
	if err := report.WriteMapping(mappingPath, mapping); err != nil {
		return err
	}

	p.logger.Info("story complete", "story", story, "summary", summaryPath, "mapping", mappingPath)

	return nil
}

// processTransition aligns one cluster transition. A nil entries result with
// a nil error means the transition was skipped.
func (p *pipeline) processTransition(
	story, transition string,
	stat narrative.ClusterStat,
	sentences []narrative.Sentence,
) ([]report.SummaryRow, []report.MappingEntry, error) {
	midiDir := p.transitionDir(story, transition)
	media, err := mediafs.ListMIDI(midiDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			p.logger.Warn("skipping transition: interpolation directory not found",
				"story", story, "transition", transition, "dir", midiDir)
			return nil, nil, nil
		}
		return nil, nil, err
	}

	partitionCount := mediafs.PartitionCount(media)
	if partitionCount == 0 {
		p.logger.Warn("skipping transition: no interpolation files",
			"story", story, "transition", transition, "dir", midiDir)
		return nil, nil, nil
	}

	clusterSentences := narrative.InRange(sentences, stat.StartID, stat.EndID)
	if len(clusterSentences) == 0 {
		p.logger.Warn("skipping transition: no sentences in cluster range",
			"story", story, "transition", transition, "start", stat.StartID, "end", stat.EndID)
		return nil, nil, nil
	}

	result, err := p.aligner.Align(audioflo.AlignRequest{
		Story:          story,
		Transition:     transition,
		Units:          narrative.Units(clusterSentences),
		MediaCount:     len(media),
		PartitionCount: partitionCount,
	})
	if err != nil {
		return nil, nil, err
	}

	p.logger.Info("transition aligned",
		"story", story,
		"transition", transition,
		"partitions", result.Plan.Len(),
		"bottleneck", result.Plan.MaxWeight(),
		"media", len(media),
	)

	detailPath := filepath.Join(
		p.cfg.OutputDir, story, "cluster_"+transition,
		fmt.Sprintf("%s_cluster_%d_partitions.csv", story, stat.Cluster),
	)
	if err := report.WriteDetail(detailPath, result.Plan, clusterSentences); err != nil {
		return nil, nil, err
	}

	entries, err := report.MappingEntries(result.Plan, result.Assignment, media)
	if err != nil {
		return nil, nil, err
	}

	return report.SummaryRows(stat.Cluster, transition, result.Plan), entries, nil
}
