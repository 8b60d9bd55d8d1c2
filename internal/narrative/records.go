// Package narrative loads and validates the clustered-story CSV inputs.
//
// Two files describe a story: a cluster statistics CSV (one row per
// emotional cluster with its sentence ID bounds and valence/arousal stats)
// and a clustered sentences CSV (one row per sentence with its predicted
// valence and arousal). Rows are parsed into typed records and validated at
// this boundary so the core library only ever sees well-formed values.
package narrative

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/luckydeignan/audioFloInterpolationGenerator/types"
)

// ClusterStat is one row of the cluster statistics CSV.
type ClusterStat struct {
	Cluster     int     `validate:"gte=0"`
	StartID     int     `validate:"gte=0"`
	EndID       int     `validate:"gtefield=StartID"`
	Length      int     `validate:"gt=0"`
	ValenceMean float64
	ValenceStd  float64 `validate:"gte=0"`
	ArousalMean float64
	ArousalStd  float64 `validate:"gte=0"`
}

// Sentence is one row of the clustered sentences CSV.
type Sentence struct {
	ID    int    `validate:"gte=0"`
	Text  string `validate:"required"`
	VPred float64
	APred float64
}

// WordCount returns the number of whitespace-separated words in a sentence.
func (s Sentence) WordCount() int {
	return len(strings.Fields(s.Text))
}

// validate is the shared validator instance; validator caches struct
// metadata internally and is safe for concurrent use.
var validate = validator.New()

// InRange filters sentences whose IDs fall inside [startID, endID],
// preserving order.
//
// Parameters:
//   - sentences: Full sentence sequence of the story
//   - startID: First sentence ID of the cluster (inclusive)
//   - endID: Last sentence ID of the cluster (inclusive)
//
// Returns:
//   - []Sentence: Sentences belonging to the cluster
func InRange(sentences []Sentence, startID, endID int) []Sentence {
	selected := make([]Sentence, 0, len(sentences))
	for _, s := range sentences {
		if s.ID >= startID && s.ID <= endID {
			selected = append(selected, s)
		}
	}

	return selected
}

// Units converts sentences into narrative units weighted by word count.
//
// Parameters:
//   - sentences: Ordered sentences of one cluster
//
// Returns:
//   - []types.NarrativeUnit: One unit per sentence, weight = word count
func Units(sentences []Sentence) []types.NarrativeUnit {
	units := make([]types.NarrativeUnit, len(sentences))
	for i, s := range sentences {
		units[i] = types.NarrativeUnit{
			ID:     s.ID,
			Weight: s.WordCount(),
			Text:   s.Text,
		}
	}

	return units
}
