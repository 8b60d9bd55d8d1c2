// Package report writes the partition summary CSV, the per-cluster partition
// detail CSV, and the per-story media mapping JSON.
//
// Record shapes match what downstream consumers of the pipeline read back:
// summary rows keyed by (Cluster, Transition, Partition), detail rows echoing
// each sentence with its predictions, and a JSON object keyed by transition
// whose entries pair partitions with their assigned MIDI filenames.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/luckydeignan/audioFloInterpolationGenerator/internal/narrative"
	"github.com/luckydeignan/audioFloInterpolationGenerator/types"
)

// SummaryRow is one row of the story summary CSV: one partition of one
// transition.
type SummaryRow struct {
	Cluster      int
	Transition   string
	Partition    int
	NumSentences int
	WordCount    int
	SentenceIDs  string
}

// summaryHeader matches the column order of the original summary files.
var summaryHeader = []string{"Cluster", "Transition", "Partition", "Num_Sentences", "Word_Count", "Sentence_IDs"}

// detailHeader matches the column order of the original per-cluster files.
var detailHeader = []string{"Partition", "ID", "Text", "V_pred", "A_pred", "Word_Count"}

// MappingEntry is one partition's slice of the media mapping JSON.
type MappingEntry struct {
	Partition    int      `json:"partition"`
	SentenceIDs  string   `json:"sentence_ids"`
	NumSentences int      `json:"num_sentences"`
	WordCount    int      `json:"word_count"`
	MidiFiles    []string `json:"midi_files"`
}

// SummaryRows flattens a plan into summary rows for one cluster transition.
//
// Parameters:
//   - cluster: Cluster identifier of the transition's source cluster
//   - transition: Transition identifier (e.g. "1to2")
//   - plan: Computed partition plan
//
// Returns:
//   - []SummaryRow: One row per partition, in partition-index order
func SummaryRows(cluster int, transition string, plan types.PartitionPlan) []SummaryRow {
	rows := make([]SummaryRow, plan.Len())
	for i, p := range plan.Partitions {
		rows[i] = SummaryRow{
			Cluster:      cluster,
			Transition:   transition,
			Partition:    p.Index,
			NumSentences: len(p.Units),
			WordCount:    p.Weight,
			SentenceIDs:  p.JoinedIDs(),
		}
	}

	return rows
}

// WriteSummary writes the story summary CSV.
//
// Parameters:
//   - path: Output file path (parent directories are created)
//   - rows: Summary rows across all transitions of the story
//
// Returns:
//   - error: File or write failure
func WriteSummary(path string, rows []SummaryRow) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, summaryHeader)
	for _, row := range rows {
		records = append(records, []string{
			strconv.Itoa(row.Cluster),
			row.Transition,
			strconv.Itoa(row.Partition),
			strconv.Itoa(row.NumSentences),
			strconv.Itoa(row.WordCount),
			row.SentenceIDs,
		})
	}

	return writeCSV(path, records)
}

// WriteDetail writes a per-cluster partition detail CSV, one row per
// sentence with its predictions and word count.
//
// Parameters:
//   - path: Output file path (parent directories are created)
//   - plan: Computed partition plan for the cluster
//   - sentences: Cluster sentences, used to look up predictions by ID
//
// Returns:
//   - error: File or write failure, or an unknown sentence ID in the plan
func WriteDetail(path string, plan types.PartitionPlan, sentences []narrative.Sentence) error {
	byID := make(map[int]narrative.Sentence, len(sentences))
	for _, s := range sentences {
		byID[s.ID] = s
	}

	records := make([][]string, 0, plan.UnitCount()+1)
	records = append(records, detailHeader)
	for _, p := range plan.Partitions {
		for _, u := range p.Units {
			sentence, ok := byID[u.ID]
			if !ok {
				return fmt.Errorf("write detail: no sentence with id %d", u.ID)
			}
			records = append(records, []string{
				strconv.Itoa(p.Index),
				strconv.Itoa(u.ID),
				sentence.Text,
				strconv.FormatFloat(sentence.VPred, 'g', -1, 64),
				strconv.FormatFloat(sentence.APred, 'g', -1, 64),
				strconv.Itoa(u.Weight),
			})
		}
	}

	return writeCSV(path, records)
}

// MappingEntries pairs a plan's partitions with their assigned media files.
//
// Parameters:
//   - plan: Computed partition plan
//   - assignment: Media assignment for the plan
//   - media: Sorted media pool the assignment was computed against
//
// Returns:
//   - []MappingEntry: One entry per partition, in partition-index order
//   - error: Plan/assignment shape mismatch or media length mismatch
func MappingEntries(plan types.PartitionPlan, assignment types.MediaAssignment, media []types.MediaUnit) ([]MappingEntry, error) {
	if assignment.Slots != nil && len(assignment.Slots) != plan.Len() {
		return nil, fmt.Errorf("mapping: %d slots for %d partitions", len(assignment.Slots), plan.Len())
	}

	bound, err := assignment.Bind(media)
	if err != nil {
		return nil, fmt.Errorf("mapping: %w", err)
	}

	entries := make([]MappingEntry, plan.Len())
	for i, p := range plan.Partitions {
		files := make([]string, len(bound[i]))
		for j, unit := range bound[i] {
			files[j] = string(unit)
		}
		entries[i] = MappingEntry{
			Partition:    p.Index,
			SentenceIDs:  p.JoinedIDs(),
			NumSentences: len(p.Units),
			WordCount:    p.Weight,
			MidiFiles:    files,
		}
	}

	return entries, nil
}

// WriteMapping writes the per-story media mapping JSON, keyed by transition.
//
// Parameters:
//   - path: Output file path (parent directories are created)
//   - mapping: Transition identifier to mapping entries
//
// Returns:
//   - error: File or encode failure
func WriteMapping(path string, mapping map[string][]MappingEntry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write mapping: %w", err)
	}

	data, err := json.MarshalIndent(mapping, "", "  ")
	if err != nil {
		return fmt.Errorf("write mapping: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write mapping: %w", err)
	}

	return nil
}

func writeCSV(path string, records [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(records); err != nil {
		file.Close()
		return fmt.Errorf("write csv: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	return nil
}
