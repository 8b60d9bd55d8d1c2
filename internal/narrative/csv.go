package narrative

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Column names of the cluster statistics CSV, as written by the clustering
// stage upstream.
const (
	colCluster     = "Cluster"
	colStartID     = "Start_ID"
	colEndID       = "End_ID"
	colLength      = "Length"
	colValenceMean = "Valence_Mean"
	colValenceStd  = "Valence_Std"
	colArousalMean = "Arousal_Mean"
	colArousalStd  = "Arousal_Std"
)

// Column names of the clustered sentences CSV.
const (
	colID    = "ID"
	colText  = "text"
	colVPred = "V_pred"
	colAPred = "A_pred"
)

// LoadClusterStats reads and validates a cluster statistics CSV.
//
// Parameters:
//   - path: Path to statistics.csv
//
// Returns:
//   - []ClusterStat: One record per cluster, in file order
//   - error: File, parse, or validation failure with row context
func LoadClusterStats(path string) ([]ClusterStat, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cluster stats: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := headerIndex(reader)
	if err != nil {
		return nil, fmt.Errorf("read cluster stats header: %w", err)
	}

	var stats []ClusterStat
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read cluster stats row %d: %w", row, err)
		}

		fields := fieldParser{header: header, record: record}
		stat := ClusterStat{
			Cluster:     fields.Int(colCluster),
			StartID:     fields.Int(colStartID),
			EndID:       fields.Int(colEndID),
			Length:      fields.Int(colLength),
			ValenceMean: fields.Float(colValenceMean),
			ValenceStd:  fields.Float(colValenceStd),
			ArousalMean: fields.Float(colArousalMean),
			ArousalStd:  fields.Float(colArousalStd),
		}
		if fields.err != nil {
			return nil, fmt.Errorf("cluster stats row %d: %w", row, fields.err)
		}
		if err := validate.Struct(stat); err != nil {
			return nil, fmt.Errorf("cluster stats row %d: %w", row, err)
		}

		stats = append(stats, stat)
	}

	return stats, nil
}

// LoadSentences reads and validates a clustered sentences CSV.
//
// Sentence IDs must strictly ascend in file order; the partitioner depends
// on that ordering.
//
// Parameters:
//   - path: Path to clustered.csv
//
// Returns:
//   - []Sentence: One record per sentence, in narrative order
//   - error: File, parse, validation, or ordering failure with row context
func LoadSentences(path string) ([]Sentence, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sentences: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := headerIndex(reader)
	if err != nil {
		return nil, fmt.Errorf("read sentences header: %w", err)
	}

	var sentences []Sentence
	lastID := -1
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read sentences row %d: %w", row, err)
		}

		fields := fieldParser{header: header, record: record}
		sentence := Sentence{
			ID:    fields.Int(colID),
			Text:  fields.String(colText),
			VPred: fields.Float(colVPred),
			APred: fields.Float(colAPred),
		}
		if fields.err != nil {
			return nil, fmt.Errorf("sentences row %d: %w", row, fields.err)
		}
		if err := validate.Struct(sentence); err != nil {
			return nil, fmt.Errorf("sentences row %d: %w", row, err)
		}
		if sentence.ID <= lastID {
			return nil, fmt.Errorf("sentences row %d: id %d does not ascend past %d", row, sentence.ID, lastID)
		}
		lastID = sentence.ID

		sentences = append(sentences, sentence)
	}

	return sentences, nil
}

func headerIndex(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	return index, nil
}

// fieldParser extracts typed fields from a CSV record by column name,
// retaining the first error so callers can parse a whole row before
// checking.
type fieldParser struct {
	header map[string]int
	record []string
	err    error
}

func (p *fieldParser) String(name string) string {
	if p.err != nil {
		return ""
	}

	i, ok := p.header[name]
	if !ok {
		p.err = fmt.Errorf("missing column %q", name)
		return ""
	}
	if i >= len(p.record) {
		p.err = fmt.Errorf("short row: no value for column %q", name)
		return ""
	}

	return p.record[i]
}

func (p *fieldParser) Int(name string) int {
	raw := p.String(name)
	if p.err != nil {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		p.err = fmt.Errorf("column %q: %w", name, err)
		return 0
	}

	return value
}

func (p *fieldParser) Float(name string) float64 {
	raw := p.String(name)
	if p.err != nil {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.err = fmt.Errorf("column %q: %w", name, err)
		return 0
	}

	return value
}
