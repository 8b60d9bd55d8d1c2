// Package mediafs discovers generated media artifacts on disk.
//
// Interpolation MIDI files for a transition live in a single directory and
// come in input/output pairs. Listing is always sorted lexically, which is
// the canonical media order the assigner's contiguous sub-ranges rely on.
package mediafs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/luckydeignan/audioFloInterpolationGenerator/types"
)

// midiExt is the filename extension of interpolation artifacts.
const midiExt = ".mid"

// ListMIDI returns the sorted MIDI filenames in a transition directory.
//
// Parameters:
//   - dir: Transition directory (e.g. <melodies>/<story>/2bar/interpolations/1to2)
//
// Returns:
//   - []types.MediaUnit: Lexically sorted .mid filenames (names only, no dir)
//   - error: Directory read failure
func ListMIDI(dir string) ([]types.MediaUnit, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list midi files: %w", err)
	}

	var files []types.MediaUnit
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), midiExt) {
			files = append(files, types.MediaUnit(entry.Name()))
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

// PartitionCount derives the partition count for a transition from its media
// pool. Interpolations are generated as input/output pairs, so the number of
// narrative partitions is half the file count.
//
// Parameters:
//   - media: Sorted media pool of one transition
//
// Returns:
//   - int: len(media) / 2 (0 when the pool is empty or a single file)
func PartitionCount(media []types.MediaUnit) int {
	return len(media) / 2
}
