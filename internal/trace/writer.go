package trace

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vladglv/Performance-Tools/internal/analyzer"
	"github.com/vladglv/Performance-Tools/internal/errors"
)

// Column labels appended to the header row of the augmented output.
var augmentedColumns = []string{
	" Frame Time (ms)",
	" Frame Rate (fps)",
	" Frame Deltas (ms)",
	" Extra Time (ms)",
	" Visible Stutter (b)",
}

// OutputPath derives the sibling path for the augmented table:
// <stem>_fpa.<extension>.
func OutputPath(in string) string {
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + "_fpa" + ext
}

// WriteAugmented writes a copy of the input table with the five derived
// columns appended. The first data row has no predecessor to diff against
// and gets zeros in every derived column.
//
// The table is written to a temporary file in the destination directory and
// renamed into place, so a failed run never leaves a half-written output.
func WriteAugmented(path string, header []string, samples []analyzer.Sample, records []analyzer.FrameRecord) error {
	if len(samples) != len(records)+1 {
		return errors.NewInternalError("record count does not match sample count")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".fpa-*.tmp")
	if err != nil {
		return errors.WrapOutputWriteError(err, path)
	}
	tmpName := tmp.Name()

	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return errors.WrapOutputWriteError(err, path)
	}

	w := csv.NewWriter(tmp)

	headerRow := make([]string, 0, len(header)+len(augmentedColumns))
	headerRow = append(headerRow, header...)
	headerRow = append(headerRow, augmentedColumns...)
	if err := w.Write(headerRow); err != nil {
		return fail(err)
	}

	first := []string{
		strconv.Itoa(samples[0].Index),
		formatFloat(samples[0].TimeMS),
		"0", "0", "0", "0", "0",
	}
	if err := w.Write(first); err != nil {
		return fail(err)
	}

	for i, rec := range records {
		sample := samples[i+1]
		stutter := "0"
		if rec.Stutter {
			stutter = "1"
		}
		row := []string{
			strconv.Itoa(sample.Index),
			formatFloat(sample.TimeMS),
			formatFloat(rec.FrameTimeMS),
			formatFloat(rec.FrameRateFPS),
			formatFloat(rec.FrameDeltaMS),
			formatFloat(rec.ExtraTimeMS),
			stutter,
		}
		if err := w.Write(row); err != nil {
			return fail(err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.WrapOutputWriteError(err, path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.WrapOutputWriteError(err, path)
	}

	return nil
}

// formatFloat renders a value with the shortest representation that
// round-trips exactly through ParseFloat.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
