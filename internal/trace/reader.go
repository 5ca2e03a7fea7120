// Package trace reads and writes FRAPS-style frame timing tables. The input
// is a comma-delimited file whose header row starts with the literal cells
// "Frame" and " Time (ms)" (leading space significant), followed by one row
// per frame holding the frame index and the cumulative timestamp.
package trace

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vladglv/Performance-Tools/internal/analyzer"
	"github.com/vladglv/Performance-Tools/internal/errors"
)

// Expected header cells for the two input columns.
const (
	headerFrame = "Frame"
	headerTime  = " Time (ms)"
)

// cleanCell strips spaces from a cell before numeric parsing. Values
// containing the character 'm' are unit-suffixed (ms, fps) and pass through
// verbatim.
func cleanCell(s string) string {
	if strings.Contains(s, "m") {
		return s
	}
	return strings.ReplaceAll(s, " ", "")
}

// Read parses a frame timing trace. It returns the samples in file order and
// the full header row (the header may carry extra columns, which are
// preserved for the augmented output).
func Read(path string) ([]analyzer.Sample, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.WrapInternalError(err, "failed to open trace").WithDetails(map[string]interface{}{
			"file": path,
		})
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, nil, errors.NewInvalidHeaderError(path, nil)
	}
	if len(header) < 2 || cleanCell(header[0]) != headerFrame || cleanCell(header[1]) != headerTime {
		return nil, nil, errors.NewInvalidHeaderError(path, header)
	}

	var samples []analyzer.Sample
	row := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, nil, errors.NewMalformedRowError(err, path, row)
		}
		if len(record) < 2 {
			return nil, nil, errors.NewMalformedRowError(nil, path, row)
		}

		index, err := strconv.Atoi(cleanCell(record[0]))
		if err != nil {
			return nil, nil, errors.NewMalformedRowError(err, path, row)
		}
		timeMS, err := strconv.ParseFloat(cleanCell(record[1]), 64)
		if err != nil {
			return nil, nil, errors.NewMalformedRowError(err, path, row)
		}

		samples = append(samples, analyzer.Sample{Index: index, TimeMS: timeMS})
	}

	return samples, header, nil
}
