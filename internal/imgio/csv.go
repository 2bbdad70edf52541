package imgio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/fluostack/fluostack/internal/tensor"
)

// CSVCodec reads and writes rank-2 float64 arrays as delimited text.
// Every record must have the same number of fields.
type CSVCodec struct{}

// Extensions returns the extension tags for delimited text arrays.
func (*CSVCodec) Extensions() []string { return []string{"csv"} }

// Read decodes a CSV file into a rank-2 float64 tensor.
func (*CSVCodec) Read(path string) (*tensor.RawTensor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv file is empty")
	}

	rows, cols := len(records), len(records[0])
	data := make([]float64, 0, rows*cols)
	for i, rec := range records {
		// csv.Reader already enforces a uniform field count.
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("csv row %d, column %d: %w", i, j, err)
			}
			data = append(data, v)
		}
	}

	return tensor.FromSlice(data, tensor.Shape{rows, cols})
}

// Write encodes a rank-2 float64 tensor as CSV.
func (*CSVCodec) Write(path string, raw *tensor.RawTensor) error {
	if raw.Rank() != 2 {
		return fmt.Errorf("csv encode requires rank 2, got shape %v", raw.Shape())
	}
	if raw.DType() != tensor.Float64 {
		return fmt.Errorf("csv encode supports float64 only, got %s", raw.DType())
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	rows, cols := raw.Shape()[0], raw.Shape()[1]
	src := raw.AsFloat64()
	record := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			record[j] = strconv.FormatFloat(src[i*cols+j], 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			_ = f.Close() // Best effort close on error
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close() // Best effort close on error
		return err
	}
	return f.Close()
}
