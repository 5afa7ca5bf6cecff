// Package importer turns an uploaded CSV file into fighter definitions.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fighter-arena/models"

	"github.com/go-playground/validator/v10"
)

// Columns every import file must carry. Extra columns (id, timestamps) are ignored.
var Columns = []string{"name", "image_url", "attack", "defense", "hp", "speed"}

var (
	ErrNoRows   = errors.New("no fighters found in the CSV file")
	ErrNoHeader = errors.New("CSV file has no header row")

	validate = validator.New()
)

// RowError points at the record that broke the import. Row counts data
// records (1-based, header excluded); Line is the line in the file where the
// record starts, blank lines included.
type RowError struct {
	Row    int
	Line   int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("row %d (line %d): %v", e.Row, e.Line, e.Err)
	}
	return fmt.Sprintf("row %d (line %d), column %q: %v", e.Row, e.Line, e.Column, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Parse reads the whole file. Any malformed row aborts the import; nothing is
// returned for the rows before it.
func Parse(r io.Reader) ([]models.Fighter, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}
	reader.FieldsPerRecord = len(header)

	var fighters []models.Fighter
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			rowErr := &RowError{Row: row, Err: err}
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				rowErr.Line = parseErr.StartLine
			}
			return nil, rowErr
		}

		f, rowErr := parseRecord(record, index)
		if rowErr != nil {
			rowErr.Row = row
			rowErr.Line, _ = reader.FieldPos(0)
			return nil, rowErr
		}
		fighters = append(fighters, f)
	}

	if len(fighters) == 0 {
		return nil, ErrNoRows
	}
	return fighters, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		index[name] = i
	}

	var missing []string
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("CSV header is missing columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func parseRecord(record []string, index map[string]int) (models.Fighter, *RowError) {
	var rowErr *RowError
	cell := func(col string) string {
		v := strings.TrimSpace(record[index[col]])
		if v == "" && rowErr == nil {
			rowErr = &RowError{Column: col, Err: errors.New("value is required")}
		}
		return v
	}
	number := func(col string) int32 {
		v := cell(col)
		if rowErr != nil {
			return 0
		}
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			rowErr = &RowError{Column: col, Err: fmt.Errorf("%q is not a 32-bit integer", v)}
		}
		return int32(n)
	}

	in := models.FighterInput{
		Name:      cell("name"),
		ImageURL:  strings.TrimSpace(record[index["image_url"]]),
		Attack:    number("attack"),
		Defense:   number("defense"),
		HitPoints: number("hp"),
		Speed:     number("speed"),
	}
	if rowErr != nil {
		return models.Fighter{}, rowErr
	}

	if err := validate.Struct(in); err != nil {
		return models.Fighter{}, &RowError{Err: err}
	}
	return in.Fighter(), nil
}
