package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"swarm-utilization/internal/model"
)

// Column names of the results table.
const (
	ColStrategyName         = "stratName"
	ColGroupSize            = "group_size"
	ColEnemyCount           = "enemyCount"
	ColHasTalent            = "hasCircle"
	ColTicksPerSecond       = "ticksPerSecond"
	ColFriendlyTicksPerTime = "friendlyTicksPerTime"
	ColEnemyTicksPerTime    = "enemyTicksPerTime"
)

// Columns is the canonical column order used when writing.
var Columns = []string{
	ColStrategyName,
	ColGroupSize,
	ColEnemyCount,
	ColHasTalent,
	ColTicksPerSecond,
	ColFriendlyTicksPerTime,
	ColEnemyTicksPerTime,
}

var ErrMissingColumn = errors.New("missing column")

// CSVOptions describes the field separator and decimal point of a results file.
type CSVOptions struct {
	Comma   rune
	Decimal rune
}

func DefaultCSVOptions() CSVOptions {
	return CSVOptions{Comma: ';', Decimal: '.'}
}

func (o CSVOptions) withDefaults() CSVOptions {
	if o.Comma == 0 {
		o.Comma = ';'
	}
	if o.Decimal == 0 {
		o.Decimal = '.'
	}
	return o
}

// LoadResultsCSV reads a results file from disk.
func LoadResultsCSV(path string, opts CSVOptions) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := ReadResultsCSV(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &model.Dataset{Source: path, Rows: rows}, nil
}

// ReadResultsCSV parses a results table. Column order comes from the header;
// unknown columns are ignored.
func ReadResultsCSV(r io.Reader, opts CSVOptions) ([]model.ResultRow, error) {
	opts = opts.withDefaults()

	cr := csv.NewReader(r)
	cr.Comma = opts.Comma
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return []model.ResultRow{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	rows := []model.ResultRow{}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		row, err := parseRow(rec, idx, opts)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func headerIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		// spreadsheet exports may carry a UTF-8 BOM
		h = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
		idx[h] = i
	}
	for _, c := range Columns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}
	return idx, nil
}

func parseRow(rec []string, idx map[string]int, opts CSVOptions) (model.ResultRow, error) {
	field := func(col string) string {
		i := idx[col]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var (
		row model.ResultRow
		err error
	)
	row.StrategyName = field(ColStrategyName)
	if row.GroupSize, err = strconv.Atoi(field(ColGroupSize)); err != nil {
		return row, fmt.Errorf("%s: %w", ColGroupSize, err)
	}
	if row.EnemyCount, err = strconv.Atoi(field(ColEnemyCount)); err != nil {
		return row, fmt.Errorf("%s: %w", ColEnemyCount, err)
	}
	if row.HasTalent, err = strconv.ParseBool(field(ColHasTalent)); err != nil {
		return row, fmt.Errorf("%s: %w", ColHasTalent, err)
	}
	if row.TicksPerSecond, err = parseFloat(field(ColTicksPerSecond), opts.Decimal); err != nil {
		return row, fmt.Errorf("%s: %w", ColTicksPerSecond, err)
	}
	if row.FriendlyTicksPerTime, err = parseFloat(field(ColFriendlyTicksPerTime), opts.Decimal); err != nil {
		return row, fmt.Errorf("%s: %w", ColFriendlyTicksPerTime, err)
	}
	if row.EnemyTicksPerTime, err = parseFloat(field(ColEnemyTicksPerTime), opts.Decimal); err != nil {
		return row, fmt.Errorf("%s: %w", ColEnemyTicksPerTime, err)
	}
	return row, nil
}

func parseFloat(s string, decimal rune) (float64, error) {
	if decimal != '.' {
		s = strings.ReplaceAll(s, string(decimal), ".")
	}
	return strconv.ParseFloat(s, 64)
}

// WriteResultsCSV writes rows in the same layout ReadResultsCSV accepts.
func WriteResultsCSV(w io.Writer, rows []model.ResultRow, opts CSVOptions) error {
	opts = opts.withDefaults()

	cw := csv.NewWriter(w)
	cw.Comma = opts.Comma

	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.StrategyName,
			strconv.Itoa(r.GroupSize),
			strconv.Itoa(r.EnemyCount),
			fmtBool(r.HasTalent),
			fmtFloat(r.TicksPerSecond, opts.Decimal),
			fmtFloat(r.FriendlyTicksPerTime, opts.Decimal),
			fmtFloat(r.EnemyTicksPerTime, opts.Decimal),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func fmtBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func fmtFloat(x float64, decimal rune) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if decimal != '.' {
		s = strings.ReplaceAll(s, ".", string(decimal))
	}
	return s
}
