package data

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"

	"swarm-utilization/internal/model"
)

// LoadDataset reads a results table. http(s) locations go through
// DefaultRemote; local ".json" files through LoadResultsJSON; anything else is CSV.
func LoadDataset(path string, opts CSVOptions) (*model.Dataset, error) {
	if IsRemote(path) {
		return DefaultRemote.Fetch(context.Background(), path, opts)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadResultsJSON(path)
	}
	return LoadResultsCSV(path, opts)
}

func LoadResultsJSON(path string) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := ReadResultsJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &model.Dataset{Source: path, Rows: rows}, nil
}

// ReadResultsJSON accepts either a bare array of rows (the export format)
// or an object with a "rows" array.
func ReadResultsJSON(r io.Reader) ([]model.ResultRow, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []model.ResultRow{}, nil
	}

	var rows []model.ResultRow
	if raw[0] == '[' {
		err = sonic.Unmarshal(raw, &rows)
	} else {
		var ds model.Dataset
		err = sonic.Unmarshal(raw, &ds)
		rows = ds.Rows
	}
	if err != nil {
		return nil, fmt.Errorf("parse results json: %w", err)
	}
	if rows == nil {
		rows = []model.ResultRow{}
	}
	return rows, nil
}

// WriteResultsJSON writes rows as an indented JSON array.
func WriteResultsJSON(w io.Writer, rows []model.ResultRow) error {
	if rows == nil {
		rows = []model.ResultRow{}
	}
	raw, err := sonic.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal rows: %w", err)
	}
	raw = append(raw, '\n')
	_, err = w.Write(raw)
	return err
}
