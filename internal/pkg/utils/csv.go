package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Row is one data line of a header-led CSV file.
type Row struct {
	Line   int
	Fields map[string]string
}

// Get returns the trimmed value of the first non-empty column among keys.
func (r Row) Get(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(r.Fields[k]); v != "" {
			return v
		}
	}
	return ""
}

// Extra returns the non-empty columns that are not listed in known.
func (r Row) Extra(known ...string) map[string]string {
	skip := make(map[string]struct{}, len(known))
	for _, k := range known {
		skip[k] = struct{}{}
	}

	var extra map[string]string
	for k, v := range r.Fields {
		if _, ok := skip[k]; ok {
			continue
		}
		if v = strings.TrimSpace(v); v == "" {
			continue
		}
		if extra == nil {
			extra = make(map[string]string)
		}
		extra[k] = v
	}
	return extra
}

// ReadCSV loads a UTF-8 CSV file whose first line names the columns.
// A missing file is reported through exists=false, not as an error.
func ReadCSV(path string) (header []string, rows []Row, exists bool, err error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, false, nil
	}
	if err != nil {
		return nil, nil, false, fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	header, rows, err = ParseCSV(f)
	if err != nil {
		return nil, nil, true, fmt.Errorf("%s: %w", path, err)
	}

	return header, rows, true, nil
}

// ParseCSV reads header-keyed rows from r. Short rows leave the trailing
// columns empty; blank lines are skipped.
func ParseCSV(r io.Reader) ([]string, []Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	rows := make([]Row, 0, 64)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read record: %w", err)
		}
		line, _ := reader.FieldPos(0)

		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				fields[name] = record[i]
			} else {
				fields[name] = ""
			}
		}
		rows = append(rows, Row{Line: line, Fields: fields})
	}

	return header, rows, nil
}

// WriteCSV replaces path with the given header and records. The content is
// written to a temporary file in the same directory and renamed into place.
func WriteCSV(path string, header []string, records [][]string) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	w := csv.NewWriter(tmp)
	if err = w.Write(header); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err = w.WriteAll(records); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write records: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("os.Rename: %w", err)
	}

	return nil
}

// IsPincode reports whether s is exactly six ASCII digits.
func IsPincode(s string) bool {
	return len(s) == 6 && IsDigits(s)
}

// IsDigits reports whether s is non-empty and made of ASCII digits only.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
