// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gwenn/yacr"
)

// ReadFile reads the table stored in the named TSV file.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read parses a tab-separated table from r.
//
// The first non-blank line is the header. Every following non-blank
// line must have as many fields as the header, and every field after
// the first must be a number.
func Read(r io.Reader) (*Table, error) {
	var (
		t      *Table
		record []string
		line   int
	)
	s := yacr.NewReader(r, '\t', false, false)
	for s.Scan() {
		record = append(record, strings.TrimSpace(s.Text()))
		if !s.EndOfRecord() {
			continue
		}
		line++
		if len(record) == 1 && record[0] == "" {
			record = record[:0]
			continue
		}
		if t == nil {
			if len(record) < 2 {
				return nil, fmt.Errorf("line %d: header has no series columns", line)
			}
			t = &Table{Key: record[0], Series: make([]Series, len(record)-1)}
			for i, name := range record[1:] {
				t.Series[i].Name = name
			}
		} else if err := t.addRow(record); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		record = record[:0]
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("missing header")
	}
	return t, nil
}

func (t *Table) addRow(record []string) error {
	if len(record) != len(t.Series)+1 {
		return fmt.Errorf("%w: %d fields, want %d", ErrShape, len(record), len(t.Series)+1)
	}
	for i, field := range record[1:] {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return fmt.Errorf("column %q: %w", t.Series[i].Name, err)
		}
		t.Series[i].Values = append(t.Series[i].Values, v)
	}
	t.Labels = append(t.Labels, record[0])
	return nil
}

// Write writes t to w in the format accepted by Read.
func Write(w io.Writer, t *Table) error {
	tw := yacr.NewWriter(w, '\t', false)
	tw.WriteString(t.Key)
	for _, s := range t.Series {
		tw.WriteString(s.Name)
	}
	tw.EndOfRecord()
	for i, label := range t.Labels {
		tw.WriteString(label)
		for _, s := range t.Series {
			tw.WriteValue(s.Values[i])
		}
		tw.EndOfRecord()
	}
	tw.Flush()
	return tw.Err()
}

// WriteFile writes t to the named file, replacing it if it exists.
func WriteFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
