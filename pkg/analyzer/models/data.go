package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// SampleTable holds the leading rows of a sheet. Rows are stored
// row-major and padded to Width; the JSON form is column-major:
// {"<col>": {"<row>": "<value>"}} with 0-based indexes.
type SampleTable struct {
	Rows  [][]string
	Width int
}

// Value returns the cell at (col, row), or "" outside the table.
func (t SampleTable) Value(col, row int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// MarshalJSON encodes the table column-major with keys in numeric order.
func (t SampleTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for col := 0; col < t.Width; col++ {
		if col > 0 {
			buf.WriteByte(',')
		}
		writeKey(&buf, strconv.Itoa(col))
		buf.WriteByte('{')
		for row := range t.Rows {
			if row > 0 {
				buf.WriteByte(',')
			}
			writeKey(&buf, strconv.Itoa(row))
			if err := writeString(&buf, t.Value(col, row)); err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SheetSample is the sample table of one sheet.
type SheetSample struct {
	Sheet string
	Table SampleTable
}

// DataStructure maps sheet names to sample tables, in workbook order.
type DataStructure []SheetSample

// Lookup returns the sample table of sheet.
func (d DataStructure) Lookup(sheet string) (SampleTable, bool) {
	for _, s := range d {
		if s.Sheet == sheet {
			return s.Table, true
		}
	}
	return SampleTable{}, false
}

// MarshalJSON encodes the samples as an object keyed by sheet name.
func (d DataStructure) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(&buf, s.Sheet); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		table, err := s.Table.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(table)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) {
	buf.WriteByte('"')
	buf.WriteString(key)
	buf.WriteString(`":`)
}

// writeString appends s as a JSON string, leaving <, > and & unescaped
// so the output matches an encoder with HTML escaping disabled.
func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
