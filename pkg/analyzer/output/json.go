// Package output renders analysis results in the supported formats.
package output

import (
	"bytes"
	"encoding/json"
)

// ToJSON serializes v to JSON. Non-ASCII text and HTML characters are
// written verbatim. The result has no trailing newline.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
