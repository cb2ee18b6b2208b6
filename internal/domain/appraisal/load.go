package appraisal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load reads and decodes an appraisal document from a JSON file.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses an appraisal document from r. Unknown fields are ignored and
// missing optional fields stay at their zero values; no schema validation
// happens here.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse appraisal json: %w", err)
	}
	return &doc, nil
}
