// Package plan serializes built layout plans for files, the viewer API, and
// the plan archive.
package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// MarshalPlan converts a document to indented JSON bytes.
func MarshalPlan(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := writePlanTo(doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalPlan deserializes JSON bytes to a document.
func UnmarshalPlan(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	return doc, nil
}

// WritePlanFile writes a document to a JSON file.
// The file is created with 0644 permissions.
func WritePlanFile(doc Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writePlanTo(doc, f)
}

// WritePlan writes a document as JSON to an io.Writer.
func WritePlan(doc Document, w io.Writer) error {
	return writePlanTo(doc, w)
}

// ReadPlanFile reads a JSON file and returns the decoded document.
func ReadPlanFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readPlanFrom(f)
}

// ReadPlan decodes a JSON document from an io.Reader.
func ReadPlan(r io.Reader) (Document, error) {
	return readPlanFrom(r)
}

func writePlanTo(doc Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readPlanFrom(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	return doc, nil
}
