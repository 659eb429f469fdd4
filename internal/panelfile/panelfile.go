// Package panelfile reads and writes panel record lists as JSON or YAML.
package panelfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okian/panelboard/internal/domain/model"
)

// Format names an on-disk encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Read loads the panel list stored at path.
func Read(path string) ([]model.PanelRecord, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer func() { _ = f.Close() }()

	recs, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Decode parses a panel list. JSON input may be a single object or an array;
// YAML input may be a single mapping or a sequence.
func Decode(r io.Reader, format Format) ([]model.PanelRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func decodeJSON(data []byte) ([]model.PanelRecord, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []model.PanelRecord{}, nil
	}
	// Numbers in metadata stay json.Number so large answers keep their digits.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if data[0] == '{' {
		var rec model.PanelRecord
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return []model.PanelRecord{rec}, nil
	}
	var recs []model.PanelRecord
	if err := dec.Decode(&recs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if recs == nil {
		recs = []model.PanelRecord{}
	}
	return recs, nil
}

func decodeYAML(data []byte) ([]model.PanelRecord, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if len(node.Content) == 0 {
		return []model.PanelRecord{}, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.MappingNode {
		var rec model.PanelRecord
		if err := root.Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return []model.PanelRecord{rec}, nil
	}
	recs := []model.PanelRecord{}
	if err := root.Decode(&recs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return recs, nil
}

// Write stores recs at path in the format its extension names.
func Write(path string, recs []model.PanelRecord) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, recs, format); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("%w: %w", ErrEncode, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

// Encode writes recs to w as an indented JSON array or a YAML sequence.
func Encode(w io.Writer, recs []model.PanelRecord, format Format) error {
	if recs == nil {
		recs = []model.PanelRecord{}
	}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(recs); err != nil {
			return fmt.Errorf("%w: %w", ErrEncode, err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return fmt.Errorf("%w: %w", ErrEncode, err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("%w: %w", ErrEncode, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
