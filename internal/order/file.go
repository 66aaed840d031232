package order

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// tableFile is the on-disk form of an order table.
type tableFile struct {
	Classes []string `yaml:"classes"`
}

// Decode reads an order table from YAML. Both a document with a "classes"
// list and a bare top-level list are accepted.
func Decode(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading order table: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing order table: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, errors.New("order table is empty")
	}

	var patterns []string
	switch doc := root.Content[0]; doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&patterns); err != nil {
			return nil, fmt.Errorf("parsing order table: %w", err)
		}
	case yaml.MappingNode:
		var f tableFile
		if err := doc.Decode(&f); err != nil {
			return nil, fmt.Errorf("parsing order table: %w", err)
		}
		patterns = f.Classes
	default:
		return nil, fmt.Errorf("order table must be a list or a mapping, got line %d", doc.Line)
	}

	if len(patterns) == 0 {
		return nil, errors.New("order table is empty")
	}
	return NewTable(patterns)
}

// LoadFile reads an order table from a YAML file.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening order table: %w", err)
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Encode writes the table as YAML in the form read by Decode.
func Encode(w io.Writer, t *Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tableFile{Classes: t.Patterns()}); err != nil {
		return fmt.Errorf("encoding order table: %w", err)
	}
	return enc.Close()
}
