package matrix

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseAugmented builds an augmented system from raw text cells, one slice
// of n+1 strings per equation (n coefficients followed by b).
//
// The first cell that is not a finite real number fails the construction with
// an *EntryError carrying its 1-indexed position. Shape problems are reported
// before any cell is parsed.
func ParseAugmented(cells [][]string) (*Augmented, error) {
	n := len(cells)
	if n == 0 {
		return nil, validatorErrorf("ParseAugmented", ErrBadShape)
	}
	for i, row := range cells {
		if len(row) != n+1 {
			return nil, validatorErrorf("ParseAugmented",
				fmt.Errorf("row %d has %d cells, want %d: %w", i+1, len(row), n+1, ErrBadShape))
		}
	}

	rows := make([][]float64, n)
	for i, row := range cells {
		rows[i] = make([]float64, n+1)
		for j, raw := range row {
			v, ok := parseCell(raw)
			if !ok {
				return nil, &EntryError{Row: i + 1, Col: j + 1, RHS: j == n, Raw: raw}
			}
			rows[i][j] = v
		}
	}

	return NewAugmented(rows)
}

// parseCell accepts any finite float literal, ignoring surrounding blanks.
func parseCell(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// ParseRows splits a compact textual system such as "2,1,-1,8; -3,-1,2,-11"
// into raw cells: rows are separated by ';' or newlines, cells by ',' or blanks.
func ParseRows(text string) [][]string {
	var cells [][]string
	for _, line := range strings.FieldsFunc(text, func(r rune) bool { return r == ';' || r == '\n' }) {
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		if len(fields) == 0 {
			continue
		}
		cells = append(cells, fields)
	}

	return cells
}

// systemDocument is the YAML layout accepted by LoadYAML:
//
//	name: textbook example
//	system:
//	  - [2, 1, -1, 8]
//	  - [-3, -1, 2, -11]
//	  - [-2, 1, 2, -3]
type systemDocument struct {
	Name   string        `yaml:"name"`
	System [][]yaml.Node `yaml:"system"`
}

// LoadYAML reads one augmented system from a YAML document.
// Every cell goes through ParseAugmented so malformed values surface as
// *EntryError exactly like hand-entered input.
func LoadYAML(r io.Reader) (string, *Augmented, error) {
	var doc systemDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return "", nil, fmt.Errorf("LoadYAML: %w", err)
	}

	cells := make([][]string, len(doc.System))
	for i, row := range doc.System {
		cells[i] = make([]string, len(row))
		for j, node := range row {
			if node.Kind != yaml.ScalarNode {
				return "", nil, &EntryError{Row: i + 1, Col: j + 1, RHS: j == len(doc.System), Raw: "<non-scalar>"}
			}
			cells[i][j] = node.Value
		}
	}

	m, err := ParseAugmented(cells)
	if err != nil {
		return "", nil, err
	}

	return doc.Name, m, nil
}
