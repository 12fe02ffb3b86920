package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Vector is a numeric sequence that accepts either a YAML list
// ([100, 150, 200]) or the delimited text fields the settlement rule
// set's worksheets use ("100,150,200").
type Vector []float64

func (v *Vector) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var vals []float64
		if err := node.Decode(&vals); err != nil {
			return err
		}
		*v = vals
		return nil
	case yaml.ScalarNode:
		parsed, err := ParseVector(node.Value)
		if err != nil {
			return err
		}
		*v = parsed
		return nil
	default:
		return fmt.Errorf("vector must be a list or a comma-separated string")
	}
}

// ParseVector splits comma-separated text into numbers, reporting the
// offending entry on failure.
func ParseVector(text string) (Vector, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("vector must not be empty")
	}
	parts := strings.Split(text, ",")
	out := make(Vector, 0, len(parts))
	for _, part := range parts {
		val, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q in vector", strings.TrimSpace(part))
		}
		out = append(out, val)
	}
	return out, nil
}
