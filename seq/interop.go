package seq

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/chainstat/errs"
)

var (
	_ json.Marshaler   = (*Numbers)(nil)
	_ json.Unmarshaler = (*Numbers)(nil)
	_ yaml.Marshaler   = (*Numbers)(nil)
	_ yaml.Unmarshaler = (*Numbers)(nil)
	_ json.Marshaler   = (*Records)(nil)
	_ json.Unmarshaler = (*Records)(nil)
	_ yaml.Marshaler   = (*Records)(nil)
	_ yaml.Unmarshaler = (*Records)(nil)
)

// MarshalJSON encodes the sequence as a plain JSON array of numbers.
func (s *Numbers) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON replaces the contents with a decoded JSON array of numbers.
func (s *Numbers) UnmarshalJSON(data []byte) error {
	var values []float64
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	s.values = values

	return nil
}

// MarshalYAML encodes the sequence as a YAML sequence of numbers.
func (s *Numbers) MarshalYAML() (any, error) {
	return s.Values(), nil
}

// UnmarshalYAML replaces the contents with a decoded YAML sequence of
// numbers.
func (s *Numbers) UnmarshalYAML(node *yaml.Node) error {
	var values []float64
	if err := node.Decode(&values); err != nil {
		return err
	}
	s.values = values

	return nil
}

// MarshalJSON encodes the records as a JSON array of objects.
func (s *Records) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.plain())
}

// UnmarshalJSON replaces the contents with a decoded JSON array of objects
// whose values are all numbers.
func (s *Records) UnmarshalJSON(data []byte) error {
	var items []map[string]float64
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	records, err := fromPlain(items)
	if err != nil {
		return err
	}
	s.items = records

	return nil
}

// MarshalYAML encodes the records as a YAML sequence of mappings.
func (s *Records) MarshalYAML() (any, error) {
	return s.plain(), nil
}

// UnmarshalYAML replaces the contents with a decoded YAML sequence of
// mappings whose values are all numbers.
func (s *Records) UnmarshalYAML(node *yaml.Node) error {
	var items []map[string]float64
	if err := node.Decode(&items); err != nil {
		return err
	}
	records, err := fromPlain(items)
	if err != nil {
		return err
	}
	s.items = records

	return nil
}

func (s *Records) plain() []map[string]float64 {
	out := make([]map[string]float64, len(s.items))
	for i, r := range s.items {
		out[i] = r.Clone()
	}

	return out
}

func fromPlain(items []map[string]float64) ([]Record, error) {
	out := make([]Record, len(items))
	for i, m := range items {
		if m == nil {
			return nil, fmt.Errorf("record %d is null: %w", i, errs.ErrInvalidInput)
		}
		out[i] = Record(m)
	}

	return out, nil
}
