package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ValueList is a list of tree values. In YAML it can be written as a sequence,
// a single integer, or a string of integers separated by commas or spaces.
type ValueList []int

func (s *ValueList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var ints []int
		if err := value.Decode(&ints); err != nil {
			return errors.Wrapf(err, "line %d: values must be integers", value.Line)
		}

		*s = ints
		return nil

	case yaml.ScalarNode:
		ints, err := ParseValues(value.Value)
		if err != nil {
			return errors.Wrapf(err, "line %d", value.Line)
		}

		*s = ints
		return nil
	}

	return errors.Errorf("line %d: unexpected yaml node kind %v for values", value.Line, value.Kind)
}

// ParseValues parses integers from the given strings, each of which may hold
// several values separated by commas or whitespace.
func ParseValues(args ...string) ([]int, error) {
	var values []int
	for _, arg := range args {
		fields := strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})

		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid tree value %q", f)
			}

			values = append(values, v)
		}
	}

	return values, nil
}
