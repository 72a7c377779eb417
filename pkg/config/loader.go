package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/c9s/bstree/pkg/bst"
)

type InsertMode string

const (
	InsertIterative InsertMode = "iterative"
	InsertRecursive InsertMode = "recursive"
)

type TreeConfig struct {
	Name   string     `json:"name" yaml:"name"`
	Values ValueList  `json:"values" yaml:"values"`
	Insert InsertMode `json:"insert,omitempty" yaml:"insert,omitempty"`

	// Contains lists values to probe after the tree is built.
	Contains []int `json:"contains,omitempty" yaml:"contains,omitempty"`
}

// Build inserts the configured values into a new tree with the configured mode.
func (c *TreeConfig) Build() *bst.Tree {
	if c.Insert == InsertRecursive {
		return bst.FromValuesRecursive(c.Values...)
	}

	return bst.FromValues(c.Values...)
}

type Config struct {
	Trees []TreeConfig `json:"trees" yaml:"trees"`
}

func (c *Config) Validate() error {
	if len(c.Trees) == 0 {
		return errors.New("no trees defined")
	}

	names := map[string]struct{}{}
	for i, tc := range c.Trees {
		if tc.Name == "" {
			return errors.Errorf("tree #%d: name is required", i)
		}

		if _, dup := names[tc.Name]; dup {
			return errors.Errorf("tree %q is defined more than once", tc.Name)
		}
		names[tc.Name] = struct{}{}

		switch tc.Insert {
		case "", InsertIterative, InsertRecursive:
		default:
			return errors.Errorf("tree %q: unknown insert mode %q", tc.Name, tc.Insert)
		}
	}

	return nil
}

func Load(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read config file %s", configFile)
	}

	return LoadFromBytes(data)
}

func LoadFromBytes(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, "unable to parse tree config")
	}

	for i := range config.Trees {
		if config.Trees[i].Insert == "" {
			config.Trees[i].Insert = InsertIterative
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}
