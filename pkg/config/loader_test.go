package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	config, err := Load("testdata/trees.yaml")
	require.NoError(t, err)
	require.Len(t, config.Trees, 4)

	three := config.Trees[0]
	assert.Equal(t, "threeLevel", three.Name)
	assert.Equal(t, ValueList{10, 5, 15, 2, 6, 13}, three.Values)
	assert.Equal(t, InsertIterative, three.Insert)
	assert.Equal(t, []int{6, 7}, three.Contains)

	full := config.Trees[1]
	assert.Equal(t, InsertRecursive, full.Insert)
	assert.Len(t, full.Values, 15)
	assert.Equal(t, []int{25, 15, 10, 4, 12, 22, 18, 24, 50, 35, 31, 44, 70, 66, 90}, full.Build().Preorder())

	ties := config.Trees[2].Build()
	assert.Equal(t, 3, ties.Size())
	assert.Equal(t, 2, ties.Height())

	assert.Equal(t, ValueList{42}, config.Trees[3].Values)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "no trees",
			yaml:    "trees: []",
			wantErr: "no trees defined",
		},
		{
			name:    "missing name",
			yaml:    "trees:\n- values: [1]",
			wantErr: "name is required",
		},
		{
			name:    "duplicate",
			yaml:    "trees:\n- name: a\n  values: [1]\n- name: a\n  values: [2]",
			wantErr: "defined more than once",
		},
		{
			name:    "insert mode",
			yaml:    "trees:\n- name: a\n  insert: balanced\n  values: [1]",
			wantErr: "unknown insert mode",
		},
		{
			name:    "bad value",
			yaml:    "trees:\n- name: a\n  values: \"1, two\"",
			wantErr: "invalid tree value",
		},
		{
			name:    "bad sequence",
			yaml:    "trees:\n- name: a\n  values: [1, x]",
			wantErr: "values must be integers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tt.yaml))
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}

	_, err := Load("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestParseValues(t *testing.T) {
	values, err := ParseValues("10", "5,2", "6 15\t13")
	require.NoError(t, err)
	assert.Equal(t, []int{10, 5, 2, 6, 15, 13}, values)

	values, err = ParseValues("-3, -1")
	require.NoError(t, err)
	assert.Equal(t, []int{-3, -1}, values)

	_, err = ParseValues("1.5")
	assert.Error(t, err)
}
