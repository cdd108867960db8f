package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbu09a/Code-Xanadu/internal/outline"
)

const behaviorsDoc = `behaviors:
  - name: "greet"
    description: "Say hello"
    weight: 3
  - name: listen
    description: 'Wait, then respond'
  * name: rest
    note:
`

func TestParse(t *testing.T) {
	records, err := Parse([]byte(behaviorsDoc), "behaviors")
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []Field{
		{Key: "name", Value: "greet"},
		{Key: "description", Value: "Say hello"},
		{Key: "weight", Value: "3"},
	}, records[0].Fields)
	assert.Equal(t, "name: listen, description: Wait, then respond", records[1].String())
	assert.Equal(t, "name: rest, note: ", records[2].String())
}

func TestParsePreservesFieldOrder(t *testing.T) {
	src := "modes:\n  - zeta: 1\n    alpha: 2\n    mid: 3\n"
	records, err := Parse([]byte(src), "modes")
	require.NoError(t, err)
	require.Len(t, records, 1)

	var keys []string
	for _, f := range records[0].Fields {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys)
}

func TestParseMissingKey(t *testing.T) {
	records, err := Parse([]byte(behaviorsDoc), "safety")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestParseRootShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty document", "", 0},
		{"null list", "safety:\n", 0},
		{"empty list", "safety: []\n", 0},
		{"root list", "- rule: one\n- rule: two\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Parse([]byte(tt.input), "safety")
			require.NoError(t, err)
			assert.Len(t, records, tt.want)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid yaml", "safety: [\n"},
		{"scalar items", "safety:\n  - just a string\n"},
		{"nested value", "safety:\n  - rule: one\n    tags: [a, b]\n"},
		{"list is mapping", "safety:\n  rule: one\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Parse([]byte(tt.input), "safety")
			assert.Nil(t, records)
			assert.True(t, outline.IsParseError(err), "expected parse error, got %v", err)
		})
	}
}

func TestParseKeepsValuesAsWritten(t *testing.T) {
	src := "safety:\n" +
		"  - rule: Note: never invent page text\n" +
		"    tag: Use tag #1 for emphasis\n" +
		"  - rule: ~\n" +
		"    other: null\n" +
		"    flag: yes\n" +
		"    when: 2001-01-01\n"
	records, err := Parse([]byte(src), "safety")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "rule: Note: never invent page text, tag: Use tag #1 for emphasis", records[0].String())
	assert.Equal(t, "rule: ~, other: null, flag: yes, when: 2001-01-01", records[1].String())
}

func TestParseRepeatedFieldKeepsLastValue(t *testing.T) {
	src := "modes:\n  - name: calm\n    level: 1\n    name: still\n"
	records, err := Parse([]byte(src), "modes")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []Field{
		{Key: "name", Value: "still"},
		{Key: "level", Value: "1"},
	}, records[0].Fields)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(dir, "behavior.yaml")
		require.NoError(t, os.WriteFile(path, []byte(behaviorsDoc), 0644))

		records, err := Load(path, "behaviors")
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})

	t.Run("parse error carries path", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("modes:\n  - plain\n"), 0644))

		_, err := Load(path, "modes")
		var pe *outline.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, path, pe.Path)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.yaml"), "modes")
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestKind(t *testing.T) {
	assert.Equal(t, "Behaviors", KindBehaviors.Title())
	assert.Equal(t, "Safety", KindSafety.Title())
	assert.Equal(t, "modes", KindModes.Key())
	assert.Equal(t, "tools", KindTools.Key())
}
