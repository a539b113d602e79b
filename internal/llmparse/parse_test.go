package llmparse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_FencedJSON(t *testing.T) {
	titles, err := StringList("```json\n[\"A\",\"B\"]\n```")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, titles)
}

func TestStringList_BareFence(t *testing.T) {
	titles, err := StringList("```\n[\"Intro\", \"Techniques\"]\n```")
	require.NoError(t, err)
	assert.Equal(t, []string{"Intro", "Techniques"}, titles)
}

func TestStringList_NotJSON(t *testing.T) {
	_, err := StringList("not json")
	require.Error(t, err)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "not json", parseErr.Raw)
}

func TestStringList_WrongShape(t *testing.T) {
	_, err := StringList(`{"title": "oops"}`)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestParse_Idempotent(t *testing.T) {
	clean, err := Parse(`{"a": 1}`)
	require.NoError(t, err)

	fenced, err := Parse("```json\n{\"a\": 1}\n```")
	require.NoError(t, err)

	assert.JSONEq(t, string(clean), string(fenced))
}

func TestDecode_Object(t *testing.T) {
	var out struct {
		Title    string   `json:"title"`
		Keywords []string `json:"keywords"`
	}
	raw := "```json\n{\"title\": \"Pasta\", \"keywords\": [\"italian\", \"cooking\"]}\n```"
	require.NoError(t, Decode(raw, &out))
	assert.Equal(t, "Pasta", out.Title)
	assert.Equal(t, []string{"italian", "cooking"}, out.Keywords)
}

func TestStrip_NoFence(t *testing.T) {
	assert.Equal(t, `["A"]`, Strip(`["A"]`))
	assert.Equal(t, `["A"]`, Strip("  [\"A\"]\n"))
}
