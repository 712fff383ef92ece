package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat_Valid(t *testing.T) {
	for _, want := range ValidFormats {
		format, err := ParseFormat(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, format)
	}
}

func TestParseFormat_CaseInsensitive(t *testing.T) {
	format, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, format)

	format, err = ParseFormat("Pretty")
	require.NoError(t, err)
	assert.Equal(t, FormatPretty, format)
}

func TestParseFormat_Invalid(t *testing.T) {
	_, err := ParseFormat("yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
	assert.Contains(t, err.Error(), "json, text, pretty")
}

func TestParseFormat_Empty(t *testing.T) {
	_, err := ParseFormat("")
	assert.Error(t, err)
}

type testItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestRenderer_JSON(t *testing.T) {
	renderer := Renderer[testItem]{
		Items: []testItem{
			{Name: "first", Value: 1},
			{Name: "second", Value: 2},
		},
	}

	output, err := renderer.Render(FormatJSON)
	require.NoError(t, err)

	assert.Contains(t, output, `"name": "first"`)
	assert.Contains(t, output, `"value": 2`)
}

func TestRenderer_JSON_EmptyItems(t *testing.T) {
	renderer := Renderer[testItem]{Items: []testItem{}}

	output, err := renderer.Render(FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "[]", output)
}

func TestRenderer_Text(t *testing.T) {
	renderer := Renderer[testItem]{
		Items: []testItem{
			{Name: "first", Value: 1},
			{Name: "second", Value: 2},
		},
		Line: func(item testItem) string { return item.Name },
	}

	output, err := renderer.Render(FormatText)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond", output)
}

func TestRenderer_Text_MissingLine(t *testing.T) {
	renderer := Renderer[testItem]{Items: []testItem{{Name: "first"}}}

	_, err := renderer.Render(FormatText)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text format not defined")
}

func TestRenderer_Pretty(t *testing.T) {
	renderer := Renderer[testItem]{
		Items: []testItem{{Name: "first", Value: 1}},
		Table: func(items []testItem) string {
			names := make([]string, 0, len(items))
			for _, item := range items {
				names = append(names, item.Name)
			}
			return strings.Join(names, " | ")
		},
	}

	output, err := renderer.Render(FormatPretty)
	require.NoError(t, err)
	assert.Equal(t, "first", output)
}

func TestRenderer_Pretty_MissingTable(t *testing.T) {
	renderer := Renderer[testItem]{Items: []testItem{{Name: "first"}}}

	_, err := renderer.Render(FormatPretty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pretty format not defined")
}

func TestRenderer_UnsupportedFormat(t *testing.T) {
	renderer := Renderer[testItem]{}

	_, err := renderer.Render(Format("yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
