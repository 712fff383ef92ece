// Package diagnostic renders error messages with source locations, code
// snippets, and underlines.
package diagnostic

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

var (
	gutterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	caretStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// RenderSnippet renders a source line with line number, gutter, and an
// underline caret. Returns something like:
//
//	3 | type Mutation {
//	  |      ^ error message here
func RenderSnippet(source string, lineNum int, column int, length int, message string) string {
	if length < 1 {
		length = 1
	}
	if column < 1 {
		column = 1
	}

	numStr := strconv.Itoa(lineNum)

	codeLine := gutterStyle.Render(numStr) + " " + gutterStyle.Render("|") + " " + source

	underLine := strings.Repeat(" ", len(numStr)) + " " + gutterStyle.Render("|") + " " +
		strings.Repeat(" ", column-1) + caretStyle.Render(strings.Repeat("^", length))
	if message != "" {
		underLine += " " + messageStyle.Render(message)
	}

	return codeLine + "\n" + underLine
}

// RenderLocation renders a location header like "--> actions.graphql:3:9"
func RenderLocation(filename string, line int, column int) string {
	loc := filename + ":" + strconv.Itoa(line) + ":" + strconv.Itoa(column)
	return gutterStyle.Render("-->") + " " + loc
}

// RenderParseError renders a parse error against the source text it points
// into: a location header followed by the offending line with a caret under
// the error column. Errors without a location render as their message alone.
func RenderParseError(err *gqlerror.Error, source string, filename string) string {
	if len(err.Locations) == 0 {
		return err.Message
	}
	loc := err.Locations[0]

	out := RenderLocation(filename, loc.Line, loc.Column)

	lines := strings.Split(source, "\n")
	if loc.Line >= 1 && loc.Line <= len(lines) {
		out += "\n" + RenderSnippet(lines[loc.Line-1], loc.Line, loc.Column, 1, err.Message)
	} else {
		out += "\n" + err.Message
	}

	return out
}
