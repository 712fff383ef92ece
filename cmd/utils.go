package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"
)

const mutationTypeName = "Mutation"

var tableStyle = lipgloss.NewStyle().PaddingRight(1)

func makeTable() *table.Table {
	return table.New().
		Width(120).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			return tableStyle
		})
}

// loadActionsSDL reads the actions file and returns its contents along with
// the file's base name (used when rendering parse diagnostics).
func loadActionsSDL() (sdl string, name string, err error) {
	path, err := filepath.Abs(schemaFilePath)
	if err != nil {
		return "", "", err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", "", fmt.Errorf("actions file does not exist: %s", schemaFilePath)
		}
		return "", "", err
	}

	return string(bytes), filepath.Base(path), nil
}

// loadActionsDocument reads and parses the actions file. The document is
// parsed structurally, without schema validation: an actions file declares a
// Mutation type and output types but is not a complete schema.
func loadActionsDocument() (*ast.SchemaDocument, error) {
	sdl, name, err := loadActionsSDL()
	if err != nil {
		return nil, err
	}

	doc, err := parser.ParseSchema(&ast.Source{Input: sdl, Name: name})
	if err != nil {
		var parsingError *gqlerror.Error
		if errors.As(err, &parsingError) {
			return nil, fmt.Errorf("GraphQL parsing error: %v", parsingError)
		}
		return nil, fmt.Errorf("unexpected error: %v", err)
	}

	return doc, nil
}

// typeToString converts an ast.Type to a human-readable string (e.g., "String!", "[User!]!").
func typeToString(typeDef *ast.Type) string {
	requiredStr := ""
	if typeDef.NonNull {
		requiredStr = "!"
	}
	if typeDef.Elem != nil {
		return fmt.Sprintf("[%s]%s", typeToString(typeDef.Elem), requiredStr)
	}
	return typeDef.NamedType + requiredStr
}
