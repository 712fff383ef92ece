package codegen

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// GraphQL reserves the __ prefix for introspection fields; they never carry
// the operation's payload.
const introspectionPrefix = "__"

// operationInfo holds the facts extracted from a derive operation document:
// the response key to unwrap and the declared variable names in order.
type operationInfo struct {
	RootField string
	Variables []string
}

// analyzeOperation extracts the root selection field and the variable list
// from a parsed derive operation. The document must contain exactly one
// operation, and the root field is the first plain (non-introspection) field
// in its selection set.
func analyzeOperation(doc *ast.QueryDocument) (*operationInfo, error) {
	if len(doc.Operations) == 0 {
		return nil, fmt.Errorf("derive operation document contains no operation")
	}
	if len(doc.Operations) > 1 {
		return nil, fmt.Errorf("derive operation document must contain exactly one operation, found %d", len(doc.Operations))
	}
	op := doc.Operations[0]

	rootField := ""
	for _, selection := range op.SelectionSet {
		field, ok := selection.(*ast.Field)
		if !ok {
			continue
		}
		if strings.HasPrefix(field.Name, introspectionPrefix) {
			continue
		}
		// The alias, when present, is the response key. The parser fills
		// Alias with the field name when none is written.
		rootField = field.Alias
		if rootField == "" {
			rootField = field.Name
		}
		break
	}
	if rootField == "" {
		return nil, fmt.Errorf("derive operation has no root selection field to unwrap the response with")
	}

	variables := make([]string, 0, len(op.VariableDefinitions))
	for _, v := range op.VariableDefinitions {
		variables = append(variables, v.Variable)
	}

	return &operationInfo{RootField: rootField, Variables: variables}, nil
}
