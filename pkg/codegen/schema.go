package codegen

import (
	"fmt"

	"github.com/agnivade/levenshtein"
	"github.com/vektah/gqlparser/v2/ast"
)

const mutationTypeName = "Mutation"

// ActionDefinition is one action extracted from the actions SDL: a field on
// the Mutation type. Arguments keeps the declaration order, which is
// observable in the generated destructuring pattern.
type ActionDefinition struct {
	Name      string
	Arguments []string
	Output    OutputTypeDefinition
}

// OutputTypeDefinition is the type an action resolves to. Fields keeps the
// declaration order, which is observable in the generated response literal.
type OutputTypeDefinition struct {
	Name   string
	Fields []string
}

// lookupAction locates the action field on the Mutation type and its output
// type definition. All lookups are linear scans with exact name matching;
// any miss is returned as an error and aborts generation.
func lookupAction(doc *ast.SchemaDocument, actionName string) (*ActionDefinition, error) {
	mutation := doc.Definitions.ForName(mutationTypeName)
	if mutation == nil {
		return nil, fmt.Errorf("actions SDL does not declare a %s type", mutationTypeName)
	}

	field := mutation.Fields.ForName(actionName)
	if field == nil {
		candidates := make([]string, 0, len(mutation.Fields))
		for _, f := range mutation.Fields {
			candidates = append(candidates, f.Name)
		}
		if suggestion := findClosest(actionName, candidates); suggestion != "" {
			return nil, fmt.Errorf("action '%s' is not declared on the %s type, did you mean '%s'?", actionName, mutationTypeName, suggestion)
		}
		return nil, fmt.Errorf("action '%s' is not declared on the %s type", actionName, mutationTypeName)
	}

	arguments := make([]string, 0, len(field.Arguments))
	for _, arg := range field.Arguments {
		arguments = append(arguments, arg.Name)
	}

	outputName := baseTypeName(field.Type)
	outputDef := doc.Definitions.ForName(outputName)
	if outputDef == nil {
		return nil, fmt.Errorf("output type '%s' of action '%s' is not declared in the actions SDL", outputName, actionName)
	}

	outputFields := make([]string, 0, len(outputDef.Fields))
	for _, f := range outputDef.Fields {
		outputFields = append(outputFields, f.Name)
	}

	return &ActionDefinition{
		Name:      actionName,
		Arguments: arguments,
		Output:    OutputTypeDefinition{Name: outputName, Fields: outputFields},
	}, nil
}

// baseTypeName returns the underlying named type from a (potentially wrapped)
// type. For example, [User!]! returns "User".
func baseTypeName(t *ast.Type) string {
	if t.Elem != nil {
		return baseTypeName(t.Elem)
	}
	return t.NamedType
}

const maxSuggestionDistance = 5

func findClosest(input string, candidates []string) string {
	minDist := -1
	closest := ""
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(input, c)
		if minDist == -1 || dist < minDist {
			minDist = dist
			closest = c
		}
	}
	if minDist > maxSuggestionDistance {
		return ""
	}
	return closest
}
