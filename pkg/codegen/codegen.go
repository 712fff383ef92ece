// Package codegen generates serverless JavaScript handlers for GraphQL
// actions. An action is a field declared on the Mutation type of an actions
// SDL document; the generated handler destructures the action's arguments out
// of the request body and either leaves a placeholder for business logic
// (plain mode) or proxies the call to an existing GraphQL operation and
// relays its result (derive mode).
package codegen

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// DeriveSpec requests derive mode. Operation holds the raw source text of
// the upstream GraphQL operation the generated handler forwards to.
type DeriveSpec struct {
	Operation string
}

// Artifact is one generated source file.
type Artifact struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Inputs a ParseError can point into.
const (
	InputActionsSDL      = "actions SDL"
	InputDeriveOperation = "derive operation"
)

// ParseError reports that one of the generator's two inputs failed to parse.
// It wraps the parser's gqlerror so callers can still reach the source
// locations.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// fragment is one named piece of generated source text. The assembler
// collects fragments in order and joins them exactly once; nothing mutates
// a shared buffer.
type fragment struct {
	name string
	text string
}

func assemble(fragments []fragment) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		parts = append(parts, f.text)
	}
	return strings.Join(parts, "\n")
}

// Generate produces the handler source for the named action declared in
// actionsSDL. When derive is non-nil the handler proxies to the derive
// operation instead of containing placeholder business logic. Exactly one
// artifact, named <actionName>.js, is returned on success. Any parse or
// lookup failure aborts the run with no partial output.
func Generate(actionName string, actionsSDL string, derive *DeriveSpec) ([]Artifact, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: "actions.graphql", Input: actionsSDL})
	if err != nil {
		return nil, &ParseError{Input: InputActionsSDL, Err: err}
	}

	action, err := lookupAction(doc, actionName)
	if err != nil {
		return nil, err
	}

	var fragments []fragment

	if derive != nil {
		opDoc, err := parser.ParseQuery(&ast.Source{Name: "operation.graphql", Input: derive.Operation})
		if err != nil {
			return nil, &ParseError{Input: InputDeriveOperation, Err: err}
		}
		op, err := analyzeOperation(opDoc)
		if err != nil {
			return nil, err
		}
		if err := checkVariableBindings(action, op); err != nil {
			return nil, err
		}

		// Module-level proxy declarations come before the handler opens.
		fragments = append(fragments,
			fragment{"proxy", proxyDeclarations(action.Name, derive.Operation)},
			fragment{"open", handlerOpen(action.Name)},
			fragment{"prologue", inputPrologue(action.Arguments)},
			fragment{"relay", relayFragment(action.Name, op)},
			fragment{"close", handlerClose()},
		)
	} else {
		fragments = append(fragments,
			fragment{"open", handlerOpen(action.Name)},
			fragment{"prologue", inputPrologue(action.Arguments)},
			fragment{"placeholder", businessLogicPlaceholder()},
			fragment{"response", successResponse(action.Output.Fields)},
			fragment{"close", handlerClose()},
		)
	}

	return []Artifact{{
		Name:    action.Name + ".js",
		Content: assemble(fragments),
	}}, nil
}

// checkVariableBindings verifies that every variable of the derive operation
// has a same-named action argument. The generated call passes variables with
// shorthand object construction, so a variable without a matching argument
// would reference an undefined binding in the emitted handler.
func checkVariableBindings(action *ActionDefinition, op *operationInfo) error {
	for _, variable := range op.Variables {
		found := false
		for _, arg := range action.Arguments {
			if arg == variable {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("operation variable '$%s' has no matching argument on action '%s'", variable, action.Name)
		}
	}
	return nil
}
