package codegen

import (
	"fmt"
	"strings"
)

const defaultEndpoint = "http://localhost:8080/v1/graphql"

// operationConstName derives the module-level constant holding the operation
// text, e.g. ADDUSER_OPERATION for the addUser action. Names stay derivable
// from the action name so artifacts for different actions never collide if
// they are ever concatenated.
func operationConstName(actionName string) string {
	return strings.ToUpper(actionName) + "_OPERATION"
}

// executeFuncName derives the upstream execution function, e.g.
// executeAddUser for the addUser action.
func executeFuncName(actionName string) string {
	return "execute" + capitalize(actionName)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// proxyDeclarations emits the module-level block of a derive-mode handler:
// the operation constant and the async function that POSTs it to the
// upstream GraphQL endpoint with forwarded headers. The endpoint is read
// from the environment inline so the block introduces no action-independent
// names.
func proxyDeclarations(actionName string, operation string) string {
	constName := operationConstName(actionName)

	var b strings.Builder
	fmt.Fprintf(&b, "const %s = `\n%s`;\n\n", constName, strings.TrimSpace(operation))
	fmt.Fprintf(&b, `// execute the derived operation against the upstream GraphQL endpoint
const %s = async (variables, reqHeaders) => {
  const fetchResponse = await fetch(process.env.GRAPHQL_ENDPOINT || '%s', {
    method: 'POST',
    headers: reqHeaders || {},
    body: JSON.stringify({
      query: %s,
      variables
    })
  });
  return await fetchResponse.json();
};
`, executeFuncName(actionName), defaultEndpoint, constName)

	return b.String()
}

// relayFragment emits the in-handler part of a derive-mode handler: invoke
// the execution function, relay an upstream error as a 400, otherwise unwrap
// the response under the root field. Variables are passed with shorthand
// object construction in the operation's declared order; Generate has
// already checked that each one matches a destructured argument name.
func relayFragment(actionName string, op *operationInfo) string {
	shorthand := "{}"
	if len(op.Variables) > 0 {
		shorthand = "{ " + strings.Join(op.Variables, ", ") + " }"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  // execute the derived operation\n  const { data, errors } = await %s(%s, req.headers);\n", executeFuncName(actionName), shorthand)
	b.WriteString(`
  // relay the upstream error
  if (errors) {
    return res.status(400).json({
      message: errors[0].message
    });
  }

  // success
  res.setHeader('Content-Type', 'application/json');
`)
	fmt.Fprintf(&b, "  return res.json(data.%s);\n", op.RootField)

	return b.String()
}
