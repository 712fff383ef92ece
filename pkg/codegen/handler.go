package codegen

import (
	"fmt"
	"strings"
)

func handlerOpen(actionName string) string {
	return fmt.Sprintf("// handler for the %s action\nmodule.exports = async (req, res) => {\n", actionName)
}

func handlerClose() string {
	return "};\n"
}

// inputPrologue destructures the action's arguments out of the request body.
// The destructuring pattern lists arguments in declaration order.
func inputPrologue(arguments []string) string {
	return fmt.Sprintf("  // get request input\n  const {%s} = req.body.input;\n", strings.Join(arguments, ", "))
}

// businessLogicPlaceholder marks where the edited handler's logic goes and
// keeps an example error branch commented out next to it.
func businessLogicPlaceholder() string {
	return `  // run some business logic

  /*
  // in case of errors:
  return res.status(400).json({
    message: "error happened"
  });
  */
`
}

// successResponse builds the success payload with one key per output field,
// in declaration order. Values are left empty for the business logic to fill
// in.
func successResponse(fields []string) string {
	pairs := make([]string, 0, len(fields))
	for _, f := range fields {
		pairs = append(pairs, f+`: ""`)
	}
	literal := "{}"
	if len(pairs) > 0 {
		literal = "{ " + strings.Join(pairs, ", ") + " }"
	}
	return fmt.Sprintf("  // success\n  res.setHeader('Content-Type', 'application/json');\n  return res.json(%s);\n", literal)
}
