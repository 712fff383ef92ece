package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samwightt/actiongen/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeActionsFile(t *testing.T, sdl string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "actions.graphql")
	err := os.WriteFile(path, []byte(sdl), 0644)
	require.NoError(t, err)
	return path
}

func writeOperationFile(t *testing.T, operation string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "operation.graphql")
	err := os.WriteFile(path, []byte(operation), 0644)
	require.NoError(t, err)
	return path
}

const testActionsSDL = `
	type Mutation {
		addUser(name: String, age: Int): AddUserOutput
	}

	type AddUserOutput {
		id: String
		success: Boolean
	}
`

func TestGenerate_WritesHandlerFile(t *testing.T) {
	actionsPath := writeActionsFile(t, testActionsSDL)
	outDir := t.TempDir()

	stdout, _, err := cmd.ExecuteWithArgs([]string{"generate", "-s", actionsPath, "-o", outDir, "addUser"})
	require.NoError(t, err)

	assert.Contains(t, stdout, "Generated")
	assert.Contains(t, stdout, "addUser.js")

	content, err := os.ReadFile(filepath.Join(outDir, "addUser.js"))
	require.NoError(t, err)

	assert.Contains(t, string(content), "module.exports = async (req, res) => {")
	assert.Contains(t, string(content), "const {name, age} = req.body.input;")
	assert.Contains(t, string(content), `return res.json({ id: "", success: "" });`)
}

func TestGenerate_Stdout(t *testing.T) {
	actionsPath := writeActionsFile(t, testActionsSDL)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"generate", "-s", actionsPath, "--stdout", "addUser"})
	require.NoError(t, err)

	assert.Contains(t, stdout, "module.exports = async (req, res) => {")
	assert.NotContains(t, stdout, "Generated")
}

func TestGenerate_CreatesOutputDirectory(t *testing.T) {
	actionsPath := writeActionsFile(t, testActionsSDL)
	outDir := filepath.Join(t.TempDir(), "handlers")

	_, _, err := cmd.ExecuteWithArgs([]string{"generate", "-s", actionsPath, "-o", outDir, "addUser"})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outDir, "addUser.js"))
	require.NoError(t, err)
}

func TestGenerate_DeriveFromFile(t *testing.T) {
	actionsPath := writeActionsFile(t, testActionsSDL)
	operationPath := writeOperationFile(t, `
		mutation ($name: String, $age: Int) {
			insert_users_one(object: {name: $name, age: $age}) {
				id
			}
		}
	`)
	outDir := t.TempDir()

	_, _, err := cmd.ExecuteWithArgs([]string{"generate", "-s", actionsPath, "-o", outDir, "--derive-from", operationPath, "addUser"})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(outDir, "addUser.js"))
	require.NoError(t, err)

	assert.Contains(t, string(content), "const ADDUSER_OPERATION = `")
	assert.Contains(t, string(content), "await executeAddUser({ name, age }, req.headers);")
	assert.Contains(t, string(content), "return res.json(data.insert_users_one);")
}

func TestGenerate_UnknownAction_Suggestion(t *testing.T) {
	actionsPath := writeActionsFile(t, testActionsSDL)

	_, _, err := cmd.ExecuteWithArgs([]string{"generate", "-s", actionsPath, "--stdout", "addUsr"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean 'addUser'?")
}

func TestGenerate_InvalidSDL_RendersDiagnostic(t *testing.T) {
	actionsPath := writeActionsFile(t, "type Mutation {")

	_, stderr, err := cmd.ExecuteWithArgs([]string{"generate", "-s", actionsPath, "--stdout", "addUser"})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "could not parse actions.graphql")
	assert.Contains(t, stderr, "-->")
	assert.Contains(t, stderr, "^")
}

func TestGenerate_InvalidOperation_RendersDiagnostic(t *testing.T) {
	actionsPath := writeActionsFile(t, testActionsSDL)
	operationPath := writeOperationFile(t, "mutation {")

	_, stderr, err := cmd.ExecuteWithArgs([]string{"generate", "-s", actionsPath, "--stdout", "--derive-from", operationPath, "addUser"})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "could not parse operation.graphql")
	assert.Contains(t, stderr, "-->")
}

func TestGenerate_MissingActionsFile(t *testing.T) {
	_, _, err := cmd.ExecuteWithArgs([]string{"generate", "-s", "does-not-exist.graphql", "addUser"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "actions file does not exist")
}

func TestGenerate_MissingOperationFile(t *testing.T) {
	actionsPath := writeActionsFile(t, testActionsSDL)

	_, _, err := cmd.ExecuteWithArgs([]string{"generate", "-s", actionsPath, "--derive-from", "does-not-exist.graphql", "addUser"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read derive operation file")
}

func TestGenerate_RequiresActionArgument(t *testing.T) {
	actionsPath := writeActionsFile(t, testActionsSDL)

	_, _, err := cmd.ExecuteWithArgs([]string{"generate", "-s", actionsPath})
	require.Error(t, err)
}
