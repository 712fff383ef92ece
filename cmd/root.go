/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bytes"
	"os"

	"github.com/samwightt/actiongen/pkg/render"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	schemaFilePath string
	outputFormat   render.Format
)

func formatFlag() string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return string(render.FormatPretty)
	}
	return string(render.FormatText)
}

// NewRootCmd creates and returns the root command with all subcommands attached.
// This function creates a fresh command tree, ensuring no state leaks between invocations.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actiongen",
		Short: "Scaffold serverless handlers for GraphQL actions",
		Long: `actiongen generates the handler source for a GraphQL action: a mutation
field declared in an actions SDL file whose invocation is handled by custom
business logic instead of a database-backed resolver.

Given the action's name, actiongen reads the actions file, extracts the
action's argument names and the fields of its output type, and writes a
JavaScript handler named <action>.js. The handler destructures the arguments
out of the request body and returns a response with one key per output field,
ready for business logic to be filled in.

With --derive-from, the handler is instead generated as a thin proxy: it
forwards the call to the given GraphQL operation and relays that operation's
result or error.

By default, actiongen tries to read ./actions.graphql in the current
directory. A different actions file can be specified using -s.`,
		Example: `  # List the actions declared in the actions file
  actiongen actions

  # Generate a handler skeleton for the addUser action
  actiongen generate addUser

  # Generate a proxy handler that forwards to an existing operation
  actiongen generate addUser --derive-from insert_user.graphql

  # Print the handler instead of writing it
  actiongen generate addUser --stdout`,
	}

	// Persistent flags
	cmd.PersistentFlags().StringVarP(&schemaFilePath, "schema", "s", "actions.graphql", "File path of the actions SDL")

	var formatStr string
	cmd.PersistentFlags().StringVarP(&formatStr, "format", "f", formatFlag(), "Output format: json, text, pretty (default: pretty if interactive, text otherwise)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		outputFormat, err = render.ParseFormat(formatStr)
		return err
	}

	// Add all subcommands
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewActionsCmd())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// ExecuteWithArgs runs the CLI with the given arguments and returns stdout, stderr, and any error.
// This is useful for testing.
func ExecuteWithArgs(args []string) (stdout string, stderr string, err error) {
	return ExecuteWithArgsAndStdin(args, nil)
}

// ExecuteWithArgsAndStdin runs the CLI with the given arguments and stdin, returns stdout, stderr, and any error.
// This is useful for testing commands that read from stdin.
func ExecuteWithArgsAndStdin(args []string, stdin *bytes.Buffer) (stdout string, stderr string, err error) {
	cmd := NewRootCmd()

	stdoutBuf := new(bytes.Buffer)
	stderrBuf := new(bytes.Buffer)

	cmd.SetOut(stdoutBuf)
	cmd.SetErr(stderrBuf)
	cmd.SetArgs(args)
	if stdin != nil {
		cmd.SetIn(stdin)
	}

	err = cmd.Execute()

	return stdoutBuf.String(), stderrBuf.String(), err
}
