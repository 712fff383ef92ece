/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/samwightt/actiongen/pkg/render"
	"github.com/spf13/cobra"
)

func formatActionText(action ActionInfo) string {
	args := make([]string, 0, len(action.Arguments))
	for _, arg := range action.Arguments {
		args = append(args, fmt.Sprintf("%s: %s", arg.Name, arg.Type))
	}
	return fmt.Sprintf("%s(%s): %s", action.Name, strings.Join(args, ", "), action.OutputType)
}

func formatActionsPretty(actions []ActionInfo) string {
	t := makeTable()

	for _, action := range actions {
		args := make([]string, 0, len(action.Arguments))
		for _, arg := range action.Arguments {
			args = append(args, fmt.Sprintf("%s: %s", arg.Name, arg.Type))
		}
		t.Row(action.Name, strings.Join(args, ", "), action.OutputType)
	}
	t.Headers("action", "arguments", "output")

	return t.String()
}

func NewActionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actions",
		Short: "Lists the actions declared in the actions file.",
		Args:  cobra.NoArgs,
		Long: `Lists the actions declared in the actions file: every field of the
Mutation type, with its arguments and output type.`,
		RunE: runActions,
	}

	return cmd
}

func runActions(cmd *cobra.Command, args []string) error {
	doc, err := loadActionsDocument()
	if err != nil {
		return err
	}

	mutation := doc.Definitions.ForName(mutationTypeName)
	if mutation == nil {
		return fmt.Errorf("actions file does not declare a %s type", mutationTypeName)
	}

	var actions []ActionInfo
	for _, field := range mutation.Fields {
		var arguments []ArgumentInfo
		for _, arg := range field.Arguments {
			arguments = append(arguments, ArgumentInfo{
				Name: arg.Name,
				Type: typeToString(arg.Type),
			})
		}
		actions = append(actions, ActionInfo{
			Name:       field.Name,
			Arguments:  arguments,
			OutputType: typeToString(field.Type),
		})
	}

	if len(actions) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No actions declared in the actions file.")
	}

	renderer := render.Renderer[ActionInfo]{
		Items: actions,
		Line:  formatActionText,
		Table: formatActionsPretty,
	}

	output, err := renderer.Render(outputFormat)
	if err != nil {
		return fmt.Errorf("error rendering output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
