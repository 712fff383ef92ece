/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samwightt/actiongen/pkg/codegen"
	"github.com/samwightt/actiongen/pkg/diagnostic"
	"github.com/spf13/cobra"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

type generateOptions struct {
	deriveFrom string
	outputDir  string
	toStdout   bool
}

func NewGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <action>",
		Short: "Generate the handler source for an action",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			doc, err := loadActionsDocument()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}

			mutation := doc.Definitions.ForName(mutationTypeName)
			if mutation == nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}

			outputNames := []string{}
			for _, field := range mutation.Fields {
				if strings.Contains(strings.ToLower(field.Name), strings.ToLower(toComplete)) {
					outputNames = append(outputNames, field.Name)
				}
			}

			sort.Strings(outputNames)

			return outputNames, cobra.ShellCompDirectiveNoFileComp
		},
		Args: cobra.ExactArgs(1),
		Long: `Generates the JavaScript handler for the named action and writes it as
<action>.js in the output directory.

Without flags, the handler is a skeleton: it destructures the action's
arguments out of the request body, leaves a placeholder for business logic,
and returns a response with one key per field of the action's output type.

With --derive-from, the handler is generated as a proxy instead: the given
file must contain a single GraphQL operation, and the handler forwards the
request to it, relaying the operation's result or error. Every variable of
the operation must have a same-named action argument, since the handler
passes the destructured arguments through as the operation's variables.`,
		Example: `  # Write ./addUser.js
  actiongen generate addUser

  # Derive the handler from an existing operation
  actiongen generate addUser --derive-from insert_user.graphql

  # Write into a handlers directory
  actiongen generate addUser -o handlers/`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.deriveFrom, "derive-from", "", "File containing the GraphQL operation to derive the handler from")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", ".", "Directory the generated handler is written to")
	cmd.Flags().BoolVar(&opts.toStdout, "stdout", false, "Print the generated handler instead of writing it")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, opts *generateOptions) error {
	actionName := args[0]

	sdl, sdlName, err := loadActionsSDL()
	if err != nil {
		return err
	}

	var derive *codegen.DeriveSpec
	var operationText, operationName string
	if opts.deriveFrom != "" {
		bytes, err := os.ReadFile(opts.deriveFrom)
		if err != nil {
			return fmt.Errorf("failed to read derive operation file: %w", err)
		}
		operationText = string(bytes)
		operationName = filepath.Base(opts.deriveFrom)
		derive = &codegen.DeriveSpec{Operation: operationText}
	}

	artifacts, err := codegen.Generate(actionName, sdl, derive)
	if err != nil {
		var parseErr *codegen.ParseError
		if errors.As(err, &parseErr) {
			source, name := sdl, sdlName
			if parseErr.Input == codegen.InputDeriveOperation {
				source, name = operationText, operationName
			}
			var gqlErr *gqlerror.Error
			if errors.As(parseErr.Err, &gqlErr) {
				fmt.Fprintln(cmd.ErrOrStderr(), diagnostic.RenderParseError(gqlErr, source, name))
				return fmt.Errorf("could not parse %s", name)
			}
		}
		return err
	}

	artifact := artifacts[0]

	if opts.toStdout {
		fmt.Fprint(cmd.OutOrStdout(), artifact.Content)
		return nil
	}

	if err := os.MkdirAll(opts.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPath := filepath.Join(opts.outputDir, artifact.Name)
	if err := os.WriteFile(outputPath, []byte(artifact.Content), 0644); err != nil {
		return fmt.Errorf("failed to write handler: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Generated %s\n", outputPath)
	return nil
}
