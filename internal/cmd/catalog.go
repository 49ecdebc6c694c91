package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nandemo-ya/gluemodel/apimodel"
	"github.com/nandemo-ya/gluemodel/glue"
	"github.com/nandemo-ya/gluemodel/internal/smithy"
)

type shapeSummary struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Members int    `json:"members"`
}

func newShapesCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the structure shapes of the model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := apimodel.Load()
			if err != nil {
				return fmt.Errorf("failed to load model: %w", err)
			}

			var shapes []shapeSummary
			for _, name := range glue.ShapeNames() {
				shape, _, ok := model.Lookup(name)
				if !ok {
					return fmt.Errorf("shape %s is missing from the model", name)
				}
				shapes = append(shapes, shapeSummary{
					Name:    name,
					Kind:    shapeKind(shape),
					Members: len(shape.Members),
				})
			}

			if opts.jsonOutput() {
				return printJSON(cmd.OutOrStdout(), shapes)
			}
			rows := make([][]string, 0, len(shapes))
			for _, s := range shapes {
				rows = append(rows, []string{s.Name, s.Kind, strconv.Itoa(s.Members)})
			}
			return printTable(cmd.OutOrStdout(), []string{"NAME", "KIND", "MEMBERS"}, rows)
		},
	}
}

func shapeKind(shape *smithy.Shape) string {
	switch {
	case shape.IsError():
		return "error"
	case hasTrait(shape, "smithy.api#input"):
		return "input"
	case hasTrait(shape, "smithy.api#output"):
		return "output"
	}
	return "structure"
}

func hasTrait(shape *smithy.Shape, trait string) bool {
	_, ok := shape.Traits[trait]
	return ok
}

func newEnumsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "enums [NAME]",
		Short: "List enumerations, or the canonical values of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				values, ok := glue.EnumValues(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", glue.ErrUnknownEnum, args[0])
				}
				if opts.jsonOutput() {
					return printJSON(cmd.OutOrStdout(), values)
				}
				for _, v := range values {
					fmt.Fprintln(cmd.OutOrStdout(), v)
				}
				return nil
			}

			enums := map[string][]string{}
			rows := [][]string{}
			for _, name := range glue.EnumNames() {
				values, _ := glue.EnumValues(name)
				enums[name] = values
				rows = append(rows, []string{name, strings.Join(values, ", ")})
			}
			if opts.jsonOutput() {
				return printJSON(cmd.OutOrStdout(), enums)
			}
			return printTable(cmd.OutOrStdout(), []string{"NAME", "VALUES"}, rows)
		},
	}
}

func newParseEnumCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse-enum NAME VALUE",
		Short: "Resolve a string to a variant of the named enumeration",
		Long: `Resolve a string to a variant of the named enumeration. Matching is exact and
case-sensitive. An empty or unknown value exits with a non-zero status.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := glue.ParseEnum(args[0], args[1])
			if err != nil {
				return err
			}
			if opts.jsonOutput() {
				return printJSON(cmd.OutOrStdout(), map[string]string{"enum": args[0], "value": value})
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newOperationsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List the modeled operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			operations := glue.Operations()
			if opts.jsonOutput() {
				return printJSON(cmd.OutOrStdout(), operations)
			}
			rows := make([][]string, 0, len(operations))
			for _, op := range operations {
				rows = append(rows, []string{op.Name, op.Input, op.Output, strings.Join(op.Errors, ", ")})
			}
			return printTable(cmd.OutOrStdout(), []string{"NAME", "INPUT", "OUTPUT", "ERRORS"}, rows)
		},
	}
}
