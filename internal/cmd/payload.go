package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nandemo-ya/gluemodel/apimodel"
	"github.com/nandemo-ya/gluemodel/glue"
	"github.com/nandemo-ya/gluemodel/internal/jsonschema"
	"github.com/nandemo-ya/gluemodel/internal/logging"
	"github.com/nandemo-ya/gluemodel/internal/payload"
)

type description struct {
	Shape  string     `json:"shape"`
	String string     `json:"string"`
	Hash   string     `json:"hash"`
	Value  glue.Shape `json:"value"`
}

func newShape(name string) (glue.Shape, error) {
	shape, ok := glue.NewShape(name)
	if !ok {
		return nil, fmt.Errorf("unknown shape: %s", name)
	}
	return shape, nil
}

func newDescribeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe SHAPE FILE",
		Short: "Decode a JSON or YAML payload and print its string form and hash",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := newShape(args[0])
			if err != nil {
				return err
			}
			if err := payload.DecodeFile(args[1], shape); err != nil {
				return err
			}

			d := description{
				Shape:  shape.ShapeName(),
				String: shape.String(),
				Hash:   fmt.Sprintf("%016x", shape.Hash()),
				Value:  shape,
			}
			if opts.jsonOutput() {
				return printJSON(cmd.OutOrStdout(), d)
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.String)
			fmt.Fprintf(cmd.OutOrStdout(), "hash: %s\n", d.Hash)
			return nil
		},
	}
}

func newValidateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate SHAPE FILE",
		Short: "Validate a payload against the model constraints, then decode it",
		Long: `Validate a JSON or YAML payload against the JSON Schema of SHAPE. The schema
carries the required members, enumerations and the length, pattern and range
constraints of the model. A payload that passes is then decoded strictly.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := newShape(args[0])
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read payload: %w", err)
			}
			format := payload.DetectFormat(args[1])
			doc, err := payload.ToJSON(data, format)
			if err != nil {
				return err
			}

			model, err := apimodel.Load()
			if err != nil {
				return fmt.Errorf("failed to load model: %w", err)
			}
			schema, err := jsonschema.ForShape(model, args[0])
			if err != nil {
				return err
			}
			if err := jsonschema.Validate(schema, doc); err != nil {
				return err
			}
			logging.Debug("Payload matches schema", "shape", args[0], "format", format)

			if err := payload.Decode(doc, payload.FormatJSON, shape); err != nil {
				return err
			}

			if opts.jsonOutput() {
				return printJSON(cmd.OutOrStdout(), map[string]any{"shape": args[0], "valid": true})
			}
			printSuccess(cmd.OutOrStdout(), "%s is a valid %s", args[1], args[0])
			return nil
		},
	}
}

func newSchemaCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema SHAPE",
		Short: "Print the JSON Schema of a shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := apimodel.Load()
			if err != nil {
				return fmt.Errorf("failed to load model: %w", err)
			}
			schema, err := jsonschema.ForShape(model, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), schema)
		},
	}
}
