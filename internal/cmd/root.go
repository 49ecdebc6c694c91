// Package cmd implements the gluemodel command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nandemo-ya/gluemodel/internal/config"
	"github.com/nandemo-ya/gluemodel/internal/logging"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	output     string

	cfg *config.Config
}

// NewRootCmd builds the gluemodel command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "gluemodel",
		Short: "Inspect and exercise the AWS Glue data model",
		Long: `gluemodel exposes the Glue value objects, enumerations and service exceptions
generated from the embedded Smithy model. It can list shapes, parse enum values,
validate and describe request payloads, and invoke operations through the AWS SDK.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default searches .gluemodel/config.yaml and ~/.gluemodel/config.yaml)")
	flags.StringVarP(&opts.logLevel, "log-level", "l", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format (text, json)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output format (text, json)")

	rootCmd.AddCommand(
		newShapesCmd(opts),
		newEnumsCmd(opts),
		newParseEnumCmd(opts),
		newOperationsCmd(opts),
		newDescribeCmd(opts),
		newValidateCmd(opts),
		newSchemaCmd(opts),
		newInvokeCmd(opts),
		newVersionCmd(opts),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

// load reads the configuration, applies explicit flags on top of it and
// initializes logging.
func (o *globalOptions) load(cmd *cobra.Command) error {
	if _, err := config.LoadConfig(o.configPath); err != nil {
		return err
	}

	flags := cmd.Flags()
	overrides := []struct {
		flag, key, value string
	}{
		{"log-level", "log.level", o.logLevel},
		{"log-format", "log.format", o.logFormat},
		{"output", "output.format", o.output},
	}
	for _, override := range overrides {
		if !flags.Changed(override.flag) {
			continue
		}
		if err := config.Set(override.key, override.value); err != nil {
			return err
		}
	}

	cfg := config.GetConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Initialize(&logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	logging.Debug("Configuration loaded", "output", cfg.Output.Format, "region", cfg.AWS.Region)

	o.cfg = cfg
	return nil
}

func (o *globalOptions) jsonOutput() bool {
	return o.cfg != nil && o.cfg.Output.Format == "json"
}
