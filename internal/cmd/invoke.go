package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nandemo-ya/gluemodel/glue"
	"github.com/nandemo-ya/gluemodel/internal/config"
	"github.com/nandemo-ya/gluemodel/internal/logging"
	"github.com/nandemo-ya/gluemodel/internal/payload"
	"github.com/nandemo-ya/gluemodel/internal/sdkadapter"
)

// newAPI builds the Glue client used by the invoke command.
var newAPI = func(ctx context.Context, cfg *config.Config) (glue.API, error) {
	client, err := sdkadapter.NewFromConfig(ctx, sdkadapter.Options{
		Region:   cfg.AWS.Region,
		Profile:  cfg.AWS.Profile,
		Endpoint: cfg.AWS.Endpoint,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

func newInvokeCmd(opts *globalOptions) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "invoke OPERATION FILE",
		Short: "Invoke a Glue operation with a request payload",
		Long: `Decode FILE as the input structure of OPERATION and send it to AWS Glue.
The region, profile and endpoint come from the configuration file, the
GLUEMODEL_AWS_* variables or the standard AWS environment.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := glue.LookupOperation(args[0])
			if !ok {
				return fmt.Errorf("unknown operation: %s", args[0])
			}
			input, err := newShape(op.Input)
			if err != nil {
				return err
			}
			if err := payload.DecodeFile(args[1], input); err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			ctx = logging.WithSource(logging.WithShape(ctx, input.ShapeName()), args[1])

			api, err := newAPI(ctx, opts.cfg)
			if err != nil {
				return fmt.Errorf("failed to create Glue client: %w", err)
			}
			logging.FromContext(ctx).Info("Invoking operation", "operation", op.Name)

			output, err := glue.Invoke(ctx, api, op.Name, input)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), output)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Maximum time to wait for the operation")
	return cmd
}
