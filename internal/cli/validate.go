package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/reqbuild/config"
	"github.com/wesleyorama2/reqbuild/internal/logger"
	"github.com/wesleyorama2/reqbuild/internal/output"
)

var errInvalidCollection = errors.New("collection is invalid")

func newValidateCmd(a *app) *cobra.Command {
	var collection string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a collection file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if collection == "" {
				return errCollectionRequired
			}

			cfg, err := config.LoadConfig(collection)
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}

			out := cmd.OutOrStdout()
			noColor := a.settings.NoColor || !colorWriter(out)

			errs := config.ValidateConfig(cfg)
			if len(errs) == 0 {
				fmt.Fprintf(out, "%s %s is valid (%d requests, %d environments)\n",
					output.SuccessIcon(noColor), collection, len(cfg.Requests), len(cfg.Environments))
				return nil
			}

			logger.Warnf(cmd.Context(), "%s: %d validation errors", collection, len(errs))
			for _, verr := range errs {
				fmt.Fprintf(out, "%s %s\n", output.ErrorIcon(noColor), verr.Error())
			}

			return fmt.Errorf("%w: %d errors", errInvalidCollection, len(errs))
		},
	}

	cmd.Flags().StringVarP(&collection, "collection", "c", "", "collection file (YAML or JSON)")
	cmd.Flags().Bool("no-color", false, "Disable colored output")

	return cmd
}
