package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/reqbuild/config"
	"github.com/wesleyorama2/reqbuild/internal/output"
)

var errEnvironmentsRequired = errors.New("both --from and --to environments are required")

func newDiffCmd(a *app) *cobra.Command {
	var (
		collection  string
		requestName string
		from        string
		to          string
		verbose     bool
		vars        variableFlags
	)

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show how a collection request differs between two environments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if collection == "" {
				return errCollectionRequired
			}
			if requestName == "" {
				return errRequestRequired
			}
			if from == "" || to == "" {
				return errEnvironmentsRequired
			}

			cfg, err := loadCollection(collection)
			if err != nil {
				return err
			}

			variables, err := vars.variables()
			if err != nil {
				return err
			}

			// Escape sequences would show up as changes, so both sides are
			// rendered without color.
			formatter := a.newFormatter(a.settings.ParsedOutput, verbose, true)

			renderings := make([]string, 0, 2)
			for _, env := range []string{from, to} {
				req, err := config.BuildRequest(cfg, env, requestName, variables)
				if err != nil {
					return err
				}
				text, err := formatter.FormatRequest(req)
				if err != nil {
					return fmt.Errorf("error formatting request: %w", err)
				}
				renderings = append(renderings, text)
			}

			out := cmd.OutOrStdout()
			noColor := a.settings.NoColor || !colorWriter(out)

			fmt.Fprintf(out, "--- %s\n+++ %s\n", from, to)
			fmt.Fprint(out, output.FormatDiff(renderings[0], renderings[1], noColor))

			return nil
		},
	}

	cmd.Flags().StringVarP(&collection, "collection", "c", "", "collection file (YAML or JSON)")
	cmd.Flags().StringVarP(&requestName, "request", "r", "", "request to compare")
	cmd.Flags().StringVar(&from, "from", "", "first environment")
	cmd.Flags().StringVar(&to, "to", "", "second environment")
	vars.register(cmd)
	addOutputFlags(cmd.Flags(), &verbose)

	return cmd
}
