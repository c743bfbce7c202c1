package cli

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/reqbuild/internal/logger"
	"github.com/wesleyorama2/reqbuild/internal/output"
	"github.com/wesleyorama2/reqbuild/request"
)

type buildFunc func(b request.Builder, uri string) (*request.Request, error)

// methodCommands lists the per-method commands in the order they are shown.
var methodCommands = []struct {
	method string
	build  buildFunc
}{
	{http.MethodGet, request.Builder.Get},
	{http.MethodPost, request.Builder.Post},
	{http.MethodPut, request.Builder.Put},
	{http.MethodPatch, request.Builder.Patch},
	{http.MethodDelete, request.Builder.Delete},
	{http.MethodHead, request.Builder.Head},
	{http.MethodOptions, request.Builder.Options},
	{http.MethodTrace, request.Builder.Trace},
	{http.MethodConnect, request.Builder.Connect},
}

func newMethodCmd(a *app, method string, build buildFunc) *cobra.Command {
	var (
		flags   requestFlags
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   strings.ToLower(method) + " URL",
		Short: fmt.Sprintf("Build a %s request to the specified URL", method),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := flags.builder(a.settings.ParsedHeaders)
			if err != nil {
				return err
			}

			req, err := build(b, normalizeURL(args[0]))
			if err != nil {
				return err
			}

			return a.render(cmd, req, verbose)
		},
	}

	flags.register(cmd.Flags())
	addOutputFlags(cmd.Flags(), &verbose)

	return cmd
}

// render prints req to the command output in the configured format.
func (a *app) render(cmd *cobra.Command, req *request.Request, verbose bool) error {
	logger.DebugKV(cmd.Context(), "built request",
		"method", req.Method(),
		"uri", req.URI(),
		"headers", req.Headers().Len(),
		"body_size", req.Body().Len())

	out := cmd.OutOrStdout()
	noColor := a.settings.NoColor || !colorWriter(out)

	text, err := a.newFormatter(a.settings.ParsedOutput, verbose, noColor).FormatRequest(req)
	if err != nil {
		return fmt.Errorf("error formatting request: %w", err)
	}

	_, err = fmt.Fprint(out, text)
	return err
}

func colorWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && output.ColorEnabled(f, false)
}
