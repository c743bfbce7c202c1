package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/wesleyorama2/reqbuild/config"
	"github.com/wesleyorama2/reqbuild/pkg/jsonpath"
)

var (
	errCollectionRequired = errors.New("collection file is required (--collection)")
	errRequestRequired    = errors.New("request name is required (--request)")
	errVarPathNeedsFile   = errors.New("--var-path requires --vars-file")
	errInvalidVarsFile    = errors.New("vars file is not valid JSON")
)

// invalidConfigError lists the validation errors of a collection.
type invalidConfigError struct {
	errs []config.ValidationError
}

func (e *invalidConfigError) Error() string {
	var b strings.Builder
	b.WriteString("configuration validation errors:")
	for _, err := range e.errs {
		b.WriteString("\n  - " + err.Error())
	}
	return b.String()
}

// variableFlags are the flags supplying collection variables.
type variableFlags struct {
	vars     []string
	varsFile string
	varPaths []string
}

func (f *variableFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.vars, "var", nil,
		"variables as name=value, overriding environment variables (can be used multiple times)")
	cmd.Flags().StringVar(&f.varsFile, "vars-file", "",
		"JSON file with variables; a flat object unless --var-path is given")
	cmd.Flags().StringArrayVar(&f.varPaths, "var-path", nil,
		"variables extracted from --vars-file as name=$.json.path (can be used multiple times)")
}

// variables collects the variables from the vars file and --var flags.
// --var wins over values from the file.
func (f *variableFlags) variables() (map[string]string, error) {
	result := make(map[string]string)

	if len(f.varPaths) > 0 && f.varsFile == "" {
		return nil, errVarPathNeedsFile
	}

	if f.varsFile != "" {
		data, err := os.ReadFile(f.varsFile)
		if err != nil {
			return nil, fmt.Errorf("error reading vars file: %w", err)
		}

		fromFile, err := f.fileVariables(data)
		if err != nil {
			return nil, err
		}
		result = config.MergeEnvironments(result, fromFile)
	}

	for _, pair := range f.vars {
		name, value, err := parseKeyValue(pair)
		if err != nil {
			return nil, fmt.Errorf("invalid --var: %w", err)
		}
		result[name] = value
	}

	return result, nil
}

func (f *variableFlags) fileVariables(data []byte) (map[string]string, error) {
	if len(f.varPaths) > 0 {
		paths := make(map[string]string, len(f.varPaths))
		for _, pair := range f.varPaths {
			name, path, err := parseKeyValue(pair)
			if err != nil {
				return nil, fmt.Errorf("invalid --var-path: %w", err)
			}
			paths[name] = path
		}

		values, err := jsonpath.ExtractMultiple(data, paths)
		if err != nil {
			return nil, fmt.Errorf("error extracting variables: %w", err)
		}
		return values, nil
	}

	if !gjson.ValidBytes(data) {
		return nil, errInvalidVarsFile
	}

	values := make(map[string]string)
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		values[key.String()] = value.String()
		return true
	})
	return values, nil
}

// loadCollection loads and validates a collection file.
func loadCollection(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
		return nil, &invalidConfigError{errs: errs}
	}

	return cfg, nil
}

func newRunCmd(a *app) *cobra.Command {
	var (
		collection  string
		environment string
		requestName string
		verbose     bool
		vars        variableFlags
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build a request from a collection file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if collection == "" {
				return errCollectionRequired
			}
			if requestName == "" {
				return errRequestRequired
			}

			cfg, err := loadCollection(collection)
			if err != nil {
				return err
			}

			variables, err := vars.variables()
			if err != nil {
				return err
			}

			req, err := config.BuildRequest(cfg, environment, requestName, variables)
			if err != nil {
				return err
			}

			return a.render(cmd, req, verbose)
		},
	}

	cmd.Flags().StringVarP(&collection, "collection", "c", "", "collection file (YAML or JSON)")
	cmd.Flags().StringVarP(&environment, "environment", "e", "", "environment to use")
	cmd.Flags().StringVarP(&requestName, "request", "r", "", "request to build")
	vars.register(cmd)
	addOutputFlags(cmd.Flags(), &verbose)

	return cmd
}
