// Package main provides the CLI entrypoint for constgen.
//
// constgen generates constant renderers for Go types annotated with
// //constgen: directives:
//   - derive writes one <pkg>_const.go file per annotated package
//   - check reports directive problems and stale generated files
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"const-generator/internal/config"
)

// options are the flags shared by all commands.
type options struct {
	configPath   string
	dir          string
	suffix       string
	renderImport string
	comments     bool
	verbose      bool
	parallelism  int
	outputDir    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "constgen",
		Short: "Generate constant renderers for annotated Go types",
		Long: `constgen reads Go packages, collects the types marked with
//constgen:derive, //constgen:enum and //constgen:variant, and writes
ConstType, ConstVal and ConstDefinition methods for them.

Settings are read from constgen.yaml or constgen.toml in the working
directory; flags override the file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: search constgen.yaml, constgen.yml, constgen.toml)")
	flags.StringVarP(&opts.dir, "dir", "C", ".", "directory to resolve packages and the config file in")
	flags.StringVar(&opts.suffix, "suffix", "", "output file suffix")
	flags.StringVar(&opts.renderImport, "render-import", "", "import path of the render package")
	flags.BoolVar(&opts.comments, "comments", true, "emit doc comments on generated methods")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.IntVar(&opts.parallelism, "parallelism", 0, "packages generated at once")

	root.AddCommand(newDeriveCmd(opts), newCheckCmd(opts))

	return root
}

// resolve loads the config file and applies the flags that were set.
func (o *options) resolve(cmd *cobra.Command, args []string) (config.Config, error) {
	path := o.configPath
	if path == "" {
		found, err := config.Find(o.dir)
		if err != nil {
			return config.Config{}, err
		}

		path = found
	}

	cfg := config.Default()

	if path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return config.Config{}, err
		}

		cfg = loaded
	}

	flags := cmd.Flags()

	if len(args) > 0 {
		cfg.Packages = args
	}

	if flags.Changed("suffix") {
		cfg.Suffix = o.suffix
	}

	if flags.Changed("render-import") {
		cfg.RenderImport = o.renderImport
	}

	if flags.Changed("comments") {
		cfg.Comments = o.comments
	}

	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}

	if flags.Changed("parallelism") {
		cfg.Parallelism = o.parallelism
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.DisableStacktrace = true

	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "constgen:", err)
		os.Exit(1)
	}
}
