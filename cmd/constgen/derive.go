package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"const-generator/internal/analyze"
	"const-generator/internal/config"
	"const-generator/internal/diagnostic"
	"const-generator/internal/gen"
)

var errStale = errors.New("generated files are out of date")

func newDeriveCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive [packages...]",
		Short: "Write <pkg>_const.go files for annotated packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDerive(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "out", "o", "", "write every file here instead of its package directory")

	return cmd
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [packages...]",
		Short: "Report directive problems and stale generated files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}
}

// generate analyzes the configured packages and renders their files.
func generate(cmd *cobra.Command, opts *options, args []string) ([]gen.GeneratedFile, *zap.Logger, error) {
	cfg, err := opts.resolve(cmd, args)
	if err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("loading packages", zap.Strings("patterns", cfg.Packages), zap.String("dir", opts.dir))

	analyzer := analyze.NewAnalyzer(analyze.WithDir(opts.dir), analyze.WithGeneratedSuffix(cfg.Suffix))

	res, err := analyzer.LoadPackages(cfg.Packages...)
	if err != nil {
		return nil, logger, err
	}

	if err := report(logger, res.Diagnostics); err != nil {
		return nil, logger, err
	}

	files, err := gen.NewGenerator(generatorConfig(cfg), logger).Generate(cmd.Context(), res.Packages)
	if err != nil {
		return nil, logger, err
	}

	return files, logger, nil
}

func generatorConfig(cfg config.Config) gen.GeneratorConfig {
	return gen.GeneratorConfig{
		Suffix:           cfg.Suffix,
		RenderImport:     cfg.RenderImport,
		GenerateComments: cfg.Comments,
		Parallelism:      cfg.Parallelism,
	}
}

// report logs every diagnostic and fails when any of them is an error.
func report(logger *zap.Logger, diags diagnostic.Diagnostics) error {
	for _, w := range diags.Warnings {
		logger.Warn(w.Message, zap.String("code", w.Code), zap.String("type", w.Type), zap.String("pos", w.Pos))
	}

	for _, e := range diags.Errors {
		logger.Error(e.Message, zap.String("code", e.Code), zap.String("type", e.Type), zap.String("pos", e.Pos))
	}

	if diags.HasErrors() {
		return fmt.Errorf("%d directive error(s)", len(diags.Errors))
	}

	return nil
}

func runDerive(cmd *cobra.Command, opts *options, args []string) error {
	files, logger, err := generate(cmd, opts, args)
	if logger != nil {
		defer func() { _ = logger.Sync() }()
	}

	if err != nil {
		return err
	}

	written, err := gen.WriteFiles(files, opts.outputDir)
	if err != nil {
		return err
	}

	for _, p := range written {
		logger.Info("wrote", zap.String("file", p))
	}

	if len(written) == 0 {
		logger.Info("no annotated types found")
	}

	return nil
}

func runCheck(cmd *cobra.Command, opts *options, args []string) error {
	files, logger, err := generate(cmd, opts, args)
	if logger != nil {
		defer func() { _ = logger.Sync() }()
	}

	if err != nil {
		return err
	}

	stale := 0

	for _, f := range files {
		current, err := os.ReadFile(f.Path())
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if !bytes.Equal(current, f.Content) {
			logger.Warn("stale generated file", zap.String("file", f.Path()))
			stale++
		}
	}

	if stale > 0 {
		return fmt.Errorf("%w: %d file(s)", errStale, stale)
	}

	logger.Debug("generated files are up to date", zap.Int("files", len(files)))

	return nil
}
