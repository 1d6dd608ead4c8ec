package gen

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"const-generator/internal/analyze"
	"const-generator/internal/common"
)

// DefaultSuffix is appended to the package name to form the output filename.
const DefaultSuffix = "_const.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Suffix is appended to the package name to form the output filename.
	Suffix string
	// RenderImport is the import path of the render package.
	RenderImport string
	// GenerateComments enables doc comments on generated methods.
	GenerateComments bool
	// Parallelism bounds how many packages are formatted at once.
	Parallelism int
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Suffix:           DefaultSuffix,
		RenderImport:     "const-generator/render",
		GenerateComments: true,
		Parallelism:      runtime.GOMAXPROCS(0),
	}
}

// Generator generates Go code from analyzed packages.
type Generator struct {
	config GeneratorConfig
	logger *zap.Logger
}

// NewGenerator creates a new Generator with the given configuration.
// A nil logger disables logging.
func NewGenerator(config GeneratorConfig, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}

	if config.Parallelism < 1 {
		config.Parallelism = 1
	}

	return &Generator{config: config, logger: logger}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs in: its package directory.
	Dir string
	// Filename is the name of the file (e.g., "store_const.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the full output path of the file.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Generate generates one file per package with annotated types, in the order
// of the packages. Packages without annotated types are skipped.
func (g *Generator) Generate(ctx context.Context, pkgs []*analyze.PackageInfo) ([]GeneratedFile, error) {
	files := make([]*GeneratedFile, len(pkgs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.config.Parallelism)

	for i, pkg := range pkgs {
		if pkg.Empty() {
			g.logger.Debug("skipping package without annotated types", zap.String("package", pkg.Path))
			continue
		}

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			file, err := g.generatePackage(pkg)
			if err != nil {
				return fmt.Errorf("generating %s: %w", pkg.Path, err)
			}

			files[i] = file

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var out []GeneratedFile

	for _, f := range files {
		if f != nil {
			out = append(out, *f)
		}
	}

	return out, nil
}

// generatePackage renders and formats the file of one package.
func (g *Generator) generatePackage(pkg *analyze.PackageInfo) (*GeneratedFile, error) {
	data := g.buildTemplateData(pkg)

	g.logger.Debug("generating",
		zap.String("package", pkg.Path),
		zap.String("file", data.Filename),
		zap.Int("types", len(data.Types)),
		zap.Int("enums", len(data.Enums)),
	)

	var buf bytes.Buffer
	if err := constTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if werr := writeDebugUnformatted(pkg.Dir, data.Filename, buf.Bytes()); werr != nil {
			g.logger.Warn("writing unformatted output", zap.Error(werr))
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Dir:      pkg.Dir,
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// filename returns the output filename of a package.
func (g *Generator) filename(pkg *analyze.PackageInfo) string {
	alias := common.PkgAlias(pkg.Path)
	if alias == "" || alias == "." {
		alias = pkg.Name
	}

	return alias + g.config.Suffix
}
