package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/blockform/internal/config"
	"github.com/vk/blockform/internal/ctxlog"
	"github.com/vk/blockform/internal/document"
	"github.com/vk/blockform/internal/engine"
	"github.com/vk/blockform/internal/hcl"
	"github.com/vk/blockform/internal/model"
	"github.com/vk/blockform/internal/printer"
)

// Extensions lists the file types the app reads.
var Extensions = []string{".tf", ".hcl", ".yaml", ".yml", ".json"}

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *config.Config
	engine  *engine.Engine
	parsers map[string]document.Parser
}

// NewApp is the constructor for the main application. Results are written
// to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *config.Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// Files written by the CLI must parse again, so attribute maps never hold blocks.
	p := printer.New(
		printer.WithIndent(cfg.Indent),
		printer.WithBlockKeys(cfg.BlockKeys...),
		printer.WithStrictObjects(),
	)

	yamlParser := document.YAMLParser{}
	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		engine: engine.New(engine.WithPrinter(p)),
		parsers: map[string]document.Parser{
			".tf":   hcl.NewParser(),
			".hcl":  hcl.NewParser(),
			".yaml": yamlParser,
			".yml":  yamlParser,
			// JSON is a subset of YAML, so Terraform JSON files go through the YAML reader.
			".json": yamlParser,
		},
	}
}

// Context returns ctx carrying the app logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// Engine returns the app's pipeline.
func (a *App) Engine() *engine.Engine {
	return a.engine
}

// LoadFile reads one file into blocks.
func (a *App) LoadFile(ctx context.Context, path string) ([]*model.Block, error) {
	parser, err := a.parserFor(path)
	if err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := parser.Parse(ctx, src, path)
	if err != nil {
		return nil, err
	}
	blocks, err := document.FromMap(doc, document.Options{FallbackContainer: a.config.FallbackContainer})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ctxlog.FromContext(ctx).Debug("Loaded file.", "path", path, "blocks", len(blocks))
	return blocks, nil
}

func (a *App) parserFor(path string) (document.Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if p, ok := a.parsers[ext]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("unsupported file type: %s", path)
}

// isHCL reports whether the file is already in HCL syntax.
func isHCL(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".tf" || ext == ".hcl"
}

// outputPath is where a formatted file is written: HCL files in place,
// other documents next to the source with a .tf extension.
func outputPath(path string) string {
	if isHCL(path) {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".tf"
}
