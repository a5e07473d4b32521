// Package cli implements the pipegrid command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pipegrid/pkg/buildinfo"
	"github.com/matzehuels/pipegrid/pkg/observability"
	"github.com/matzehuels/pipegrid/pkg/observability/prom"
	"github.com/matzehuels/pipegrid/pkg/parts"
	"github.com/matzehuels/pipegrid/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "pipegrid"

	// catalogFileName is the user catalog looked up in the config directory.
	catalogFileName = "catalog.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output. Logs go to the logger's writer.
	Out io.Writer

	// Flags shared by every command.
	catalogs []string
	metrics  bool

	registry *prometheus.Registry
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Pipegrid computes steady-state flow through grid-based pipe diagrams",
		Long:         `Pipegrid reads a diagram of pipes, valves, pumps, sources and drains placed on a grid and computes the flow passing through every connection of every part.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.metrics {
				c.enableMetrics()
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)

	pf := root.PersistentFlags()
	pf.StringArrayVar(&c.catalogs, "catalog", nil, "extra part catalog (TOML), may be repeated")
	pf.BoolVar(&c.metrics, "metrics", false, "log Prometheus metrics gathered during the run")

	// Register all subcommands
	root.AddCommand(c.computeCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.partsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner resolving types through the catalogs
// configured for this invocation.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	catalog, err := c.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(catalog, c.Logger), nil
}

// loadCatalog merges the built-in types with, in order, the user catalog in
// the config directory, the catalog named by PIPEGRID_CATALOG and every
// --catalog flag.
func (c *CLI) loadCatalog(ctx context.Context) (*parts.Catalog, error) {
	return pipeline.LoadCatalogs(ctx, c.catalogPaths(), c.Logger)
}

func (c *CLI) catalogPaths() []string {
	var paths []string
	if dir, err := configDir(); err == nil {
		path := filepath.Join(dir, catalogFileName)
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}
	if env := os.Getenv(pipeline.EnvCatalog); env != "" {
		paths = append(paths, env)
	}
	return append(paths, c.catalogs...)
}

// =============================================================================
// Metrics
// =============================================================================

// enableMetrics installs Prometheus hooks backed by a private registry.
func (c *CLI) enableMetrics() {
	c.registry = prometheus.NewRegistry()
	hooks := prom.New(c.registry)
	observability.SetPipelineHooks(hooks)
	observability.SetCatalogHooks(hooks)
}

// logMetrics logs every sample gathered since enableMetrics. It is a no-op
// unless --metrics was given.
func (c *CLI) logMetrics() {
	if c.registry == nil {
		return
	}
	families, err := c.registry.Gather()
	if err != nil {
		c.Logger.Warn("gather metrics", "err", err)
		return
	}
	for _, s := range samples(families) {
		c.Logger.Info("metric", "name", s.name, "value", s.value)
	}
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/pipegrid/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
