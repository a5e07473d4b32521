package pipeline

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pipegrid/pkg/observability"
	"github.com/matzehuels/pipegrid/pkg/parts"
)

// LoadCatalogs returns the built-in catalog extended by each TOML catalog in
// paths, in order. Later catalogs override types of the same name.
func LoadCatalogs(ctx context.Context, paths []string, logger *log.Logger) (*parts.Catalog, error) {
	if logger == nil {
		logger = log.Default()
	}
	catalog := parts.Builtin()
	for _, path := range paths {
		extra, err := parts.LoadCatalog(path)
		n := 0
		if extra != nil {
			n = extra.Len()
		}
		observability.Catalog().OnCatalogLoad(ctx, path, n, err)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		catalog.Merge(extra)
		logger.Debug("loaded catalog", "path", path, "types", n)
	}
	return catalog, nil
}
