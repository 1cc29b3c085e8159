package usecase

import (
	"context"

	"leetcode-revision/internal/domain/model"
	"leetcode-revision/internal/domain/ports"
)

// LoadCatalog fetches the problem catalog once for a run. Failures are logged
// and yield an empty catalog so labels degrade to bare titles.
func LoadCatalog(ctx context.Context, provider ports.CatalogProvider, logger ports.Logger) model.Catalog {
	if provider == nil {
		return model.Catalog{}
	}

	catalog, err := provider.FetchCatalog(ctx)
	if err != nil {
		logger.Error(ctx, "❌ failed to fetch question catalog", "error", err)
		return model.Catalog{}
	}
	if catalog == nil {
		catalog = model.Catalog{}
	}

	logger.Info(ctx, "✅ loaded question catalog", "questions", len(catalog))
	return catalog
}
