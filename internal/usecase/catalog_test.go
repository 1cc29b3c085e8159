package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	logger := &recordingLogger{}
	provider := &fakeCatalog{catalog: testCatalog}

	catalog := LoadCatalog(context.Background(), provider, logger)

	assert.Equal(t, testCatalog, catalog)
	assert.Equal(t, 1, provider.calls)
	assert.Empty(t, logger.byLevel("error"))
}

func TestLoadCatalogDegradesOnFailure(t *testing.T) {
	logger := &recordingLogger{}
	provider := &fakeCatalog{err: errors.New("network down")}

	catalog := LoadCatalog(context.Background(), provider, logger)

	require.NotNil(t, catalog)
	assert.Empty(t, catalog)
	_, ok := catalog.Lookup("two-sum")
	assert.False(t, ok)

	errs := logger.byLevel("error")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].msg, "failed to fetch question catalog")
}

func TestLoadCatalogNilProvider(t *testing.T) {
	assert.Empty(t, LoadCatalog(context.Background(), nil, &recordingLogger{}))
}
