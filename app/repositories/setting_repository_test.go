package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/stockroom/app/models"
	"github.com/stockroom/stockroom/app/repositories"
)

func TestSettingForProductMissingIsNilNil(t *testing.T) {
	settings := repositories.NewSettingRepository(newTestDB(t))

	got, err := settings.ForProduct("no-such-product")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSettingPutInsertsThenReplaces(t *testing.T) {
	settings := repositories.NewSettingRepository(newTestDB(t))

	require.NoError(t, settings.Put(&models.InventorySetting{
		ProductID:         "p1",
		LowStockThreshold: 5,
	}))

	got, err := settings.ForProduct("p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 5, got.LowStockThreshold)
	assert.False(t, got.AutoReorder)

	require.NoError(t, settings.Put(&models.InventorySetting{
		ProductID:         "p1",
		LowStockThreshold: 20,
		AutoReorder:       true,
	}))

	got, err = settings.ForProduct("p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 20, got.LowStockThreshold)
	assert.True(t, got.AutoReorder)
}
