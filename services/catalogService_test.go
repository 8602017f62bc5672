package services

import (
	"testing"

	"go-laundry-management/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceForReturnsConfiguredPrices(t *testing.T) {
	for _, category := range []string{models.CategoryIntakeByWeight, models.CategoryServeByPiece} {
		entries, err := CatalogEntries(category)
		require.NoError(t, err)
		require.Len(t, entries, 4)

		for _, entry := range entries {
			price, err := PriceFor(category, entry.Name)
			require.NoError(t, err)
			assert.Equal(t, entry.Price, price, "price mismatch for %s / %s", category, entry.Name)
		}
	}
}

func TestPriceForKnownEntries(t *testing.T) {
	price, err := PriceFor(models.CategoryIntakeByWeight, "Cuci + Setrika")
	require.NoError(t, err)
	assert.Equal(t, int64(6000), price)

	price, err = PriceFor(models.CategoryServeByPiece, "Seprei + Sarung Bantal Besar")
	require.NoError(t, err)
	assert.Equal(t, int64(15000), price)
}

func TestPriceForUnknownService(t *testing.T) {
	_, err := PriceFor(models.CategoryIntakeByWeight, "Dry Clean Express")
	assert.ErrorIs(t, err, ErrServiceNotFound)

	// Valid name in the wrong category is still not found.
	_, err = PriceFor(models.CategoryServeByPiece, "Cuci + Setrika")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestPriceForUnknownCategory(t *testing.T) {
	_, err := PriceFor("dry-clean", "Cuci + Setrika")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCatalogHasBothCategories(t *testing.T) {
	catalog := Catalog()
	require.Contains(t, catalog, models.CategoryIntakeByWeight)
	require.Contains(t, catalog, models.CategoryServeByPiece)
	assert.Len(t, catalog[models.CategoryIntakeByWeight], 4)
	assert.Len(t, catalog[models.CategoryServeByPiece], 4)
}
