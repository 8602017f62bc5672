package services

import "go-laundry-management/models"

// CatalogEntry is one service in the price list. Intake entries are priced
// per kilogram, serve entries per piece.
type CatalogEntry struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// The price list is process-wide immutable configuration, not a collection.
var intakeByWeight = []CatalogEntry{
	{Name: "Cuci + Setrika", Price: 6000},
	{Name: "Cuci Kering", Price: 5000},
	{Name: "Cuci Basah", Price: 4000},
	{Name: "Setrika Saja", Price: 5000},
}

var serveByPiece = []CatalogEntry{
	{Name: "Badcover Besar Tebal", Price: 30000},
	{Name: "Badcover Sedang Tebal", Price: 25000},
	{Name: "Seprei + Sarung Bantal Besar", Price: 15000},
	{Name: "Seprei + Sarung Bantal Sedang", Price: 10000},
}

// CatalogEntries returns a category's entries in display order.
func CatalogEntries(category string) ([]CatalogEntry, error) {
	switch category {
	case models.CategoryIntakeByWeight:
		return intakeByWeight, nil
	case models.CategoryServeByPiece:
		return serveByPiece, nil
	default:
		return nil, ErrUnknownCategory
	}
}

// PriceFor looks up the unit price of a service within a category.
func PriceFor(category string, service string) (int64, error) {
	entries, err := CatalogEntries(category)
	if err != nil {
		return 0, err
	}
	for _, entry := range entries {
		if entry.Name == service {
			return entry.Price, nil
		}
	}
	return 0, ErrServiceNotFound
}

// Catalog returns the full price list keyed by category, for the public
// catalog endpoint.
func Catalog() map[string][]CatalogEntry {
	return map[string][]CatalogEntry{
		models.CategoryIntakeByWeight: intakeByWeight,
		models.CategoryServeByPiece:   serveByPiece,
	}
}
