package postgres

import (
	"database/sql"
	"errors"

	"storebot/internal/domain"

	"github.com/jmoiron/sqlx"
)

// CatalogRepo implements repository.CatalogRepository
type CatalogRepo struct {
	db *sqlx.DB
}

// NewCatalogRepo creates a new catalog repository
func NewCatalogRepo(db *sqlx.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// ListRegions returns all region names in ascending order
func (r *CatalogRepo) ListRegions() ([]string, error) {
	var regions []string
	query := `SELECT DISTINCT region FROM locations ORDER BY region`
	if err := r.db.Select(&regions, query); err != nil {
		return nil, err
	}
	return regions, nil
}

// ListCities returns the cities of a region in ascending order.
// Unknown regions yield an empty result, not an error.
func (r *CatalogRepo) ListCities(region string) ([]string, error) {
	var cities []string
	query := `SELECT city FROM locations WHERE region = $1 ORDER BY city`
	if err := r.db.Select(&cities, query, region); err != nil {
		return nil, err
	}
	return cities, nil
}

// ListStores returns the store names of a (region, city) in ascending order
func (r *CatalogRepo) ListStores(region, city string) ([]string, error) {
	var stores []string
	query := `
		SELECT s.name
		FROM stores s
		JOIN locations l ON l.location_id = s.location_id
		WHERE l.region = $1 AND l.city = $2
		ORDER BY s.name
	`
	if err := r.db.Select(&stores, query, region, city); err != nil {
		return nil, err
	}
	return stores, nil
}

// ListProducts returns the inventory of a store as name/price pairs.
// The catalog defines no order for product listings.
func (r *CatalogRepo) ListProducts(region, city, store string) ([]domain.ProductListing, error) {
	var products []domain.ProductListing
	query := `
		SELECT p.name, p.price
		FROM store_products sp
		JOIN stores s ON s.store_id = sp.store_id
		JOIN locations l ON l.location_id = s.location_id
		JOIN products p ON p.product_id = sp.product_id
		WHERE l.region = $1 AND l.city = $2 AND s.name = $3
	`
	if err := r.db.Select(&products, query, region, city, store); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns a product by name, or nil if it does not exist
func (r *CatalogRepo) GetProduct(name string) (*domain.Product, error) {
	var p domain.Product
	query := `SELECT product_id, name, description, price FROM products WHERE name = $1`
	err := r.db.Get(&p, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// RegionOf resolves a city to its region, or returns an empty string
// if the city is not in the catalog
func (r *CatalogRepo) RegionOf(city string) (string, error) {
	var region string
	query := `SELECT region FROM locations WHERE city = $1 LIMIT 1`
	err := r.db.Get(&region, query, city)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return region, nil
}
