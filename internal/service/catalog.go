package service

import (
	"storebot/internal/domain"
	"storebot/internal/repository"
)

// CatalogService exposes the region/city/store/product hierarchy.
// All methods are side-effect-free reads.
type CatalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// ListRegions returns all regions, alphabetically
func (s *CatalogService) ListRegions() ([]string, error) {
	return s.catalogRepo.ListRegions()
}

// ListCities returns the cities of a region, alphabetically.
// An unknown region yields an empty list.
func (s *CatalogService) ListCities(region string) ([]string, error) {
	return s.catalogRepo.ListCities(region)
}

// ListStores returns the stores of a (region, city), alphabetically
func (s *CatalogService) ListStores(region, city string) ([]string, error) {
	return s.catalogRepo.ListStores(region, city)
}

// ListProducts returns a store's inventory as name/price pairs
func (s *CatalogService) ListProducts(region, city, store string) ([]domain.ProductListing, error) {
	return s.catalogRepo.ListProducts(region, city, store)
}

// ProductDescription returns the description of the named product,
// or a placeholder when the product has none
func (s *CatalogService) ProductDescription(name string) (string, error) {
	product, err := s.catalogRepo.GetProduct(name)
	if err != nil {
		return "", err
	}
	if product == nil || product.Description == "" {
		return "No description", nil
	}
	return product.Description, nil
}

// RegionOf resolves a saved city back to its region; empty when the
// city is no longer in the catalog
func (s *CatalogService) RegionOf(city string) (string, error) {
	return s.catalogRepo.RegionOf(city)
}
