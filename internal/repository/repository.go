package repository

import (
	"storebot/internal/domain"
)

// CatalogRepository defines read-only catalog lookups
type CatalogRepository interface {
	ListRegions() ([]string, error)
	ListCities(region string) ([]string, error)
	ListStores(region, city string) ([]string, error)
	ListProducts(region, city, store string) ([]domain.ProductListing, error)
	GetProduct(name string) (*domain.Product, error)
	RegionOf(city string) (string, error)
}

// AccountRepository defines user, referral and order persistence
type AccountRepository interface {
	UserExists(telegramID int64) (bool, error)
	GetUser(telegramID int64) (*domain.User, error)
	CodeExists(code string) (bool, error)
	CreateUser(user *domain.User) error
	SetCity(telegramID int64, city string) error
	CreateOrder(telegramID int64, productName string) (*domain.Order, error)
}
