package domain

// Location is an immutable (region, city) pair of reference data
type Location struct {
	LocationID string `db:"location_id"`
	Region     string `db:"region"`
	City       string `db:"city"`
}

// Store belongs to exactly one location
type Store struct {
	StoreID    string `db:"store_id"`
	Name       string `db:"name"`
	LocationID string `db:"location_id"`
}

// Product is a catalog item
type Product struct {
	ProductID   string `db:"product_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Price       int    `db:"price"`
}

// ProductListing is the name/price pair shown in store listings
type ProductListing struct {
	Name  string `db:"name"`
	Price int    `db:"price"`
}
