package entity

type Product struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductExtended carries the category and supplier names resolved through
// the Products foreign keys. Both are nullable: a product with an unmatched
// CategoryID or SupplierID serializes them as null.
type ProductExtended struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category *string `json:"category"`
	Supplier *string `json:"supplier"`
}

/*
Northwind sqlite schema used by this service:

CREATE TABLE Products (
	ProductID   INTEGER PRIMARY KEY,
	ProductName TEXT NOT NULL,
	SupplierID  INTEGER,
	CategoryID  INTEGER
);
*/
