package entity

// Supplier keeps the PascalCase wire keys of the original Northwind API.
// The mapping is fixed here per field instead of being derived at runtime,
// so "ID" and "HomePage" casing quirks are explicit. Every column except
// SupplierID and CompanyName is nullable and serializes as null when unset.
type Supplier struct {
	ID           int     `json:"SupplierID"`
	CompanyName  string  `json:"CompanyName"`
	ContactName  *string `json:"ContactName"`
	ContactTitle *string `json:"ContactTitle"`
	Address      *string `json:"Address"`
	City         *string `json:"City"`
	Region       *string `json:"Region"`
	PostalCode   *string `json:"PostalCode"`
	Country      *string `json:"Country"`
	Phone        *string `json:"Phone"`
	Fax          *string `json:"Fax"`
	HomePage     *string `json:"HomePage"`
}
