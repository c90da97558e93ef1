package entity

// Customer is the projected customer record. FullAddress is the four address
// columns (Address, PostalCode, City, Country) joined with single spaces,
// with NULL parts normalized to empty strings.
type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	FullAddress string `json:"full_address"`
}
