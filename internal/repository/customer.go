package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/szoz/northwind-api/internal/entity"
)

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db}
}

// List returns all customers with their address parts collapsed into a
// single full_address string. The four parts keep column order (Address,
// PostalCode, City, Country) and NULLs become empty strings, so a missing
// middle part leaves two consecutive spaces in the result.
func (r *CustomerRepository) List(ctx context.Context) ([]entity.Customer, error) {
	query := `SELECT CustomerID, CompanyName, Address, PostalCode, City, Country FROM Customers`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []entity.Customer
	for rows.Next() {
		var id, name []byte
		parts := make([][]byte, 4)
		if err := rows.Scan(&id, &name, &parts[0], &parts[1], &parts[2], &parts[3]); err != nil {
			return nil, err
		}

		address := make([]string, len(parts))
		for i, part := range parts {
			address[i] = cleanText(part)
		}

		customers = append(customers, entity.Customer{
			ID:          cleanText(id),
			Name:        cleanText(name),
			FullAddress: strings.Join(address, " "),
		})
	}

	return customers, rows.Err()
}
