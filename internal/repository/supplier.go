package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/szoz/northwind-api/internal/entity"
)

const supplierColumns = `SupplierID, CompanyName, ContactName, ContactTitle,
	Address, City, Region, PostalCode, Country, Phone, Fax, HomePage`

type SupplierRepository struct {
	db *sql.DB
}

func NewSupplierRepository(db *sql.DB) *SupplierRepository {
	return &SupplierRepository{db}
}

func (r *SupplierRepository) List(ctx context.Context) ([]entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM Suppliers ORDER BY SupplierID`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []entity.Supplier
	for rows.Next() {
		supplier, err := scanSupplier(rows.Scan)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, *supplier)
	}

	return suppliers, rows.Err()
}

func (r *SupplierRepository) GetByID(ctx context.Context, id int) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM Suppliers WHERE SupplierID = ?`

	supplier, err := scanSupplier(r.db.QueryRowContext(ctx, query, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return supplier, nil
}

func scanSupplier(scan func(...interface{}) error) (*entity.Supplier, error) {
	supplier := &entity.Supplier{}
	var companyName []byte
	optional := make([][]byte, 10)

	dest := []interface{}{&supplier.ID, &companyName}
	for i := range optional {
		dest = append(dest, &optional[i])
	}
	if err := scan(dest...); err != nil {
		return nil, err
	}

	supplier.CompanyName = cleanText(companyName)
	supplier.ContactName = cleanTextPtr(optional[0])
	supplier.ContactTitle = cleanTextPtr(optional[1])
	supplier.Address = cleanTextPtr(optional[2])
	supplier.City = cleanTextPtr(optional[3])
	supplier.Region = cleanTextPtr(optional[4])
	supplier.PostalCode = cleanTextPtr(optional[5])
	supplier.Country = cleanTextPtr(optional[6])
	supplier.Phone = cleanTextPtr(optional[7])
	supplier.Fax = cleanTextPtr(optional[8])
	supplier.HomePage = cleanTextPtr(optional[9])

	return supplier, nil
}
