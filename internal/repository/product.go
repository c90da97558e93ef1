package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/szoz/northwind-api/internal/entity"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db}
}

// ListNames returns the names of all products.
func (r *ProductRepository) ListNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT ProductName FROM Products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name []byte
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, cleanText(name))
	}

	return names, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	query := `SELECT ProductID, ProductName FROM Products WHERE ProductID = ?`

	product := &entity.Product{}
	var name []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(&product.ID, &name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	product.Name = cleanText(name)

	return product, nil
}

// ListExtended joins each product with its category and supplier names.
// LEFT JOINs keep products whose foreign keys match nothing; those project
// with a nil category or supplier.
func (r *ProductRepository) ListExtended(ctx context.Context) ([]entity.ProductExtended, error) {
	query := `
		SELECT p.ProductID, p.ProductName, c.CategoryName, s.CompanyName
		FROM Products p
		LEFT JOIN Categories c ON p.CategoryID = c.CategoryID
		LEFT JOIN Suppliers s ON p.SupplierID = s.SupplierID`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []entity.ProductExtended
	for rows.Next() {
		var product entity.ProductExtended
		var name, category, supplier []byte
		if err := rows.Scan(&product.ID, &name, &category, &supplier); err != nil {
			return nil, err
		}
		product.Name = cleanText(name)
		product.Category = cleanTextPtr(category)
		product.Supplier = cleanTextPtr(supplier)
		products = append(products, product)
	}

	return products, rows.Err()
}

// Orders returns the joined order lines for a product. Zero matching rows
// means the product has no orders (or does not exist) and maps to ErrNotFound.
func (r *ProductRepository) Orders(ctx context.Context, productID int) ([]entity.OrderLine, error) {
	query := `
		SELECT o.OrderID, c.CompanyName, od.Quantity, od.UnitPrice, od.Discount
		FROM Orders o
		LEFT JOIN "Order Details" od ON o.OrderID = od.OrderID
		LEFT JOIN Customers c ON o.CustomerID = c.CustomerID
		WHERE od.ProductID = ?`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []entity.OrderLine
	for rows.Next() {
		var line entity.OrderLine
		var customer []byte
		if err := rows.Scan(&line.OrderID, &customer, &line.Quantity, &line.UnitPrice, &line.Discount); err != nil {
			return nil, err
		}
		line.Customer = cleanText(customer)
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return nil, ErrNotFound
	}
	return lines, nil
}
