package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/szoz/northwind-api/internal/entity"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	query := `SELECT CategoryID, CategoryName FROM Categories ORDER BY CategoryID`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []entity.Category
	for rows.Next() {
		var category entity.Category
		var name []byte
		if err := rows.Scan(&category.ID, &name); err != nil {
			return nil, err
		}
		category.Name = cleanText(name)
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*entity.Category, error) {
	query := `SELECT CategoryID, CategoryName FROM Categories WHERE CategoryID = ?`

	category := &entity.Category{}
	var name []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(&category.ID, &name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	category.Name = cleanText(name)

	return category, nil
}

// NextID returns MAX(CategoryID)+1. Racy under concurrent writers; the
// service assumes a single writer (documented limitation).
func (r *CategoryRepository) NextID(ctx context.Context) (int, error) {
	var maxID int
	query := `SELECT COALESCE(MAX(CategoryID), 0) FROM Categories`
	if err := r.db.QueryRowContext(ctx, query).Scan(&maxID); err != nil {
		return 0, err
	}
	return maxID + 1, nil
}

func (r *CategoryRepository) Insert(ctx context.Context, id int, name string) error {
	query := `INSERT INTO Categories (CategoryID, CategoryName) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, id, name)
	return err
}

func (r *CategoryRepository) UpdateName(ctx context.Context, id int, name string) error {
	query := `UPDATE Categories SET CategoryName = ? WHERE CategoryID = ?`
	_, err := r.db.ExecContext(ctx, query, name, id)
	return err
}

// Delete removes the row and reports how many rows were removed (0 or 1).
func (r *CategoryRepository) Delete(ctx context.Context, id int) (int, error) {
	query := `DELETE FROM Categories WHERE CategoryID = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(deleted), nil
}
