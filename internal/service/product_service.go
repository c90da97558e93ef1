package service

import (
	"context"

	"github.com/szoz/northwind-api/internal/entity"
	"github.com/szoz/northwind-api/internal/repository"
)

type ProductService struct {
	productRepo *repository.ProductRepository
}

// NewProductService creates a new instance of ProductService.
func NewProductService(productRepo *repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ListNames returns the names of all products.
func (s *ProductService) ListNames(ctx context.Context) ([]string, error) {
	names, err := s.productRepo.ListNames(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing product names")
		return nil, err
	}
	return names, nil
}

// GetByID returns a single product.
func (s *ProductService) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting product by ID %d", id)
		return nil, err
	}
	return product, nil
}

// ListExtended returns all products with resolved category and supplier names.
func (s *ProductService) ListExtended(ctx context.Context) ([]entity.ProductExtended, error) {
	products, err := s.productRepo.ListExtended(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing extended products")
		return nil, err
	}
	return products, nil
}

// Orders returns the orders placed for a product, each with its computed
// total price.
func (s *ProductService) Orders(ctx context.Context, productID int) ([]entity.ProductOrder, error) {
	lines, err := s.productRepo.Orders(ctx, productID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting orders for product %d", productID)
		return nil, err
	}

	orders := make([]entity.ProductOrder, 0, len(lines))
	for _, line := range lines {
		orders = append(orders, entity.ProductOrder{
			ID:         line.OrderID,
			Customer:   line.Customer,
			Quantity:   line.Quantity,
			TotalPrice: TotalPrice(line.UnitPrice, line.Quantity, line.Discount),
		})
	}

	return orders, nil
}
