package impl

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service instance
func NewProductService(productRepo repository.ProductRepository) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
	}
}

// ListProducts fetches a page of products and derives its pagination
func (s *productService) ListProducts(ctx context.Context, params entity.ProductListParams) (*entity.ProductList, error) {
	products, total, err := s.productRepo.ListProducts(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &entity.ProductList{
		Products:   products,
		Pagination: entity.NewPagination(params.PageNumber, params.PageSize, total),
	}, nil
}

// GetProduct fetches the product detail
func (s *productService) GetProduct(ctx context.Context, accountID, productID int64) (entity.ProductLookup, error) {
	product, err := s.productRepo.FindProductByID(ctx, accountID, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return entity.ProductLookup{}, nil
	}
	if err != nil {
		return entity.ProductLookup{}, errors.Wrap(err, "failed to find product by ID")
	}

	return entity.ProductLookup{Product: product}, nil
}

// GetRelatedProducts fetches the products shown next to productID
func (s *productService) GetRelatedProducts(ctx context.Context, accountID, productID int64) ([]entity.RelatedProduct, error) {
	related, err := s.productRepo.ListRelatedProducts(ctx, accountID, productID, usecase.RelatedProductsCount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list related products")
	}

	if related == nil {
		related = []entity.RelatedProduct{}
	}

	return related, nil
}

// GetFilterOptions fetches the catalog filter values
func (s *productService) GetFilterOptions(ctx context.Context, accountID int64) (*entity.FilterOptions, error) {
	options, err := s.productRepo.GetFilterOptions(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get filter options")
	}

	return options, nil
}
