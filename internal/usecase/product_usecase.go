package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RelatedProductsCount is how many related products a product page shows.
const RelatedProductsCount = 4

// ProductUsecase defines the catalog queries of the storefront
type ProductUsecase interface {
	// ListProducts returns one page of products with its pagination
	ListProducts(ctx context.Context, params entity.ProductListParams) (*entity.ProductList, error)

	// GetProduct looks a product up; a missing product is a lookup without a product, not an error
	GetProduct(ctx context.Context, accountID, productID int64) (entity.ProductLookup, error)

	// GetRelatedProducts returns up to RelatedProductsCount products related to productID
	GetRelatedProducts(ctx context.Context, accountID, productID int64) ([]entity.RelatedProduct, error)

	// GetFilterOptions returns the values the catalog can be filtered by
	GetFilterOptions(ctx context.Context, accountID int64) (*entity.FilterOptions, error)
}
