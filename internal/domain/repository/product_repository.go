// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when no product matches the id within the account.
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the catalog read operations.
type ProductRepository interface {
	// ListProducts returns one filtered, sorted page of products and the total number of matches.
	ListProducts(ctx context.Context, params entity.ProductListParams) ([]entity.ProductSummary, int, error)

	// FindProductByID returns the full product detail or ErrProductNotFound.
	FindProductByID(ctx context.Context, accountID, productID int64) (*entity.ProductDetail, error)

	// ListRelatedProducts returns up to count products related to productID.
	ListRelatedProducts(ctx context.Context, accountID, productID int64, count int) ([]entity.RelatedProduct, error)

	// GetFilterOptions returns every category, flavor, size and confectioner of the account.
	GetFilterOptions(ctx context.Context, accountID int64) (*entity.FilterOptions, error)
}
