// Package mssql contains the SQL Server implementation of the persistence layer: the connection
// pool, the stored-procedure invoker and the repositories built on them.
package mssql

import (
	"context"
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"
)

// Catalog procedures. Names, parameter names and result-set order are fixed by the database.
const (
	procProductList          = "[functional].[spProductList]"
	procProductGet           = "[functional].[spProductGet]"
	procProductRelatedList   = "[functional].[spProductRelatedList]"
	procProductFilterOptions = "[functional].[spProductFilterOptionsList]"
)

const productGetResultSets = 6

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	invoker *Invoker
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(invoker *Invoker) repository.ProductRepository {
	return &productRepository{
		invoker: invoker,
	}
}

// ListProducts runs spProductList; absent filters are sent as NULL.
func (repo *productRepository) ListProducts(ctx context.Context, params entity.ProductListParams) ([]entity.ProductSummary, int, error) {
	var (
		rows  []model.ProductSummaryRow
		total []model.TotalRecordsRow
	)

	_, err := repo.invoker.Invoke(ctx, procProductList, Params{
		"idAccount":       params.AccountID,
		"pageNumber":      params.PageNumber,
		"pageSize":        params.PageSize,
		"sortBy":          string(params.SortBy),
		"searchTerm":      nullable(params.SearchTerm),
		"minPrice":        nullable(params.MinPrice),
		"maxPrice":        nullable(params.MaxPrice),
		"categoryIds":     nullable(params.CategoryIDs),
		"flavorIds":       nullable(params.FlavorIDs),
		"sizeIds":         nullable(params.SizeIDs),
		"confectionerIds": nullable(params.ConfectionerIDs),
	}, ExpectMulti, Into(&rows), Into(&total))
	if err != nil {
		return nil, 0, err
	}

	totalRecords := 0
	if len(total) > 0 {
		totalRecords = total[0].TotalRecords
	}

	products := make([]entity.ProductSummary, 0, len(rows))
	for i := range rows {
		products = append(products, toProductSummaryDomain(&rows[i]))
	}

	return products, totalRecords, nil
}

// FindProductByID runs spProductGet and assembles the detail from its six result sets.
func (repo *productRepository) FindProductByID(ctx context.Context, accountID, productID int64) (*entity.ProductDetail, error) {
	var (
		details       []model.ProductDetailRow
		images        []model.ProductImageRow
		flavors       []model.ProductFlavorRow
		sizes         []model.ProductSizeRow
		reviews       []model.ProductReviewRow
		confectioners []model.ConfectionerRow
	)

	sets, err := repo.invoker.Invoke(ctx, procProductGet, Params{
		"idProduct": productID,
		"idAccount": accountID,
	}, ExpectMulti,
		Into(&details), Into(&images), Into(&flavors), Into(&sizes), Into(&reviews), Into(&confectioners),
	)
	if err != nil {
		return nil, err
	}

	if len(details) == 0 {
		return nil, repository.ErrProductNotFound
	}

	if sets < productGetResultSets {
		return nil, errors.Errorf("%s returned %d result sets, want %d", procProductGet, sets, productGetResultSets)
	}

	detail := toProductDetailDomain(&details[0])
	detail.Images = toProductImagesDomain(images)
	detail.AvailableFlavors = mapRows(flavors, toProductFlavorDomain)
	detail.AvailableSizes = mapRows(sizes, toProductSizeDomain)
	detail.Reviews = mapRows(reviews, toProductReviewDomain)
	if len(confectioners) > 0 {
		detail.Confectioner = toConfectionerDomain(&confectioners[0])
	}

	return detail, nil
}

// ListRelatedProducts runs spProductRelatedList. No matches is an empty slice, not an error.
func (repo *productRepository) ListRelatedProducts(ctx context.Context, accountID, productID int64, count int) ([]entity.RelatedProduct, error) {
	var rows []model.RelatedProductRow

	if _, err := repo.invoker.Invoke(ctx, procProductRelatedList, Params{
		"idProduct": productID,
		"idAccount": accountID,
		"count":     count,
	}, ExpectMulti, Into(&rows)); err != nil {
		return nil, err
	}

	return mapRows(rows, toRelatedProductDomain), nil
}

// GetFilterOptions runs spProductFilterOptionsList. Sets are positional: categories, flavors,
// sizes, confectioners. A missing set is empty.
func (repo *productRepository) GetFilterOptions(ctx context.Context, accountID int64) (*entity.FilterOptions, error) {
	var (
		categories    []model.FilterOptionRow
		flavors       []model.FilterOptionRow
		sizes         []model.SizeFilterOptionRow
		confectioners []model.FilterOptionRow
	)

	if _, err := repo.invoker.Invoke(ctx, procProductFilterOptions, Params{
		"idAccount": accountID,
	}, ExpectMulti, Into(&categories), Into(&flavors), Into(&sizes), Into(&confectioners)); err != nil {
		return nil, err
	}

	return &entity.FilterOptions{
		Categories:    mapRows(categories, toFilterOptionDomain),
		Flavors:       mapRows(flavors, toFilterOptionDomain),
		Sizes:         mapRows(sizes, toSizeFilterOptionDomain),
		Confectioners: mapRows(confectioners, toFilterOptionDomain),
	}, nil
}

// nullable turns an absent optional into a NULL parameter.
func nullable[T any](v *T) any {
	if v == nil {
		return nil
	}

	return *v
}

// --- Mapper Functions ---

// mapRows converts every row and never returns nil, so empty collections encode as [].
func mapRows[R, E any](rows []R, convert func(*R) E) []E {
	out := make([]E, 0, len(rows))
	for i := range rows {
		out = append(out, convert(&rows[i]))
	}

	return out
}

func toProductSummaryDomain(data *model.ProductSummaryRow) entity.ProductSummary {
	return entity.ProductSummary{
		IDProduct:        data.IDProduct,
		Name:             data.Name,
		MainImageURL:     data.MainImageURL,
		Price:            data.Price,
		OriginalPrice:    data.OriginalPrice,
		AverageRating:    data.AverageRating,
		ReviewCount:      data.ReviewCount,
		ConfectionerName: data.ConfectionerName,
		IsAvailable:      data.IsAvailable,
		PreparationTime:  data.PreparationTime,
	}
}

func toProductDetailDomain(data *model.ProductDetailRow) *entity.ProductDetail {
	return &entity.ProductDetail{
		IDProduct:        data.IDProduct,
		Name:             data.Name,
		Description:      data.Description,
		Ingredients:      data.Ingredients,
		BasePrice:        data.BasePrice,
		PromotionalPrice: data.PromotionalPrice,
		AverageRating:    data.AverageRating,
		ReviewCount:      data.ReviewCount,
		IsAvailable:      data.IsAvailable,
		PreparationTime:  data.PreparationTime,
	}
}

// toProductImagesDomain keeps images in display order.
func toProductImagesDomain(rows []model.ProductImageRow) []entity.ProductImage {
	images := mapRows(rows, func(data *model.ProductImageRow) entity.ProductImage {
		return entity.ProductImage{
			ImageURL:     data.ImageURL,
			DisplayOrder: data.DisplayOrder,
		}
	})
	slices.SortStableFunc(images, func(a, b entity.ProductImage) int {
		return a.DisplayOrder - b.DisplayOrder
	})

	return images
}

func toProductFlavorDomain(data *model.ProductFlavorRow) entity.ProductFlavor {
	return entity.ProductFlavor{
		IDFlavor: data.IDFlavor,
		Name:     data.Name,
	}
}

func toProductSizeDomain(data *model.ProductSizeRow) entity.ProductSize {
	return entity.ProductSize{
		IDSize:        data.IDSize,
		Name:          data.Name,
		Description:   data.Description,
		PriceModifier: data.PriceModifier,
	}
}

func toProductReviewDomain(data *model.ProductReviewRow) entity.ProductReview {
	return entity.ProductReview{
		IDProductReview: data.IDProductReview,
		CustomerName:    data.CustomerName,
		Rating:          data.Rating,
		Comment:         data.Comment,
		DateCreated:     data.DateCreated,
	}
}

func toConfectionerDomain(data *model.ConfectionerRow) *entity.ConfectionerInfo {
	return &entity.ConfectionerInfo{
		IDConfectioner:    data.IDConfectioner,
		Name:              data.Name,
		ProfilePictureURL: data.ProfilePictureURL,
		AverageRating:     data.AverageRating,
		ProductsSold:      data.ProductsSold,
	}
}

func toRelatedProductDomain(data *model.RelatedProductRow) entity.RelatedProduct {
	return entity.RelatedProduct{
		IDProduct:     data.IDProduct,
		Name:          data.Name,
		MainImageURL:  data.MainImageURL,
		Price:         data.Price,
		AverageRating: data.AverageRating,
	}
}

func toFilterOptionDomain(data *model.FilterOptionRow) entity.FilterOption {
	return entity.FilterOption{
		ID:   data.ID,
		Name: data.Name,
	}
}

func toSizeFilterOptionDomain(data *model.SizeFilterOptionRow) entity.SizeFilterOption {
	return entity.SizeFilterOption{
		IDSize:      data.IDSize,
		Name:        data.Name,
		Description: data.Description,
	}
}
