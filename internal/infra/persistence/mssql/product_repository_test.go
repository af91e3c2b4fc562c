package mssql

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	summaryColumns = []string{
		"idProduct", "name", "mainImageUrl", "price", "originalPrice", "averageRating",
		"reviewCount", "confectionerName", "isAvailable", "preparationTime",
	}
	detailColumns = []string{
		"idProduct", "name", "description", "ingredients", "basePrice", "promotionalPrice",
		"averageRating", "reviewCount", "isAvailable", "preparationTime",
	}
	imageColumns        = []string{"imageUrl", "displayOrder"}
	flavorColumns       = []string{"idFlavor", "name"}
	sizeColumns         = []string{"idSize", "name", "description", "priceModifier"}
	reviewColumns       = []string{"idProductReview", "customerName", "rating", "comment", "dateCreated"}
	confectionerColumns = []string{"idConfectioner", "name", "profilePictureUrl", "averageRating", "productsSold"}
	optionColumns       = []string{"id", "name"}
	sizeOptionColumns   = []string{"idSize", "name", "description"}
)

type productRepositoryFixtures struct {
	repo repository.ProductRepository
	mock sqlmock.Sqlmock
}

func createTestProductRepository(t *testing.T) *productRepositoryFixtures {
	t.Helper()

	pool, mock := newMockPool(t, testDatabaseConfig())

	return &productRepositoryFixtures{
		repo: NewProductRepository(NewInvoker(pool, time.Second)),
		mock: mock,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestProductRepository_ListProducts(t *testing.T) {
	fx := createTestProductRepository(t)

	fx.mock.ExpectQuery(procProductList).
		WithArgs(
			sql.Named("categoryIds", "[1,2]"),
			sql.Named("confectionerIds", nil),
			sql.Named("flavorIds", nil),
			sql.Named("idAccount", int64(1)),
			sql.Named("maxPrice", 50.0),
			sql.Named("minPrice", nil),
			sql.Named("pageNumber", 2),
			sql.Named("pageSize", 12),
			sql.Named("searchTerm", "cake"),
			sql.Named("sizeIds", nil),
			sql.Named("sortBy", "price_asc"),
		).
		WillReturnRows(
			sqlmock.NewRows(summaryColumns).
				AddRow(int64(10), "Carrot cake", "https://cdn/1.jpg", "35.90", nil, 4.5, int64(12), "Ana Doces", true, "2 days").
				AddRow(int64(11), "Cheesecake", "https://cdn/2.jpg", "42.00", "49.90", 4.8, int64(30), "Ana Doces", false, "1 day"),
			sqlmock.NewRows([]string{"totalRecords"}).AddRow(int64(30)),
		)

	products, total, err := fx.repo.ListProducts(context.Background(), entity.ProductListParams{
		AccountID:   1,
		PageNumber:  2,
		PageSize:    12,
		SortBy:      entity.SortByPriceAsc,
		SearchTerm:  ptr("cake"),
		MaxPrice:    ptr(50.0),
		CategoryIDs: ptr("[1,2]"),
	})
	require.NoError(t, err)
	require.NoError(t, fx.mock.ExpectationsWereMet())

	assert.Equal(t, 30, total)
	require.Len(t, products, 2)
	assert.Equal(t, int64(10), products[0].IDProduct)
	assert.True(t, decimal.RequireFromString("35.90").Equal(products[0].Price))
	assert.False(t, products[0].OriginalPrice.Valid)
	assert.True(t, products[1].OriginalPrice.Valid)
	assert.True(t, decimal.RequireFromString("49.90").Equal(products[1].OriginalPrice.Decimal))
	assert.False(t, products[1].IsAvailable)
	assert.Equal(t, ptr(4.5), products[0].AverageRating)
	assert.Equal(t, ptr("Ana Doces"), products[0].ConfectionerName)
}

func TestProductRepository_ListProducts_NullColumns(t *testing.T) {
	fx := createTestProductRepository(t)

	fx.mock.ExpectQuery(procProductList).
		WillReturnRows(
			sqlmock.NewRows(summaryColumns).
				AddRow(int64(12), "New pie", nil, "18.00", nil, nil, int64(0), nil, true, nil),
			sqlmock.NewRows([]string{"totalRecords"}).AddRow(int64(1)),
		)

	products, _, err := fx.repo.ListProducts(context.Background(), entity.ProductListParams{
		AccountID: 1, PageNumber: 1, PageSize: 12, SortBy: entity.SortByRelevance,
	})
	require.NoError(t, err)
	require.Len(t, products, 1)

	assert.Nil(t, products[0].MainImageURL)
	assert.Nil(t, products[0].AverageRating)
	assert.Nil(t, products[0].ConfectionerName)
	assert.Nil(t, products[0].PreparationTime)

	body, err := json.Marshal(products[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"idProduct": 12, "name": "New pie", "mainImageUrl": null, "price": 18,
		"originalPrice": null, "averageRating": null, "reviewCount": 0,
		"confectionerName": null, "isAvailable": true, "preparationTime": null
	}`, string(body))
}

func TestProductRepository_ListProducts_MissingTotalDefaultsToZero(t *testing.T) {
	fx := createTestProductRepository(t)

	fx.mock.ExpectQuery(procProductList).
		WillReturnRows(sqlmock.NewRows(summaryColumns))

	products, total, err := fx.repo.ListProducts(context.Background(), entity.ProductListParams{
		AccountID: 1, PageNumber: 1, PageSize: 12, SortBy: entity.SortByRelevance,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, total)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func productGetRows(withDetail bool) []*sqlmock.Rows {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	detail := sqlmock.NewRows(detailColumns)
	if withDetail {
		detail.AddRow(int64(10), "Carrot cake", "Moist", "Carrot, flour", "35.90", "29.90", 4.5, int64(2), true, "2 days")
	}

	return []*sqlmock.Rows{
		detail,
		sqlmock.NewRows(imageColumns).
			AddRow("https://cdn/b.jpg", int64(2)).
			AddRow("https://cdn/a.jpg", int64(1)),
		sqlmock.NewRows(flavorColumns).AddRow(int64(3), "Chocolate"),
		sqlmock.NewRows(sizeColumns).AddRow(int64(1), "Large", "20 slices", "15.00"),
		sqlmock.NewRows(reviewColumns).
			AddRow(int64(100), "Maria", int64(5), "Delicious", created).
			AddRow(int64(101), "João", int64(4), nil, created),
		sqlmock.NewRows(confectionerColumns).AddRow(int64(7), "Ana Doces", nil, 4.9, int64(320)),
	}
}

func TestProductRepository_FindProductByID(t *testing.T) {
	fx := createTestProductRepository(t)

	fx.mock.ExpectQuery(procProductGet).
		WithArgs(sql.Named("idAccount", int64(1)), sql.Named("idProduct", int64(10))).
		WillReturnRows(productGetRows(true)...)

	detail, err := fx.repo.FindProductByID(context.Background(), 1, 10)
	require.NoError(t, err)
	require.NoError(t, fx.mock.ExpectationsWereMet())

	assert.Equal(t, "Carrot cake", detail.Name)
	assert.Equal(t, ptr("Moist"), detail.Description)
	assert.True(t, detail.PromotionalPrice.Valid)
	require.Len(t, detail.Images, 2)
	assert.Equal(t, "https://cdn/a.jpg", detail.Images[0].ImageURL)
	assert.Equal(t, 1, detail.Images[0].DisplayOrder)
	assert.Equal(t, []entity.ProductFlavor{{IDFlavor: 3, Name: "Chocolate"}}, detail.AvailableFlavors)
	require.Len(t, detail.AvailableSizes, 1)
	assert.True(t, decimal.NewFromInt(15).Equal(detail.AvailableSizes[0].PriceModifier))
	require.Len(t, detail.Reviews, 2)
	require.NotNil(t, detail.Reviews[0].Comment)
	assert.Equal(t, "Delicious", *detail.Reviews[0].Comment)
	assert.Nil(t, detail.Reviews[1].Comment)
	require.NotNil(t, detail.Confectioner)
	assert.Equal(t, int64(7), detail.Confectioner.IDConfectioner)
	assert.Nil(t, detail.Confectioner.ProfilePictureURL)
	assert.Equal(t, ptr(4.9), detail.Confectioner.AverageRating)
	assert.Equal(t, 320, detail.Confectioner.ProductsSold)
}

func TestProductRepository_FindProductByID_NotFound(t *testing.T) {
	fx := createTestProductRepository(t)

	fx.mock.ExpectQuery(procProductGet).
		WillReturnRows(productGetRows(false)...)

	detail, err := fx.repo.FindProductByID(context.Background(), 1, 999)

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_FindProductByID_MissingResultSets(t *testing.T) {
	fx := createTestProductRepository(t)

	rows := productGetRows(true)
	fx.mock.ExpectQuery(procProductGet).
		WillReturnRows(rows[:3]...)

	detail, err := fx.repo.FindProductByID(context.Background(), 1, 10)

	assert.Nil(t, detail)
	require.Error(t, err)
	assert.False(t, errors.Is(err, repository.ErrProductNotFound))
	assert.Contains(t, err.Error(), "returned 3 result sets")
}

func TestProductRepository_ListRelatedProducts(t *testing.T) {
	fx := createTestProductRepository(t)

	fx.mock.ExpectQuery(procProductRelatedList).
		WithArgs(sql.Named("count", 4), sql.Named("idAccount", int64(1)), sql.Named("idProduct", int64(10))).
		WillReturnRows(sqlmock.NewRows([]string{"idProduct", "name", "mainImageUrl", "price", "averageRating"}).
			AddRow(int64(11), "Cheesecake", "https://cdn/2.jpg", "42.00", 4.8))

	related, err := fx.repo.ListRelatedProducts(context.Background(), 1, 10, 4)
	require.NoError(t, err)
	require.NoError(t, fx.mock.ExpectationsWereMet())

	require.Len(t, related, 1)
	assert.Equal(t, "Cheesecake", related[0].Name)
}

func TestProductRepository_ListRelatedProducts_Empty(t *testing.T) {
	fx := createTestProductRepository(t)

	fx.mock.ExpectQuery(procProductRelatedList).
		WillReturnRows(sqlmock.NewRows([]string{"idProduct", "name", "mainImageUrl", "price", "averageRating"}))

	related, err := fx.repo.ListRelatedProducts(context.Background(), 1, 10, 4)
	require.NoError(t, err)

	assert.NotNil(t, related)
	assert.Empty(t, related)
}

func TestProductRepository_GetFilterOptions(t *testing.T) {
	fx := createTestProductRepository(t)

	fx.mock.ExpectQuery(procProductFilterOptions).
		WithArgs(sql.Named("idAccount", int64(1))).
		WillReturnRows(
			sqlmock.NewRows(optionColumns).AddRow(int64(1), "Cakes").AddRow(int64(2), "Pies"),
			sqlmock.NewRows(optionColumns).AddRow(int64(3), "Chocolate"),
		)

	options, err := fx.repo.GetFilterOptions(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, fx.mock.ExpectationsWereMet())

	assert.Equal(t, []entity.FilterOption{{ID: 1, Name: "Cakes"}, {ID: 2, Name: "Pies"}}, options.Categories)
	assert.Equal(t, []entity.FilterOption{{ID: 3, Name: "Chocolate"}}, options.Flavors)
	assert.Equal(t, []entity.SizeFilterOption{}, options.Sizes)
	assert.Equal(t, []entity.FilterOption{}, options.Confectioners)
}

func TestProductRepository_GetFilterOptions_SizesSet(t *testing.T) {
	fx := createTestProductRepository(t)

	fx.mock.ExpectQuery(procProductFilterOptions).
		WillReturnRows(
			sqlmock.NewRows(optionColumns),
			sqlmock.NewRows(optionColumns),
			sqlmock.NewRows(sizeOptionColumns).AddRow(int64(1), "Small", "8 slices"),
			sqlmock.NewRows(optionColumns).AddRow(int64(7), "Ana Doces"),
		)

	options, err := fx.repo.GetFilterOptions(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, []entity.SizeFilterOption{{IDSize: 1, Name: "Small", Description: ptr("8 slices")}}, options.Sizes)
	assert.Equal(t, []entity.FilterOption{{ID: 7, Name: "Ana Doces"}}, options.Confectioners)
}
