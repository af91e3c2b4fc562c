// Package model holds the typed rows returned by the catalog stored procedures.
// Field columns follow the procedures' result-set column names. Columns the
// procedures may return as NULL are pointers.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSummaryRow is one row of the first [functional].[spProductList] result set.
type ProductSummaryRow struct {
	IDProduct        int64               `gorm:"column:idProduct"`
	Name             string              `gorm:"column:name"`
	MainImageURL     *string             `gorm:"column:mainImageUrl"`
	Price            decimal.Decimal     `gorm:"column:price"`
	OriginalPrice    decimal.NullDecimal `gorm:"column:originalPrice"`
	AverageRating    *float64            `gorm:"column:averageRating"`
	ReviewCount      int                 `gorm:"column:reviewCount"`
	ConfectionerName *string             `gorm:"column:confectionerName"`
	IsAvailable      bool                `gorm:"column:isAvailable"`
	PreparationTime  *string             `gorm:"column:preparationTime"`
}

// TotalRecordsRow is the count row of the second [functional].[spProductList] result set.
type TotalRecordsRow struct {
	TotalRecords int `gorm:"column:totalRecords"`
}

// ProductDetailRow is the first [functional].[spProductGet] result set.
type ProductDetailRow struct {
	IDProduct        int64               `gorm:"column:idProduct"`
	Name             string              `gorm:"column:name"`
	Description      *string             `gorm:"column:description"`
	Ingredients      *string             `gorm:"column:ingredients"`
	BasePrice        decimal.Decimal     `gorm:"column:basePrice"`
	PromotionalPrice decimal.NullDecimal `gorm:"column:promotionalPrice"`
	AverageRating    *float64            `gorm:"column:averageRating"`
	ReviewCount      int                 `gorm:"column:reviewCount"`
	IsAvailable      bool                `gorm:"column:isAvailable"`
	PreparationTime  *string             `gorm:"column:preparationTime"`
}

type ProductImageRow struct {
	ImageURL     string `gorm:"column:imageUrl"`
	DisplayOrder int    `gorm:"column:displayOrder"`
}

type ProductFlavorRow struct {
	IDFlavor int64  `gorm:"column:idFlavor"`
	Name     string `gorm:"column:name"`
}

type ProductSizeRow struct {
	IDSize        int64           `gorm:"column:idSize"`
	Name          string          `gorm:"column:name"`
	Description   *string         `gorm:"column:description"`
	PriceModifier decimal.Decimal `gorm:"column:priceModifier"`
}

type ProductReviewRow struct {
	IDProductReview int64     `gorm:"column:idProductReview"`
	CustomerName    string    `gorm:"column:customerName"`
	Rating          int       `gorm:"column:rating"`
	Comment         *string   `gorm:"column:comment"`
	DateCreated     time.Time `gorm:"column:dateCreated"`
}

type ConfectionerRow struct {
	IDConfectioner    int64    `gorm:"column:idConfectioner"`
	Name              string   `gorm:"column:name"`
	ProfilePictureURL *string  `gorm:"column:profilePictureUrl"`
	AverageRating     *float64 `gorm:"column:averageRating"`
	ProductsSold      int      `gorm:"column:productsSold"`
}

// RelatedProductRow is one row of [functional].[spProductRelatedList].
type RelatedProductRow struct {
	IDProduct     int64           `gorm:"column:idProduct"`
	Name          string          `gorm:"column:name"`
	MainImageURL  *string         `gorm:"column:mainImageUrl"`
	Price         decimal.Decimal `gorm:"column:price"`
	AverageRating *float64        `gorm:"column:averageRating"`
}

// FilterOptionRow serves the category, flavor and confectioner sets of
// [functional].[spProductFilterOptionsList].
type FilterOptionRow struct {
	ID   int64  `gorm:"column:id"`
	Name string `gorm:"column:name"`
}

type SizeFilterOptionRow struct {
	IDSize      int64   `gorm:"column:idSize"`
	Name        string  `gorm:"column:name"`
	Description *string `gorm:"column:description"`
}
