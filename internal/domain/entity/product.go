package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices are JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// SortBy is the closed set of product list orderings.
type SortBy string

const (
	SortByRelevance SortBy = "relevance"
	SortByPriceAsc  SortBy = "price_asc"
	SortByPriceDesc SortBy = "price_desc"
	SortByRating    SortBy = "rating"
	SortByNewest    SortBy = "newest"
)

// ProductListParams is a validated product list query scoped to one account.
// Filter id sets keep the caller's JSON text, e.g. "[1,2,3]".
type ProductListParams struct {
	AccountID       int64
	PageNumber      int
	PageSize        int
	SortBy          SortBy
	SearchTerm      *string
	MinPrice        *float64
	MaxPrice        *float64
	CategoryIDs     *string
	FlavorIDs       *string
	SizeIDs         *string
	ConfectionerIDs *string
}

// ProductSummary is the flat projection shown in product lists.
// Pointer fields are null when the catalog has no value, e.g. an unrated product.
type ProductSummary struct {
	IDProduct        int64               `json:"idProduct"`
	Name             string              `json:"name"`
	MainImageURL     *string             `json:"mainImageUrl"`
	Price            decimal.Decimal     `json:"price"`
	OriginalPrice    decimal.NullDecimal `json:"originalPrice"`
	AverageRating    *float64            `json:"averageRating"`
	ReviewCount      int                 `json:"reviewCount"`
	ConfectionerName *string             `json:"confectionerName"`
	IsAvailable      bool                `json:"isAvailable"`
	PreparationTime  *string             `json:"preparationTime"`
}

// ProductList is one page of products.
type ProductList struct {
	Products   []ProductSummary
	Pagination Pagination
}

type ProductImage struct {
	ImageURL     string `json:"imageUrl"`
	DisplayOrder int    `json:"displayOrder"`
}

type ProductFlavor struct {
	IDFlavor int64  `json:"idFlavor"`
	Name     string `json:"name"`
}

type ProductSize struct {
	IDSize        int64           `json:"idSize"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	PriceModifier decimal.Decimal `json:"priceModifier"`
}

type ProductReview struct {
	IDProductReview int64     `json:"idProductReview"`
	CustomerName    string    `json:"customerName"`
	Rating          int       `json:"rating"`
	Comment         *string   `json:"comment"`
	DateCreated     time.Time `json:"dateCreated"`
}

// ConfectionerInfo is the seller of a product.
type ConfectionerInfo struct {
	IDConfectioner    int64    `json:"idConfectioner"`
	Name              string   `json:"name"`
	ProfilePictureURL *string  `json:"profilePictureUrl"`
	AverageRating     *float64 `json:"averageRating"`
	ProductsSold      int      `json:"productsSold"`
}

// ProductDetail is a product with its images, flavors, sizes, reviews and seller.
type ProductDetail struct {
	IDProduct        int64               `json:"idProduct"`
	Name             string              `json:"name"`
	Description      *string             `json:"description"`
	Ingredients      *string             `json:"ingredients"`
	BasePrice        decimal.Decimal     `json:"basePrice"`
	PromotionalPrice decimal.NullDecimal `json:"promotionalPrice"`
	AverageRating    *float64            `json:"averageRating"`
	ReviewCount      int                 `json:"reviewCount"`
	IsAvailable      bool                `json:"isAvailable"`
	PreparationTime  *string             `json:"preparationTime"`
	Images           []ProductImage      `json:"images"`
	AvailableFlavors []ProductFlavor     `json:"availableFlavors"`
	AvailableSizes   []ProductSize       `json:"availableSizes"`
	Reviews          []ProductReview     `json:"reviews"`
	Confectioner     *ConfectionerInfo   `json:"confectioner"`
}

// ProductLookup is the outcome of fetching one product: either found or not.
type ProductLookup struct {
	Product *ProductDetail
}

// Found reports whether the lookup produced a product.
func (l ProductLookup) Found() bool {
	return l.Product != nil
}

type RelatedProduct struct {
	IDProduct     int64           `json:"idProduct"`
	Name          string          `json:"name"`
	MainImageURL  *string         `json:"mainImageUrl"`
	Price         decimal.Decimal `json:"price"`
	AverageRating *float64        `json:"averageRating"`
}

type FilterOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SizeFilterOption struct {
	IDSize      int64   `json:"idSize"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// FilterOptions holds every value a catalog can be filtered by.
type FilterOptions struct {
	Categories    []FilterOption     `json:"categories"`
	Flavors       []FilterOption     `json:"flavors"`
	Sizes         []SizeFilterOption `json:"sizes"`
	Confectioners []FilterOption     `json:"confectioners"`
}
