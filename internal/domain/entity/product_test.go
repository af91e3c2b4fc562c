package entity

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		totalRecords int
		wantPages    int
	}{
		{name: "no records", page: 1, pageSize: 12, totalRecords: 0, wantPages: 0},
		{name: "partial last page", page: 2, pageSize: 12, totalRecords: 30, wantPages: 3},
		{name: "exact multiple", page: 1, pageSize: 12, totalRecords: 24, wantPages: 2},
		{name: "single record", page: 1, pageSize: 36, totalRecords: 1, wantPages: 1},
		{name: "page size one", page: 5, pageSize: 1, totalRecords: 7, wantPages: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.pageSize, tt.totalRecords)

			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.pageSize, p.PageSize)
			assert.Equal(t, tt.totalRecords, p.TotalRecords)
			assert.Equal(t, tt.wantPages, p.TotalPages)
		})
	}
}

func TestProductLookup_Found(t *testing.T) {
	assert.False(t, ProductLookup{}.Found())
	assert.True(t, ProductLookup{Product: &ProductDetail{IDProduct: 1}}.Found())
}

func TestProductSummary_JSONPricesAreNumbers(t *testing.T) {
	summary := ProductSummary{
		IDProduct: 3,
		Name:      "Red velvet",
		Price:     decimal.RequireFromString("42.50"),
	}

	raw, err := json.Marshal(summary)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, 42.5, decoded["price"])
	assert.Nil(t, decoded["originalPrice"])
	assert.Equal(t, "Red velvet", decoded["name"])
}
