package entity

// Pagination describes where a page sits in the full result.
type Pagination struct {
	Page         int `json:"page"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
}

// NewPagination derives the page count: ceil(totalRecords / pageSize).
func NewPagination(page, pageSize, totalRecords int) Pagination {
	totalPages := 0
	if pageSize > 0 && totalRecords > 0 {
		totalPages = (totalRecords + pageSize - 1) / pageSize
	}

	return Pagination{
		Page:         page,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
		TotalPages:   totalPages,
	}
}
