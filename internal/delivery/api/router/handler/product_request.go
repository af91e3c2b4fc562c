package handler

import (
	"math"
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageNumber = 1
	defaultPageSize   = 12

	// maxSafeInteger is the largest integer a JSON number carries exactly.
	maxSafeInteger = 1<<53 - 1
)

// ProductListRequest represents the query string of the product list
type ProductListRequest struct {
	PageNumber      int      `query:"pageNumber" validate:"gt=0"`
	PageSize        int      `query:"pageSize" validate:"gt=0,max=36"`
	SortBy          string   `query:"sortBy" validate:"oneof=relevance price_asc price_desc rating newest"`
	SearchTerm      *string  `query:"searchTerm" validate:"omitempty,max=100"`
	MinPrice        *float64 `query:"minPrice" validate:"omitempty,min=0"`
	MaxPrice        *float64 `query:"maxPrice" validate:"omitempty,min=0,gtefieldopt=MinPrice"`
	CategoryIDs     *string  `query:"categoryIds" validate:"omitempty,jsonnumarray"`
	FlavorIDs       *string  `query:"flavorIds" validate:"omitempty,jsonnumarray"`
	SizeIDs         *string  `query:"sizeIds" validate:"omitempty,jsonnumarray"`
	ConfectionerIDs *string  `query:"confectionerIds" validate:"omitempty,jsonnumarray"`
}

// ProductIDRequest represents the :id path parameter
type ProductIDRequest struct {
	ID int64 `param:"id" validate:"gt=0"`
}

func (r ProductListRequest) toParams(accountID int64) entity.ProductListParams {
	return entity.ProductListParams{
		AccountID:       accountID,
		PageNumber:      r.PageNumber,
		PageSize:        r.PageSize,
		SortBy:          entity.SortBy(r.SortBy),
		SearchTerm:      r.SearchTerm,
		MinPrice:        r.MinPrice,
		MaxPrice:        r.MaxPrice,
		CategoryIDs:     r.CategoryIDs,
		FlavorIDs:       r.FlavorIDs,
		SizeIDs:         r.SizeIDs,
		ConfectionerIDs: r.ConfectionerIDs,
	}
}

// bindProductList fills the list request from the query string, applying defaults for
// absent parameters, and validates it. All violations are reported together.
func bindProductList(c echo.Context) (ProductListRequest, error) {
	req := ProductListRequest{
		PageNumber: defaultPageNumber,
		PageSize:   defaultPageSize,
		SortBy:     string(entity.SortByRelevance),
	}

	b := echo.QueryParamsBinder(c).FailFast(false)
	b.CustomFunc("pageNumber", integer("pageNumber", &req.PageNumber))
	b.CustomFunc("pageSize", integer("pageSize", &req.PageSize))
	b.CustomFunc("sortBy", text(&req.SortBy))
	b.CustomFunc("searchTerm", optionalText(&req.SearchTerm))
	b.CustomFunc("minPrice", optionalNumber("minPrice", &req.MinPrice))
	b.CustomFunc("maxPrice", optionalNumber("maxPrice", &req.MaxPrice))
	b.CustomFunc("categoryIds", optionalText(&req.CategoryIDs))
	b.CustomFunc("flavorIds", optionalText(&req.FlavorIDs))
	b.CustomFunc("sizeIds", optionalText(&req.SizeIDs))
	b.CustomFunc("confectionerIds", optionalText(&req.ConfectionerIDs))

	return req, validate(c, &req, b.BindErrors())
}

// bindProductID reads and validates the :id path parameter.
func bindProductID(c echo.Context) (int64, error) {
	var req ProductIDRequest

	b := echo.PathParamsBinder(c).FailFast(false)
	b.CustomFunc("id", integer("id", &req.ID))

	return req.ID, validate(c, &req, b.BindErrors())
}

// validate merges binding failures with the validator's violations. A field that failed
// to bind is not validated again, so it is reported once.
func validate(c echo.Context, req any, bindErrs []error) error {
	violations := make([]domainerrors.FieldViolation, 0, len(bindErrs))
	failed := make(map[string]bool, len(bindErrs))

	for _, err := range bindErrs {
		var bindingErr *echo.BindingError
		if !errors.As(err, &bindingErr) {
			return errors.Wrap(err, "failed to bind request")
		}
		violations = append(violations, domainerrors.FieldViolation{
			Path:    bindingErr.Field,
			Message: bindingMessage(bindingErr),
		})
		failed[bindingErr.Field] = true
	}

	if err := c.Validate(req); err != nil {
		var validationErr *domainerrors.ValidationError
		if !errors.As(err, &validationErr) {
			return errors.Wrap(err, "failed to validate request")
		}
		for _, v := range validationErr.Violations {
			if !failed[v.Path] {
				violations = append(violations, v)
			}
		}
	}

	if len(violations) == 0 {
		return nil
	}

	return domainerrors.NewValidationError(violations...)
}

func bindingMessage(err *echo.BindingError) string {
	if msg, ok := err.Message.(string); ok {
		return msg
	}

	return "Invalid input"
}

// parseNumber reads a query value the way a JSON client means it: surrounding space is
// ignored and only finite numbers are accepted.
func parseNumber(param, raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) {
		return 0, echo.NewBindingError(param, []string{raw}, "Expected number, received nan", err)
	}
	if math.IsInf(f, 0) {
		return 0, echo.NewBindingError(param, []string{raw}, "Number must be finite", nil)
	}

	return f, nil
}

// integer binds a whole number. An empty value keeps the current (default) value.
func integer[T int | int64](param string, dest *T) func(values []string) []error {
	return func(values []string) []error {
		raw := values[0]
		if strings.TrimSpace(raw) == "" {
			return nil
		}

		f, err := parseNumber(param, raw)
		if err != nil {
			return []error{err}
		}
		if f != math.Trunc(f) {
			return []error{echo.NewBindingError(param, values, "Expected integer, received float", nil)}
		}
		if math.Abs(f) > maxSafeInteger {
			return []error{echo.NewBindingError(param, values,
				"Number must be less than or equal to "+strconv.FormatInt(maxSafeInteger, 10), nil)}
		}

		*dest = T(f)

		return nil
	}
}

func optionalNumber(param string, dest **float64) func(values []string) []error {
	return func(values []string) []error {
		raw := values[0]
		if strings.TrimSpace(raw) == "" {
			return nil
		}

		f, err := parseNumber(param, raw)
		if err != nil {
			return []error{err}
		}

		*dest = &f

		return nil
	}
}

func text(dest *string) func(values []string) []error {
	return func(values []string) []error {
		if values[0] != "" {
			*dest = values[0]
		}

		return nil
	}
}

// optionalText leaves dest nil for an empty value.
func optionalText(dest **string) func(values []string) []error {
	return func(values []string) []error {
		if values[0] == "" {
			return nil
		}

		v := values[0]
		*dest = &v

		return nil
	}
}
