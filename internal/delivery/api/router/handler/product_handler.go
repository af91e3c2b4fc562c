package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// errAccountNotResolved means the tenant middleware did not run for the route.
var errAccountNotResolved = errors.New("no storefront account resolved for request")

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the public catalog endpoints
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ListProducts handles the filtered, sorted and paginated product list
func (h *ProductHandler) ListProducts(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return errAccountNotResolved
	}

	req, err := bindProductList(c)
	if err != nil {
		return err
	}

	list, err := h.productUC.ListProducts(c.Request().Context(), req.toParams(accountID))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, list.Products, response.Metadata{
		"pagination": list.Pagination,
	})
}

// GetProduct handles a single product with its images, options, reviews and seller
func (h *ProductHandler) GetProduct(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return errAccountNotResolved
	}

	productID, err := bindProductID(c)
	if err != nil {
		return err
	}

	lookup, err := h.productUC.GetProduct(c.Request().Context(), accountID, productID)
	if err != nil {
		return err
	}
	if !lookup.Found() {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Debug("Product not found", slog.Int64("product_id", productID), slog.Int64("account_id", accountID))

		return domainerrors.ErrProductNotFound
	}

	return response.Success(c, http.StatusOK, lookup.Product, nil)
}

// GetRelatedProducts handles the products shown next to a product
func (h *ProductHandler) GetRelatedProducts(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return errAccountNotResolved
	}

	productID, err := bindProductID(c)
	if err != nil {
		return err
	}

	related, err := h.productUC.GetRelatedProducts(c.Request().Context(), accountID, productID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, related, nil)
}

// GetFilterOptions handles the values the catalog can be filtered by
func (h *ProductHandler) GetFilterOptions(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return errAccountNotResolved
	}

	options, err := h.productUC.GetFilterOptions(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, options, nil)
}
