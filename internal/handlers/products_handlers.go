package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coldmart/internal/models"
	"coldmart/internal/services"
)

// ProductHandlers handles product catalog HTTP requests.
type ProductHandlers struct {
	productService services.ProductService
}

func NewProductHandlers(productService services.ProductService) *ProductHandlers {
	return &ProductHandlers{productService: productService}
}

func (h *ProductHandlers) ListProducts(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"products": products})
}

func (h *ProductHandlers) GetProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	product, err := h.productService.GetByID(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, product)
}

// CreateProductRequest represents the product creation payload.
type CreateProductRequest struct {
	SKU           string           `json:"sku" validate:"required"`
	Name          string           `json:"name" validate:"required"`
	TempClass     models.TempClass `json:"temp_class" validate:"required"`
	ShelfLifeDays int              `json:"shelf_life_days" validate:"required,gt=0"`
	UnitPrice     float64          `json:"unit_price" validate:"gte=0"`
}

func (h *ProductHandlers) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product := &models.Product{
		SKU:           req.SKU,
		Name:          req.Name,
		TempClass:     req.TempClass,
		ShelfLifeDays: req.ShelfLifeDays,
		UnitPrice:     req.UnitPrice,
	}
	if err := h.productService.Create(c.Request().Context(), product); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, product)
}

// UpdateProductRequest represents a partial product patch.
type UpdateProductRequest struct {
	Name          *string           `json:"name"`
	TempClass     *models.TempClass `json:"temp_class"`
	ShelfLifeDays *int              `json:"shelf_life_days"`
	UnitPrice     *float64          `json:"unit_price"`
}

func (h *ProductHandlers) UpdateProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	product, err := h.productService.Update(c.Request().Context(), id, services.ProductUpdate{
		Name:          req.Name,
		TempClass:     req.TempClass,
		ShelfLifeDays: req.ShelfLifeDays,
		UnitPrice:     req.UnitPrice,
	})
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandlers) DeleteProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.productService.Delete(c.Request().Context(), id); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
