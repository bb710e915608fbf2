package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"coldmart/internal/services"
)

// OrderHandlers handles inbound and outbound order HTTP requests.
type OrderHandlers struct {
	orderService services.OrderService
}

func NewOrderHandlers(orderService services.OrderService) *OrderHandlers {
	return &OrderHandlers{orderService: orderService}
}

// InboundLineRequest is one expected line on a new inbound order.
type InboundLineRequest struct {
	ProductID   uuid.UUID `json:"product_id" validate:"required"`
	LotNo       string    `json:"lot_no" validate:"required"`
	ExpectedQty int       `json:"expected_qty" validate:"required,gt=0"`
}

// CreateInboundRequest represents the inbound order creation payload.
type CreateInboundRequest struct {
	SupplierName string               `json:"supplier_name" validate:"required"`
	ETA          *time.Time           `json:"eta"`
	Lines        []InboundLineRequest `json:"lines" validate:"required,min=1,dive"`
}

func (h *OrderHandlers) CreateInbound(c echo.Context) error {
	var req CreateInboundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lines := make([]services.InboundLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, services.InboundLineInput{
			ProductID:   l.ProductID,
			LotNo:       l.LotNo,
			ExpectedQty: l.ExpectedQty,
		})
	}
	order, err := h.orderService.CreateInbound(c.Request().Context(), req.SupplierName, req.ETA, lines)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandlers) ListInbound(c echo.Context) error {
	orders, err := h.orderService.ListInbound(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"orders": orders})
}

func (h *OrderHandlers) GetInbound(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	order, err := h.orderService.GetInbound(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, order)
}

// ReceiveRequest records quantity received against one inbound line.
type ReceiveRequest struct {
	LineID uuid.UUID `json:"line_id" validate:"required"`
	Qty    int       `json:"qty" validate:"required,gt=0"`
}

func (h *OrderHandlers) ReceiveInbound(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req ReceiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.orderService.ReceiveInbound(c.Request().Context(), id, req.LineID, req.Qty)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandlers) CancelInbound(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	order, err := h.orderService.CancelInbound(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, order)
}

// OutboundLineRequest is one requested line on a new outbound order.
type OutboundLineRequest struct {
	ProductID  uuid.UUID `json:"product_id" validate:"required"`
	OrderedQty int       `json:"ordered_qty" validate:"required,gt=0"`
}

// CreateOutboundRequest represents the outbound order creation payload.
type CreateOutboundRequest struct {
	CustomerName string                `json:"customer_name" validate:"required"`
	ShipBy       *time.Time            `json:"ship_by"`
	Lines        []OutboundLineRequest `json:"lines" validate:"required,min=1,dive"`
}

func (h *OrderHandlers) CreateOutbound(c echo.Context) error {
	var req CreateOutboundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lines := make([]services.OutboundLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, services.OutboundLineInput{
			ProductID:  l.ProductID,
			OrderedQty: l.OrderedQty,
		})
	}
	order, err := h.orderService.CreateOutbound(c.Request().Context(), req.CustomerName, req.ShipBy, lines)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandlers) ListOutbound(c echo.Context) error {
	orders, err := h.orderService.ListOutbound(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"orders": orders})
}

func (h *OrderHandlers) GetOutbound(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	order, err := h.orderService.GetOutbound(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, order)
}

// PickRequest records quantity picked against one outbound line.
type PickRequest struct {
	LineID uuid.UUID `json:"line_id" validate:"required"`
	Qty    int       `json:"qty" validate:"required,gt=0"`
}

func (h *OrderHandlers) PickOutbound(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req PickRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.orderService.PickOutbound(c.Request().Context(), id, req.LineID, req.Qty)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandlers) ShipOutbound(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	order, err := h.orderService.ShipOutbound(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandlers) CancelOutbound(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	order, err := h.orderService.CancelOutbound(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, order)
}
