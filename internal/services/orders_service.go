package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"coldmart/internal/common"
	"coldmart/internal/models"
	"coldmart/internal/repositories"
)

// InboundLineInput describes one requested line on a new inbound order.
type InboundLineInput struct {
	ProductID   uuid.UUID
	LotNo       string
	ExpectedQty int
}

// OutboundLineInput describes one requested line on a new outbound order.
type OutboundLineInput struct {
	ProductID  uuid.UUID
	OrderedQty int
}

type OrderService interface {
	CreateInbound(ctx context.Context, supplierName string, eta *time.Time, lines []InboundLineInput) (*models.InboundOrder, error)
	GetInbound(ctx context.Context, id uuid.UUID) (*models.InboundOrder, error)
	ListInbound(ctx context.Context) ([]*models.InboundOrder, error)
	ReceiveInbound(ctx context.Context, orderID, lineID uuid.UUID, qty int) (*models.InboundOrder, error)
	CancelInbound(ctx context.Context, id uuid.UUID) (*models.InboundOrder, error)

	CreateOutbound(ctx context.Context, customerName string, shipBy *time.Time, lines []OutboundLineInput) (*models.OutboundOrder, error)
	GetOutbound(ctx context.Context, id uuid.UUID) (*models.OutboundOrder, error)
	ListOutbound(ctx context.Context) ([]*models.OutboundOrder, error)
	PickOutbound(ctx context.Context, orderID, lineID uuid.UUID, qty int) (*models.OutboundOrder, error)
	ShipOutbound(ctx context.Context, id uuid.UUID) (*models.OutboundOrder, error)
	CancelOutbound(ctx context.Context, id uuid.UUID) (*models.OutboundOrder, error)
}

type orderService struct {
	inboundRepo  repositories.InboundOrderRepository
	outboundRepo repositories.OutboundOrderRepository
	productRepo  repositories.ProductRepository
}

func NewOrderService(inboundRepo repositories.InboundOrderRepository, outboundRepo repositories.OutboundOrderRepository, productRepo repositories.ProductRepository) OrderService {
	return &orderService{
		inboundRepo:  inboundRepo,
		outboundRepo: outboundRepo,
		productRepo:  productRepo,
	}
}

func newOrderNo(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:8])
}

func (s *orderService) CreateInbound(ctx context.Context, supplierName string, eta *time.Time, lines []InboundLineInput) (*models.InboundOrder, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: order needs at least one line", common.ErrValidation)
	}

	order := &models.InboundOrder{
		ID:           uuid.New(),
		OrderNo:      newOrderNo("IN"),
		SupplierName: supplierName,
		Status:       models.InboundPending,
		ETA:          eta,
	}
	for _, in := range lines {
		if in.ExpectedQty <= 0 {
			return nil, fmt.Errorf("%w: expected quantity must be greater than 0", common.ErrValidation)
		}
		if _, err := s.productRepo.GetByID(ctx, in.ProductID); err != nil {
			return nil, fmt.Errorf("product %s: %w", in.ProductID, err)
		}
		order.Lines = append(order.Lines, models.InboundLine{
			ID:          uuid.New(),
			OrderID:     order.ID,
			ProductID:   in.ProductID,
			LotNo:       in.LotNo,
			ExpectedQty: in.ExpectedQty,
		})
		order.TotalQty += in.ExpectedQty
	}

	if err := s.inboundRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetInbound(ctx context.Context, id uuid.UUID) (*models.InboundOrder, error) {
	return s.inboundRepo.GetByID(ctx, id)
}

func (s *orderService) ListInbound(ctx context.Context) ([]*models.InboundOrder, error) {
	return s.inboundRepo.List(ctx)
}

// ReceiveInbound books qty received units against one line. Received
// quantities only move forward and are clamped at the line's expectation;
// the order completes when everything expected has arrived.
func (s *orderService) ReceiveInbound(ctx context.Context, orderID, lineID uuid.UUID, qty int) (*models.InboundOrder, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: received quantity must be greater than 0", common.ErrValidation)
	}
	order, err := s.inboundRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == models.InboundCompleted || order.Status == models.InboundCancelled {
		return nil, fmt.Errorf("%w: order %s is %s", common.ErrValidation, order.OrderNo, order.Status)
	}

	lineIdx := -1
	for i := range order.Lines {
		if order.Lines[i].ID == lineID {
			lineIdx = i
			break
		}
	}
	if lineIdx < 0 {
		return nil, fmt.Errorf("line %s: %w", lineID, common.ErrNotFound)
	}

	line := &order.Lines[lineIdx]
	line.ReceivedQty += qty
	if line.ReceivedQty > line.ExpectedQty {
		line.ReceivedQty = line.ExpectedQty
	}

	order.ReceivedQty = 0
	for i := range order.Lines {
		order.ReceivedQty += order.Lines[i].ReceivedQty
	}
	if order.ReceivedQty >= order.TotalQty {
		order.Status = models.InboundCompleted
	} else {
		order.Status = models.InboundReceiving
	}
	order.UpdatedAt = time.Now()

	if err := s.inboundRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) CancelInbound(ctx context.Context, id uuid.UUID) (*models.InboundOrder, error) {
	order, err := s.inboundRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != models.InboundPending {
		return nil, fmt.Errorf("%w: only pending orders can be cancelled", common.ErrValidation)
	}
	order.Status = models.InboundCancelled
	order.UpdatedAt = time.Now()
	if err := s.inboundRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) CreateOutbound(ctx context.Context, customerName string, shipBy *time.Time, lines []OutboundLineInput) (*models.OutboundOrder, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: order needs at least one line", common.ErrValidation)
	}

	order := &models.OutboundOrder{
		ID:           uuid.New(),
		OrderNo:      newOrderNo("OUT"),
		CustomerName: customerName,
		Status:       models.OutboundPending,
		ShipBy:       shipBy,
	}
	for _, in := range lines {
		if in.OrderedQty <= 0 {
			return nil, fmt.Errorf("%w: ordered quantity must be greater than 0", common.ErrValidation)
		}
		if _, err := s.productRepo.GetByID(ctx, in.ProductID); err != nil {
			return nil, fmt.Errorf("product %s: %w", in.ProductID, err)
		}
		order.Lines = append(order.Lines, models.OutboundLine{
			ID:         uuid.New(),
			OrderID:    order.ID,
			ProductID:  in.ProductID,
			OrderedQty: in.OrderedQty,
		})
		order.TotalQty += in.OrderedQty
	}

	if err := s.outboundRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOutbound(ctx context.Context, id uuid.UUID) (*models.OutboundOrder, error) {
	return s.outboundRepo.GetByID(ctx, id)
}

func (s *orderService) ListOutbound(ctx context.Context) ([]*models.OutboundOrder, error) {
	return s.outboundRepo.List(ctx)
}

// PickOutbound books qty picked units against one line. The order becomes
// PACKED once every ordered unit is picked.
func (s *orderService) PickOutbound(ctx context.Context, orderID, lineID uuid.UUID, qty int) (*models.OutboundOrder, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: picked quantity must be greater than 0", common.ErrValidation)
	}
	order, err := s.outboundRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == models.OutboundShipped || order.Status == models.OutboundCancelled {
		return nil, fmt.Errorf("%w: order %s is %s", common.ErrValidation, order.OrderNo, order.Status)
	}

	lineIdx := -1
	for i := range order.Lines {
		if order.Lines[i].ID == lineID {
			lineIdx = i
			break
		}
	}
	if lineIdx < 0 {
		return nil, fmt.Errorf("line %s: %w", lineID, common.ErrNotFound)
	}

	line := &order.Lines[lineIdx]
	line.PickedQty += qty
	if line.PickedQty > line.OrderedQty {
		line.PickedQty = line.OrderedQty
	}

	order.PickedQty = 0
	for i := range order.Lines {
		order.PickedQty += order.Lines[i].PickedQty
	}
	if order.PickedQty >= order.TotalQty {
		order.Status = models.OutboundPacked
	} else {
		order.Status = models.OutboundPicking
	}
	order.UpdatedAt = time.Now()

	if err := s.outboundRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ShipOutbound ships a fully packed order; the shipped quantity is fixed to
// what was picked.
func (s *orderService) ShipOutbound(ctx context.Context, id uuid.UUID) (*models.OutboundOrder, error) {
	order, err := s.outboundRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OutboundPacked {
		return nil, fmt.Errorf("%w: order %s must be packed before shipping (is %s)", common.ErrValidation, order.OrderNo, order.Status)
	}
	order.ShippedQty = order.PickedQty
	order.Status = models.OutboundShipped
	order.UpdatedAt = time.Now()
	if err := s.outboundRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) CancelOutbound(ctx context.Context, id uuid.UUID) (*models.OutboundOrder, error) {
	order, err := s.outboundRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OutboundPending {
		return nil, fmt.Errorf("%w: only pending orders can be cancelled", common.ErrValidation)
	}
	order.Status = models.OutboundCancelled
	order.UpdatedAt = time.Now()
	if err := s.outboundRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
