package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coldmart/internal/common"
	"coldmart/internal/models"
	"coldmart/internal/repositories"
)

// ProductUpdate is a partial patch for a product.
type ProductUpdate struct {
	Name          *string
	TempClass     *models.TempClass
	ShelfLifeDays *int
	UnitPrice     *float64
}

type ProductService interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, patch ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Product, error)
}

type productService struct {
	productRepo repositories.ProductRepository
	lotRepo     repositories.LotRepository
}

func NewProductService(productRepo repositories.ProductRepository, lotRepo repositories.LotRepository) ProductService {
	return &productService{productRepo: productRepo, lotRepo: lotRepo}
}

func validTempClass(tc models.TempClass) bool {
	switch tc {
	case models.TempClassFrozen, models.TempClassChilled, models.TempClassAmbient:
		return true
	}
	return false
}

func (s *productService) Create(ctx context.Context, product *models.Product) error {
	if product.SKU == "" || product.Name == "" {
		return fmt.Errorf("%w: sku and name are required", common.ErrValidation)
	}
	if !validTempClass(product.TempClass) {
		return fmt.Errorf("%w: unknown temp class %q", common.ErrValidation, product.TempClass)
	}
	if product.ShelfLifeDays < 0 {
		return fmt.Errorf("%w: shelf life cannot be negative", common.ErrValidation)
	}
	product.ID = uuid.New()
	return s.productRepo.Create(ctx, product)
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, patch ProductUpdate) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.TempClass != nil {
		if !validTempClass(*patch.TempClass) {
			return nil, fmt.Errorf("%w: unknown temp class %q", common.ErrValidation, *patch.TempClass)
		}
		product.TempClass = *patch.TempClass
	}
	if patch.ShelfLifeDays != nil {
		product.ShelfLifeDays = *patch.ShelfLifeDays
	}
	if patch.UnitPrice != nil {
		product.UnitPrice = *patch.UnitPrice
	}

	product.UpdatedAt = time.Now()
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete refuses to remove a product while lots still reference it.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := s.lotRepo.CountByProduct(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: product is referenced by %d lots", common.ErrConflict, count)
	}
	return s.productRepo.Delete(ctx, id)
}

func (s *productService) List(ctx context.Context) ([]*models.Product, error) {
	return s.productRepo.List(ctx)
}
