package products

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nafisnihal/product-management-backend/internal/models"
)

// ErrNotFound is returned when a product does not exist
var ErrNotFound = errors.New("product not found")

// Service manages the product catalog
type Service struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewService creates a new product service
func NewService(db *gorm.DB, logger zerolog.Logger) *Service {
	return &Service{
		db:     db,
		logger: logger,
	}
}

// List returns all products, newest first
func (s *Service) List() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Get returns a single product by ID
func (s *Service) Get(id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

// Create persists a new product
func (s *Service) Create(product *models.Product) error {
	if product.Status == "" {
		product.Status = models.StatusActive
	}
	if err := s.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID).
		Str("name", product.Name).
		Msg("Product created")

	return nil
}

// Update applies changes to an existing product
func (s *Service) Update(id string, changes *models.Product) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	product.Name = changes.Name
	product.Description = changes.Description
	product.Price = changes.Price
	product.Category = changes.Category
	product.Stock = changes.Stock
	if changes.Status != "" {
		product.Status = changes.Status
	}

	if err := s.db.Save(product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// Delete removes a product
func (s *Service) Delete(id string) error {
	product, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().
		Str("product_id", id).
		Msg("Product deleted")

	return nil
}
