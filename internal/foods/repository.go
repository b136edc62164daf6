package foods

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lmedina-dev/tastebite-backend/pkg/db/models"
	"gorm.io/gorm"
)

// FoodRepository defines the persistence operations the catalog service needs.
type FoodRepository interface {
	List(ctx context.Context, category, search string) ([]models.Food, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Food, error)
	Create(ctx context.Context, food *models.Food) (*models.Food, error)
	Update(ctx context.Context, food *models.Food) (*models.Food, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// Repository implements FoodRepository on GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// List returns foods filtered by exact category and/or a case-insensitive
// substring match on name, ordered by creation time.
func (r *Repository) List(ctx context.Context, category, search string) ([]models.Food, error) {
	query := r.db.WithContext(ctx).Model(&models.Food{})

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ?", pattern)
	}

	var result []models.Food
	if err := query.Order("created_at ASC").Find(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// FindByID loads a single food.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Food, error) {
	var food models.Food
	if err := r.db.WithContext(ctx).First(&food, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// Create persists a new food row.
func (r *Repository) Create(ctx context.Context, food *models.Food) (*models.Food, error) {
	if err := r.db.WithContext(ctx).Create(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

// Update saves the mutated food row.
func (r *Repository) Update(ctx context.Context, food *models.Food) (*models.Food, error) {
	if err := r.db.WithContext(ctx).Save(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

// Delete removes the food row and reports how many rows were affected. Zero
// rows is not an error; delete is idempotent.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Food{}, "id = ?", id)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
