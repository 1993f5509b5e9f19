package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// ListLines returns the cart joined with product details, oldest line first.
func (repo *cartRepository) ListLines(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error) {
	var itemModels []*model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Joins("Product").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.created_at ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart lines")
	}

	lines := make([]*entity.CartLine, 0, len(itemModels))
	for _, itemM := range itemModels {
		lines = append(lines, toCartLineDomain(itemM))
	}

	return lines, nil
}

// AddOne upserts a line, incrementing the quantity on conflict.
func (repo *cartRepository) AddOne(ctx context.Context, userID uuid.UUID, productID int64) error {
	itemM := &model.CartItemModel{
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("cart_items.quantity + 1"),
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).
		Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	return nil
}

// SetQuantity overwrites the quantity of an existing line.
func (repo *cartRepository) SetQuantity(ctx context.Context, userID uuid.UUID, productID int64, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// Remove deletes a single line.
func (repo *cartRepository) Remove(ctx context.Context, userID uuid.UUID, productID int64) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// Clear deletes every line of the user's cart.
func (repo *cartRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

func toCartLineDomain(data *model.CartItemModel) *entity.CartLine {
	line := &entity.CartLine{
		Product:  entity.Product{ID: data.ProductID},
		Quantity: data.Quantity,
	}
	if data.Product != nil {
		line.Product = *toProductDomain(data.Product)
	}

	return line
}
