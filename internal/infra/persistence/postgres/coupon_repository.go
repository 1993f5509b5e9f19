package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{db: db}
}

// FindActiveByUser returns the newest active coupon of the user.
func (repo *couponRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Coupon, error) {
	return repo.first(repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC"))
}

// FindActiveByCode returns the user's active coupon with the given code.
func (repo *couponRepository) FindActiveByCode(ctx context.Context, code string, userID uuid.UUID) (*entity.Coupon, error) {
	return repo.first(repo.db.WithContext(ctx).
		Where("code = ? AND user_id = ? AND is_active = ?", code, userID, true))
}

// FindRedeemable returns the user's active, unexpired coupon with the given code.
func (repo *couponRepository) FindRedeemable(ctx context.Context, code string, userID uuid.UUID, now time.Time) (*entity.Coupon, error) {
	return repo.first(repo.db.WithContext(ctx).
		Where("code = ? AND user_id = ? AND is_active = ? AND expires_at > ?", code, userID, true, now))
}

func (repo *couponRepository) first(query *gorm.DB) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := query.First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon")
	}

	return toCouponDomain(&couponM), nil
}

// Create persists a new coupon.
func (repo *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("coupon code already issued to user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	coupon.ID = couponM.ID
	coupon.CreatedAt = couponM.CreatedAt
	coupon.UpdatedAt = couponM.UpdatedAt

	return nil
}

// Deactivate flips the coupon to inactive.
func (repo *couponRepository) Deactivate(ctx context.Context, code string, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("code = ? AND user_id = ?", code, userID).
		Update("is_active", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate coupon")
	}

	return nil
}

func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	return &entity.Coupon{
		ID:                 data.ID,
		Code:               data.Code,
		UserID:             data.UserID,
		DiscountPercentage: data.DiscountPercentage,
		ExpiresAt:          data.ExpiresAt,
		UsageLimit:         data.UsageLimit,
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	return &model.CouponModel{
		ID:                 data.ID,
		Code:               data.Code,
		UserID:             data.UserID,
		DiscountPercentage: data.DiscountPercentage,
		ExpiresAt:          data.ExpiresAt,
		UsageLimit:         data.UsageLimit,
		IsActive:           data.IsActive,
	}
}
