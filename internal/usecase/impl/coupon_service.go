package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// couponService implements the CouponUsecase interface.
type couponService struct {
	couponRepo repository.CouponRepository
	logger     *slog.Logger
	now        func() time.Time
}

// CouponServiceParams holds dependencies for CouponService, injected by Fx.
type CouponServiceParams struct {
	fx.In

	CouponRepo repository.CouponRepository
	Logger     *slog.Logger
}

// NewCouponService is the constructor for couponService.
func NewCouponService(params CouponServiceParams) usecase.CouponUsecase {
	return &couponService{
		couponRepo: params.CouponRepo,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *couponService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ActiveCoupon returns the most recent active coupon of the user.
func (srv *couponService) ActiveCoupon(ctx context.Context, userID uuid.UUID) (*entity.Coupon, error) {
	coupon, err := srv.couponRepo.FindActiveByUser(ctx, userID)
	if errors.Is(err, repository.ErrCouponNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active coupon")
	}

	return coupon, nil
}

// ValidateCoupon resolves code against the user's active coupons.
func (srv *couponService) ValidateCoupon(ctx context.Context, userID uuid.UUID, code string) (*entity.Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("code is required"))
	}

	coupon, err := srv.couponRepo.FindActiveByCode(ctx, code, userID)
	if errors.Is(err, repository.ErrCouponNotFound) {
		return nil, errors.WithStack(domainerrors.ErrCouponNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find coupon")
	}

	if coupon.IsExpired(srv.now()) {
		if err := srv.couponRepo.Deactivate(ctx, coupon.Code, userID); err != nil {
			return nil, errors.Wrap(err, "failed to deactivate expired coupon")
		}
		srv.log(ctx).Info("Expired coupon deactivated", slog.String("couponCode", coupon.Code), slog.Any("userID", userID))

		return nil, errors.WithStack(domainerrors.ErrCouponExpired)
	}

	return coupon, nil
}
