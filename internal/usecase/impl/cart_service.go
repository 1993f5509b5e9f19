package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) List(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error) {
	lines, err := srv.cartRepo.ListLines(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart")
	}

	return lines, nil
}

// Add puts one unit of the product in the cart, incrementing an existing line.
func (srv *cartService) Add(ctx context.Context, userID uuid.UUID, productID int64) ([]*entity.CartLine, error) {
	if productID <= 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("productId is required"))
	}

	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		return nil, srv.mapCartError(err, "failed to find product")
	}

	if err := srv.cartRepo.AddOne(ctx, userID, productID); err != nil {
		return nil, srv.mapCartError(err, "failed to add to cart")
	}
	srv.log(ctx).Debug("Product added to cart", slog.Any("userID", userID), slog.Int64("productID", productID))

	return srv.List(ctx, userID)
}

func (srv *cartService) Remove(ctx context.Context, userID uuid.UUID, productID *int64) ([]*entity.CartLine, error) {
	if productID == nil {
		if err := srv.cartRepo.Clear(ctx, userID); err != nil {
			return nil, errors.Wrap(err, "failed to clear cart")
		}
		srv.log(ctx).Debug("Cart cleared", slog.Any("userID", userID))

		return srv.List(ctx, userID)
	}

	if err := srv.cartRepo.Remove(ctx, userID, *productID); err != nil {
		return nil, srv.mapCartError(err, "failed to remove from cart")
	}

	return srv.List(ctx, userID)
}

func (srv *cartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, productID int64, quantity int) ([]*entity.CartLine, error) {
	if quantity < 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative"))
	}
	if quantity == 0 {
		return srv.Remove(ctx, userID, &productID)
	}

	if err := srv.cartRepo.SetQuantity(ctx, userID, productID, quantity); err != nil {
		return nil, srv.mapCartError(err, "failed to update cart quantity")
	}

	return srv.List(ctx, userID)
}

func (srv *cartService) mapCartError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return errors.WithStack(domainerrors.ErrProductNotFound)
	case errors.Is(err, repository.ErrCartItemNotFound):
		return errors.WithStack(domainerrors.ErrCartItemNotFound)
	default:
		return errors.Wrap(err, msg)
	}
}
