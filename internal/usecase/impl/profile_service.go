package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	qrService service.QRCodeService
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	OrderRepo repository.OrderRepository
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		orderRepo: params.OrderRepo,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetUserProfile retrieves the user together with their order history.
func (srv *profileService) GetUserProfile(ctx context.Context, userID uuid.UUID) (*usecase.UserProfileOutput, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.UserProfileOutput{User: user, Orders: orders}, nil
}

// UpdateUserProfile updates the contact fields of the user.
func (srv *profileService) UpdateUserProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating user profile", slog.Any("userID", input.UserID))

	name := strings.TrimSpace(input.Name)
	email := entity.NormalizeEmail(input.Email)
	phone := strings.TrimSpace(input.Phone)
	if name == "" || email == "" || phone == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name, email and phone are required"))
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrUserNotFound)
			}

			return errors.Wrap(err, "failed to find user")
		}

		taken, err := userRepo.EmailTakenByOther(ctx, email, input.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if taken {
			return errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}

		found.Name = name
		found.Email = email
		found.Phone = phone
		if err := userRepo.UpdateProfile(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update user profile")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update user profile", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	return user, nil
}

// ReceiptQR renders the receipt QR code of an order owned by the user.
func (srv *profileService) ReceiptQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	// Foreign orders are reported as missing.
	if order.UserID != userID {
		return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	png, err := srv.qrService.GenerateReceiptQR(order)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError.WithDetails(err.Error()), "failed to render receipt")
	}

	return png, nil
}
