package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"strings"
	"time"

	"storefront/config"
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

// Checkout session metadata keys.
const (
	metadataUserID     = "userId"
	metadataCouponCode = "couponCode"
	metadataProducts   = "products"
)

const defaultPaymentMethod = "card"

// Per-line bounds keep cent arithmetic inside int64.
const (
	maxLineQuantity = 10_000
	maxUnitPrice    = 1_000_000
)

// checkoutProduct is the product snapshot stored in the session metadata.
type checkoutProduct struct {
	ID       int64   `json:"id"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
}

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	couponRepo       repository.CouponRepository
	orderRepo        repository.OrderRepository
	notificationRepo repository.NotificationRepository
	gateway          service.PaymentGateway
	codeGenerator    service.CodeGenerator
	mailer           service.Mailer
	publisher        service.EventPublisher
	metrics          service.MetricsRecorder
	clientURL        string
	loyalty          config.CheckoutConfig
	logger           *slog.Logger
	now              func() time.Time
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	CouponRepo       repository.CouponRepository
	OrderRepo        repository.OrderRepository
	NotificationRepo repository.NotificationRepository
	Gateway          service.PaymentGateway
	CodeGenerator    service.CodeGenerator
	Mailer           service.Mailer
	Publisher        service.EventPublisher
	Metrics          service.MetricsRecorder
	Config           *config.Config
	Logger           *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	srv := &checkoutService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		couponRepo:       params.CouponRepo,
		orderRepo:        params.OrderRepo,
		notificationRepo: params.NotificationRepo,
		gateway:          params.Gateway,
		codeGenerator:    params.CodeGenerator,
		mailer:           params.Mailer,
		publisher:        params.Publisher,
		metrics:          params.Metrics,
		logger:           params.Logger,
		now:              time.Now,
	}

	if params.Config != nil {
		if params.Config.Client != nil {
			srv.clientURL = params.Config.Client.URL
		}
		if params.Config.Checkout != nil {
			srv.loyalty = *params.Config.Checkout
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCheckoutSession prices the cart, applies a redeemable coupon and opens
// a hosted payment session. Large carts earn a loyalty coupon.
func (srv *checkoutService) CreateCheckoutSession(ctx context.Context, input *usecase.CreateCheckoutSessionInput) (*usecase.CheckoutSessionOutput, error) {
	lineItems, snapshot, err := priceProducts(input.Products)
	if err != nil {
		return nil, err
	}

	subtotal := int64(0)
	for _, item := range lineItems {
		subtotal += item.UnitAmountCents * item.Quantity
	}
	total := subtotal

	couponCode := strings.TrimSpace(input.CouponCode)
	discountID := ""
	appliedCode := ""
	if couponCode != "" {
		coupon, err := srv.couponRepo.FindRedeemable(ctx, couponCode, input.UserID, srv.now())
		switch {
		case err == nil:
			total = coupon.ApplyTo(subtotal)
			appliedCode = coupon.Code
			discountID, err = srv.gateway.CreateDiscount(ctx, coupon.DiscountPercentage)
			if err != nil {
				return nil, errors.Wrap(err, "failed to register discount")
			}
		case errors.Is(err, repository.ErrCouponNotFound):
			srv.log(ctx).Info("Coupon not redeemable, charging full price", slog.String("couponCode", couponCode))
		default:
			return nil, errors.Wrap(err, "failed to look up coupon")
		}
	}

	productsJSON, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode products metadata")
	}

	session, err := srv.gateway.CreateCheckoutSession(ctx, &service.CheckoutSessionRequest{
		LineItems:  lineItems,
		DiscountID: discountID,
		SuccessURL: srv.clientURL + "/purchase-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  srv.clientURL + "/purchase-cancel",
		Metadata: map[string]string{
			metadataUserID:     input.UserID.String(),
			metadataCouponCode: appliedCode,
			metadataProducts:   string(productsJSON),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create checkout session")
	}
	srv.metrics.CheckoutSessionCreated(appliedCode != "")

	if srv.loyalty.LoyaltyThresholdCents > 0 && subtotal >= srv.loyalty.LoyaltyThresholdCents {
		if err := srv.issueLoyaltyCoupon(ctx, input.UserID); err != nil {
			return nil, err
		}
	}

	srv.log(ctx).Info("Checkout session created",
		slog.String("sessionID", session.ID),
		slog.Int64("subtotalCents", subtotal),
		slog.Int64("totalCents", total),
		slog.String("couponCode", appliedCode),
	)

	return &usecase.CheckoutSessionOutput{SessionID: session.ID, TotalCents: total}, nil
}

// priceProducts validates the submitted lines and converts them to gateway
// line items and the metadata snapshot.
func priceProducts(products []usecase.CheckoutProductInput) ([]service.CheckoutLineItem, []checkoutProduct, error) {
	if len(products) == 0 {
		return nil, nil, errors.WithStack(domainerrors.ErrInvalidProducts.WithDetails("products must not be empty"))
	}

	lineItems := make([]service.CheckoutLineItem, 0, len(products))
	snapshot := make([]checkoutProduct, 0, len(products))
	for _, p := range products {
		if p.ID <= 0 || strings.TrimSpace(p.Name) == "" ||
			!(p.Price > 0 && p.Price <= maxUnitPrice) ||
			!(p.Quantity > 0 && p.Quantity <= maxLineQuantity) || p.Quantity != math.Trunc(p.Quantity) {
			return nil, nil, errors.WithStack(domainerrors.ErrInvalidProducts.WithDetails("invalid product structure"))
		}

		quantity := int64(p.Quantity)
		lineItems = append(lineItems, service.CheckoutLineItem{
			Name:            p.Name,
			ImageURL:        p.Image,
			UnitAmountCents: toCents(p.Price),
			Quantity:        quantity,
		})
		snapshot = append(snapshot, checkoutProduct{ID: p.ID, Quantity: quantity, Price: p.Price})
	}

	return lineItems, snapshot, nil
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (srv *checkoutService) issueLoyaltyCoupon(ctx context.Context, userID uuid.UUID) error {
	code, err := srv.codeGenerator.CouponCode()
	if err != nil {
		return errors.Wrap(domainerrors.ErrInternalError.WithDetails(err.Error()), "failed to generate coupon code")
	}

	coupon := &entity.Coupon{
		Code:               code,
		UserID:             userID,
		DiscountPercentage: srv.loyalty.LoyaltyDiscountPercent,
		ExpiresAt:          srv.now().AddDate(0, 0, srv.loyalty.LoyaltyValidDays),
		UsageLimit:         1,
		IsActive:           true,
	}
	if err := srv.couponRepo.Create(ctx, coupon); err != nil {
		return errors.Wrap(err, "failed to create loyalty coupon")
	}
	srv.metrics.LoyaltyCouponIssued()

	srv.log(ctx).Info("Loyalty coupon issued", slog.Any("userID", userID), slog.String("couponCode", code))

	return nil
}

// CheckoutSuccess turns a completed payment session into an order. Confirming
// the same session twice returns the existing order.
func (srv *checkoutService) CheckoutSuccess(ctx context.Context, userID uuid.UUID, sessionID string) (*usecase.CheckoutSuccessOutput, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("sessionId is required"))
	}

	session, err := srv.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to retrieve checkout session")
	}
	if session.Status != service.CheckoutSessionStatusComplete {
		srv.log(ctx).Warn("Checkout session not complete", slog.String("sessionID", sessionID), slog.String("status", session.Status))

		return nil, errors.WithStack(domainerrors.ErrPaymentNotCompleted)
	}
	if session.Metadata[metadataUserID] != userID.String() {
		return nil, errors.WithStack(domainerrors.ErrCheckoutSessionForbidden)
	}

	if existing, err := srv.findConfirmedOrder(ctx, sessionID); err != nil || existing != nil {
		return existing, err
	}

	items, err := parseOrderItems(session.Metadata[metadataProducts])
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	order := &entity.Order{
		UserID:          userID,
		TotalCents:      session.AmountTotalCents,
		Status:          entity.OrderStatusDelivered,
		StripeSessionID: sessionID,
		Items:           items,
	}
	couponCode := session.Metadata[metadataCouponCode]
	notification := &entity.EmailNotification{CustomerID: userID, Status: entity.EmailStatusPending}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return srv.materializeOrder(ctx, repoFactory, order, couponCode, session, notification)
	})
	if errors.Is(err, repository.ErrOrderAlreadyExists) {
		// A concurrent confirmation won the unique index.
		return srv.findConfirmedOrder(ctx, sessionID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to materialize order")
	}

	srv.log(ctx).Info("Order created",
		slog.Any("orderID", order.ID),
		slog.String("sessionID", sessionID),
		slog.Int64("totalCents", order.TotalCents),
	)
	srv.metrics.OrderConfirmed(order.TotalCents)

	srv.sendConfirmation(ctx, user, order, notification)
	srv.publishOrderCompleted(ctx, order, couponCode)

	return &usecase.CheckoutSuccessOutput{OrderID: order.ID}, nil
}

func (srv *checkoutService) findConfirmedOrder(ctx context.Context, sessionID string) (*usecase.CheckoutSuccessOutput, error) {
	existing, err := srv.orderRepo.FindBySessionID(ctx, sessionID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up order by session")
	}

	srv.log(ctx).Info("Checkout session already confirmed", slog.String("sessionID", sessionID), slog.Any("orderID", existing.ID))

	return &usecase.CheckoutSuccessOutput{OrderID: existing.ID, AlreadyConfirmed: true}, nil
}

func (srv *checkoutService) materializeOrder(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	order *entity.Order,
	couponCode string,
	session *service.CheckoutSession,
	notification *entity.EmailNotification,
) error {
	if couponCode != "" {
		if err := repoFactory.CouponRepo().Deactivate(ctx, couponCode, order.UserID); err != nil {
			return errors.Wrap(err, "failed to deactivate coupon")
		}
	}

	orderRepo := repoFactory.OrderRepo()
	if err := orderRepo.CreateOrder(ctx, order); err != nil {
		return err
	}

	method := session.PaymentMethod
	if method == "" {
		method = defaultPaymentMethod
	}
	payment := &entity.Payment{
		OrderID:     order.ID,
		Method:      method,
		Status:      entity.PaymentStatusCompleted,
		AmountCents: session.AmountTotalCents,
	}
	if err := orderRepo.CreatePayment(ctx, payment); err != nil {
		return errors.Wrap(err, "failed to create payment")
	}

	notification.OrderID = order.ID
	if err := repoFactory.NotificationRepo().Create(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	return nil
}

func parseOrderItems(raw string) ([]*entity.OrderItem, error) {
	var snapshot []checkoutProduct
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil || len(snapshot) == 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidProducts.WithDetails("checkout session carries no products"))
	}

	items := make([]*entity.OrderItem, 0, len(snapshot))
	for _, p := range snapshot {
		items = append(items, &entity.OrderItem{
			ProductID:      p.ID,
			Quantity:       int(p.Quantity),
			UnitPriceCents: toCents(p.Price),
		})
	}

	return items, nil
}

// sendConfirmation emails the receipt and records the outcome. Failures only
// change the notification status.
func (srv *checkoutService) sendConfirmation(ctx context.Context, user *entity.User, order *entity.Order, notification *entity.EmailNotification) {
	lines := make([]service.OrderConfirmationLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, service.OrderConfirmationLine{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			PriceCents: item.UnitPriceCents,
		})
	}

	status := entity.EmailStatusSent
	if err := srv.mailer.SendOrderConfirmation(ctx, &service.OrderConfirmationMail{
		To:         user.Email,
		Name:       user.Name,
		OrderID:    order.ID.String(),
		TotalCents: order.TotalCents,
		Lines:      lines,
	}); err != nil {
		status = entity.EmailStatusFailed
		srv.log(ctx).Warn("Order confirmation email failed", slog.Any("orderID", order.ID), slog.Any("error", err))
	}
	srv.metrics.EmailDelivery(string(status))

	if err := srv.notificationRepo.UpdateStatus(ctx, notification.ID, status); err != nil {
		srv.log(ctx).Error("Failed to record email status",
			slog.Any("notificationID", notification.ID),
			slog.String("status", string(status)),
			slog.Any("error", err),
		)

		return
	}
	notification.Status = status
}

func (srv *checkoutService) publishOrderCompleted(ctx context.Context, order *entity.Order, couponCode string) {
	items := make([]service.OrderEventItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, service.OrderEventItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			PriceCents: item.UnitPriceCents,
		})
	}

	event := &service.OrderCompletedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:     order.ID.String(),
		UserID:      order.UserID.String(),
		SessionID:   order.StripeSessionID,
		TotalCents:  order.TotalCents,
		CouponCode:  couponCode,
		Items:       items,
		CompletedAt: srv.now().UTC(),
	}
	if err := srv.publisher.PublishOrderCompleted(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event", slog.Any("orderID", order.ID), slog.Any("error", err))
	}
}
