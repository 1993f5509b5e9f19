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
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder inserts the order row and its items in one statement batch.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOrderAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidProducts.WrapMessage("order references unknown user or product")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order is missing required information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range orderM.Items {
		if i < len(order.Items) {
			order.Items[i].ID = orderM.Items[i].ID
			order.Items[i].OrderID = orderM.ID
		}
	}

	return nil
}

// CreatePayment persists the payment record of an order.
func (repo *orderRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	paymentM := &model.PaymentModel{
		ID:          payment.ID,
		OrderID:     payment.OrderID,
		Method:      payment.Method,
		Status:      string(payment.Status),
		AmountCents: payment.AmountCents,
	}

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOrderAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

// FindByID retrieves an order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.first(repo.db.WithContext(ctx).Where("id = ?", id))
}

// FindBySessionID retrieves the order created for a payment session.
func (repo *orderRepository) FindBySessionID(ctx context.Context, sessionID string) (*entity.Order, error) {
	return repo.first(repo.db.WithContext(ctx).Where("stripe_session_id = ?", sessionID))
}

func (repo *orderRepository) first(query *gorm.DB) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := query.Preload("Items.Product").First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser returns the user's orders, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		itemM := &data.Items[i]
		item := &entity.OrderItem{
			ID:             itemM.ID,
			OrderID:        itemM.OrderID,
			ProductID:      itemM.ProductID,
			Quantity:       itemM.Quantity,
			UnitPriceCents: itemM.PriceCents,
		}
		if itemM.Product != nil {
			item.ProductName = itemM.Product.Name
		}
		items = append(items, item)
	}

	return &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		TotalCents:      data.TotalCents,
		Status:          entity.OrderStatus(data.Status),
		StripeSessionID: data.StripeSessionID,
		Items:           items,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:         item.ID,
			OrderID:    data.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			PriceCents: item.UnitPriceCents,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		TotalCents:      data.TotalCents,
		Status:          string(data.Status),
		StripeSessionID: data.StripeSessionID,
		Items:           items,
	}
}
