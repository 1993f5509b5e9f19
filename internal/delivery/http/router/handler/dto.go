package handler

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// OrderItemResponse is one line of an order.
type OrderItemResponse struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// OrderResponse is an order in the account history.
type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	TotalAmount     float64             `json:"totalAmount"`
	Status          entity.OrderStatus  `json:"status"`
	StripeSessionID string              `json:"stripeSessionId"`
	CreatedAt       time.Time           `json:"createdAt"`
	Items           []OrderItemResponse `json:"items"`
}

// CartLineResponse is a cart line joined with its product.
type CartLineResponse struct {
	ProductID          int64   `json:"product_id"`
	ProductName        string  `json:"product_name"`
	ProductDescription string  `json:"product_description"`
	Price              float64 `json:"price"`
	StockQuantity      int     `json:"stock_quantity"`
	Quantity           int     `json:"quantity"`
	ImageURL           string  `json:"image_url,omitempty"`
}

// CouponResponse is a discount grant as shown to its owner.
type CouponResponse struct {
	Code               string    `json:"code"`
	DiscountPercentage int       `json:"discountPercentage"`
	ExpirationDate     time.Time `json:"expirationDate"`
}

func toDollars(cents int64) float64 {
	return float64(cents) / 100
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func toOrderResponses(orders []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		items := make([]OrderItemResponse, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, OrderItemResponse{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				Price:       toDollars(item.UnitPriceCents),
			})
		}
		out = append(out, OrderResponse{
			ID:              order.ID,
			TotalAmount:     toDollars(order.TotalCents),
			Status:          order.Status,
			StripeSessionID: order.StripeSessionID,
			CreatedAt:       order.CreatedAt,
			Items:           items,
		})
	}

	return out
}

func toCartResponse(lines []*entity.CartLine) []CartLineResponse {
	out := make([]CartLineResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, CartLineResponse{
			ProductID:          line.Product.ID,
			ProductName:        line.Product.Name,
			ProductDescription: line.Product.Description,
			Price:              toDollars(line.Product.PriceCents),
			StockQuantity:      line.Product.StockQuantity,
			Quantity:           line.Quantity,
			ImageURL:           line.Product.ImageURL,
		})
	}

	return out
}

func toCouponResponse(coupon *entity.Coupon) *CouponResponse {
	if coupon == nil {
		return nil
	}

	return &CouponResponse{
		Code:               coupon.Code,
		DiscountPercentage: coupon.DiscountPercentage,
		ExpirationDate:     coupon.ExpiresAt,
	}
}
