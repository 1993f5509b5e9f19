package model

import (
	"time"

	"github.com/google/uuid"
)

// CouponModel mirrors the 'coupons' table. A code is unique per user.
type CouponModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Code               string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_coupons_code_user"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_coupons_code_user;index"`
	DiscountPercentage int       `gorm:"not null"`
	ExpiresAt          time.Time `gorm:"not null"`
	UsageLimit         int       `gorm:"not null;default:1"`
	IsActive           bool      `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
