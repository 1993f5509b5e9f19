package model

// ProductModel mirrors the catalog's 'products' table. The service only reads it.
type ProductModel struct {
	ID            int64  `gorm:"primaryKey"`
	Name          string `gorm:"type:varchar(255);not null"`
	Description   string `gorm:"type:text"`
	PriceCents    int64  `gorm:"not null"`
	StockQuantity int    `gorm:"not null;default:0"`
	ImageURL      string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
