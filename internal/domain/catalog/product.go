package catalog

import (
	"context"
	"time"

	"github.com/aigym/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleStatus represents whether a product has been sold
type SaleStatus string

const (
	SaleStatusRegistered SaleStatus = "registrado"
	SaleStatusSold       SaleStatus = "vendido"
)

// PaymentMethod is the method used to sell a product
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "Efectivo"
	PaymentMethodCard     PaymentMethod = "Tarjeta de Crédito"
	PaymentMethodTransfer PaymentMethod = "Transferencia Bancaria"
)

// ValidSaleStatus reports whether s is a known sale status
func ValidSaleStatus(s string) bool {
	return SaleStatus(s) == SaleStatusRegistered || SaleStatus(s) == SaleStatusSold
}

// ValidPaymentMethod reports whether m is a known payment method
func ValidPaymentMethod(m string) bool {
	switch PaymentMethod(m) {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return true
	}
	return false
}

// Product is an inventory item. Quantity and Stock are stored as text
// (numeric-looking strings, "0" when absent) to match the upstream sheet
// imports the store was seeded from.
type Product struct {
	shared.BaseEntity
	ProductID       string          `json:"product_id"`
	Name            string          `json:"name"`
	Brand           *string         `json:"brand"`
	Type            *string         `json:"type"`
	Category        *string         `json:"category"`
	Supplier        *string         `json:"supplier"`
	SupplierEmail   *string         `json:"supplier_email"`
	SupplierWebsite *string         `json:"supplier_website"`
	Gym             *string         `json:"gym"`
	Price           decimal.Decimal `json:"price"`
	Cost            decimal.Decimal `json:"cost"`
	Quantity        string          `json:"quantity"`
	Stock           string          `json:"stock"`
	PaymentMethod   *PaymentMethod  `json:"payment_method"`
	SaleStatus      SaleStatus      `json:"sale_status"`
	LastUpdate      time.Time       `json:"last_update"`
}

// ProductRepository is the persistence port for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindPage(ctx context.Context, q shared.ListQuery) ([]Product, int64, error)
	Save(ctx context.Context, product *Product) error
	Count(ctx context.Context) (int64, error)
}
