package catalog

import (
	"time"

	"github.com/aigym/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest carries a raw product form submission. Numeric
// fields are declared as any because upstream sheet imports send them as
// either numbers or strings.
type CreateProductRequest struct {
	ProductID       string `json:"product_id"`
	Name            string `json:"name"`
	Brand           string `json:"brand"`
	Type            string `json:"type"`
	Category        string `json:"category"`
	Supplier        string `json:"supplier"`
	SupplierEmail   string `json:"supplier_email"`
	SupplierWebsite string `json:"supplier_website"`
	Gym             string `json:"gym"`
	Price           any    `json:"price"`
	Cost            any    `json:"cost"`
	Quantity        any    `json:"quantity"`
	Stock           any    `json:"stock"`
	PaymentMethod   string `json:"payment_method"`
	SaleStatus      string `json:"sale_status"`
}

// UpdateProductRequest carries a partial product edit
type UpdateProductRequest struct {
	Name            *string `json:"name"`
	Brand           *string `json:"brand"`
	Type            *string `json:"type"`
	Category        *string `json:"category"`
	Supplier        *string `json:"supplier"`
	SupplierEmail   *string `json:"supplier_email"`
	SupplierWebsite *string `json:"supplier_website"`
	Gym             *string `json:"gym"`
	Price           any     `json:"price"`
	Cost            any     `json:"cost"`
	Quantity        any     `json:"quantity"`
	Stock           any     `json:"stock"`
	PaymentMethod   *string `json:"payment_method"`
	SaleStatus      *string `json:"sale_status"`
}

// ProductResponse is a product as rendered in API responses
type ProductResponse struct {
	ID              uuid.UUID       `json:"id"`
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
	PaymentMethod   *string         `json:"payment_method"`
	SaleStatus      string          `json:"sale_status"`
	LastUpdate      time.Time       `json:"last_update"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToProductResponse maps a domain product to its API shape
func ToProductResponse(p *catalog.Product) ProductResponse {
	var paymentMethod *string
	if p.PaymentMethod != nil {
		s := string(*p.PaymentMethod)
		paymentMethod = &s
	}
	return ProductResponse{
		ID:              p.ID,
		ProductID:       p.ProductID,
		Name:            p.Name,
		Brand:           p.Brand,
		Type:            p.Type,
		Category:        p.Category,
		Supplier:        p.Supplier,
		SupplierEmail:   p.SupplierEmail,
		SupplierWebsite: p.SupplierWebsite,
		Gym:             p.Gym,
		Price:           p.Price,
		Cost:            p.Cost,
		Quantity:        p.Quantity,
		Stock:           p.Stock,
		PaymentMethod:   paymentMethod,
		SaleStatus:      string(p.SaleStatus),
		LastUpdate:      p.LastUpdate,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
