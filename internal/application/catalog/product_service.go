package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/aigym/backend/internal/application/normalize"
	"github.com/aigym/backend/internal/domain/catalog"
	"github.com/aigym/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// Create validates and normalizes a product form submission and persists it
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, shared.NewValidationError("Missing required fields: name")
	}

	saleStatus := normalize.TextOr(req.SaleStatus, string(catalog.SaleStatusRegistered))
	if !catalog.ValidSaleStatus(saleStatus) {
		return nil, shared.NewValidationErrorf("Invalid sale_status: %s", saleStatus)
	}

	var paymentMethod *catalog.PaymentMethod
	if pm := strings.TrimSpace(req.PaymentMethod); pm != "" {
		if !catalog.ValidPaymentMethod(pm) {
			return nil, shared.NewValidationErrorf("Invalid payment_method: %s", pm)
		}
		method := catalog.PaymentMethod(pm)
		paymentMethod = &method
	}

	productID := strings.TrimSpace(req.ProductID)
	if productID == "" {
		productID = normalize.ExternalID("prod")
	}

	product := &catalog.Product{
		BaseEntity:      shared.NewBaseEntity(),
		ProductID:       productID,
		Name:            name,
		Brand:           normalize.Text(req.Brand),
		Type:            normalize.Text(req.Type),
		Category:        normalize.Text(req.Category),
		Supplier:        normalize.Text(req.Supplier),
		SupplierEmail:   normalize.Text(req.SupplierEmail),
		SupplierWebsite: normalize.Text(req.SupplierWebsite),
		Gym:             normalize.Text(req.Gym),
		Price:           normalize.MoneyOrZero(req.Price),
		Cost:            normalize.MoneyOrZero(req.Cost),
		Quantity:        normalize.NumericText(req.Quantity, "0"),
		Stock:           normalize.NumericText(req.Stock, "0"),
		PaymentMethod:   paymentMethod,
		SaleStatus:      catalog.SaleStatus(saleStatus),
		LastUpdate:      time.Now(),
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// List retrieves a filtered page of products
func (s *ProductService) List(ctx context.Context, q shared.ListQuery) (*shared.Paginated[ProductResponse], error) {
	q = q.Normalize()
	products, total, err := s.productRepo.FindPage(ctx, q)
	if err != nil {
		return nil, err
	}

	items := make([]ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, ToProductResponse(&products[i]))
	}
	page := shared.NewPaginated(items, total, q)
	return &page, nil
}

// GetByID retrieves a single product
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Update applies a partial edit to an existing product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SaleStatus != nil {
		if !catalog.ValidSaleStatus(*req.SaleStatus) {
			return nil, shared.NewValidationErrorf("Invalid sale_status: %s", *req.SaleStatus)
		}
		product.SaleStatus = catalog.SaleStatus(*req.SaleStatus)
	}
	if req.PaymentMethod != nil {
		if strings.TrimSpace(*req.PaymentMethod) == "" {
			product.PaymentMethod = nil
		} else {
			if !catalog.ValidPaymentMethod(*req.PaymentMethod) {
				return nil, shared.NewValidationErrorf("Invalid payment_method: %s", *req.PaymentMethod)
			}
			method := catalog.PaymentMethod(*req.PaymentMethod)
			product.PaymentMethod = &method
		}
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, shared.NewValidationError("Missing required fields: name")
		}
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Brand != nil {
		product.Brand = normalize.Text(*req.Brand)
	}
	if req.Type != nil {
		product.Type = normalize.Text(*req.Type)
	}
	if req.Category != nil {
		product.Category = normalize.Text(*req.Category)
	}
	if req.Supplier != nil {
		product.Supplier = normalize.Text(*req.Supplier)
	}
	if req.SupplierEmail != nil {
		product.SupplierEmail = normalize.Text(*req.SupplierEmail)
	}
	if req.SupplierWebsite != nil {
		product.SupplierWebsite = normalize.Text(*req.SupplierWebsite)
	}
	if req.Gym != nil {
		product.Gym = normalize.Text(*req.Gym)
	}
	if req.Price != nil {
		product.Price = normalize.MoneyOrZero(req.Price)
	}
	if req.Cost != nil {
		product.Cost = normalize.MoneyOrZero(req.Cost)
	}
	if req.Quantity != nil {
		product.Quantity = normalize.NumericText(req.Quantity, "0")
	}
	if req.Stock != nil {
		product.Stock = normalize.NumericText(req.Stock, "0")
	}

	product.LastUpdate = time.Now()
	product.Touch()
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}
