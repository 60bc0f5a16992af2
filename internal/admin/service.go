package admin

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/upstream"
	pkgerrors "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/errors"
)

type adminAPI interface {
	AddCategory(ctx context.Context, bearer string, input upstream.CategoryInput) error
	EditCategory(ctx context.Context, bearer string, id int64, input upstream.CategoryInput) error
	ToggleCategoryStatus(ctx context.Context, bearer string, id int64) error
	Sizes(ctx context.Context, bearer string) ([]upstream.Size, error)
	AddSize(ctx context.Context, bearer string, input upstream.SizeInput) error
	EditSize(ctx context.Context, bearer string, id int64, input upstream.SizeInput) error
	ToggleSizeStatus(ctx context.Context, bearer string, id int64) error
	AddProduct(ctx context.Context, bearer, contentType string, body io.Reader) (json.RawMessage, error)
	EditProductModel(ctx context.Context, bearer string, id int64, contentType string, body io.Reader) (json.RawMessage, error)
	ToggleProductStatus(ctx context.Context, bearer string, id int64) error
	Stock(ctx context.Context, bearer string, modelID, sizeID int64) (upstream.StockLevel, error)
	UpdateStock(ctx context.Context, bearer string, input upstream.StockInput) error
	Users(ctx context.Context, bearer string) ([]upstream.User, error)
	ToggleUserStatus(ctx context.Context, bearer string, id int64) error
}

// Service fronts the catalog-management and user-management endpoints.
// Role enforcement happens in the route guards; this layer only
// validates payload shape before the upstream sees it.
type Service struct {
	api adminAPI
}

func NewService(api adminAPI) *Service {
	return &Service{api: api}
}

func (s *Service) AddCategory(ctx context.Context, bearer, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "category name is required")
	}
	return s.api.AddCategory(ctx, bearer, upstream.CategoryInput{Nombre: name})
}

func (s *Service) EditCategory(ctx context.Context, bearer string, id int64, name string) error {
	name = strings.TrimSpace(name)
	if id <= 0 || name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "category id and name are required")
	}
	return s.api.EditCategory(ctx, bearer, id, upstream.CategoryInput{Nombre: name})
}

func (s *Service) ToggleCategoryStatus(ctx context.Context, bearer string, id int64) error {
	if id <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing category id")
	}
	return s.api.ToggleCategoryStatus(ctx, bearer, id)
}

func (s *Service) Sizes(ctx context.Context, bearer string) ([]upstream.Size, error) {
	return s.api.Sizes(ctx, bearer)
}

func (s *Service) AddSize(ctx context.Context, bearer, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "size name is required")
	}
	return s.api.AddSize(ctx, bearer, upstream.SizeInput{Nombre: name})
}

func (s *Service) EditSize(ctx context.Context, bearer string, id int64, name string) error {
	name = strings.TrimSpace(name)
	if id <= 0 || name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "size id and name are required")
	}
	return s.api.EditSize(ctx, bearer, id, upstream.SizeInput{Nombre: name})
}

func (s *Service) ToggleSizeStatus(ctx context.Context, bearer string, id int64) error {
	if id <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing size id")
	}
	return s.api.ToggleSizeStatus(ctx, bearer, id)
}

// AddProduct forwards the multipart product form (fields plus model
// images) untouched; the upstream owns image validation.
func (s *Service) AddProduct(ctx context.Context, bearer, contentType string, body io.Reader) (json.RawMessage, error) {
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product payload must be multipart/form-data")
	}
	return s.api.AddProduct(ctx, bearer, contentType, body)
}

func (s *Service) EditProductModel(ctx context.Context, bearer string, id int64, contentType string, body io.Reader) (json.RawMessage, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "missing model id")
	}
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "model payload must be multipart/form-data")
	}
	return s.api.EditProductModel(ctx, bearer, id, contentType, body)
}

func (s *Service) ToggleProductStatus(ctx context.Context, bearer string, id int64) error {
	if id <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing product id")
	}
	return s.api.ToggleProductStatus(ctx, bearer, id)
}

func (s *Service) Stock(ctx context.Context, bearer string, modelID, sizeID int64) (upstream.StockLevel, error) {
	if modelID <= 0 || sizeID <= 0 {
		return upstream.StockLevel{}, pkgerrors.New(pkgerrors.CodeValidation, "missing model or size id")
	}
	return s.api.Stock(ctx, bearer, modelID, sizeID)
}

func (s *Service) UpdateStock(ctx context.Context, bearer string, input upstream.StockInput) error {
	if input.IDModelo <= 0 || input.IDTalla <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing model or size id")
	}
	if input.Cantidad < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "stock cannot be negative")
	}
	return s.api.UpdateStock(ctx, bearer, input)
}

func (s *Service) Users(ctx context.Context, bearer string) ([]upstream.User, error) {
	return s.api.Users(ctx, bearer)
}

func (s *Service) ToggleUserStatus(ctx context.Context, bearer string, id int64) error {
	if id <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing user id")
	}
	return s.api.ToggleUserStatus(ctx, bearer, id)
}
