package orders

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/upstream"
	pkgerrors "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/errors"
)

type ordersAPI interface {
	OrdersByUser(ctx context.Context, bearer string, userID int64) ([]upstream.Order, error)
	CreateOrder(ctx context.Context, bearer string, req upstream.CreateOrderRequest) (int64, error)
	CancelOrder(ctx context.Context, bearer string, orderID int64) error
	SubmitPaymentReceipt(ctx context.Context, bearer, contentType string, body io.Reader) (json.RawMessage, error)
	CreatePaymentPreference(ctx context.Context, bearer string, req upstream.PaymentPreferenceRequest) (upstream.PaymentPreference, error)
}

type Service struct {
	api ordersAPI
}

func NewService(api ordersAPI) *Service {
	return &Service{api: api}
}

func (s *Service) ListByUser(ctx context.Context, bearer string, userID int64) ([]upstream.Order, error) {
	if userID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "missing user id")
	}
	return s.api.OrdersByUser(ctx, bearer, userID)
}

// Create places an order from the user's cart. The shipping address is
// required; the upstream creates the order in "pendiente" state.
func (s *Service) Create(ctx context.Context, bearer string, req upstream.CreateOrderRequest) (int64, error) {
	if strings.TrimSpace(req.Direccion) == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "shipping address is required")
	}
	if req.IDUsuario <= 0 || req.IDCarrito <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "missing user or cart id")
	}
	return s.api.CreateOrder(ctx, bearer, req)
}

func (s *Service) Cancel(ctx context.Context, bearer string, orderID int64) error {
	if orderID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing order id")
	}
	return s.api.CancelOrder(ctx, bearer, orderID)
}

// SubmitReceipt forwards a multipart receipt upload untouched. The
// upstream validates the file; we only require that a body exists.
func (s *Service) SubmitReceipt(ctx context.Context, bearer, contentType string, body io.Reader) (json.RawMessage, error) {
	if body == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "missing receipt payload")
	}
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "receipt must be multipart/form-data")
	}
	return s.api.SubmitPaymentReceipt(ctx, bearer, contentType, body)
}

func (s *Service) PaymentPreference(ctx context.Context, bearer string, req upstream.PaymentPreferenceRequest) (upstream.PaymentPreference, error) {
	if req.IDPedido <= 0 {
		return upstream.PaymentPreference{}, pkgerrors.New(pkgerrors.CodeValidation, "missing order id")
	}
	return s.api.CreatePaymentPreference(ctx, bearer, req)
}
