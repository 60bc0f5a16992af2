package cart

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/upstream"
	pkgerrors "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/errors"
)

// IGVRate is the Peruvian sales tax applied on top of the cart subtotal.
var IGVRate = decimal.RequireFromString("0.18")

type cartAPI interface {
	Cart(ctx context.Context, bearer string, cartID int64) ([]upstream.CartLine, error)
	CartCount(ctx context.Context, bearer string, cartID int64) (int, error)
	AddToCart(ctx context.Context, bearer string, req upstream.AddToCartRequest) error
	UpdateCartDetail(ctx context.Context, bearer string, detailID int64, quantity int) error
	RemoveCartDetail(ctx context.Context, bearer string, detailID int64) error
}

// Totals carries money amounts for a cart. All arithmetic is done in
// decimals so repeated views of the same cart never drift by a cent.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	IGV      decimal.Decimal `json:"igv"`
	Total    decimal.Decimal `json:"total"`
}

// View is a cart snapshot with computed totals.
type View struct {
	Lines  []upstream.CartLine `json:"detalles"`
	Totals Totals              `json:"totales"`
}

type Service struct {
	api cartAPI
}

func NewService(api cartAPI) *Service {
	return &Service{api: api}
}

// ComputeTotals sums line subtotals and applies IGV. Amounts are
// rounded to two decimal places at the end, not per line.
func ComputeTotals(lines []upstream.CartLine) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Subtotal)
	}
	igv := subtotal.Mul(IGVRate)
	return Totals{
		Subtotal: subtotal.Round(2),
		IGV:      igv.Round(2),
		Total:    subtotal.Add(igv).Round(2),
	}
}

func (s *Service) View(ctx context.Context, bearer string, cartID int64) (View, error) {
	if cartID <= 0 {
		return View{}, pkgerrors.New(pkgerrors.CodeValidation, "missing cart id")
	}
	lines, err := s.api.Cart(ctx, bearer, cartID)
	if err != nil {
		return View{}, err
	}
	return View{Lines: lines, Totals: ComputeTotals(lines)}, nil
}

func (s *Service) Count(ctx context.Context, bearer string, cartID int64) (int, error) {
	if cartID <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "missing cart id")
	}
	return s.api.CartCount(ctx, bearer, cartID)
}

func (s *Service) Add(ctx context.Context, bearer string, req upstream.AddToCartRequest) error {
	if req.Cantidad < 1 {
		req.Cantidad = 1
	}
	return s.api.AddToCart(ctx, bearer, req)
}

// UpdateQuantity changes a line's quantity. Quantities below one are
// rejected; removing a line is a separate operation.
func (s *Service) UpdateQuantity(ctx context.Context, bearer string, detailID int64, quantity int) error {
	if quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	return s.api.UpdateCartDetail(ctx, bearer, detailID, quantity)
}

func (s *Service) Remove(ctx context.Context, bearer string, detailID int64) error {
	return s.api.RemoveCartDetail(ctx, bearer, detailID)
}
