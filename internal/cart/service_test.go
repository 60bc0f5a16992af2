package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/upstream"
	pkgerrors "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/errors"
)

type stubCartAPI struct {
	lines        []upstream.CartLine
	count        int
	err          error
	addedReq     upstream.AddToCartRequest
	updatedID    int64
	updatedQty   int
	removedID    int64
}

func (s *stubCartAPI) Cart(context.Context, string, int64) ([]upstream.CartLine, error) {
	return s.lines, s.err
}

func (s *stubCartAPI) CartCount(context.Context, string, int64) (int, error) {
	return s.count, s.err
}

func (s *stubCartAPI) AddToCart(_ context.Context, _ string, req upstream.AddToCartRequest) error {
	s.addedReq = req
	return s.err
}

func (s *stubCartAPI) UpdateCartDetail(_ context.Context, _ string, detailID int64, quantity int) error {
	s.updatedID = detailID
	s.updatedQty = quantity
	return s.err
}

func (s *stubCartAPI) RemoveCartDetail(_ context.Context, _ string, detailID int64) error {
	s.removedID = detailID
	return s.err
}

func line(qty int, unit string) upstream.CartLine {
	price := decimal.RequireFromString(unit)
	return upstream.CartLine{
		Cantidad: qty,
		Precio:   price,
		Subtotal: price.Mul(decimal.NewFromInt(int64(qty))),
	}
}

func TestComputeTotalsAppliesIGV(t *testing.T) {
	lines := []upstream.CartLine{line(2, "50.00"), line(1, "19.90")}

	totals := ComputeTotals(lines)

	assert.Equal(t, "119.9", totals.Subtotal.String())
	assert.Equal(t, "21.58", totals.IGV.String())
	assert.Equal(t, "141.48", totals.Total.String())
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.IGV.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestComputeTotalsStableAcrossRepeatedViews(t *testing.T) {
	lines := []upstream.CartLine{line(3, "33.33"), line(7, "0.10")}

	first := ComputeTotals(lines)
	for i := 0; i < 100; i++ {
		again := ComputeTotals(lines)
		require.True(t, first.Total.Equal(again.Total))
		require.True(t, first.IGV.Equal(again.IGV))
	}
}

func TestViewComputesTotals(t *testing.T) {
	api := &stubCartAPI{lines: []upstream.CartLine{line(1, "100.00")}}
	svc := NewService(api)

	view, err := svc.View(context.Background(), "tok", 5)

	require.NoError(t, err)
	assert.Len(t, view.Lines, 1)
	assert.Equal(t, "118", view.Totals.Total.String())
}

func TestViewRejectsMissingCart(t *testing.T) {
	svc := NewService(&stubCartAPI{})

	_, err := svc.View(context.Background(), "tok", 0)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestAddClampsQuantity(t *testing.T) {
	api := &stubCartAPI{}
	svc := NewService(api)

	err := svc.Add(context.Background(), "tok", upstream.AddToCartRequest{IDCarrito: 1, IDProducto: 2, Cantidad: 0})

	require.NoError(t, err)
	assert.Equal(t, 1, api.addedReq.Cantidad)
}

func TestUpdateQuantityRejectsZero(t *testing.T) {
	svc := NewService(&stubCartAPI{})

	err := svc.UpdateQuantity(context.Background(), "tok", 9, 0)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestUpdateAndRemoveForward(t *testing.T) {
	api := &stubCartAPI{}
	svc := NewService(api)

	require.NoError(t, svc.UpdateQuantity(context.Background(), "tok", 9, 4))
	require.NoError(t, svc.Remove(context.Background(), "tok", 11))

	assert.Equal(t, int64(9), api.updatedID)
	assert.Equal(t, 4, api.updatedQty)
	assert.Equal(t, int64(11), api.removedID)
}
