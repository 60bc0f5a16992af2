package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/shopspring/decimal"
)

// OrderLine is a read-only order line projection.
type OrderLine struct {
	Producto string          `json:"nombreProducto"`
	Modelo   string          `json:"nombreModelo"`
	Talla    string          `json:"nombreTalla"`
	Cantidad int             `json:"cantidad"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// Order is the server-owned order the storefront renders. State
// transitions are requested, never computed client-side.
type Order struct {
	ID        int64           `json:"idPedido"`
	Total     decimal.Decimal `json:"total"`
	Estado    string          `json:"estado"`
	Direccion string          `json:"direccion"`
	Detalles  []OrderLine     `json:"detalles"`
}

// CreateOrderRequest places a new order from the active cart.
type CreateOrderRequest struct {
	IDUsuario int64  `json:"idUsuario"`
	IDCarrito int64  `json:"idCarrito"`
	Direccion string `json:"direccion"`
}

// PaymentPreferenceRequest asks for a MercadoPago checkout preference.
type PaymentPreferenceRequest struct {
	IDPedido int64           `json:"idPedido"`
	Total    decimal.Decimal `json:"total"`
}

// PaymentPreference is the widget hand-off returned by the API.
type PaymentPreference struct {
	PreferenceID string `json:"preferenceId"`
	InitPoint    string `json:"initPoint"`
}

type createOrderResponse struct {
	IDPedido int64 `json:"idPedido"`
}

type cancelOrderBody struct {
	IDPedido int64 `json:"idPedido"`
}

// OrdersByUser lists the user's orders.
func (c *Client) OrdersByUser(ctx context.Context, bearer string, userID int64) ([]Order, error) {
	var resp []Order
	path := fmt.Sprintf("/api/pedidos/%d", userID)
	if err := c.doJSON(ctx, http.MethodGet, path, bearer, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateOrder places an order and returns its id.
func (c *Client) CreateOrder(ctx context.Context, bearer string, req CreateOrderRequest) (int64, error) {
	var resp createOrderResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/pedido", bearer, nil, req, &resp); err != nil {
		return 0, err
	}
	return resp.IDPedido, nil
}

// CancelOrder requests cancellation; legality is decided server-side.
func (c *Client) CancelOrder(ctx context.Context, bearer string, orderID int64) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/cancelarPedido", bearer, nil, cancelOrderBody{IDPedido: orderID}, nil)
}

// SubmitPaymentReceipt forwards the multipart receipt upload untouched.
func (c *Client) SubmitPaymentReceipt(ctx context.Context, bearer, contentType string, body io.Reader) (json.RawMessage, error) {
	return c.doRaw(ctx, http.MethodPost, "/api/recibirPagoComprobante", bearer, contentType, body)
}

// CreatePaymentPreference builds the MercadoPago widget hand-off.
func (c *Client) CreatePaymentPreference(ctx context.Context, bearer string, req PaymentPreferenceRequest) (PaymentPreference, error) {
	var resp PaymentPreference
	if err := c.doJSON(ctx, http.MethodPost, "/api/payment/preference", bearer, nil, req, &resp); err != nil {
		return PaymentPreference{}, err
	}
	return resp, nil
}
