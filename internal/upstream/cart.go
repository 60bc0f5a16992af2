package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// CartLine is one server-owned cart line item. The client copy is a
// transient snapshot; every mutation is followed by a re-fetch.
type CartLine struct {
	ID       int64           `json:"idDetalle"`
	Producto string          `json:"nombreProducto"`
	Modelo   string          `json:"nombreModelo"`
	Talla    string          `json:"nombreTalla"`
	Cantidad int             `json:"cantidad"`
	Precio   decimal.Decimal `json:"precioUnitario"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// AddToCartRequest adds a product variant to the cart.
type AddToCartRequest struct {
	IDCarrito  int64 `json:"idCarrito"`
	IDProducto int64 `json:"idProducto"`
	IDModelo   int64 `json:"idModelo"`
	IDTalla    int64 `json:"idTalla"`
	Cantidad   int   `json:"cantidad"`
}

type cartBody struct {
	IDCarrito int64 `json:"idCarrito"`
}

type cartResponse struct {
	Detalles []CartLine `json:"detalles"`
}

type cartCountResponse struct {
	Cantidad int `json:"cantidad"`
}

type quantityBody struct {
	Cantidad int `json:"cantidad"`
}

// Cart fetches the current cart snapshot.
func (c *Client) Cart(ctx context.Context, bearer string, cartID int64) ([]CartLine, error) {
	var resp cartResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/carrito", bearer, nil, cartBody{IDCarrito: cartID}, &resp); err != nil {
		return nil, err
	}
	return resp.Detalles, nil
}

// CartCount returns the number of items, shown on the cart badge.
func (c *Client) CartCount(ctx context.Context, bearer string, cartID int64) (int, error) {
	query := map[string][]string{"idCarrito": {fmt.Sprint(cartID)}}
	var resp cartCountResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/carrito/cantidad", bearer, query, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Cantidad, nil
}

// AddToCart adds a line; stock validation happens server-side.
func (c *Client) AddToCart(ctx context.Context, bearer string, req AddToCartRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/api/agregarCarrito", bearer, nil, req, nil)
}

// UpdateCartDetail changes the quantity of a cart line.
func (c *Client) UpdateCartDetail(ctx context.Context, bearer string, detailID int64, quantity int) error {
	path := fmt.Sprintf("/api/carrito_detalle/%d", detailID)
	return c.doJSON(ctx, http.MethodPut, path, bearer, nil, quantityBody{Cantidad: quantity}, nil)
}

// RemoveCartDetail deletes a cart line.
func (c *Client) RemoveCartDetail(ctx context.Context, bearer string, detailID int64) error {
	path := fmt.Sprintf("/api/carrito_detalle/%d", detailID)
	return c.doJSON(ctx, http.MethodDelete, path, bearer, nil, nil, nil)
}
