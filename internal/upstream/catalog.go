package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// Product is the catalog projection rendered by the storefront.
type Product struct {
	ID          int64           `json:"idProducto"`
	Nombre      string          `json:"nombreProducto"`
	Descripcion string          `json:"descripcion"`
	Categoria   string          `json:"categoria"`
	Precio      decimal.Decimal `json:"precio"`
	Imagen      string          `json:"imagen"`
	Destacado   bool            `json:"destacado"`
	Estado      int             `json:"estado"`
}

// ProductPage is one page of filtered catalog results.
type ProductPage struct {
	Productos  []Product `json:"productos"`
	Pagina     int       `json:"pagina"`
	TotalPages int       `json:"totalPaginas"`
	Total      int       `json:"total"`
}

// Category is a catalog category row.
type Category struct {
	ID     int64  `json:"idCategoria"`
	Nombre string `json:"nombreCategoria"`
	Estado int    `json:"estado"`
}

type maxPriceResponse struct {
	PrecioMaximo decimal.Decimal `json:"precioMaximo"`
}

// Products lists the catalog filtered by the query string criteria
// (texto, categoria, precioInicial, precioFinal, sort, page).
func (c *Client) Products(ctx context.Context, query url.Values) (ProductPage, error) {
	var resp ProductPage
	if err := c.doJSON(ctx, http.MethodGet, "/api/productos", "", query, nil, &resp); err != nil {
		return ProductPage{}, err
	}
	return resp, nil
}

// Categories lists the active categories.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var resp []Category
	if err := c.doJSON(ctx, http.MethodGet, "/api/listarCategorias", "", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// FeaturedProducts lists the products flagged for the home carousel.
func (c *Client) FeaturedProducts(ctx context.Context) ([]Product, error) {
	var resp []Product
	if err := c.doJSON(ctx, http.MethodGet, "/api/productos-destacados", "", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// MaxPrice returns the highest catalog price, used to bound the
// storefront's price-range filter.
func (c *Client) MaxPrice(ctx context.Context) (decimal.Decimal, error) {
	var resp maxPriceResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/obtenerPrecioMaximo", "", nil, nil, &resp); err != nil {
		return decimal.Zero, err
	}
	return resp.PrecioMaximo, nil
}
