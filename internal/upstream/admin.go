package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// CategoryInput is the admin payload for category create/edit.
type CategoryInput struct {
	Nombre string `json:"nombreCategoria"`
}

// SizeInput is the admin payload for size create/edit.
type SizeInput struct {
	Nombre string `json:"nombreTalla"`
}

// Size is a size row.
type Size struct {
	ID     int64  `json:"idTalla"`
	Nombre string `json:"nombreTalla"`
	Estado int    `json:"estado"`
}

// User is the superadmin user listing row.
type User struct {
	ID       int64  `json:"idUsuario"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Rol      string `json:"rol"`
	Estado   int    `json:"estado"`
}

// StockInput updates the stock for a product variant/size.
type StockInput struct {
	IDModelo int64 `json:"idModelo"`
	IDTalla  int64 `json:"idTalla"`
	Cantidad int   `json:"cantidad"`
}

// StockLevel is the stock projection for a variant/size pair.
type StockLevel struct {
	IDModelo int64 `json:"idModelo"`
	IDTalla  int64 `json:"idTalla"`
	Cantidad int   `json:"cantidad"`
}

// AddCategory creates a category.
func (c *Client) AddCategory(ctx context.Context, bearer string, input CategoryInput) error {
	return c.doJSON(ctx, http.MethodPost, "/api/agregarCategoria", bearer, nil, input, nil)
}

// EditCategory renames a category.
func (c *Client) EditCategory(ctx context.Context, bearer string, id int64, input CategoryInput) error {
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/editarCategoria/%d", id), bearer, nil, input, nil)
}

// ToggleCategoryStatus flips a category between active and inactive.
func (c *Client) ToggleCategoryStatus(ctx context.Context, bearer string, id int64) error {
	return c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/api/cambiarEstadoCategoria/%d", id), bearer, nil, struct{}{}, nil)
}

// Sizes lists all sizes including inactive ones.
func (c *Client) Sizes(ctx context.Context, bearer string) ([]Size, error) {
	var resp []Size
	if err := c.doJSON(ctx, http.MethodGet, "/api/listarTallas", bearer, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// AddSize creates a size.
func (c *Client) AddSize(ctx context.Context, bearer string, input SizeInput) error {
	return c.doJSON(ctx, http.MethodPost, "/api/agregarTalla", bearer, nil, input, nil)
}

// EditSize renames a size.
func (c *Client) EditSize(ctx context.Context, bearer string, id int64, input SizeInput) error {
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/editarTalla/%d", id), bearer, nil, input, nil)
}

// ToggleSizeStatus flips a size between active and inactive.
func (c *Client) ToggleSizeStatus(ctx context.Context, bearer string, id int64) error {
	return c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/api/cambiarEstadoTalla/%d", id), bearer, nil, struct{}{}, nil)
}

// AddProduct forwards the multipart product-with-images upload.
func (c *Client) AddProduct(ctx context.Context, bearer, contentType string, body io.Reader) (json.RawMessage, error) {
	return c.doRaw(ctx, http.MethodPost, "/api/agregarProductos", bearer, contentType, body)
}

// EditProductModel forwards the multipart model/image edit.
func (c *Client) EditProductModel(ctx context.Context, bearer string, id int64, contentType string, body io.Reader) (json.RawMessage, error) {
	return c.doRaw(ctx, http.MethodPost, fmt.Sprintf("/api/editarModeloyImagen/%d", id), bearer, contentType, body)
}

// ToggleProductStatus flips a product between active and inactive.
func (c *Client) ToggleProductStatus(ctx context.Context, bearer string, id int64) error {
	return c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/api/cambiarEstadoProducto/%d", id), bearer, nil, struct{}{}, nil)
}

// Stock reads the stock level for a variant/size pair.
func (c *Client) Stock(ctx context.Context, bearer string, modelID, sizeID int64) (StockLevel, error) {
	var resp StockLevel
	path := fmt.Sprintf("/api/stock/%d/%d", modelID, sizeID)
	if err := c.doJSON(ctx, http.MethodGet, path, bearer, nil, nil, &resp); err != nil {
		return StockLevel{}, err
	}
	return resp, nil
}

// UpdateStock sets the stock level for a variant/size pair.
func (c *Client) UpdateStock(ctx context.Context, bearer string, input StockInput) error {
	return c.doJSON(ctx, http.MethodPost, "/api/actualizarStock", bearer, nil, input, nil)
}

// Users lists accounts for the superadmin console.
func (c *Client) Users(ctx context.Context, bearer string) ([]User, error) {
	var resp []User
	if err := c.doJSON(ctx, http.MethodGet, "/api/listarUsuarios", bearer, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ToggleUserStatus flips an account between active and disabled.
func (c *Client) ToggleUserStatus(ctx context.Context, bearer string, id int64) error {
	return c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/api/cambiarEstadoUsuario/%d", id), bearer, nil, struct{}{}, nil)
}
