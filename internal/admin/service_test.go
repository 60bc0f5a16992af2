package admin

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/upstream"
	pkgerrors "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/errors"
)

type stubAdminAPI struct {
	categoryInput upstream.CategoryInput
	sizeInput     upstream.SizeInput
	stockInput    upstream.StockInput
	toggledID     int64
	users         []upstream.User
	err           error
}

func (s *stubAdminAPI) AddCategory(_ context.Context, _ string, input upstream.CategoryInput) error {
	s.categoryInput = input
	return s.err
}

func (s *stubAdminAPI) EditCategory(_ context.Context, _ string, id int64, input upstream.CategoryInput) error {
	s.toggledID = id
	s.categoryInput = input
	return s.err
}

func (s *stubAdminAPI) ToggleCategoryStatus(_ context.Context, _ string, id int64) error {
	s.toggledID = id
	return s.err
}

func (s *stubAdminAPI) Sizes(context.Context, string) ([]upstream.Size, error) {
	return nil, s.err
}

func (s *stubAdminAPI) AddSize(_ context.Context, _ string, input upstream.SizeInput) error {
	s.sizeInput = input
	return s.err
}

func (s *stubAdminAPI) EditSize(_ context.Context, _ string, id int64, input upstream.SizeInput) error {
	s.toggledID = id
	s.sizeInput = input
	return s.err
}

func (s *stubAdminAPI) ToggleSizeStatus(_ context.Context, _ string, id int64) error {
	s.toggledID = id
	return s.err
}

func (s *stubAdminAPI) AddProduct(context.Context, string, string, io.Reader) (json.RawMessage, error) {
	return json.RawMessage(`{}`), s.err
}

func (s *stubAdminAPI) EditProductModel(_ context.Context, _ string, id int64, _ string, _ io.Reader) (json.RawMessage, error) {
	s.toggledID = id
	return json.RawMessage(`{}`), s.err
}

func (s *stubAdminAPI) ToggleProductStatus(_ context.Context, _ string, id int64) error {
	s.toggledID = id
	return s.err
}

func (s *stubAdminAPI) Stock(context.Context, string, int64, int64) (upstream.StockLevel, error) {
	return upstream.StockLevel{Cantidad: 5}, s.err
}

func (s *stubAdminAPI) UpdateStock(_ context.Context, _ string, input upstream.StockInput) error {
	s.stockInput = input
	return s.err
}

func (s *stubAdminAPI) Users(context.Context, string) ([]upstream.User, error) {
	return s.users, s.err
}

func (s *stubAdminAPI) ToggleUserStatus(_ context.Context, _ string, id int64) error {
	s.toggledID = id
	return s.err
}

func requireValidation(t *testing.T, err error) {
	t.Helper()
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestAddCategoryTrimsName(t *testing.T) {
	api := &stubAdminAPI{}
	svc := NewService(api)

	require.NoError(t, svc.AddCategory(context.Background(), "tok", "  Calzado  "))
	assert.Equal(t, "Calzado", api.categoryInput.Nombre)
}

func TestAddCategoryRejectsBlankName(t *testing.T) {
	svc := NewService(&stubAdminAPI{})
	requireValidation(t, svc.AddCategory(context.Background(), "tok", "   "))
}

func TestEditCategoryRequiresID(t *testing.T) {
	svc := NewService(&stubAdminAPI{})
	requireValidation(t, svc.EditCategory(context.Background(), "tok", 0, "Ropa"))
}

func TestAddSizeRejectsBlankName(t *testing.T) {
	svc := NewService(&stubAdminAPI{})
	requireValidation(t, svc.AddSize(context.Background(), "tok", ""))
}

func TestAddProductRequiresMultipart(t *testing.T) {
	svc := NewService(&stubAdminAPI{})

	_, err := svc.AddProduct(context.Background(), "tok", "application/json", strings.NewReader("{}"))
	requireValidation(t, err)
}

func TestAddProductAcceptsMultipart(t *testing.T) {
	svc := NewService(&stubAdminAPI{})

	_, err := svc.AddProduct(context.Background(), "tok", "multipart/form-data; boundary=b", strings.NewReader("--b--"))
	require.NoError(t, err)
}

func TestUpdateStockRejectsNegative(t *testing.T) {
	svc := NewService(&stubAdminAPI{})

	requireValidation(t, svc.UpdateStock(context.Background(), "tok", upstream.StockInput{
		IDModelo: 1,
		IDTalla:  1,
		Cantidad: -2,
	}))
}

func TestUpdateStockForwards(t *testing.T) {
	api := &stubAdminAPI{}
	svc := NewService(api)

	require.NoError(t, svc.UpdateStock(context.Background(), "tok", upstream.StockInput{
		IDModelo: 3,
		IDTalla:  2,
		Cantidad: 8,
	}))
	assert.Equal(t, 8, api.stockInput.Cantidad)
}

func TestToggleUserStatusRequiresID(t *testing.T) {
	svc := NewService(&stubAdminAPI{})
	requireValidation(t, svc.ToggleUserStatus(context.Background(), "tok", -1))
}

func TestUsersForwards(t *testing.T) {
	api := &stubAdminAPI{users: []upstream.User{{ID: 1, Rol: "cliente"}}}
	svc := NewService(api)

	users, err := svc.Users(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "cliente", users[0].Rol)
}
