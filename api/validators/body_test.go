package validators

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/errors"
)

type loginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestDecodeJSONBodyValid(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.com","password":"secret1"}`))

	var body loginBody
	if err := DecodeJSONBody(req, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.Email != "a@b.com" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.com","password":"secret1","extra":true}`))

	var body loginBody
	err := DecodeJSONBody(req, &body)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyFieldMessages(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"not-an-email","password":"x"}`))

	var body loginBody
	err := DecodeJSONBody(req, &body)
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected details map, got %T", typed.Details())
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email message %q", details["email"])
	}
	if details["password"] != "must be at least 6" {
		t.Fatalf("unexpected password message %q", details["password"])
	}
}

func TestParseURLInt64(t *testing.T) {
	router := chi.NewRouter()

	var got int64
	var gotErr error
	router.Get("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		got, gotErr = ParseURLInt64(r, "id")
	})

	req := httptest.NewRequest(http.MethodGet, "/orders/42", nil).WithContext(context.Background())
	router.ServeHTTP(httptest.NewRecorder(), req)

	if gotErr != nil {
		t.Fatalf("unexpected error: %v", gotErr)
	}
	if got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestParseURLInt64RejectsGarbage(t *testing.T) {
	router := chi.NewRouter()

	var gotErr error
	router.Get("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, gotErr = ParseURLInt64(r, "id")
	})

	req := httptest.NewRequest(http.MethodGet, "/orders/abc", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	if pkgerrors.As(gotErr) == nil {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}

func TestParseQueryInt64Default(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?other=1", nil)

	value, err := ParseQueryInt64(req, "page", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != 1 {
		t.Fatalf("expected default 1, got %d", value)
	}
}
