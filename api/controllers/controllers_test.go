package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func jsonDecode(body io.Reader, dest any) error {
	return json.NewDecoder(body).Decode(dest)
}

func newTestRouter(pattern, method string, handler http.HandlerFunc) *chi.Mux {
	router := chi.NewRouter()
	router.Method(method, pattern, handler)
	return router
}
