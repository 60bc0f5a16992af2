package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeMaintenance, http.StatusServiceUnavailable},
		{CodeUpstream, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		if got := MetadataFor(tc.code).HTTPStatus; got != tc.status {
			t.Fatalf("%s: expected %d got %d", tc.code, tc.status, got)
		}
	}
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("NOPE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", meta.HTTPStatus)
	}
}

func TestAsUnwrapsThroughChain(t *testing.T) {
	base := New(CodeNotFound, "missing cart")
	wrapped := fmt.Errorf("fetch cart: %w", base)

	typed := As(wrapped)
	if typed == nil {
		t.Fatal("expected typed error")
	}
	if typed.Code() != CodeNotFound {
		t.Fatalf("unexpected code %s", typed.Code())
	}
}

func TestDumpIncludesUpstreamDetails(t *testing.T) {
	up := &UpstreamError{Endpoint: "/api/refresh-token", StatusCode: 502, Body: "bad gateway"}
	err := Wrap(CodeUpstream, up, "refresh failed")

	d := Dump(err)
	if d.Code != CodeUpstream {
		t.Fatalf("unexpected code %s", d.Code)
	}
	if d.UpstreamEndpoint != "/api/refresh-token" || d.UpstreamStatus != 502 {
		t.Fatalf("upstream details not captured: %+v", d)
	}
	if len(d.Chain) < 2 {
		t.Fatalf("expected error chain, got %v", d.Chain)
	}
}

func TestWrapNilBehavesLikeNew(t *testing.T) {
	err := Wrap(CodeInternal, nil, "boom")
	if errors.Unwrap(err) != nil {
		t.Fatal("expected no cause")
	}
	if err.Code() != CodeInternal {
		t.Fatalf("unexpected code %s", err.Code())
	}
}
