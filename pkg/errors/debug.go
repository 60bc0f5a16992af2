package errors

import (
	"errors"
	"fmt"
)

// UpstreamError carries the remote API response details for diagnostics.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	UpstreamEndpoint string `json:"upstream_endpoint,omitempty"`
	UpstreamStatus   int    `json:"upstream_status,omitempty"`
	UpstreamBody     string `json:"upstream_body,omitempty"`
}

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		d.UpstreamEndpoint = upErr.Endpoint
		d.UpstreamStatus = upErr.StatusCode
		d.UpstreamBody = upErr.Body
	}

	return d
}
