package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Sort orders accepted by the product listing.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNewest    = "recientes"
)

// Filters captures the product listing query surface. Zero values mean
// "not filtered"; Page defaults to 1 when absent or invalid.
type Filters struct {
	Texto         string
	Categoria     string
	PrecioInicial decimal.Decimal
	PrecioFinal   decimal.Decimal
	Sort          string
	Page          int
}

// ParseFilters reads listing filters from a request query string.
// Unknown sort values and malformed prices are dropped rather than
// rejected so a stale bookmark still renders a listing.
func ParseFilters(query url.Values) Filters {
	filters := Filters{
		Texto:     strings.TrimSpace(query.Get("texto")),
		Categoria: strings.TrimSpace(query.Get("categoria")),
		Page:      1,
	}

	if raw := query.Get("precioInicial"); raw != "" {
		if value, err := decimal.NewFromString(raw); err == nil && !value.IsNegative() {
			filters.PrecioInicial = value
		}
	}
	if raw := query.Get("precioFinal"); raw != "" {
		if value, err := decimal.NewFromString(raw); err == nil && !value.IsNegative() {
			filters.PrecioFinal = value
		}
	}

	switch sort := query.Get("sort"); sort {
	case SortPriceAsc, SortPriceDesc, SortNewest:
		filters.Sort = sort
	}

	if raw := query.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			filters.Page = page
		}
	}

	return filters
}

// Values renders the filters back into a query string. Parsing the
// result yields the same filters, which keeps pagination links stable.
func (f Filters) Values() url.Values {
	values := url.Values{}
	if f.Texto != "" {
		values.Set("texto", f.Texto)
	}
	if f.Categoria != "" {
		values.Set("categoria", f.Categoria)
	}
	if !f.PrecioInicial.IsZero() {
		values.Set("precioInicial", f.PrecioInicial.String())
	}
	if !f.PrecioFinal.IsZero() {
		values.Set("precioFinal", f.PrecioFinal.String())
	}
	if f.Sort != "" {
		values.Set("sort", f.Sort)
	}
	if f.Page > 1 {
		values.Set("page", strconv.Itoa(f.Page))
	}
	return values
}

// HasSearch reports whether the filters carry a free-text search worth
// remembering in the user's recent searches.
func (f Filters) HasSearch() bool {
	return f.Texto != ""
}
