package catalog

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFiltersDefaults(t *testing.T) {
	filters := ParseFilters(url.Values{})

	assert.Equal(t, "", filters.Texto)
	assert.Equal(t, "", filters.Categoria)
	assert.True(t, filters.PrecioInicial.IsZero())
	assert.True(t, filters.PrecioFinal.IsZero())
	assert.Equal(t, "", filters.Sort)
	assert.Equal(t, 1, filters.Page)
}

func TestParseFiltersFull(t *testing.T) {
	query := url.Values{
		"texto":         {"  zapatilla  "},
		"categoria":     {"calzado"},
		"precioInicial": {"10.50"},
		"precioFinal":   {"99.90"},
		"sort":          {SortPriceDesc},
		"page":          {"3"},
	}

	filters := ParseFilters(query)

	assert.Equal(t, "zapatilla", filters.Texto)
	assert.Equal(t, "calzado", filters.Categoria)
	assert.True(t, filters.PrecioInicial.Equal(decimal.RequireFromString("10.50")))
	assert.True(t, filters.PrecioFinal.Equal(decimal.RequireFromString("99.90")))
	assert.Equal(t, SortPriceDesc, filters.Sort)
	assert.Equal(t, 3, filters.Page)
}

func TestParseFiltersDropsGarbage(t *testing.T) {
	query := url.Values{
		"precioInicial": {"abc"},
		"precioFinal":   {"-5"},
		"sort":          {"random"},
		"page":          {"0"},
	}

	filters := ParseFilters(query)

	assert.True(t, filters.PrecioInicial.IsZero())
	assert.True(t, filters.PrecioFinal.IsZero())
	assert.Equal(t, "", filters.Sort)
	assert.Equal(t, 1, filters.Page)
}

func TestFiltersRoundTrip(t *testing.T) {
	cases := []Filters{
		{Page: 1},
		{Texto: "polo", Page: 1},
		{Texto: "polo", Categoria: "ropa", Sort: SortPriceAsc, Page: 2},
		{
			Texto:         "short",
			PrecioInicial: decimal.RequireFromString("5"),
			PrecioFinal:   decimal.RequireFromString("120.75"),
			Sort:          SortNewest,
			Page:          7,
		},
	}

	for _, original := range cases {
		reparsed := ParseFilters(original.Values())

		require.Equal(t, original.Texto, reparsed.Texto)
		require.Equal(t, original.Categoria, reparsed.Categoria)
		require.True(t, original.PrecioInicial.Equal(reparsed.PrecioInicial))
		require.True(t, original.PrecioFinal.Equal(reparsed.PrecioFinal))
		require.Equal(t, original.Sort, reparsed.Sort)
		require.Equal(t, original.Page, reparsed.Page)
	}
}

func TestFiltersRoundTripSearchWithPriceSort(t *testing.T) {
	original := Filters{
		Texto:         "zapato",
		Categoria:     "3",
		PrecioInicial: decimal.NewFromInt(10),
		PrecioFinal:   decimal.NewFromInt(50),
		Sort:          "price_asc",
		Page:          1,
	}

	reparsed := ParseFilters(original.Values())

	assert.Equal(t, "zapato", reparsed.Texto)
	assert.Equal(t, "3", reparsed.Categoria)
	assert.True(t, reparsed.PrecioInicial.Equal(decimal.NewFromInt(10)))
	assert.True(t, reparsed.PrecioFinal.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, SortPriceAsc, reparsed.Sort)
}

func TestValuesOmitsDefaults(t *testing.T) {
	values := Filters{Page: 1}.Values()
	assert.Empty(t, values.Encode())
}
