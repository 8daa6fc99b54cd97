package naming_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nsync/pkg/naming"
)

func TestWords(t *testing.T) {
	t.Parallel()

	tests := map[string][]string{
		"RED":         {"RED"},
		"CREDIT_CARD": {"CREDIT", "CARD"},
		"bankAccount": {"bank", "Account"},
		"HTTPServer":  {"HTTP", "Server"},
		"enum-labels": {"enum", "labels"},
		"pt-BR":       {"pt", "BR"},
		"user id":     {"user", "id"},
		"v2Api":       {"v2", "Api"},
		"  __ ":       nil,
		"Dog":         {"Dog"},
	}

	for in, want := range tests {
		assert.Equal(t, want, naming.Words(in), in)
	}
}

func TestCaser_Title(t *testing.T) {
	t.Parallel()

	c := naming.New()

	tests := map[string]string{
		"RED":              "Red",
		"GREEN":            "Green",
		"CREDIT_CARD":      "Credit Card",
		"bankAccount":      "Bank Account",
		"api_key":          "API Key",
		"userId":           "User ID",
		"the_end_of_story": "The End of Story",
		"":                 "",
	}

	for in, want := range tests {
		assert.Equal(t, want, c.Title(in), in)
	}
}

func TestCaser_Options(t *testing.T) {
	t.Parallel()

	t.Run("custom minor words", func(t *testing.T) {
		t.Parallel()
		c := naming.New(naming.WithMinorWords("and"))
		require.Equal(t, "Salt and Pepper", c.Title("SALT_AND_PEPPER"))
		require.Equal(t, "Out Of Stock", c.Title("OUT_OF_STOCK"))
	})

	t.Run("custom overrides", func(t *testing.T) {
		t.Parallel()
		c := naming.New(naming.WithOverrides(map[string]string{"SKU": "SKU", "iban": "IBAN"}))
		require.Equal(t, "SKU Code", c.Title("skuCode"))
		require.Equal(t, "IBAN", c.Title("iban"))
		require.Equal(t, "API", c.Title("api"), "defaults are kept")
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		t.Parallel()
		c := naming.New()
		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, "Bank Account", c.Title("bankAccount"))
			}()
		}
		wg.Wait()
	})
}

func TestCamel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "enumLabels", naming.Camel("enum-labels"))
	require.Equal(t, "common", naming.Camel("common"))
	require.Equal(t, "enCommonNs", naming.Camel("en common Ns"))
	require.Equal(t, "ptBrCommonNs", naming.Camel("pt-BR common Ns"))
	require.Equal(t, "EnumLabels", naming.Pascal("enum_labels"))
	require.Empty(t, naming.Camel(""))
}
