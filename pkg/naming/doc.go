// Package naming turns schema identifiers into display titles and code identifiers.
//
// Titles are produced by splitting an identifier into words, capitalizing each
// word with golang.org/x/text/cases, keeping minor words ("of", "and", ...) in
// lower case and applying forced casings for abbreviations ("api" → "API"):
//
//	c := naming.New(naming.WithOverrides(map[string]string{"iban": "IBAN"}))
//	c.Title("CREDIT_CARD") // "Credit Card"
//	c.Title("ibanNumber")  // "IBAN Number"
//
// Camel and Pascal build identifiers for generated code:
//
//	naming.Camel("enum-labels") // "enumLabels"
package naming
