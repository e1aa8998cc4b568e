package domain

// Currency describes how amounts in a currency are displayed.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // ISO 4217 code (e.g., "USD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	Precision    int    `json:"precision"`    // decimal places, 0 for JPY
	SymbolAfter  bool   `json:"symbolAfter"`  // "12,50 €" style
	GroupSep     string `json:"groupSeparator"`
	DecimalSep   string `json:"decimalSeparator"`
}
