package models

// Settlement system names. The decision engine selects one of these; the
// table below only carries display metadata.
const (
	SystemLocalTransfer = "Local Transfer"
	SystemSEPA          = "SEPA"
	SystemCurrencyOne   = "Currency One"
	SystemSWIFT         = "SWIFT"
)

// SettlementSystem is informational metadata about a payment network.
type SettlementSystem struct {
	Name           string `json:"name"`
	DisplayName    string `json:"display_name"`
	Fee            Fee    `json:"fee"`
	ProcessingTime string `json:"processing_time"`
}

// settlementTable is static; fee prose on the source pages is never parsed.
var settlementTable = []SettlementSystem{
	{
		Name:           SystemLocalTransfer,
		DisplayName:    "Local Transfer (Lithuania)",
		Fee:            FlatFee(0, "EUR"),
		ProcessingTime: "Instant",
	},
	{
		Name:           SystemSEPA,
		DisplayName:    "SEPA Credit Transfer",
		Fee:            FlatFee(0, "EUR"),
		ProcessingTime: "Same or next business day",
	},
	{
		Name:           SystemCurrencyOne,
		DisplayName:    "Currency One",
		Fee:            FlatFee(1, "EUR"),
		ProcessingTime: "1-2 business days",
	},
	{
		Name:           SystemSWIFT,
		DisplayName:    "SWIFT International Transfer",
		Fee:            RangeFee(15, 45, "EUR"),
		ProcessingTime: "2-5 business days",
	},
}

// DefaultSettlementSystems returns a fresh copy of the static settlement table keyed by name.
func DefaultSettlementSystems() map[string]SettlementSystem {
	out := make(map[string]SettlementSystem, len(settlementTable))
	for _, s := range settlementTable {
		out[s.Name] = s
	}
	return out
}

// SettlementSystemList returns the static table in precedence order.
func SettlementSystemList() []SettlementSystem {
	out := make([]SettlementSystem, len(settlementTable))
	copy(out, settlementTable)
	return out
}

// LookupSettlementSystem returns the static entry for name.
func LookupSettlementSystem(name string) (SettlementSystem, bool) {
	for _, s := range settlementTable {
		if s.Name == name {
			return s, true
		}
	}
	return SettlementSystem{}, false
}
