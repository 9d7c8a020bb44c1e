package entity

import "time"

// RawRow is one order line as returned by the parser service, keyed by
// the source document's field labels. Values are strings or JSON
// numbers; keys the pipeline does not know are ignored.
type RawRow map[string]interface{}

// ValidatedOrder is the typed, normalized form of a RawRow. A nil date
// means the source document carried the "not yet determined" sentinel.
type ValidatedOrder struct {
	YearMonth        string
	VendorID         int64
	VendorName       string
	BuildingName     string
	Number           int64
	ReceptionDetails string
	PaymentAmount    int64
	CompletionDate   *time.Time
	PaymentDate      *time.Time
	BillingDate      *time.Time
	EraseFlag        bool
}

// BatchResult summarizes one ingestion call. SkipReasons holds one
// message per skipped row, in original row order.
type BatchResult struct {
	Committed   int      `json:"committed"`
	Skipped     int      `json:"skipped"`
	SkipReasons []string `json:"skip_reasons"`
}

// OrderSearchFilter carries the optional listing filters. Empty values
// apply no constraint; both filters compose with AND.
type OrderSearchFilter struct {
	YearMonth  string
	VendorName string
}
