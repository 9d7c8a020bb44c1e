package model

import "time"

// Order is one committed vendor order line. Rows are insert-only from
// the ingestion pipeline; erase_flag is flipped later by the
// reconciliation side, never here.
type Order struct {
	ID               int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	YearMonth        string     `gorm:"size:7;not null;index" json:"year_month"`
	VendorID         int64      `gorm:"not null" json:"vendor_id"`
	VendorName       string     `gorm:"size:255;not null" json:"vendor_name"`
	BuildingName     string     `gorm:"size:255;not null" json:"building_name"`
	Number           int64      `gorm:"not null" json:"number"`
	ReceptionDetails string     `gorm:"size:255;not null" json:"reception_details"`
	PaymentAmount    int64      `gorm:"not null" json:"payment_amount"`
	CompletionDate   *time.Time `gorm:"type:date" json:"completion_date"`
	PaymentDate      *time.Time `gorm:"type:date" json:"payment_date"`
	BillingDate      *time.Time `gorm:"type:date" json:"billing_date"`
	EraseFlag        bool       `gorm:"not null;default:false" json:"erase_flag"`
	CreateTime       int64      `gorm:"not null" json:"create_time"`
	CreateBy         string     `gorm:"size:100;not null" json:"create_by"`
	UpdateTime       int64      `gorm:"not null" json:"update_time"`
	UpdateBy         string     `gorm:"size:100;not null" json:"update_by"`
}
