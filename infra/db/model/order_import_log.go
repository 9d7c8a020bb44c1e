package model

// OrderImportLog records the accounting of one upload batch: how many
// rows were committed, how many were skipped, and why.
type OrderImportLog struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	YearMonth    string `gorm:"size:7;not null" json:"year_month"`
	FileName     string `gorm:"size:100;not null" json:"file_name"`
	TotalRow     int64  `gorm:"not null" json:"total_row"`
	CommittedRow int64  `gorm:"not null" json:"committed_row"`
	SkippedRow   int64  `gorm:"not null" json:"skipped_row"`
	Status       int    `gorm:"not null" json:"status"`
	Result       string `gorm:"type:text;not null" json:"result"`
	CreateTime   int64  `gorm:"not null" json:"create_time"`
	CreateBy     string `gorm:"size:100;not null" json:"create_by"`
}
