package models

import "time"

type ActivityAction string

const (
	ActivityImport   ActivityAction = "import"
	ActivityCount    ActivityAction = "count"
	ActivityScan     ActivityAction = "scan"
	ActivityLocation ActivityAction = "location"
	ActivityReset    ActivityAction = "reset"
	ActivityAnswer   ActivityAction = "answer"
)

// ActivityLog: Son işlemler paneli için tutulan, sadece eklenen kayıt.
type ActivityLog struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UserName    string         `gorm:"size:100" json:"user_name"`
	Action      ActivityAction `gorm:"size:20;index" json:"action"`
	EntityType  string         `gorm:"size:50" json:"entity_type"`
	Description string         `gorm:"size:255" json:"description"`
}
