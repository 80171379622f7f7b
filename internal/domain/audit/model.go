package audit

import (
	"time"

	"gorm.io/datatypes"
)

// Action is the verb recorded with each entry.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionExport Action = "export"
)

// AuditLog is an append-only record of a mutating or sensitive-read
// action. The core only ever writes it.
type AuditLog struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       string         `gorm:"size:24;index" json:"user_id"`
	Action       Action         `gorm:"size:20;not null" json:"action"`
	ResourceType string         `gorm:"size:50;not null" json:"resource_type"`
	ResourceID   string         `gorm:"size:64;index" json:"resource_id"`
	OldData      datatypes.JSON `json:"old_data,omitempty"`
	NewData      datatypes.JSON `json:"new_data,omitempty"`
	IPAddress    string         `gorm:"size:45" json:"ip_address"`
	UserAgent    string         `gorm:"size:255" json:"user_agent"`
	Description  string         `gorm:"type:text" json:"description"`
	CreatedAt    time.Time      `json:"created_at"`
}
