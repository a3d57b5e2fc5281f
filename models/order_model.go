package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNo string `json:"order_no" gorm:"unique"`
	// Client id is stored as text, matching the legacy dashboard
	// schema. No database-level foreign key exists.
	ClientID  string     `json:"client_id"`
	OrderDate *time.Time `json:"order_date"`
	Status    string     `json:"status" gorm:"default:draft"`
	Remarks   string     `json:"remarks"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

const (
	OrderStatusDraft     = "draft"
	OrderStatusReceived  = "received"
	OrderStatusTesting   = "testing"
	OrderStatusCompleted = "completed"
)
