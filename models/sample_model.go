package models

import (
	"time"

	"gorm.io/gorm"
)

type Sample struct {
	gorm.Model
	SampleNo     string     `json:"sample_no"`
	OrderID      uint       `json:"order_id" gorm:"index"`
	Description  string     `json:"description"`
	SampleType   string     `json:"sample_type"`
	Quantity     int        `json:"quantity"`
	Uom          string     `json:"uom"`
	ReceivedDate *time.Time `json:"received_date"`
	Condition    string     `json:"condition"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}
