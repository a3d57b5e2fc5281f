package models

import (
	"time"

	"gorm.io/gorm"
)

// Invoice is the proforma invoice ("PI") record. The legacy schema
// keeps the table name pi_hantaran and links to orders by the order
// number string, not by id.
type Invoice struct {
	gorm.Model
	PINumber      string     `json:"pi_number" gorm:"unique"`
	SampleOrderNo string     `json:"sample_order_no" gorm:"index"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency" gorm:"default:IDR"`
	Status        string     `json:"status" gorm:"default:draft"`
	IssueDate     *time.Time `json:"issue_date"`
	Remarks       string     `json:"remarks"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int
}

func (Invoice) TableName() string {
	return "pi_hantaran"
}

const (
	InvoiceStatusDraft  = "draft"
	InvoiceStatusIssued = "issued"
	InvoiceStatusPaid   = "paid"
)
