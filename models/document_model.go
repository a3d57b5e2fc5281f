package models

import (
	"time"

	"fiber-lims/types"

	"gorm.io/gorm"
)

type Document struct {
	gorm.Model
	DocNo    types.SnowflakeID `json:"doc_no" gorm:"unique"`
	OrderID  uint              `json:"order_id" gorm:"index"`
	DocType  string            `json:"doc_type"`
	Title    string            `json:"title"`
	IssuedBy int               `json:"issued_by"`
	IssuedAt *time.Time        `json:"issued_at"`
	Status   string            `json:"status" gorm:"default:issued"`
	SentTo   string            `json:"sent_to"`
	SentAt   *time.Time        `json:"sent_at"`
}

const (
	DocTypeReport       = "report"
	DocTypeCertificate  = "certificate"
	DocTypeDeliveryNote = "delivery_note"
)
