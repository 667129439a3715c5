package models

import "time"

const (
	BillUnpaid = "UNPAID"
	BillPaid   = "PAID"
)

type Bill struct {
	Document
	TenantID    string    `json:"tenantId" gorm:"index"`
	LandownerID string    `json:"landownerId" gorm:"index"`
	Amount      string    `json:"amount"` // decimal-as-string
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Status      string    `json:"status"`

	TenantName string `json:"tenantName,omitempty" gorm:"-"`
}
