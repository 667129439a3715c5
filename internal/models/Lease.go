package models

import "time"

const (
	LeaseActive                = "ACTIVE"
	LeaseTerminatedByLandowner = "TERMINATED_BY_LANDOWNER"
)

type Lease struct {
	Document
	PropertyID    string    `json:"propertyId" gorm:"index"`
	TenantID      string    `json:"tenantId" gorm:"index"`
	LandownerID   string    `json:"landownerId" gorm:"index"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	DepositAmount string    `json:"depositAmount"`
	DocumentURL   string    `json:"leaseDocumentUrl"`
	Status        string    `json:"status"`

	// Decorated for list views, never persisted.
	TenantName      string `json:"tenantName,omitempty" gorm:"-"`
	PropertyAddress string `json:"propertyAddress,omitempty" gorm:"-"`
}
