package models

const (
	ReportPending    = "PENDING"
	ReportInProgress = "IN_PROGRESS"
	ReportResolved   = "RESOLVED"
)

type MaintenanceReport struct {
	Document
	Title               string  `json:"title"`
	PropertyAddress     string  `json:"propertyAddress"`
	LandownerID         string  `json:"landownerId" gorm:"index"`
	AssignedCaretakerID *string `json:"assignedCaretakerId"`
	Status              string  `json:"status"`

	AssignedCaretakerName string `json:"assignedCaretakerName,omitempty" gorm:"-"`
}
