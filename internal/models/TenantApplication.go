package models

const (
	ApplicationPending  = "Pending"
	ApplicationApproved = "Approved"
	ApplicationRejected = "Rejected"
)

type TenantApplication struct {
	Document
	ApplicantID    *string `json:"applicantId"` // nil for guest applicants
	ApplicantName  string  `json:"applicantName"`
	ApplicantEmail string  `json:"applicantEmail"`
	ApplicantPhone string  `json:"applicantPhone"`
	PropertyID     string  `json:"propertyId" gorm:"index"`
	Status         string  `json:"status"`
	IDDocURL       string  `json:"idUrl"`
	PayslipDocURL  string  `json:"payslipUrl"`

	PropertyName string `json:"propertyName,omitempty" gorm:"-"`
}
