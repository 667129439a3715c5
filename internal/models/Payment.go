package models

const (
	PaymentPending  = "Pending"
	PaymentApproved = "Approved"
	PaymentRejected = "Rejected"
)

// Payment is submitted by tenants from the mobile app against a bill and
// reviewed by the landowner. Approval and rejection always move the
// linked bill in the same transaction.
type Payment struct {
	Document
	BillID      string `json:"billId" gorm:"index"`
	UserID      string `json:"userId" gorm:"index"`
	LandownerID string `json:"landownerId" gorm:"index"`
	Amount      string `json:"amount"`
	PaymentType string `json:"paymentType"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"` // proof of payment
	Status      string `json:"status"`

	TenantName string `json:"tenantName,omitempty" gorm:"-"`
}
