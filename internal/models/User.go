package models

const (
	RoleAdmin     = "admin"
	RoleLandowner = "landowner"
	RoleTenant    = "tenant"
	RoleCaretaker = "caretaker"
)

const (
	UserActive   = "Active"
	UserInactive = "Inactive"
)

type User struct {
	Document
	FullName       string `json:"fullName"`
	Email          string `json:"email" gorm:"unique"`
	Password       string `json:"-"`
	Role           string `json:"role"` // "admin", "landowner", "tenant", "caretaker"
	Status         string `json:"status"`
	ProfilePicPath string `json:"profilePicPath"`
}
