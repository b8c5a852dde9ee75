package domain

import "time"

// Company is the identity container for employee credit accounts.
// Employees hold a back-reference to their company; the company itself
// is created once and never deleted.
type Company struct {
	CompanyID string    `json:"companyID"` // Primary key (UUID)
	Name      string    `json:"name"`
	Address   string    `json:"address"` // Optional
	CreatedAt time.Time `json:"createdAt"`
}
