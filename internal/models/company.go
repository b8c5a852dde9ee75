package models

import "time"

// Company is the database representation of a company.
type Company struct {
	CompanyID string    `db:"company_id"`
	Name      string    `db:"name"`
	Address   string    `db:"address"`
	CreatedAt time.Time `db:"created_at"`
}
