package mapping

import (
	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	"github.com/tandoorlabs/pos-backend/internal/models"
)

// ToModelCompany converts a domain Company to a model Company.
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID: d.CompanyID,
		Name:      d.Name,
		Address:   d.Address,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainCompany converts a model Company to a domain Company.
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID: m.CompanyID,
		Name:      m.Name,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
	}
}
