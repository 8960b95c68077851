package domain

import (
	"context"
	"time"

	"jobboard-backend/pkg/query"
)

type Industry string

const (
	IndustryTechnology    Industry = "Technology"
	IndustryHealthcare    Industry = "Healthcare"
	IndustryFinance       Industry = "Finance"
	IndustryEducation     Industry = "Education"
	IndustryRetail        Industry = "Retail"
	IndustryManufacturing Industry = "Manufacturing"
)

var Industries = []Industry{
	IndustryTechnology, IndustryHealthcare, IndustryFinance,
	IndustryEducation, IndustryRetail, IndustryManufacturing,
}

type Company struct {
	ID                string    `json:"id"`
	CompanyName       string    `json:"companyName"`
	Description       string    `json:"description"`
	Industry          Industry  `json:"industry"`
	Address           string    `json:"address"`
	NumberOfEmployees int       `json:"numberOfEmployees"`
	CompanyEmail      string    `json:"companyEmail"` // always lower-case
	CompanyHR         string    `json:"companyHR"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type CompanyChanges struct {
	CompanyName       *string   `json:"companyName,omitempty"`
	Description       *string   `json:"description,omitempty"`
	Industry          *Industry `json:"industry,omitempty"`
	Address           *string   `json:"address,omitempty"`
	NumberOfEmployees *int      `json:"numberOfEmployees,omitempty"`
	CompanyEmail      *string   `json:"companyEmail,omitempty"`
}

func (c CompanyChanges) Empty() bool {
	return c.CompanyName == nil && c.Description == nil && c.Industry == nil &&
		c.Address == nil && c.NumberOfEmployees == nil && c.CompanyEmail == nil
}

// CompanyFilter matches a company when every non-empty field matches.
type CompanyFilter struct {
	CompanyEmail string
	CompanyName  string
	CompanyHR    string
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id string) (*Company, error)
	FindOne(ctx context.Context, filter CompanyFilter) (*Company, error)
	// ListByOwner returns the companies whose CompanyHR is ownerID.
	ListByOwner(ctx context.Context, ownerID string) ([]Company, error)
	Update(ctx context.Context, id string, changes CompanyChanges) (*Company, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, opts query.Options) ([]Company, error)
}

type CompanyUsecase interface {
	AddCompany(ctx context.Context, ownerID string, company *Company) (*Company, error)
	GetCompany(ctx context.Context, id string) (*Company, error)
	ListCompanies(ctx context.Context, opts query.Options) ([]Company, error)
	SearchByName(ctx context.Context, name string, opts query.Options) ([]Company, error)
	UpdateCompany(ctx context.Context, callerID, id string, changes CompanyChanges) (*Company, error)
	DeleteCompany(ctx context.Context, callerID, id string) error
}
