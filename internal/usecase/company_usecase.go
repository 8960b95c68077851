package usecase

import (
	"context"
	"errors"
	"strings"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/logger"
	"jobboard-backend/pkg/query"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository) domain.CompanyUsecase {
	return &companyUsecase{companyRepo: companyRepo}
}

func (uc *companyUsecase) AddCompany(ctx context.Context, ownerID string, company *domain.Company) (*domain.Company, error) {
	company.CompanyEmail = strings.ToLower(strings.TrimSpace(company.CompanyEmail))

	if err := uc.ensureEmailFree(ctx, "", company.CompanyEmail); err != nil {
		return nil, err
	}

	company.ID = ""
	company.CompanyHR = ownerID
	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return nil, createFailure("Failed to add Company's data", err)
	}

	logger.Log.Info("Company added", "company_id", company.ID, "owner_id", ownerID)
	return company, nil
}

func (uc *companyUsecase) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	company, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Company Not Found")
	}
	return company, nil
}

func (uc *companyUsecase) ListCompanies(ctx context.Context, opts query.Options) ([]domain.Company, error) {
	return uc.companyRepo.List(ctx, opts)
}

// SearchByName returns the companies whose name contains name, ignoring case.
func (uc *companyUsecase) SearchByName(ctx context.Context, name string, opts query.Options) ([]domain.Company, error) {
	filtered := opts
	filtered.Filters = nil
	for _, f := range opts.Filters {
		if f.Field != "companyName" {
			filtered.Filters = append(filtered.Filters, f)
		}
	}
	filtered = filtered.With(query.Filter{Field: "companyName", Op: query.OpContains, Value: name})
	return uc.companyRepo.List(ctx, filtered)
}

func (uc *companyUsecase) UpdateCompany(ctx context.Context, callerID, id string, changes domain.CompanyChanges) (*domain.Company, error) {
	if _, err := uc.ownedBy(ctx, callerID, id, "You are not allowed to update this company"); err != nil {
		return nil, err
	}
	if changes.Empty() {
		return nil, apperror.BadRequest("At least one field must be provided.")
	}

	if changes.CompanyEmail != nil {
		lowered := strings.ToLower(strings.TrimSpace(*changes.CompanyEmail))
		changes.CompanyEmail = &lowered
		if err := uc.ensureEmailFree(ctx, id, lowered); err != nil {
			return nil, err
		}
	}

	company, err := uc.companyRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, notFoundAs(err, "Company Not Found")
	}
	return company, nil
}

func (uc *companyUsecase) DeleteCompany(ctx context.Context, callerID, id string) error {
	if _, err := uc.ownedBy(ctx, callerID, id, "You are not allowed to delete this company"); err != nil {
		return err
	}
	if err := uc.companyRepo.Delete(ctx, id); err != nil {
		return notFoundAs(err, "Company Not Found")
	}
	logger.Log.Info("Company deleted", "company_id", id, "owner_id", callerID)
	return nil
}

// ownedBy loads the company and checks that callerID is its owning HR.
func (uc *companyUsecase) ownedBy(ctx context.Context, callerID, id, denied string) (*domain.Company, error) {
	company, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Company Not Found")
	}
	if company.CompanyHR != callerID {
		return nil, apperror.Forbidden(denied)
	}
	return company, nil
}

func (uc *companyUsecase) ensureEmailFree(ctx context.Context, selfID, email string) error {
	existing, err := uc.companyRepo.FindOne(ctx, domain.CompanyFilter{CompanyEmail: email})
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return apperror.Conflict("Company's email already exists")
	}
	return nil
}
