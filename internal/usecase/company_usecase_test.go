package usecase_test

import (
	"context"
	"testing"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddCompany(t *testing.T) {
	ctx := context.Background()

	t.Run("Should set the owner and lower-case the email", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(repo)

		repo.On("FindOne", ctx, domain.CompanyFilter{CompanyEmail: "hr@acme.com"}).Return(nil, domain.ErrNotFound)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Company")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Company).ID = "c1"
		})

		company, err := uc.AddCompany(ctx, "hr1", &domain.Company{CompanyName: "Acme", CompanyEmail: "HR@Acme.com", CompanyHR: "spoofed"})
		require.NoError(t, err)
		assert.Equal(t, "c1", company.ID)
		assert.Equal(t, "hr1", company.CompanyHR)
		assert.Equal(t, "hr@acme.com", company.CompanyEmail)
	})

	t.Run("Should conflict on a taken company email", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(repo)

		repo.On("FindOne", ctx, domain.CompanyFilter{CompanyEmail: "hr@acme.com"}).Return(&domain.Company{ID: "c0"}, nil)

		_, err := uc.AddCompany(ctx, "hr1", &domain.Company{CompanyEmail: "hr@ACME.com"})
		assert.True(t, apperror.Is(err, apperror.KindConflict))
	})
}

func TestCompanyOwnership(t *testing.T) {
	ctx := context.Background()
	owned := &domain.Company{ID: "c1", CompanyHR: "hr1"}
	size := 50

	t.Run("Should forbid updates by another HR", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(repo)
		repo.On("GetByID", ctx, "c1").Return(owned, nil)

		_, err := uc.UpdateCompany(ctx, "hr2", "c1", domain.CompanyChanges{NumberOfEmployees: &size})
		assert.True(t, apperror.Is(err, apperror.KindOwnership))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should forbid deletes by another HR", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(repo)
		repo.On("GetByID", ctx, "c1").Return(owned, nil)

		err := uc.DeleteCompany(ctx, "hr2", "c1")
		assert.True(t, apperror.Is(err, apperror.KindOwnership))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should let the owner update", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(repo)
		repo.On("GetByID", ctx, "c1").Return(owned, nil)
		repo.On("Update", ctx, "c1", domain.CompanyChanges{NumberOfEmployees: &size}).
			Return(&domain.Company{ID: "c1", NumberOfEmployees: size}, nil)

		company, err := uc.UpdateCompany(ctx, "hr1", "c1", domain.CompanyChanges{NumberOfEmployees: &size})
		require.NoError(t, err)
		assert.Equal(t, 50, company.NumberOfEmployees)
	})

	t.Run("Should report a missing company as not found", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(repo)
		repo.On("GetByID", ctx, "gone").Return(nil, domain.ErrNotFound)

		err := uc.DeleteCompany(ctx, "hr1", "gone")
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
	})
}

func TestSearchByName_UsesContainsFilter(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCompanyRepo)
	uc := usecase.NewCompanyUsecase(repo)

	opts := query.Options{
		Filters: []query.Filter{{Field: "companyName", Op: query.OpEq, Value: "acme"}},
		Page:    1,
		Limit:   10,
	}
	want := query.Options{
		Filters: []query.Filter{{Field: "companyName", Op: query.OpContains, Value: "acme"}},
		Page:    1,
		Limit:   10,
	}
	repo.On("List", ctx, want).Return([]domain.Company{{ID: "c1"}}, nil)

	companies, err := uc.SearchByName(ctx, "acme", opts)
	require.NoError(t, err)
	assert.Len(t, companies, 1)
}
