package usecase

import (
	"context"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/logger"
	"jobboard-backend/pkg/query"
)

// JobPolicy controls who may change a job after it is posted.
type JobPolicy struct {
	// OwnershipCheck restricts update and delete to the job's creator.
	// When false any HR account may change any job.
	OwnershipCheck bool
}

type jobUsecase struct {
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
	policy      JobPolicy
}

func NewJobUsecase(jobRepo domain.JobRepository, companyRepo domain.CompanyRepository, policy JobPolicy) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, companyRepo: companyRepo, policy: policy}
}

// CreateJob posts a job under the single company owned by userID.
func (uc *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job) (*domain.Job, error) {
	companies, err := uc.companyRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	switch len(companies) {
	case 0:
		return nil, apperror.NotFound("You must add a company before posting jobs")
	case 1:
	default:
		return nil, apperror.Unprocessable("Cannot tell which of your companies this job belongs to", nil)
	}

	job.ID = ""
	job.AddedBy = userID
	job.CompanyID = companies[0].ID
	if err := uc.jobRepo.Create(ctx, job); err != nil {
		return nil, createFailure("Failed to add Job", err)
	}

	logger.Log.Info("Job added", "job_id", job.ID, "company_id", job.CompanyID, "added_by", userID)
	return job, nil
}

func (uc *jobUsecase) GetJob(ctx context.Context, id string) (*domain.JobDetails, error) {
	job, err := uc.jobRepo.GetDetails(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Job Not Found")
	}
	return job, nil
}

func (uc *jobUsecase) ListJobs(ctx context.Context, opts query.Options) ([]domain.JobDetails, error) {
	return uc.jobRepo.List(ctx, opts)
}

// ListJobsForCompany lists the jobs of the company with the given name.
func (uc *jobUsecase) ListJobsForCompany(ctx context.Context, companyName string, opts query.Options) ([]domain.JobDetails, error) {
	company, err := uc.companyRepo.FindOne(ctx, domain.CompanyFilter{CompanyName: companyName})
	if err != nil {
		return nil, notFoundAs(err, "Company Not Found")
	}

	filtered := opts
	filtered.Filters = nil
	for _, f := range opts.Filters {
		if f.Field != "companyName" && f.Field != "companyId" {
			filtered.Filters = append(filtered.Filters, f)
		}
	}
	filtered = filtered.With(query.Filter{Field: "companyId", Op: query.OpEq, Value: company.ID})
	return uc.jobRepo.List(ctx, filtered)
}

func (uc *jobUsecase) UpdateJob(ctx context.Context, callerID, id string, changes domain.JobChanges) (*domain.Job, error) {
	if err := uc.checkPolicy(ctx, callerID, id, "You are not allowed to update this job"); err != nil {
		return nil, err
	}
	if changes.Empty() {
		return nil, apperror.BadRequest("At least one field must be provided.")
	}

	job, err := uc.jobRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, notFoundAs(err, "Job Not Found")
	}
	return job, nil
}

func (uc *jobUsecase) DeleteJob(ctx context.Context, callerID, id string) error {
	if err := uc.checkPolicy(ctx, callerID, id, "You are not allowed to delete this job"); err != nil {
		return err
	}
	if err := uc.jobRepo.Delete(ctx, id); err != nil {
		return notFoundAs(err, "Job Not Found")
	}
	logger.Log.Info("Job deleted", "job_id", id, "deleted_by", callerID)
	return nil
}

// checkPolicy loads the job and, when the ownership check is on, verifies
// that callerID created it.
func (uc *jobUsecase) checkPolicy(ctx context.Context, callerID, id, denied string) error {
	job, err := uc.jobRepo.GetByID(ctx, id)
	if err != nil {
		return notFoundAs(err, "Job Not Found")
	}
	if uc.policy.OwnershipCheck && job.AddedBy != callerID {
		return apperror.Forbidden(denied)
	}
	return nil
}
