package postgres

import (
	"context"
	"fmt"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/query"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const jobColumns = `j.id, j.job_title, j.job_location, j.working_time, j.seniority_level, j.job_description,
	j.technical_skills, j.soft_skills, j.added_by, j.company_id, j.created_at, j.updated_at`

// jobDetailsSelect embeds the creator and the company of each job.
const jobDetailsSelect = `
	SELECT ` + jobColumns + `,
		u.id, u.user_name, u.email, u.role,
		c.id, c.company_name, c.description, c.industry, c.address, c.number_of_employees,
		c.company_email, c.company_hr, c.created_at, c.updated_at
	FROM jobs j
	JOIN users u ON u.id = j.added_by
	JOIN companies c ON c.id = j.company_id`

var jobListColumns = columns{
	"id":             {expr: "j.id", typ: typeUUID},
	"jobTitle":       {expr: "j.job_title", typ: typeText},
	"jobLocation":    {expr: "j.job_location", typ: typeText},
	"workingTime":    {expr: "j.working_time", typ: typeText},
	"seniorityLevel": {expr: "j.seniority_level", typ: typeText},
	"jobDescription": {expr: "j.job_description", typ: typeText},
	"addedBy":        {expr: "j.added_by", typ: typeUUID},
	"companyId":      {expr: "j.company_id", typ: typeUUID},
	"companyName":    {expr: "c.company_name", typ: typeText},
	"createdAt":      {expr: "j.created_at", typ: typeTime},
	"updatedAt":      {expr: "j.updated_at", typ: typeTime},
}

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func jobTargets(job *domain.Job) []any {
	return []any{
		&job.ID, &job.JobTitle, &job.JobLocation, &job.WorkingTime, &job.SeniorityLevel, &job.JobDescription,
		pq.Array(&job.TechnicalSkills), pq.Array(&job.SoftSkills), &job.AddedBy, &job.CompanyID,
		&job.CreatedAt, &job.UpdatedAt,
	}
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	if err := row.Scan(jobTargets(&job)...); err != nil {
		return nil, err
	}
	return &job, nil
}

func scanJobDetails(row pgx.Row) (*domain.JobDetails, error) {
	var (
		d       domain.JobDetails
		creator domain.UserSummary
		company domain.Company
	)
	targets := append(jobTargets(&d.Job),
		&creator.ID, &creator.UserName, &creator.Email, &creator.Role,
		&company.ID, &company.CompanyName, &company.Description, &company.Industry, &company.Address,
		&company.NumberOfEmployees, &company.CompanyEmail, &company.CompanyHR, &company.CreatedAt, &company.UpdatedAt,
	)
	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	d.AddedBy = &creator
	d.CompanyID = &company
	return &d, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (job_title, job_location, working_time, seniority_level, job_description,
                  technical_skills, soft_skills, added_by, company_id)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
              RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		job.JobTitle, job.JobLocation, job.WorkingTime, job.SeniorityLevel, job.JobDescription,
		pq.Array(job.TechnicalSkills), pq.Array(job.SoftSkills), job.AddedBy, job.CompanyID,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	return translate(err)
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	job, err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs j WHERE j.id = $1`, id))
	if err != nil {
		return nil, translate(err)
	}
	return job, nil
}

func (r *jobRepo) GetDetails(ctx context.Context, id string) (*domain.JobDetails, error) {
	d, err := scanJobDetails(r.db.QueryRow(ctx, jobDetailsSelect+` WHERE j.id = $1`, id))
	if err != nil {
		return nil, translate(err)
	}
	return d, nil
}

// Update never touches company_id: a job keeps the company it was created under.
func (r *jobRepo) Update(ctx context.Context, id string, changes domain.JobChanges) (*domain.Job, error) {
	var a assignments
	if changes.JobTitle != nil {
		a.set("job_title", *changes.JobTitle)
	}
	if changes.JobLocation != nil {
		a.set("job_location", *changes.JobLocation)
	}
	if changes.WorkingTime != nil {
		a.set("working_time", *changes.WorkingTime)
	}
	if changes.SeniorityLevel != nil {
		a.set("seniority_level", *changes.SeniorityLevel)
	}
	if changes.JobDescription != nil {
		a.set("job_description", *changes.JobDescription)
	}
	if changes.TechnicalSkills != nil {
		a.set("technical_skills", pq.Array(changes.TechnicalSkills))
	}
	if changes.SoftSkills != nil {
		a.set("soft_skills", pq.Array(changes.SoftSkills))
	}
	if a.empty() {
		return r.GetByID(ctx, id)
	}

	set, idArg := a.clause()
	query := fmt.Sprintf(`UPDATE jobs j SET %s WHERE j.id = $%d RETURNING %s`, set, idArg, jobColumns)
	job, err := scanJob(r.db.QueryRow(ctx, query, append(a.args, id)...))
	if err != nil {
		return nil, translate(err)
	}
	return job, nil
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) List(ctx context.Context, opts query.Options) ([]domain.JobDetails, error) {
	lq, err := buildList(jobListColumns, opts, "j.created_at DESC")
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, jobDetailsSelect+lq.where+lq.tail, lq.args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	jobs := []domain.JobDetails{}
	for rows.Next() {
		d, err := scanJobDetails(rows)
		if err != nil {
			return nil, translate(err)
		}
		jobs = append(jobs, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err)
	}
	return jobs, nil
}
