package postgres

import (
	"context"
	"fmt"
	"strings"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/query"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const companyColumns = `id, company_name, description, industry, address, number_of_employees,
	company_email, company_hr, created_at, updated_at`

var companyListColumns = columns{
	"id":                {expr: "id", typ: typeUUID},
	"companyName":       {expr: "company_name", typ: typeText},
	"description":       {expr: "description", typ: typeText},
	"industry":          {expr: "industry", typ: typeText},
	"address":           {expr: "address", typ: typeText},
	"numberOfEmployees": {expr: "number_of_employees", typ: typeInteger},
	"companyEmail":      {expr: "company_email", typ: typeText},
	"companyHR":         {expr: "company_hr", typ: typeUUID},
	"createdAt":         {expr: "created_at", typ: typeTime},
	"updatedAt":         {expr: "updated_at", typ: typeTime},
}

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.ID, &c.CompanyName, &c.Description, &c.Industry, &c.Address, &c.NumberOfEmployees,
		&c.CompanyEmail, &c.CompanyHR, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	query := `INSERT INTO companies (company_name, description, industry, address, number_of_employees,
                  company_email, company_hr)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		company.CompanyName, company.Description, company.Industry, company.Address,
		company.NumberOfEmployees, strings.ToLower(company.CompanyEmail), company.CompanyHR,
	).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
	return translate(err)
}

func (r *companyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	company, err := scanCompany(r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		return nil, translate(err)
	}
	return company, nil
}

// FindOne returns the oldest company matching every non-empty field of filter.
// Company names compare case-insensitively.
func (r *companyRepo) FindOne(ctx context.Context, filter domain.CompanyFilter) (*domain.Company, error) {
	var (
		conds []string
		args  []any
	)
	if filter.CompanyEmail != "" {
		args = append(args, strings.ToLower(filter.CompanyEmail))
		conds = append(conds, fmt.Sprintf("company_email = $%d", len(args)))
	}
	if filter.CompanyName != "" {
		args = append(args, filter.CompanyName)
		conds = append(conds, fmt.Sprintf("LOWER(company_name) = LOWER($%d)", len(args)))
	}
	if filter.CompanyHR != "" {
		args = append(args, filter.CompanyHR)
		conds = append(conds, fmt.Sprintf("company_hr = $%d::uuid", len(args)))
	}
	if len(conds) == 0 {
		return nil, apperror.Internal(fmt.Errorf("company FindOne called with an empty filter"))
	}

	query := `SELECT ` + companyColumns + ` FROM companies WHERE ` + strings.Join(conds, " AND ") + ` ORDER BY created_at LIMIT 1`
	company, err := scanCompany(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translate(err)
	}
	return company, nil
}

func (r *companyRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Company, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE company_hr = $1 ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, translate(err)
	}
	return collectCompanies(rows)
}

func (r *companyRepo) Update(ctx context.Context, id string, changes domain.CompanyChanges) (*domain.Company, error) {
	var a assignments
	if changes.CompanyName != nil {
		a.set("company_name", *changes.CompanyName)
	}
	if changes.Description != nil {
		a.set("description", *changes.Description)
	}
	if changes.Industry != nil {
		a.set("industry", *changes.Industry)
	}
	if changes.Address != nil {
		a.set("address", *changes.Address)
	}
	if changes.NumberOfEmployees != nil {
		a.set("number_of_employees", *changes.NumberOfEmployees)
	}
	if changes.CompanyEmail != nil {
		a.set("company_email", strings.ToLower(*changes.CompanyEmail))
	}
	if a.empty() {
		return r.GetByID(ctx, id)
	}

	set, idArg := a.clause()
	query := fmt.Sprintf(`UPDATE companies SET %s WHERE id = $%d RETURNING %s`, set, idArg, companyColumns)
	company, err := scanCompany(r.db.QueryRow(ctx, query, append(a.args, id)...))
	if err != nil {
		return nil, translate(err)
	}
	return company, nil
}

func (r *companyRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) List(ctx context.Context, opts query.Options) ([]domain.Company, error) {
	lq, err := buildList(companyListColumns, opts, "created_at DESC")
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `SELECT `+companyColumns+` FROM companies`+lq.where+lq.tail, lq.args...)
	if err != nil {
		return nil, translate(err)
	}
	return collectCompanies(rows)
}

func collectCompanies(rows pgx.Rows) ([]domain.Company, error) {
	defer rows.Close()

	companies := []domain.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, translate(err)
		}
		companies = append(companies, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err)
	}
	return companies, nil
}
