package v1

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/query"

	"github.com/google/uuid"
)

// memStore backs the in-memory repositories used by the router tests.
type memStore struct {
	mu        sync.Mutex
	users     map[string]domain.User
	companies map[string]domain.Company
	jobs      map[string]domain.Job
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[string]domain.User{},
		companies: map[string]domain.Company{},
		jobs:      map[string]domain.Job{},
	}
}

type memUserRepo struct{ s *memStore }

func (r memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email || u.MobileNumber == user.MobileNumber || u.UserName == user.UserName {
			return apperror.Conflict("duplicate user")
		}
	}
	now := time.Now().UTC()
	user.ID = uuid.NewString()
	user.CreatedAt, user.UpdatedAt = now, now
	r.s.users[user.ID] = *user
	return nil
}

func (r memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r memUserRepo) FindOne(_ context.Context, f domain.UserFilter) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if (f.Email != "" && u.Email == strings.ToLower(f.Email)) ||
			(f.MobileNumber != "" && u.MobileNumber == f.MobileNumber) ||
			(f.UserName != "" && u.UserName == f.UserName) {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r memUserRepo) Update(_ context.Context, id string, c domain.UserChanges) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	setString(&u.FirstName, c.FirstName)
	setString(&u.LastName, c.LastName)
	setString(&u.UserName, c.UserName)
	setString(&u.Email, c.Email)
	setString(&u.RecoveryEmail, c.RecoveryEmail)
	setString(&u.MobileNumber, c.MobileNumber)
	setString(&u.PasswordHash, c.PasswordHash)
	if c.DOB != nil {
		u.DOB = *c.DOB
	}
	if c.Status != nil {
		u.Status = *c.Status
	}
	u.UpdatedAt = time.Now().UTC()
	r.s.users[id] = u
	return &u, nil
}

func (r memUserRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

func (r memUserRepo) List(_ context.Context, _ query.Options) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type memCompanyRepo struct{ s *memStore }

func (r memCompanyRepo) Create(_ context.Context, c *domain.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.companies {
		if existing.CompanyEmail == c.CompanyEmail {
			return apperror.Conflict("Company's email already exists")
		}
	}
	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt, c.UpdatedAt = now, now
	r.s.companies[c.ID] = *c
	return nil
}

func (r memCompanyRepo) GetByID(_ context.Context, id string) (*domain.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.companies[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r memCompanyRepo) FindOne(_ context.Context, f domain.CompanyFilter) (*domain.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.companies {
		if f.CompanyEmail != "" && c.CompanyEmail != f.CompanyEmail {
			continue
		}
		if f.CompanyName != "" && !strings.EqualFold(c.CompanyName, f.CompanyName) {
			continue
		}
		if f.CompanyHR != "" && c.CompanyHR != f.CompanyHR {
			continue
		}
		return &c, nil
	}
	return nil, domain.ErrNotFound
}

func (r memCompanyRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Company
	for _, c := range r.s.companies {
		if c.CompanyHR == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r memCompanyRepo) Update(_ context.Context, id string, ch domain.CompanyChanges) (*domain.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.companies[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	setString(&c.CompanyName, ch.CompanyName)
	setString(&c.Description, ch.Description)
	setString(&c.Address, ch.Address)
	setString(&c.CompanyEmail, ch.CompanyEmail)
	if ch.Industry != nil {
		c.Industry = *ch.Industry
	}
	if ch.NumberOfEmployees != nil {
		c.NumberOfEmployees = *ch.NumberOfEmployees
	}
	c.UpdatedAt = time.Now().UTC()
	r.s.companies[id] = c
	return &c, nil
}

func (r memCompanyRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.companies, id)
	return nil
}

func (r memCompanyRepo) List(_ context.Context, opts query.Options) ([]domain.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Company
	for _, c := range r.s.companies {
		keep := true
		for _, f := range opts.Filters {
			if f.Field == "companyName" && f.Op == query.OpContains {
				keep = keep && strings.Contains(strings.ToLower(c.CompanyName), strings.ToLower(f.Value))
			}
		}
		if keep {
			out = append(out, c)
		}
	}
	return out, nil
}

type memJobRepo struct{ s *memStore }

func (r memJobRepo) Create(_ context.Context, j *domain.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := time.Now().UTC()
	j.ID = uuid.NewString()
	j.CreatedAt, j.UpdatedAt = now, now
	r.s.jobs[j.ID] = *j
	return nil
}

func (r memJobRepo) GetByID(_ context.Context, id string) (*domain.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	j, ok := r.s.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &j, nil
}

func (r memJobRepo) GetDetails(_ context.Context, id string) (*domain.JobDetails, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	j, ok := r.s.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	d := r.details(j)
	return &d, nil
}

func (r memJobRepo) Update(_ context.Context, id string, ch domain.JobChanges) (*domain.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	j, ok := r.s.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	setString(&j.JobTitle, ch.JobTitle)
	setString(&j.JobDescription, ch.JobDescription)
	if ch.TechnicalSkills != nil {
		j.TechnicalSkills = ch.TechnicalSkills
	}
	if ch.SoftSkills != nil {
		j.SoftSkills = ch.SoftSkills
	}
	j.UpdatedAt = time.Now().UTC()
	r.s.jobs[id] = j
	return &j, nil
}

func (r memJobRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.jobs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.jobs, id)
	return nil
}

func (r memJobRepo) List(_ context.Context, opts query.Options) ([]domain.JobDetails, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.JobDetails
	for _, j := range r.s.jobs {
		keep := true
		for _, f := range opts.Filters {
			if f.Field == "companyId" && f.Op == query.OpEq {
				keep = keep && j.CompanyID == f.Value
			}
		}
		if keep {
			out = append(out, r.details(j))
		}
	}
	return out, nil
}

// details must be called with the lock held.
func (r memJobRepo) details(j domain.Job) domain.JobDetails {
	d := domain.JobDetails{Job: j}
	if u, ok := r.s.users[j.AddedBy]; ok {
		d.AddedBy = &domain.UserSummary{ID: u.ID, UserName: u.UserName, Email: u.Email, Role: u.Role}
	}
	if c, ok := r.s.companies[j.CompanyID]; ok {
		d.CompanyID = &c
	}
	return d
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
