package domain

import (
	"context"
	"errors"
	"time"

	"jobboard-backend/pkg/query"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type JobLocation string

const (
	LocationOnsite JobLocation = "onsite"
	LocationRemote JobLocation = "remote"
	LocationHybrid JobLocation = "hybrid"
)

var JobLocations = []JobLocation{LocationOnsite, LocationRemote, LocationHybrid}

type WorkingTime string

const (
	PartTime WorkingTime = "part-time"
	FullTime WorkingTime = "full-time"
)

var WorkingTimes = []WorkingTime{PartTime, FullTime}

type Seniority string

const (
	SeniorityJunior   Seniority = "Junior"
	SeniorityMid      Seniority = "Mid-Level"
	SenioritySenior   Seniority = "Senior"
	SeniorityTeamLead Seniority = "Team-Lead"
	SeniorityCTO      Seniority = "CTO"
)

var SeniorityLevels = []Seniority{
	SeniorityJunior, SeniorityMid, SenioritySenior, SeniorityTeamLead, SeniorityCTO,
}

type Job struct {
	ID              string      `json:"id"`
	JobTitle        string      `json:"jobTitle"`
	JobLocation     JobLocation `json:"jobLocation"`
	WorkingTime     WorkingTime `json:"workingTime"`
	SeniorityLevel  Seniority   `json:"seniorityLevel"`
	JobDescription  string      `json:"jobDescription"`
	TechnicalSkills []string    `json:"technicalSkills"`
	SoftSkills      []string    `json:"softSkills"`
	AddedBy         string      `json:"addedBy"`
	CompanyID       string      `json:"companyId"` // fixed at creation
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// JobDetails is a job with its creator and company embedded in place of
// the bare references.
type JobDetails struct {
	Job
	AddedBy   *UserSummary `json:"addedBy"`
	CompanyID *Company     `json:"companyId"`
}

type JobChanges struct {
	JobTitle        *string      `json:"jobTitle,omitempty"`
	JobLocation     *JobLocation `json:"jobLocation,omitempty"`
	WorkingTime     *WorkingTime `json:"workingTime,omitempty"`
	SeniorityLevel  *Seniority   `json:"seniorityLevel,omitempty"`
	JobDescription  *string      `json:"jobDescription,omitempty"`
	TechnicalSkills []string     `json:"technicalSkills,omitempty"`
	SoftSkills      []string     `json:"softSkills,omitempty"`
}

func (c JobChanges) Empty() bool {
	return c.JobTitle == nil && c.JobLocation == nil && c.WorkingTime == nil && c.SeniorityLevel == nil &&
		c.JobDescription == nil && c.TechnicalSkills == nil && c.SoftSkills == nil
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	GetDetails(ctx context.Context, id string) (*JobDetails, error)
	Update(ctx context.Context, id string, changes JobChanges) (*Job, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, opts query.Options) ([]JobDetails, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *Job) (*Job, error)
	GetJob(ctx context.Context, id string) (*JobDetails, error)
	ListJobs(ctx context.Context, opts query.Options) ([]JobDetails, error)
	ListJobsForCompany(ctx context.Context, companyName string, opts query.Options) ([]JobDetails, error)
	UpdateJob(ctx context.Context, callerID, id string, changes JobChanges) (*Job, error)
	DeleteJob(ctx context.Context, callerID, id string) error
}
