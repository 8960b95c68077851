package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/middleware"
	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/schema"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(v1 *gin.RouterGroup, pipe *middleware.Pipeline, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := v1.Group("/jobs")
	{
		jobs.POST("", pipe.Guarded(schema.JobsCreate, domain.HROnly), handler.Create)
		jobs.GET("", pipe.Guarded(schema.JobsList, domain.UserOrHR), handler.List)
		// Registered before /:id so the literal segment wins.
		jobs.GET("/jobs-for-company", pipe.Guarded(schema.JobsForCompany, domain.UserOrHR), handler.ListForCompany)
		jobs.GET("/:id", pipe.Guarded(schema.JobsGet, domain.UserOrHR), handler.GetDetails)
		jobs.PATCH("/:id", pipe.Guarded(schema.JobsUpdate, domain.HROnly), handler.Update)
		jobs.DELETE("/:id", pipe.Guarded(schema.JobsDelete, domain.HROnly), handler.Delete)
	}
}

type CreateJobRequest struct {
	JobTitle        string             `json:"jobTitle"`
	JobLocation     domain.JobLocation `json:"jobLocation"`
	WorkingTime     domain.WorkingTime `json:"workingTime"`
	SeniorityLevel  domain.Seniority   `json:"seniorityLevel"`
	JobDescription  string             `json:"jobDescription"`
	TechnicalSkills []string           `json:"technicalSkills"`
	SoftSkills      []string           `json:"softSkills"`
}

// Create godoc
// @Summary      Post a job
// @Description  The job is attached to the company owned by the signed-in HR account.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job"
// @Success      201  {object}  response.EntityResponse{data=domain.Job}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	caller, err := identity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req CreateJobRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	job := &domain.Job{
		JobTitle:        req.JobTitle,
		JobLocation:     req.JobLocation,
		WorkingTime:     req.WorkingTime,
		SeniorityLevel:  req.SeniorityLevel,
		JobDescription:  req.JobDescription,
		TechnicalSkills: req.TechnicalSkills,
		SoftSkills:      req.SoftSkills,
	}

	created, err := h.jobUC.CreateJob(c.Request.Context(), caller.ID, job)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Entity(c, http.StatusCreated, "Job "+created.JobTitle+" is posted", created)
}

// List godoc
// @Summary      List jobs
// @Description  Each job embeds its creator and company. Supports filters, sort and pagination.
// @Tags         jobs
// @Produce      json
// @Param        page   query     int     false  "Page (1-based)"
// @Param        limit  query     int     false  "Page size (max 100)"
// @Param        sort   query     string  false  "Sort keys, - for descending"
// @Success      200    {object}  response.CollectionResponse
// @Failure      400    {object}  response.ErrorResponse
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	opts, err := listOptions(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	jobs, err := h.jobUC.ListJobs(c.Request.Context(), opts)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Collection(c, "jobs", jobs)
}

// ListForCompany godoc
// @Summary      List the jobs of one company
// @Tags         jobs
// @Produce      json
// @Param        companyName  query     string  true  "Company name"
// @Success      200          {object}  response.CollectionResponse
// @Failure      404          {object}  response.ErrorResponse
// @Router       /jobs/jobs-for-company [get]
// @Security     BearerAuth
func (h *JobHandler) ListForCompany(c *gin.Context) {
	opts, err := listOptions(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	jobs, err := h.jobUC.ListJobsForCompany(c.Request.Context(), c.Query("companyName"), opts)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Collection(c, "jobs", jobs)
}

// GetDetails godoc
// @Summary      Get one job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.EntityResponse{data=domain.JobDetails}
// @Failure      404  {object}  response.ErrorResponse
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Entity(c, http.StatusOK, "", job)
}

// Update godoc
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id       path      string             true  "Job ID"
// @Param        changes  body      domain.JobChanges  true  "Fields to change"
// @Success      200      {object}  response.EntityResponse{data=domain.Job}
// @Failure      400      {object}  response.ErrorResponse
// @Failure      404      {object}  response.ErrorResponse
// @Router       /jobs/{id} [patch]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	caller, err := identity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var changes domain.JobChanges
	if err := bindJSON(c, &changes); err != nil {
		_ = c.Error(err)
		return
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), caller.ID, c.Param("id"), changes)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Entity(c, http.StatusOK, "Job updated successfully.", job)
}

// Delete godoc
// @Summary      Delete a job
// @Tags         jobs
// @Param        id   path  string  true  "Job ID"
// @Success      204
// @Failure      404  {object}  response.ErrorResponse
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	caller, err := identity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.jobUC.DeleteJob(c.Request.Context(), caller.ID, c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	response.NoContent(c)
}
