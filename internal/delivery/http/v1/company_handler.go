package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/middleware"
	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/schema"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(v1 *gin.RouterGroup, pipe *middleware.Pipeline, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	companies := v1.Group("/companies")
	{
		companies.POST("", pipe.Guarded(schema.CompaniesCreate, domain.HROnly), handler.Create)
		companies.GET("", pipe.Guarded(schema.CompaniesList, domain.HROnly), handler.List)
		companies.GET("/search", pipe.Guarded(schema.CompaniesSearch, domain.UserOrHR), handler.Search)
		companies.GET("/:id", pipe.Guarded(schema.CompaniesGet, domain.UserOrHR), handler.Get)
		companies.PATCH("/:id", pipe.Guarded(schema.CompaniesUpdate, domain.HROnly), handler.Update)
		companies.DELETE("/:id", pipe.Guarded(schema.CompaniesDelete, domain.HROnly), handler.Delete)
	}
}

type CreateCompanyRequest struct {
	CompanyName       string          `json:"companyName"`
	Description       string          `json:"description"`
	Industry          domain.Industry `json:"industry"`
	Address           string          `json:"address"`
	NumberOfEmployees flexInt         `json:"numberOfEmployees" swaggertype:"integer"`
	CompanyEmail      string          `json:"companyEmail"`
}

type UpdateCompanyRequest struct {
	CompanyName       *string          `json:"companyName,omitempty"`
	Description       *string          `json:"description,omitempty"`
	Industry          *domain.Industry `json:"industry,omitempty"`
	Address           *string          `json:"address,omitempty"`
	NumberOfEmployees *flexInt         `json:"numberOfEmployees,omitempty" swaggertype:"integer"`
	CompanyEmail      *string          `json:"companyEmail,omitempty"`
}

// Create godoc
// @Summary      Add a company
// @Description  The signed-in HR account becomes the company's HR.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company  body      CreateCompanyRequest  true  "Company"
// @Success      201      {object}  response.EntityResponse{data=domain.Company}
// @Failure      400      {object}  response.ErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Failure      409      {object}  response.ErrorResponse
// @Router       /companies [post]
// @Security     BearerAuth
func (h *CompanyHandler) Create(c *gin.Context) {
	caller, err := identity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req CreateCompanyRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	company := &domain.Company{
		CompanyName:       req.CompanyName,
		Description:       req.Description,
		Industry:          req.Industry,
		Address:           req.Address,
		NumberOfEmployees: int(req.NumberOfEmployees),
		CompanyEmail:      req.CompanyEmail,
	}

	created, err := h.companyUC.AddCompany(c.Request.Context(), caller.ID, company)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Entity(c, http.StatusCreated, "Company "+created.CompanyName+" is added", created)
}

// List godoc
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Param        page   query     int     false  "Page (1-based)"
// @Param        limit  query     int     false  "Page size (max 100)"
// @Param        sort   query     string  false  "Sort keys, - for descending"
// @Success      200    {object}  response.CollectionResponse
// @Failure      401    {object}  response.ErrorResponse
// @Router       /companies [get]
// @Security     BearerAuth
func (h *CompanyHandler) List(c *gin.Context) {
	opts, err := listOptions(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	companies, err := h.companyUC.ListCompanies(c.Request.Context(), opts)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Collection(c, "companies", companies)
}

// Search godoc
// @Summary      Search companies by name
// @Description  Case-insensitive partial match on companyName.
// @Tags         companies
// @Produce      json
// @Param        companyName  query     string  true  "Name fragment"
// @Success      200          {object}  response.CollectionResponse
// @Failure      400          {object}  response.ErrorResponse
// @Router       /companies/search [get]
// @Security     BearerAuth
func (h *CompanyHandler) Search(c *gin.Context) {
	opts, err := listOptions(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	companies, err := h.companyUC.SearchByName(c.Request.Context(), c.Query("companyName"), opts)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Collection(c, "companies", companies)
}

// Get godoc
// @Summary      Get one company
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  response.EntityResponse{data=domain.Company}
// @Failure      404  {object}  response.ErrorResponse
// @Router       /companies/{id} [get]
// @Security     BearerAuth
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.companyUC.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Entity(c, http.StatusOK, "", company)
}

// Update godoc
// @Summary      Update a company (its HR only)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "Company ID"
// @Param        changes  body      UpdateCompanyRequest  true  "Fields to change"
// @Success      200      {object}  response.EntityResponse{data=domain.Company}
// @Failure      403      {object}  response.ErrorResponse
// @Failure      404      {object}  response.ErrorResponse
// @Router       /companies/{id} [patch]
// @Security     BearerAuth
func (h *CompanyHandler) Update(c *gin.Context) {
	caller, err := identity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req UpdateCompanyRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	changes := domain.CompanyChanges{
		CompanyName:       req.CompanyName,
		Description:       req.Description,
		Industry:          req.Industry,
		Address:           req.Address,
		NumberOfEmployees: req.NumberOfEmployees.intPtr(),
		CompanyEmail:      req.CompanyEmail,
	}

	company, err := h.companyUC.UpdateCompany(c.Request.Context(), caller.ID, c.Param("id"), changes)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Entity(c, http.StatusOK, "Company updated successfully.", company)
}

// Delete godoc
// @Summary      Delete a company (its HR only)
// @Tags         companies
// @Param        id   path  string  true  "Company ID"
// @Success      204
// @Failure      403  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /companies/{id} [delete]
// @Security     BearerAuth
func (h *CompanyHandler) Delete(c *gin.Context) {
	caller, err := identity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.companyUC.DeleteCompany(c.Request.Context(), caller.ID, c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	response.NoContent(c)
}
