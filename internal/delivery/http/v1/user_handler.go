package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/middleware"
	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/schema"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(v1 *gin.RouterGroup, pipe *middleware.Pipeline, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := v1.Group("/users")
	{
		users.POST("/signup", pipe.Open(schema.UsersSignUp), handler.SignUp)
		users.POST("/signin", pipe.Open(schema.UsersSignIn), handler.SignIn)
		users.POST("/signout", pipe.Self(schema.UsersSignOut), handler.SignOut)

		users.GET("", pipe.Guarded(schema.UsersList, domain.UserOrHR), handler.List)
		users.GET("/:id", pipe.Guarded(schema.UsersGet, domain.UserOrHR), handler.Get)

		// Self-scoped: ownership is enforced by comparing the caller to the record.
		users.PATCH("", pipe.Self(schema.UsersUpdateSelf), handler.UpdateSelf)
		users.PATCH("/password", pipe.Self(schema.UsersChangePassword), handler.ChangePassword)
		users.PATCH("/:id", pipe.Self(schema.UsersUpdate), handler.Update)
		users.DELETE("", pipe.Self(schema.UsersDeleteSelf), handler.DeleteSelf)
		users.DELETE("/:id", pipe.Self(schema.UsersDelete), handler.Delete)
	}
}

// SignUp godoc
// @Summary      Register a new account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      domain.SignUpInput  true  "Account details"
// @Success      201   {object}  response.EntityResponse{data=domain.User}
// @Failure      400   {object}  response.ErrorResponse
// @Failure      409   {object}  response.ErrorResponse
// @Failure      422   {object}  response.ErrorResponse
// @Router       /users/signup [post]
func (h *UserHandler) SignUp(c *gin.Context) {
	var req domain.SignUpInput
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userUC.SignUp(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Entity(c, http.StatusCreated, "New user "+user.Email+" is registered", user)
}

// SignIn godoc
// @Summary      Sign in with email and password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        credentials  body      domain.SignInInput  true  "Credentials"
// @Success      200          {object}  domain.Session
// @Failure      400          {object}  response.ErrorResponse
// @Failure      404          {object}  response.ErrorResponse
// @Router       /users/signin [post]
func (h *UserHandler) SignIn(c *gin.Context) {
	var req domain.SignInInput
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	session, err := h.userUC.SignIn(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SignOut godoc
// @Summary      Sign out (presence goes offline)
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.EntityResponse
// @Failure      401  {object}  response.ErrorResponse
// @Router       /users/signout [post]
// @Security     BearerAuth
func (h *UserHandler) SignOut(c *gin.Context) {
	caller, err := identity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.userUC.SignOut(c.Request.Context(), caller.ID); err != nil {
		_ = c.Error(err)
		return
	}
	response.Entity(c, http.StatusOK, "Signed out successfully.", nil)
}

// List godoc
// @Summary      List accounts
// @Description  Filter with field=value or field[gte|gt|lte|lt|ne|contains]=value, sort with sort=-createdAt, paginate with page and limit.
// @Tags         users
// @Produce      json
// @Param        page   query     int     false  "Page (1-based)"
// @Param        limit  query     int     false  "Page size (max 100)"
// @Param        sort   query     string  false  "Sort keys, - for descending"
// @Success      200    {object}  response.CollectionResponse
// @Failure      401    {object}  response.ErrorResponse
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) List(c *gin.Context) {
	opts, err := listOptions(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	users, err := h.userUC.ListUsers(c.Request.Context(), opts)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Collection(c, "users", users)
}

// Get godoc
// @Summary      Get one account
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.EntityResponse{data=domain.User}
// @Failure      404  {object}  response.ErrorResponse
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userUC.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Entity(c, http.StatusOK, "", user)
}

// UpdateSelf godoc
// @Summary      Update the signed-in account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        changes  body      domain.UserChanges  true  "Fields to change"
// @Success      200      {object}  response.EntityResponse{data=domain.User}
// @Failure      400      {object}  response.ErrorResponse
// @Failure      409      {object}  response.ErrorResponse
// @Router       /users [patch]
// @Security     BearerAuth
func (h *UserHandler) UpdateSelf(c *gin.Context) {
	caller, err := identity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.update(c, caller.ID, caller.ID)
}

// Update godoc
// @Summary      Update an account by id (only your own)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "User ID"
// @Param        changes  body      domain.UserChanges  true  "Fields to change"
// @Success      200      {object}  response.EntityResponse{data=domain.User}
// @Failure      403      {object}  response.ErrorResponse
// @Router       /users/{id} [patch]
// @Security     BearerAuth
func (h *UserHandler) Update(c *gin.Context) {
	caller, err := identity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.update(c, caller.ID, c.Param("id"))
}

func (h *UserHandler) update(c *gin.Context, callerID, targetID string) {
	var changes domain.UserChanges
	if err := bindJSON(c, &changes); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userUC.UpdateAccount(c.Request.Context(), callerID, targetID, changes)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Entity(c, http.StatusOK, "User Account updated successfully.", user)
}

// ChangePassword godoc
// @Summary      Change the signed-in account's password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        passwords  body      domain.PasswordChange  true  "Current and new password"
// @Success      200        {object}  response.EntityResponse
// @Failure      400        {object}  response.ErrorResponse
// @Router       /users/password [patch]
// @Security     BearerAuth
func (h *UserHandler) ChangePassword(c *gin.Context) {
	caller, err := identity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req domain.PasswordChange
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.userUC.ChangePassword(c.Request.Context(), caller.ID, req); err != nil {
		_ = c.Error(err)
		return
	}
	response.Entity(c, http.StatusOK, "Password updated successfully.", nil)
}

// DeleteSelf godoc
// @Summary      Delete the signed-in account
// @Tags         users
// @Success      204
// @Failure      404  {object}  response.ErrorResponse
// @Router       /users [delete]
// @Security     BearerAuth
func (h *UserHandler) DeleteSelf(c *gin.Context) {
	caller, err := identity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.delete(c, caller.ID, caller.ID)
}

// Delete godoc
// @Summary      Delete an account by id (only your own)
// @Tags         users
// @Param        id   path  string  true  "User ID"
// @Success      204
// @Failure      403  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (h *UserHandler) Delete(c *gin.Context) {
	caller, err := identity(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.delete(c, caller.ID, c.Param("id"))
}

func (h *UserHandler) delete(c *gin.Context, callerID, targetID string) {
	if err := h.userUC.DeleteAccount(c.Request.Context(), callerID, targetID); err != nil {
		_ = c.Error(err)
		return
	}
	response.NoContent(c)
}
