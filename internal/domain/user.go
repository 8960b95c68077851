package domain

import (
	"context"
	"time"

	"jobboard-backend/pkg/query"
)

type User struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	UserName      string    `json:"userName"`
	Email         string    `json:"email"` // always lower-case
	PasswordHash  string    `json:"-"`
	RecoveryEmail string    `json:"recoveryEmail"`
	DOB           Date      `json:"DOB"`
	MobileNumber  string    `json:"mobileNumber"`
	Role          Role      `json:"role"`
	Status        Presence  `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UserSummary is the part of a user embedded in other resources.
type UserSummary struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// UserChanges carries a partial update. Nil fields are left untouched.
// Role is absent on purpose: it cannot change after sign-up.
type UserChanges struct {
	FirstName     *string   `json:"firstName,omitempty"`
	LastName      *string   `json:"lastName,omitempty"`
	UserName      *string   `json:"userName,omitempty"`
	Email         *string   `json:"email,omitempty"`
	RecoveryEmail *string   `json:"recoveryEmail,omitempty"`
	DOB           *Date     `json:"DOB,omitempty"`
	MobileNumber  *string   `json:"mobileNumber,omitempty"`
	Status        *Presence `json:"-"`
	PasswordHash  *string   `json:"-"`
}

// Empty reports whether no field is set.
func (c UserChanges) Empty() bool {
	return c.FirstName == nil && c.LastName == nil && c.UserName == nil && c.Email == nil &&
		c.RecoveryEmail == nil && c.DOB == nil && c.MobileNumber == nil && c.Status == nil &&
		c.PasswordHash == nil
}

// UserFilter matches a user when any non-empty field matches.
type UserFilter struct {
	Email        string
	MobileNumber string
	UserName     string
}

type SignUpInput struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	UserName      string `json:"userName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	RecoveryEmail string `json:"recoveryEmail"`
	DOB           Date   `json:"DOB"`
	MobileNumber  string `json:"mobileNumber"`
	Role          Role   `json:"role"`
}

type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Session is returned by a successful sign-in.
type Session struct {
	Token    string `json:"token"`
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Role     Role   `json:"role"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	FindOne(ctx context.Context, filter UserFilter) (*User, error)
	Update(ctx context.Context, id string, changes UserChanges) (*User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, opts query.Options) ([]User, error)
}

type UserUsecase interface {
	SignUp(ctx context.Context, in SignUpInput) (*User, error)
	SignIn(ctx context.Context, in SignInInput) (*Session, error)
	SignOut(ctx context.Context, id string) error
	GetUser(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context, opts query.Options) ([]User, error)
	UpdateAccount(ctx context.Context, callerID, targetID string, changes UserChanges) (*User, error)
	ChangePassword(ctx context.Context, id string, in PasswordChange) error
	DeleteAccount(ctx context.Context, callerID, targetID string) error
	// RoleOf reads the current role of a user from the store.
	RoleOf(ctx context.Context, id string) (Role, error)
}
