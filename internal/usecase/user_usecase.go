package usecase

import (
	"context"
	"errors"
	"strings"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/logger"
	"jobboard-backend/pkg/query"
)

type userUsecase struct {
	userRepo domain.UserRepository
	hasher   domain.PasswordHasher
	tokens   domain.TokenIssuer
}

func NewUserUsecase(userRepo domain.UserRepository, hasher domain.PasswordHasher, tokens domain.TokenIssuer) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo, hasher: hasher, tokens: tokens}
}

// SignUp registers a new account. The duplicate lookup gives a precise
// message; the unique constraints in the store still decide concurrent races.
func (u *userUsecase) SignUp(ctx context.Context, in domain.SignUpInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if err := u.ensureUnique(ctx, "", email, in.MobileNumber, in.UserName); err != nil {
		return nil, err
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// Accounts start offline; only sign-in flips them online.
	user := &domain.User{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		UserName:      in.UserName,
		Email:         email,
		PasswordHash:  hash,
		RecoveryEmail: in.RecoveryEmail,
		DOB:           in.DOB,
		MobileNumber:  in.MobileNumber,
		Role:          in.Role,
		Status:        domain.PresenceOffline,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, createFailure("User Registration failed", err)
	}

	logger.Log.Info("User registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (u *userUsecase) SignIn(ctx context.Context, in domain.SignInInput) (*domain.Session, error) {
	user, err := u.userRepo.FindOne(ctx, domain.UserFilter{Email: strings.ToLower(strings.TrimSpace(in.Email))})
	if err != nil {
		return nil, notFoundAs(err, "User Not Found.")
	}

	ok, err := u.hasher.Compare(user.PasswordHash, in.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !ok {
		return nil, apperror.BadRequest("Invalid password.")
	}

	token, err := u.tokens.Sign(user.ID, user.UserName)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	online := domain.PresenceOnline
	if _, err := u.userRepo.Update(ctx, user.ID, domain.UserChanges{Status: &online}); err != nil {
		return nil, notFoundAs(err, "User Not Found.")
	}

	return &domain.Session{Token: token, ID: user.ID, UserName: user.UserName, Role: user.Role}, nil
}

func (u *userUsecase) SignOut(ctx context.Context, id string) error {
	offline := domain.PresenceOffline
	_, err := u.userRepo.Update(ctx, id, domain.UserChanges{Status: &offline})
	return notFoundAs(err, "User not found.")
}

func (u *userUsecase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Couldn't find this User")
	}
	return user, nil
}

func (u *userUsecase) ListUsers(ctx context.Context, opts query.Options) ([]domain.User, error) {
	return u.userRepo.List(ctx, opts)
}

// UpdateAccount applies changes to the caller's own account.
func (u *userUsecase) UpdateAccount(ctx context.Context, callerID, targetID string, changes domain.UserChanges) (*domain.User, error) {
	if callerID != targetID {
		return nil, apperror.Forbidden("Failed to update User Account.")
	}
	if _, err := u.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, notFoundAs(err, "User not found.")
	}
	if changes.Empty() {
		return nil, apperror.BadRequest("At least one field must be provided.")
	}

	// Sign-in state and credentials have their own operations.
	changes.Status = nil
	changes.PasswordHash = nil

	var email, mobile, userName string
	if changes.Email != nil {
		lowered := strings.ToLower(strings.TrimSpace(*changes.Email))
		changes.Email = &lowered
		email = lowered
	}
	if changes.MobileNumber != nil {
		mobile = *changes.MobileNumber
	}
	if changes.UserName != nil {
		userName = *changes.UserName
	}
	if err := u.ensureUnique(ctx, targetID, email, mobile, userName); err != nil {
		return nil, err
	}

	user, err := u.userRepo.Update(ctx, targetID, changes)
	if err != nil {
		return nil, notFoundAs(err, "User not found.")
	}
	return user, nil
}

func (u *userUsecase) ChangePassword(ctx context.Context, id string, in domain.PasswordChange) error {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return notFoundAs(err, "User not found.")
	}

	ok, err := u.hasher.Compare(user.PasswordHash, in.CurrentPassword)
	if err != nil {
		return apperror.Internal(err)
	}
	if !ok {
		return apperror.BadRequest("Invalid password.")
	}
	if in.CurrentPassword == in.NewPassword {
		return apperror.BadRequest("New password must differ from the current password.")
	}

	hash, err := u.hasher.Hash(in.NewPassword)
	if err != nil {
		return apperror.Internal(err)
	}
	if _, err := u.userRepo.Update(ctx, id, domain.UserChanges{PasswordHash: &hash}); err != nil {
		return notFoundAs(err, "User not found.")
	}

	logger.Log.Info("Password changed", "user_id", id)
	return nil
}

func (u *userUsecase) DeleteAccount(ctx context.Context, callerID, targetID string) error {
	if callerID != targetID {
		return apperror.Forbidden("Failed to delete User Account.")
	}
	if err := u.userRepo.Delete(ctx, targetID); err != nil {
		return notFoundAs(err, "User not found.")
	}
	logger.Log.Info("User deleted", "user_id", targetID)
	return nil
}

func (u *userUsecase) RoleOf(ctx context.Context, id string) (domain.Role, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// ensureUnique reports a conflict when another account (not selfID) already
// holds the email, mobile number or user name. Empty values are skipped.
func (u *userUsecase) ensureUnique(ctx context.Context, selfID, email, mobile, userName string) error {
	checks := []struct {
		filter domain.UserFilter
		msg    string
	}{
		{domain.UserFilter{Email: email}, "Email already exists"},
		{domain.UserFilter{MobileNumber: mobile}, "Mobile number already exists"},
		{domain.UserFilter{UserName: userName}, "User name already exists"},
	}
	for _, c := range checks {
		if c.filter == (domain.UserFilter{}) {
			continue
		}
		existing, err := u.userRepo.FindOne(ctx, c.filter)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if existing.ID != selfID {
			return apperror.Conflict(c.msg)
		}
	}
	return nil
}
