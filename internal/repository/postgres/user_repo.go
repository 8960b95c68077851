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

const userColumns = `id, first_name, last_name, user_name, email, password_hash, recovery_email,
	dob, mobile_number, role, status, created_at, updated_at`

var userListColumns = columns{
	"id":            {expr: "id", typ: typeUUID},
	"firstName":     {expr: "first_name", typ: typeText},
	"lastName":      {expr: "last_name", typ: typeText},
	"userName":      {expr: "user_name", typ: typeText},
	"email":         {expr: "email", typ: typeText},
	"recoveryEmail": {expr: "recovery_email", typ: typeText},
	"DOB":           {expr: "dob", typ: typeDate},
	"mobileNumber":  {expr: "mobile_number", typ: typeText},
	"role":          {expr: "role", typ: typeText},
	"status":        {expr: "status", typ: typeText},
	"createdAt":     {expr: "created_at", typ: typeTime},
	"updatedAt":     {expr: "updated_at", typ: typeTime},
}

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.UserName, &user.Email, &user.PasswordHash,
		&user.RecoveryEmail, &user.DOB.Time, &user.MobileNumber, &user.Role, &user.Status,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (first_name, last_name, user_name, email, password_hash, recovery_email,
                  dob, mobile_number, role, status)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
              RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		user.FirstName, user.LastName, user.UserName, strings.ToLower(user.Email), user.PasswordHash,
		user.RecoveryEmail, user.DOB.Time, user.MobileNumber, user.Role, user.Status,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	return translate(err)
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}

// FindOne returns the first user matching any non-empty field of filter.
func (r *userRepo) FindOne(ctx context.Context, filter domain.UserFilter) (*domain.User, error) {
	var (
		conds []string
		args  []any
	)
	add := func(col, v string) {
		if v == "" {
			return
		}
		args = append(args, v)
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	add("email", strings.ToLower(filter.Email))
	add("mobile_number", filter.MobileNumber)
	add("user_name", filter.UserName)
	if len(conds) == 0 {
		return nil, apperror.Internal(fmt.Errorf("user FindOne called with an empty filter"))
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE ` + strings.Join(conds, " OR ") + ` ORDER BY created_at LIMIT 1`
	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}

func (r *userRepo) Update(ctx context.Context, id string, changes domain.UserChanges) (*domain.User, error) {
	var a assignments
	if changes.FirstName != nil {
		a.set("first_name", *changes.FirstName)
	}
	if changes.LastName != nil {
		a.set("last_name", *changes.LastName)
	}
	if changes.UserName != nil {
		a.set("user_name", *changes.UserName)
	}
	if changes.Email != nil {
		a.set("email", strings.ToLower(*changes.Email))
	}
	if changes.RecoveryEmail != nil {
		a.set("recovery_email", *changes.RecoveryEmail)
	}
	if changes.DOB != nil {
		a.set("dob", changes.DOB.Time)
	}
	if changes.MobileNumber != nil {
		a.set("mobile_number", *changes.MobileNumber)
	}
	if changes.Status != nil {
		a.set("status", *changes.Status)
	}
	if changes.PasswordHash != nil {
		a.set("password_hash", *changes.PasswordHash)
	}
	if a.empty() {
		return r.GetByID(ctx, id)
	}

	set, idArg := a.clause()
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`, set, idArg, userColumns)
	user, err := scanUser(r.db.QueryRow(ctx, query, append(a.args, id)...))
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) List(ctx context.Context, opts query.Options) ([]domain.User, error) {
	lq, err := buildList(userListColumns, opts, "created_at DESC")
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users`+lq.where+lq.tail, lq.args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, translate(err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err)
	}
	return users, nil
}
