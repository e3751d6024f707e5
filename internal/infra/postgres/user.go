package postgres

import (
	"context"

	"reservatenis/internal/domain/user"
	"reservatenis/internal/infra"
	"reservatenis/internal/infra/db"
	"reservatenis/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

const userColumns = "id, email, password_hash, full_name, phone, is_admin, is_active, created_at, updated_at"

func scanUser(row interface{ Scan(dest ...any) error }) (*user.User, error) {
	var (
		id           pgtype.UUID
		emailRaw     string
		passwordHash string
		fullName     pgtype.Text
		phone        pgtype.Text
		isAdmin      bool
		isActive     bool
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	if err := row.Scan(&id, &emailRaw, &passwordHash, &fullName, &phone, &isAdmin, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	email, err := user.NewEmail(emailRaw)
	if err != nil {
		return nil, err
	}

	return user.ReconstructUser(
		uuid.UUID(id.Bytes),
		email,
		passwordHash,
		pgconv.StringPtrFromPgtype(fullName),
		pgconv.StringPtrFromPgtype(phone),
		isAdmin,
		isActive,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, email, password_hash, full_name, phone, is_admin, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(u.ID()),
		u.Email().Value(),
		u.PasswordHash(),
		pgconv.StringPtrToPgtype(u.FullName()),
		pgconv.StringPtrToPgtype(u.Phone()),
		u.IsAdmin(),
		u.IsActive(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "email already registered", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find user", err)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find user by email", err)
	}
	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY email`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list users", err)
	}
	defer rows.Close()

	users := []*user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate users", err)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	const query = `
		UPDATE users
		SET email = $2, password_hash = $3, full_name = $4, phone = $5,
		    is_admin = $6, is_active = $7, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(u.ID()),
		u.Email().Value(),
		u.PasswordHash(),
		pgconv.StringPtrToPgtype(u.FullName()),
		pgconv.StringPtrToPgtype(u.Phone()),
		u.IsAdmin(),
		u.IsActive(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "email already registered", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return nil
}
