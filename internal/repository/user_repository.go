// internal/repository/user_repository.go
package repository

import (
	"database/sql"
	"time"

	"github.com/alertemeds/alertemeds-backend/internal/model"
)

type UserRepositoryInterface interface {
	Create(u *model.User) error
	GetByEmail(email string) (*model.User, error)
	GetByID(id int) (*model.User, error)
	EarliestUserEmail() (string, error)
}

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) Create(u *model.User) error {
	u.CreatedAt = time.Now()
	query := `INSERT INTO users (email, password_hash, created_at) VALUES ($1, $2, $3) RETURNING id`
	return r.DB.QueryRow(query, u.Email, u.PasswordHash, u.CreatedAt).Scan(&u.ID)
}

func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	query := `SELECT id, email, password_hash, created_at FROM users WHERE email=$1`
	var u model.User
	if err := r.DB.QueryRow(query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(id int) (*model.User, error) {
	query := `SELECT id, email, password_hash, created_at FROM users WHERE id=$1`
	var u model.User
	if err := r.DB.QueryRow(query, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// EarliestUserEmail backs the admin fallback when no allow-list is
// configured: the first registered user is treated as admin.
func (r *UserRepository) EarliestUserEmail() (string, error) {
	query := `SELECT email FROM users ORDER BY created_at ASC, id ASC LIMIT 1`
	var email string
	if err := r.DB.QueryRow(query).Scan(&email); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return email, nil
}

var _ UserRepositoryInterface = (*UserRepository)(nil)
