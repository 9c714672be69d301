// internal/repository/family_member_repository.go
package repository

import (
	"database/sql"
	"time"

	"github.com/alertemeds/alertemeds-backend/internal/model"
)

type FamilyMemberRepositoryInterface interface {
	Create(m *model.FamilyMember) error
	ListByUser(userID int) ([]model.FamilyMember, error)
	UpdateOwned(m *model.FamilyMember) (bool, error)
	DeleteOwned(id, userID int) (bool, error)
}

type FamilyMemberRepository struct {
	DB *sql.DB
}

func (r *FamilyMemberRepository) Create(m *model.FamilyMember) error {
	m.CreatedAt = time.Now()
	query := `
        INSERT INTO family_members (user_id, name, birth_date, notes, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	return r.DB.QueryRow(query, m.UserID, m.Name, m.BirthDate, m.Notes, m.CreatedAt).Scan(&m.ID)
}

func (r *FamilyMemberRepository) ListByUser(userID int) ([]model.FamilyMember, error) {
	query := `SELECT id, user_id, name, birth_date, notes, created_at FROM family_members WHERE user_id=$1 ORDER BY id`
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []model.FamilyMember{}
	for rows.Next() {
		var m model.FamilyMember
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.BirthDate, &m.Notes, &m.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// UpdateOwned mutates a profile only for its owner, ownership enforced in
// the WHERE clause.
func (r *FamilyMemberRepository) UpdateOwned(m *model.FamilyMember) (bool, error) {
	query := `UPDATE family_members SET name=$1, birth_date=$2, notes=$3 WHERE id=$4 AND user_id=$5`
	res, err := r.DB.Exec(query, m.Name, m.BirthDate, m.Notes, m.ID, m.UserID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *FamilyMemberRepository) DeleteOwned(id, userID int) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM family_members WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var _ FamilyMemberRepositoryInterface = (*FamilyMemberRepository)(nil)
