// internal/repository/contact_repository.go
package repository

import (
	"database/sql"

	"github.com/alertemeds/alertemeds-backend/internal/model"
)

type ContactRepositoryInterface interface {
	GetByID(id int) (*model.Contact, error)
	ListByType(contactType string) ([]model.Contact, error)
}

type ContactRepository struct {
	DB *sql.DB
}

// GetByID fetches a contact by ID, (nil, nil) when absent.
func (r *ContactRepository) GetByID(id int) (*model.Contact, error) {
	query := `SELECT id, name, email, type, city FROM contacts WHERE id=$1`
	var c model.Contact
	if err := r.DB.QueryRow(query, id).Scan(&c.ID, &c.Name, &c.Email, &c.Type, &c.City); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// ListByType fetches the contacts a campaign of that type targets.
func (r *ContactRepository) ListByType(contactType string) ([]model.Contact, error) {
	query := `SELECT id, name, email, type, city FROM contacts WHERE type=$1 ORDER BY id`
	rows, err := r.DB.Query(query, contactType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []model.Contact{}
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Type, &c.City); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

var _ ContactRepositoryInterface = (*ContactRepository)(nil)
