package contact

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req CreateContactRequest) (*ContactMessage, error) {
	query := `
		INSERT INTO contact_messages (name, email, phone, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, phone, message, is_read, created_at
	`

	var msg ContactMessage
	err := r.db.GetContext(ctx, &msg, query, req.Name, req.Email, req.Phone, req.Message)
	if err != nil {
		return nil, err
	}

	return &msg, nil
}
