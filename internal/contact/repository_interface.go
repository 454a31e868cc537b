package contact

import "context"

type Repository interface {
	Create(ctx context.Context, req CreateContactRequest) (*ContactMessage, error)
}
