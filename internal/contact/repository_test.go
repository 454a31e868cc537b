package contact

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func TestRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	defer sqlxDB.Close()

	repo := NewRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contact_messages (name, email, phone, message)")).
		WithArgs("John Doe", "john@example.com", "1234567890", "hello").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "message", "is_read", "created_at"}).
			AddRow(1, "John Doe", "john@example.com", "1234567890", "hello", false, time.Now()))

	msg, err := repo.Create(context.Background(), CreateContactRequest{
		Name:    "John Doe",
		Email:   "john@example.com",
		Phone:   "1234567890",
		Message: "hello",
	})
	require.NoError(t, err)
	require.Equal(t, 1, msg.ID)
	require.False(t, msg.IsRead)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreate_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	defer sqlxDB.Close()

	repo := NewRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contact_messages")).
		WillReturnError(errors.New("connection reset"))

	_, err = repo.Create(context.Background(), CreateContactRequest{Name: "x", Email: "x@x.com", Message: "y"})
	require.Error(t, err)
}
