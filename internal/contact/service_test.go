package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gymbooking/internal/email"
	"gymbooking/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, req CreateContactRequest) (*ContactMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ContactMessage), args.Error(1)
}

func testEmailService() *email.Service {
	return email.New("test@gym.local", "Test Gym", "localhost", "2525", "", "", "localhost:1")
}

func TestSubmitMessage_Success(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testEmailService())

	req := CreateContactRequest{
		Name:    "John Doe",
		Email:   "john@example.com",
		Message: "What are your opening hours?",
	}
	repo.On("Create", mock.Anything, req).Return(&ContactMessage{
		ID:      1,
		Name:    "John Doe",
		Email:   "john@example.com",
		Message: "What are your opening hours?",
	}, nil)

	msg, err := svc.SubmitMessage(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, msg.ID)
	require.False(t, msg.IsRead)
	repo.AssertExpectations(t)
}

func TestSubmitMessage_RepositoryError(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testEmailService())

	repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("insert failed"))

	_, err := svc.SubmitMessage(context.Background(), CreateContactRequest{
		Name:    "John Doe",
		Email:   "john@example.com",
		Message: "hello",
	})
	require.Error(t, err)
}
