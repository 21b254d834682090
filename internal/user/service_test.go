package user

import (
	"context"
	"errors"
	"testing"

	"crm-be/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *User) (*User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	input := RegisterInput{FirstName: "Ana", LastName: "Diaz", Email: " Ana@Example.com ", Password: "password123"}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, "ana@example.com").Return(nil, ErrUserNotFound)
		mockRepo.On("Create", ctx, mock.MatchedBy(func(u *User) bool {
			return u.Email == "ana@example.com" &&
				u.Password != "password123" &&
				CheckPasswordHash("password123", u.Password)
		})).Return(&User{ID: "u-1", FirstName: "Ana", LastName: "Diaz", Email: "ana@example.com"}, nil)

		u, err := svc.Register(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, "u-1", u.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("EmailExists", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, "ana@example.com").Return(&User{ID: "u-1"}, nil)

		_, err := svc.Register(ctx, input)

		assert.ErrorIs(t, err, ErrEmailExists)
		assert.ErrorIs(t, err, apperror.ErrAlreadyExists)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("MissingPassword", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Register(ctx, RegisterInput{Email: "ana@example.com"})
		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	})

	t.Run("LookupError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, "ana@example.com").Return(nil, errors.New("db error"))

		_, err := svc.Register(ctx, input)
		assert.EqualError(t, err, "db error")
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, "ana@example.com").Return(nil, ErrUserNotFound)
		mockRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db error"))

		_, err := svc.Register(ctx, input)
		assert.EqualError(t, err, "db error")
	})
}

func TestService_Authenticate(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	ctx := context.Background()
	email := "ana@example.com"
	password := "password123"

	hashed, err := HashPassword(password)
	require.NoError(t, err)
	stored := &User{ID: "u-1", FirstName: "Ana", LastName: "Diaz", Email: email, Password: hashed}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("FindByEmail", ctx, email).Return(stored, nil)

		token, u, err := svc.Authenticate(ctx, email, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "u-1", u.ID)

		claims, err := ParseJWT(token)
		require.NoError(t, err)
		assert.Equal(t, "u-1", claims.UserID)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("FindByEmail", ctx, email).Return(nil, ErrUserNotFound)

		_, _, err := svc.Authenticate(ctx, email, password)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("FindByEmail", ctx, email).Return(stored, nil)

		_, _, err := svc.Authenticate(ctx, email, "nope")
		assert.ErrorIs(t, err, ErrIncorrectPassword)
		assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
	})
}

func TestService_CurrentUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	ctx := context.Background()
	svc := NewService(new(MockRepository))

	token, err := GenerateJWT(User{ID: "u-1", FirstName: "Ana", LastName: "Diaz", Email: "ana@example.com"})
	require.NoError(t, err)

	t.Run("RawToken", func(t *testing.T) {
		u, err := svc.CurrentUser(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, "u-1", u.ID)
		assert.Equal(t, "Ana Diaz", u.FullName())
	})

	t.Run("BearerPrefix", func(t *testing.T) {
		u, err := svc.CurrentUser(ctx, "Bearer "+token)
		assert.NoError(t, err)
		assert.Equal(t, "ana@example.com", u.Email)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := svc.CurrentUser(ctx, "garbage")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
