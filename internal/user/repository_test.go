package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now()

	newUser := func() *User {
		return &User{FirstName: "Ana", LastName: "Diaz", Email: "ana@example.com", Password: "hashed"}
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users \(first_name, last_name, email, password\)`).
			WithArgs("Ana", "Diaz", "ana@example.com", "hashed").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("u-1", now))

		u, err := repo.Create(ctx, newUser())
		assert.NoError(t, err)
		assert.Equal(t, "u-1", u.ID)
		assert.Equal(t, now, u.CreatedAt)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

		_, err := repo.Create(ctx, newUser())
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(errors.New("db error"))

		_, err := repo.Create(ctx, newUser())
		assert.EqualError(t, err, "db error")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	email := "ana@example.com"
	cols := []string{"id", "first_name", "last_name", "email", "password", "created_at"}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, first_name, last_name, email, password, created_at FROM users WHERE email = \$1`).
			WithArgs(email).
			WillReturnRows(sqlmock.NewRows(cols).AddRow("u-1", "Ana", "Diaz", email, "hashed", time.Now()))

		u, err := repo.FindByEmail(ctx, email)
		assert.NoError(t, err)
		assert.Equal(t, "u-1", u.ID)
		assert.Equal(t, "Ana", u.FirstName)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users WHERE email`).
			WithArgs(email).
			WillReturnRows(sqlmock.NewRows(cols))

		u, err := repo.FindByEmail(ctx, email)
		assert.Nil(t, u)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users`).
			WithArgs(email).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.FindByEmail(ctx, email)
		assert.EqualError(t, err, "connection refused")
	})
}

func TestRepository_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "password", "created_at"}).
			AddRow("u-1", "Ana", "Diaz", "ana@example.com", "hashed", time.Now()))

	u, err := repo.FindByID(context.Background(), "u-1")
	assert.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)
}
