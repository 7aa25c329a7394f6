package repository

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seungpyo.lee/BlogBackend/internal/domain"
)

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	u := &domain.User{Name: "Ann", Email: "ann@example.com", Password: "digest"}
	require.NoError(t, repo.Create(u))
	assert.Equal(t, uint(7), u.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).WillReturnError(errors.New("boom"))

	err := repo.Create(&domain.User{Name: "Ann", Email: "ann@example.com", Password: "digest"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create user")
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password"}).
			AddRow(1, "Ann", "ann@example.com", "digest"))

	u, err := repo.GetByEmail("ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, uint(1), u.ID)
	assert.Equal(t, "digest", u.Password)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password"}))

	_, err := repo.GetByEmail("nobody@example.com")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_GetByID_PreloadsBlogs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password"}).
			AddRow(2, "Bob", "bob@example.com", "digest"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "blogs"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "user_id"}).
			AddRow(10, "first", "hello", 2).
			AddRow(11, "second", "world", 2))

	u, err := repo.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Bob", u.Name)
	assert.Empty(t, u.Password)
	require.Len(t, u.Blogs, 2)
	assert.Equal(t, "second", u.Blogs[1].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password"}))

	_, err := repo.GetByID(99)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_GetByID_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).WillReturnError(errors.New("conn reset"))

	_, err := repo.GetByID(1)
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrUserNotFound))
}
