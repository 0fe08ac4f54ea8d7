package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	appErr "journal/internal/pkg/errors"
	"journal/internal/pkg/jwt"
	"journal/internal/pkg/password"
	"journal/internal/repo"
	"journal/internal/service"
)

func newAuthService(t *testing.T) (*service.AuthService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	users := repo.NewUserRepo(db)
	return service.NewAuthService(users, []byte("test-secret"), time.Hour, bcrypt.MinCost), mock
}

func userRows(t *testing.T, username, plain string) *sqlmock.Rows {
	t.Helper()
	hash, err := password.Hash(plain, bcrypt.MinCost)
	require.NoError(t, err)
	return sqlmock.NewRows([]string{"userid", "username", "hashedpassword", "createdat"}).
		AddRow(int64(1), username, hash, time.Now())
}

func TestLoginUnknownUser(t *testing.T) {
	auth, mock := newAuthService(t)

	mock.ExpectQuery(`SELECT .+ FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"userid", "username", "hashedpassword", "createdat"}))

	_, _, err := auth.Login(context.Background(), "ghost", "pw123")
	require.ErrorIs(t, err, appErr.ErrUnauthorized)
}

func TestLoginWrongPassword(t *testing.T) {
	auth, mock := newAuthService(t)

	mock.ExpectQuery(`SELECT .+ FROM users`).
		WillReturnRows(userRows(t, "alice", "pw123"))

	_, _, err := auth.Login(context.Background(), "alice", "wrong")
	// Same error as an unknown username so callers cannot tell them apart.
	require.ErrorIs(t, err, appErr.ErrUnauthorized)
}

func TestLoginIssuesToken(t *testing.T) {
	auth, mock := newAuthService(t)

	mock.ExpectQuery(`SELECT .+ FROM users`).
		WillReturnRows(userRows(t, "alice", "pw123"))

	user, token, err := auth.Login(context.Background(), "alice", "pw123")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)

	claims, err := jwt.ParseToken(token, []byte("test-secret"))
	require.NoError(t, err)
	require.Equal(t, user.UserID, claims.UserID)
	require.Equal(t, "alice", claims.Username)
}

func TestRegisterHashesPassword(t *testing.T) {
	auth, mock := newAuthService(t)

	mock.ExpectQuery(`INSERT INTO users .+ RETURNING userId`).
		WillReturnRows(sqlmock.NewRows([]string{"userid"}).AddRow(int64(1)))

	user, err := auth.Register(context.Background(), "alice", "pw123")
	require.NoError(t, err)
	require.NotEqual(t, "pw123", user.HashedPassword)
	require.NoError(t, password.Compare(user.HashedPassword, "pw123"))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	auth, mock := newAuthService(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(appErr.ErrConflict)

	_, err := auth.Register(context.Background(), "alice", "pw123")
	require.Error(t, err)
}
