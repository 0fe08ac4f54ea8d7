package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"journal/internal/model"
	"journal/internal/pkg/dbutil"
	appErr "journal/internal/pkg/errors"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a new user row and returns it with the store-assigned id.
// A duplicate username surfaces as ErrConflict.
func (r *UserRepo) Create(ctx context.Context, username, hashedPassword string) (*model.User, error) {
	data := map[string]interface{}{
		"username":       username,
		"hashedPassword": hashedPassword,
	}
	sqlStr, args, err := builder.BuildInsert("users", []map[string]interface{}{data})
	if err != nil {
		return nil, err
	}
	sqlStr += " RETURNING userId"
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	var id int64
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&id); err != nil {
		if dbutil.IsConflict(err) {
			return nil, appErr.ErrConflict
		}
		return nil, err
	}
	return &model.User{UserID: id, Username: username, HashedPassword: hashedPassword}, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	where := map[string]interface{}{"username": username}
	sqlStr, args, err := builder.BuildSelect("users", where, []string{"userId", "username", "hashedPassword", "createdAt"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	var user model.User
	if err := rows.Scan(&user.UserID, &user.Username, &user.HashedPassword, &user.CreatedAt); err != nil {
		return nil, err
	}
	return &user, nil
}
