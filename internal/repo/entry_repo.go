package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"journal/internal/model"
	"journal/internal/pkg/dbutil"
	appErr "journal/internal/pkg/errors"
)

var entryFields = []string{"entryId", "title", "notes", "photoUrl", "userId"}

type EntryRepo struct {
	db *sql.DB
}

func NewEntryRepo(db *sql.DB) *EntryRepo {
	return &EntryRepo{db: db}
}

// ownerScope is the single place the ownership predicate is built. Every
// per-entry read and write matches on entryId AND userId, so a row owned by
// someone else is indistinguishable from a missing one.
func ownerScope(userID, entryID int64) map[string]interface{} {
	return map[string]interface{}{
		"entryId": entryID,
		"userId":  userID,
	}
}

func (r *EntryRepo) Create(ctx context.Context, entry *model.Entry) error {
	data := map[string]interface{}{
		"title":    entry.Title,
		"notes":    entry.Notes,
		"photoUrl": entry.PhotoURL,
		"userId":   entry.UserID,
	}
	sqlStr, args, err := builder.BuildInsert("entries", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr += " RETURNING entryId"
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	return r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&entry.EntryID)
}

func (r *EntryRepo) ListByUser(ctx context.Context, userID int64) ([]*model.Entry, error) {
	where := map[string]interface{}{
		"userId":   userID,
		"_orderby": "entryId asc",
	}
	sqlStr, args, err := builder.BuildSelect("entries", where, entryFields)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	entries := make([]*model.Entry, 0)
	for rows.Next() {
		var entry model.Entry
		if err := rows.Scan(&entry.EntryID, &entry.Title, &entry.Notes, &entry.PhotoURL, &entry.UserID); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}

func (r *EntryRepo) GetByID(ctx context.Context, userID, entryID int64) (*model.Entry, error) {
	sqlStr, args, err := builder.BuildSelect("entries", ownerScope(userID, entryID), entryFields)
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
	var entry model.Entry
	if err := rows.Scan(&entry.EntryID, &entry.Title, &entry.Notes, &entry.PhotoURL, &entry.UserID); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update mutates title/notes/photoUrl of the caller's row. entryId and userId
// never appear in the update map.
func (r *EntryRepo) Update(ctx context.Context, entry *model.Entry) error {
	update := map[string]interface{}{
		"title":    entry.Title,
		"notes":    entry.Notes,
		"photoUrl": entry.PhotoURL,
	}
	sqlStr, args, err := builder.BuildUpdate("entries", ownerScope(entry.UserID, entry.EntryID), update)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func (r *EntryRepo) Delete(ctx context.Context, userID, entryID int64) error {
	sqlStr, args, err := builder.BuildDelete("entries", ownerScope(userID, entryID))
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}
