package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"mini-bookmarks/models"
)

// DBTX is the subset of database/sql used by SQLStore.
// Both *sql.DB and *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLStore implements UserStore and BookmarkStore. Its queries use `?`
// placeholders and run unchanged on MySQL and SQLite.
type SQLStore struct {
	db  DBTX
	now func() time.Time
}

var (
	_ UserStore     = (*SQLStore)(nil)
	_ BookmarkStore = (*SQLStore)(nil)
)

func NewSQLStore(db DBTX) *SQLStore {
	return &SQLStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

const userColumns = "id, email, hash, first_name, last_name, created_at, updated_at"

const bookmarkColumns = "id, user_id, title, link, description, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func scanBookmark(row rowScanner) (*models.Bookmark, error) {
	var b models.Bookmark
	err := row.Scan(&b.ID, &b.UserID, &b.Title, &b.Link, &b.Description, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *SQLStore) CreateUser(ctx context.Context, email, hash string) (*models.User, error) {
	now := s.now()
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (email, hash, created_at, updated_at) VALUES (?, ?, ?, ?)",
		email, hash, now, now)
	if err != nil {
		return nil, mapError("create user", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create user: last insert id: %w", err)
	}

	return &models.User{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (s *SQLStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapError("find user by email", err)
	}
	return u, nil
}

func (s *SQLStore) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapError("find user by id", err)
	}
	return u, nil
}

func (s *SQLStore) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	_, err := s.db.ExecContext(ctx,
		`UPDATE users SET
			email = COALESCE(?, email),
			first_name = COALESCE(?, first_name),
			last_name = COALESCE(?, last_name),
			updated_at = ?
		WHERE id = ?`,
		patch.Email, patch.FirstName, patch.LastName, s.now(), id)
	if err != nil {
		return nil, mapError("update user", err)
	}
	return s.FindUserByID(ctx, id)
}

func (s *SQLStore) CreateBookmark(ctx context.Context, ownerID int64, in models.BookmarkInput) (*models.Bookmark, error) {
	now := s.now()
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO bookmarks (user_id, title, link, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		ownerID, in.Title, in.Link, in.Description, now, now)
	if err != nil {
		return nil, mapError("create bookmark", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create bookmark: last insert id: %w", err)
	}

	return s.FindBookmark(ctx, id)
}

func (s *SQLStore) ListBookmarksByOwner(ctx context.Context, ownerID int64) ([]models.Bookmark, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+bookmarkColumns+" FROM bookmarks WHERE user_id = ? ORDER BY id ASC", ownerID)
	if err != nil {
		return nil, mapError("list bookmarks", err)
	}
	defer rows.Close()

	bookmarks := []models.Bookmark{}
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, mapError("list bookmarks: scan", err)
		}
		bookmarks = append(bookmarks, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list bookmarks", err)
	}

	return bookmarks, nil
}

func (s *SQLStore) FindBookmark(ctx context.Context, id int64) (*models.Bookmark, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+bookmarkColumns+" FROM bookmarks WHERE id = ?", id)
	b, err := scanBookmark(row)
	if err != nil {
		return nil, mapError("find bookmark", err)
	}
	return b, nil
}

func (s *SQLStore) FindOwnedBookmark(ctx context.Context, id, ownerID int64) (*models.Bookmark, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+bookmarkColumns+" FROM bookmarks WHERE id = ? AND user_id = ?", id, ownerID)
	b, err := scanBookmark(row)
	if err != nil {
		return nil, mapError("find owned bookmark", err)
	}
	return b, nil
}

func (s *SQLStore) UpdateBookmark(ctx context.Context, id int64, patch models.BookmarkPatch) (*models.Bookmark, error) {
	_, err := s.db.ExecContext(ctx,
		`UPDATE bookmarks SET
			title = COALESCE(?, title),
			link = COALESCE(?, link),
			description = COALESCE(?, description),
			updated_at = ?
		WHERE id = ?`,
		patch.Title, patch.Link, patch.Description, s.now(), id)
	if err != nil {
		return nil, mapError("update bookmark", err)
	}
	return s.FindBookmark(ctx, id)
}

func (s *SQLStore) DeleteBookmark(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM bookmarks WHERE id = ?", id)
	if err != nil {
		return mapError("delete bookmark", err)
	}
	return checkRowsAffected("delete bookmark", res)
}

func (s *SQLStore) DeleteOwnedBookmark(ctx context.Context, id, ownerID int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM bookmarks WHERE id = ? AND user_id = ?", id, ownerID)
	if err != nil {
		return mapError("delete owned bookmark", err)
	}
	return checkRowsAffected("delete owned bookmark", res)
}
