package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/signin/internal/client/models"
	"github.com/dmitrijs2005/signin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/signin/internal/dbx"
)

// Metadata keys of the persisted session.
const (
	KeyUser  = "user"
	KeyToken = "token"
)

// SessionStore persists the signed-in user across restarts.
//
// Contract:
//   - Save writes the serialized user under KeyUser and the bare token
//     under KeyToken in one transaction; a user without token is rejected.
//   - Load returns (nil, nil) when no session is stored.
//   - Token returns "" when no session is stored.
//   - Clear removes both keys in one transaction, leaving other keys alone.
type SessionStore interface {
	Save(ctx context.Context, u models.AuthenticatedUser) error
	Load(ctx context.Context) (*models.AuthenticatedUser, error)
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

type sqliteSessionStore struct {
	db *sql.DB
}

// NewSessionStore returns a SessionStore over the metadata table of db.
func NewSessionStore(db *sql.DB) SessionStore {
	return &sqliteSessionStore{db: db}
}

func (s *sqliteSessionStore) Save(ctx context.Context, u models.AuthenticatedUser) error {
	if err := u.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyUser, data); err != nil {
			return err
		}
		return repo.Set(ctx, KeyToken, []byte(u.Token))
	})
}

func (s *sqliteSessionStore) Load(ctx context.Context) (*models.AuthenticatedUser, error) {
	data, err := metadata.NewSQLiteRepository(s.db).Get(ctx, KeyUser)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var u models.AuthenticatedUser
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("decode stored user: %w", err)
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *sqliteSessionStore) Token(ctx context.Context) (string, error) {
	data, err := metadata.NewSQLiteRepository(s.db).Get(ctx, KeyToken)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *sqliteSessionStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, KeyUser); err != nil {
			return err
		}
		return repo.Delete(ctx, KeyToken)
	})
}
