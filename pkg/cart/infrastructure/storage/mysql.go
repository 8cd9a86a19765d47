package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Mouss-42/ReactSituPro-main/pkg/cart/domain/model"
)

const queryTimeout = 5 * time.Second

// MySQLStorage persists entries in the local_storage table.
type MySQLStorage struct {
	db *sqlx.DB
}

func NewMySQLStorage(db *sqlx.DB) *MySQLStorage {
	return &MySQLStorage{db: db}
}

func (s *MySQLStorage) Load(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var value string
	err := s.db.GetContext(ctx, &value, "SELECT value FROM local_storage WHERE storage_key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrStorageKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %q", key)
	}
	return []byte(value), nil
}

func (s *MySQLStorage) Save(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO local_storage (storage_key, value) VALUES (?, ?) ON DUPLICATE KEY UPDATE value = VALUES(value)",
		key, string(value),
	)
	return errors.Wrapf(err, "failed to save %q", key)
}
