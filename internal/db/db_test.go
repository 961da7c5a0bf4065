package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(Memory)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE positions (name TEXT PRIMARY KEY, value REAL)`)
	if err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM positions`).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestWithTx_Success(t *testing.T) {
	db := setupTestDB(t)

	err := WithTx(context.Background(), db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO positions (name, value) VALUES (?, ?)`, "volume", 42.5)
		return err
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	var value float64
	if err := db.QueryRow(`SELECT value FROM positions WHERE name = ?`, "volume").Scan(&value); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if value != 42.5 {
		t.Errorf("value = %v, want 42.5", value)
	}
}

func TestWithTx_Rollback(t *testing.T) {
	db := setupTestDB(t)
	errAbort := errors.New("abort")

	err := WithTx(context.Background(), db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO positions (name, value) VALUES (?, ?)`, "a", 1); err != nil {
			return err
		}
		if _, err := tx.Exec(`INSERT INTO positions (name, value) VALUES (?, ?)`, "b", 2); err != nil {
			return err
		}
		return errAbort
	})

	if !errors.Is(err, errAbort) {
		t.Fatalf("WithTx error = %v, want %v", err, errAbort)
	}
	if n := countRows(t, db); n != 0 {
		t.Errorf("count = %d, want 0 (all rolled back)", n)
	}
}

func TestWithTx_CanceledContext(t *testing.T) {
	db := setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := WithTx(ctx, db, func(_ *sql.Tx) error {
		called = true
		return nil
	})

	if err == nil {
		t.Error("WithTx should fail with a canceled context")
	}
	if called {
		t.Error("fn should not run when the transaction cannot begin")
	}
}
