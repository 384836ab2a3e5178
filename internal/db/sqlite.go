// Package db provides SQLite connectivity and migration support.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const pingTimeout = 5 * time.Second

// OpenSQLitePair opens two pools over the same SQLite file: a write pool
// pinned to a single connection (so writes serialize in Go rather than
// colliding on SQLITE_BUSY) and a read pool sized by readMaxOpen (0 means 4).
// Every transaction and balance update goes through the write pool; the
// report queries run on the read pool.
func OpenSQLitePair(path string, readMaxOpen int) (writeDB, readDB *sql.DB, err error) {
	writeDB, err = openPool(path, true, 1)
	if err != nil {
		return nil, nil, err
	}
	if readMaxOpen <= 0 {
		readMaxOpen = 4
	}
	readDB, err = openPool(path, false, readMaxOpen)
	if err != nil {
		_ = writeDB.Close()
		return nil, nil, err
	}
	return writeDB, readDB, nil
}

// openPool opens one pool with hardened pragmas: WAL journal,
// busy_timeout=5s, synchronous=NORMAL, foreign keys on. The write pool
// additionally takes its lock at BEGIN (_txlock=immediate) so a transaction
// that will write never has to upgrade a shared lock mid-flight.
func openPool(path string, write bool, maxOpen int) (*sql.DB, error) {
	params := url.Values{}
	params.Set("_journal_mode", "WAL")
	params.Set("_busy_timeout", "5000")
	params.Set("_synchronous", "NORMAL")
	params.Set("_foreign_keys", "on")
	if write {
		params.Set("_txlock", "immediate")
	}

	pool, err := sql.Open("sqlite3", path+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	pool.SetMaxOpenConns(maxOpen)
	pool.SetMaxIdleConns(maxOpen)
	pool.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	return pool, nil
}
