package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	// TranslateError matches the server's gorm config so unique-violation
	// mapping to ErrAlreadyExists is exercised here too.
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE,
		name TEXT,
		password_hash TEXT,
		role TEXT,
		credits INTEGER DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createWalletTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE wallets (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		provider_wallet_id TEXT,
		chain TEXT NOT NULL,
		address TEXT NOT NULL,
		type TEXT NOT NULL,
		name TEXT,
		is_primary BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createCreditTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE credit_transactions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		wallet_id TEXT,
		direction TEXT NOT NULL,
		amount_usdc TEXT NOT NULL,
		credit_amount INTEGER NOT NULL,
		chain TEXT NOT NULL,
		asset TEXT NOT NULL,
		tx_hash TEXT,
		status TEXT NOT NULL,
		idempotency_key TEXT UNIQUE,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
