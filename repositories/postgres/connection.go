package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/upb/biztime/config"
	"go.uber.org/zap"
)

// DB wraps the sql.DB connection pool
type DB struct {
	*sql.DB
	logger *zap.Logger
}

// NewDB creates a new database connection pool
func NewDB(cfg config.DatabaseConfig, logger *zap.Logger) (*DB, error) {
	dsn := cfg.DSN()

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established",
		zap.String("connection", cfg.LogString()))

	return Wrap(db, logger), nil
}

// Wrap adopts an already opened pool
func Wrap(db *sql.DB, logger *zap.Logger) *DB {
	return &DB{
		DB:     db,
		logger: logger,
	}
}

// Close closes the database connection pool
func (db *DB) Close() error {
	db.logger.Info("closing database connection")
	return db.DB.Close()
}

// HealthCheck performs a health check on the database
func (db *DB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	var result int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("database query check failed: %w", err)
	}

	return nil
}

// Stats returns database connection pool statistics
func (db *DB) Stats() sql.DBStats {
	return db.DB.Stats()
}

// schema is applied by InitSchema. Every statement is idempotent.
const schema = `
	CREATE TABLE IF NOT EXISTS companies (
		code TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS invoices (
		id SERIAL PRIMARY KEY,
		comp_code TEXT NOT NULL REFERENCES companies(code) ON DELETE CASCADE,
		amt NUMERIC(10, 2) NOT NULL CHECK (amt > 0),
		paid BOOLEAN NOT NULL DEFAULT false,
		add_date TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		paid_date TIMESTAMPTZ,
		CONSTRAINT invoices_paid_date_check CHECK ((paid AND paid_date IS NOT NULL) OR (NOT paid AND paid_date IS NULL))
	);

	CREATE TABLE IF NOT EXISTS industries (
		code TEXT PRIMARY KEY,
		industry TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS companies_industries (
		comp_code TEXT NOT NULL REFERENCES companies(code) ON DELETE CASCADE,
		ind_code TEXT NOT NULL REFERENCES industries(code) ON DELETE CASCADE,
		PRIMARY KEY (comp_code, ind_code)
	);

	CREATE INDEX IF NOT EXISTS idx_invoices_comp_code ON invoices(comp_code);
	CREATE INDEX IF NOT EXISTS idx_companies_industries_ind_code ON companies_industries(ind_code);
`

// InitSchema creates the biztime tables when they do not exist yet
func (db *DB) InitSchema(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	db.logger.Info("database schema initialized successfully")
	return nil
}
