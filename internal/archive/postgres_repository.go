package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(cred *Credentials) (*PostgresRepository, error) {
	psqlconn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cred.Host,
		cred.Port,
		cred.User,
		cred.Password,
		cred.DBName)

	db, err := sql.Open("postgres", psqlconn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if e2 := db.Ping(); e2 != nil {
		return nil, fmt.Errorf("failed to ping database: %w", e2)
	}

	db.SetMaxOpenConns(100)
	db.SetMaxIdleConns(10)
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) RunMigrations(cred *Credentials) error {
	driver, err := postgres.WithInstance(r.db, &postgres.Config{
		MigrationsTable: "receipts_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", cred.MigrationsDirPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if e2 := m.Up(); e2 != nil && !errors.Is(e2, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", e2)
	}

	return nil
}

func (r *PostgresRepository) CreateReceipt(ctx context.Context, receipt *ReceiptRecord) error {
	linesJSON, err := json.Marshal(receipt.Lines)
	if err != nil {
		return fmt.Errorf("failed to marshal receipt lines: %w", err)
	}

	query := `INSERT INTO receipts (id, customer_id, subtotal, shipping_fee, total, lines, completed_at, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())`

	_, insertErr := r.db.ExecContext(ctx, query,
		receipt.ID,
		receipt.CustomerID,
		receipt.Subtotal,
		receipt.ShippingFee,
		receipt.Total,
		linesJSON,
		receipt.CompletedAt)

	if insertErr != nil {
		var pqErr *pq.Error
		if errors.As(insertErr, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateReceipt
		}
		return fmt.Errorf("insert receipt: %w", insertErr)
	}
	return nil
}

func (r *PostgresRepository) GetReceiptByID(ctx context.Context, id string) (*ReceiptRecord, error) {
	query := `SELECT id, customer_id, subtotal, shipping_fee, total, lines, completed_at, created_at
	          FROM receipts WHERE id = $1`

	var receipt ReceiptRecord
	var linesJSON []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&receipt.ID,
		&receipt.CustomerID,
		&receipt.Subtotal,
		&receipt.ShippingFee,
		&receipt.Total,
		&linesJSON,
		&receipt.CompletedAt,
		&receipt.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReceiptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query receipt by id: %w", err)
	}

	if err := json.Unmarshal(linesJSON, &receipt.Lines); err != nil {
		return nil, fmt.Errorf("unmarshal receipt lines: %w", err)
	}

	return &receipt, nil
}

func (r *PostgresRepository) ListReceiptsByCustomer(ctx context.Context, customerID string) ([]*ReceiptRecord, error) {
	query := `SELECT id, customer_id, subtotal, shipping_fee, total, lines, completed_at, created_at
	          FROM receipts WHERE customer_id = $1 ORDER BY completed_at DESC`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("query receipts by customer: %w", err)
	}
	defer rows.Close()

	var receipts []*ReceiptRecord
	for rows.Next() {
		var receipt ReceiptRecord
		var linesJSON []byte
		if err := rows.Scan(
			&receipt.ID,
			&receipt.CustomerID,
			&receipt.Subtotal,
			&receipt.ShippingFee,
			&receipt.Total,
			&linesJSON,
			&receipt.CompletedAt,
			&receipt.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan receipt row: %w", err)
		}
		if err := json.Unmarshal(linesJSON, &receipt.Lines); err != nil {
			return nil, fmt.Errorf("unmarshal receipt lines: %w", err)
		}
		receipts = append(receipts, &receipt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return receipts, nil
}

func (r *PostgresRepository) Close() error {
	return r.db.Close()
}
