package archive

import (
	"context"
	"errors"
	"time"

	"github.com/Mohamed-Amiir/RiseJourny/internal/domain"
)

var (
	ErrReceiptNotFound  = errors.New("receipt not found")
	ErrDuplicateReceipt = errors.New("receipt for this checkout already exists")
)

type Credentials struct {
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	MigrationsDirPath string
}

// ReceiptRecord is a persisted receipt row.
type ReceiptRecord struct {
	ID          string
	CustomerID  string
	Subtotal    float64
	ShippingFee float64
	Total       float64
	Lines       []domain.ReceiptLine
	CompletedAt time.Time
	CreatedAt   time.Time
}

type Repository interface {
	CreateReceipt(ctx context.Context, receipt *ReceiptRecord) error
	GetReceiptByID(ctx context.Context, id string) (*ReceiptRecord, error)
	ListReceiptsByCustomer(ctx context.Context, customerID string) ([]*ReceiptRecord, error)
	RunMigrations(cred *Credentials) error
	Close() error
}
