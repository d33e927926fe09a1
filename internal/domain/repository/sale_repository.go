package repository

import (
	"context"
	"time"

	"github.com/capelli/salonpos-api/internal/domain/entity"
	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/capelli/salonpos-api/pkg/pagination"
	"github.com/google/uuid"
)

// SaleRepository defines the interface for committed-sale data operations.
// A sale, its items and its payments are written together in one transaction;
// once written they are historical records and are never mutated.
type SaleRepository interface {
	// CommitSale persists the sale snapshot, its items, its payments and the
	// optional receivable atomically.
	CommitSale(ctx context.Context, sale *entity.Sale, items []entity.SaleItem, payments []entity.SalePayment, receivable *entity.Receivable) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	// ItemsInRange returns committed sale items with sale date in [from, to),
	// the input of commission payroll.
	ItemsInRange(ctx context.Context, from, to time.Time) ([]entity.SaleItem, error)
	// PaymentsInRange returns committed payments with sale date in [from, to)
	// for reconciliation reporting.
	PaymentsInRange(ctx context.Context, from, to time.Time) ([]entity.SalePayment, error)
	// SalesInRange returns committed sales with sale date in [from, to).
	SalesInRange(ctx context.Context, from, to time.Time) ([]entity.Sale, error)
	Void(ctx context.Context, id uuid.UUID) error
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.SaleStatus
	ClientID   *uuid.UUID
	WorkerID   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}
