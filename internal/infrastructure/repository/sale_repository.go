package repository

import (
	"context"
	"errors"
	"time"

	"github.com/capelli/salonpos-api/internal/domain/entity"
	"github.com/capelli/salonpos-api/internal/domain/enum"
	domainRepo "github.com/capelli/salonpos-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// CommitSale writes the sale, its items, its payments and the optional
// receivable in one transaction; a failure anywhere rolls everything back.
func (r *saleRepository) CommitSale(ctx context.Context, sale *entity.Sale, items []entity.SaleItem, payments []entity.SalePayment, receivable *entity.Receivable) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].SaleID = sale.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		for i := range payments {
			payments[i].SaleID = sale.ID
		}
		if len(payments) > 0 {
			if err := tx.Create(&payments).Error; err != nil {
				return err
			}
		}
		if receivable != nil {
			receivable.SaleID = sale.ID
			if err := tx.Create(receivable).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Items").
		Preload("Payments").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Items").
		Preload("Payments").
		First(&sale, "invoice_no = ?", invoiceNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})

	if params.Search != "" {
		query = query.Where("invoice_no ILIKE ?", "%"+params.Search+"%")
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.ClientID != nil {
		query = query.Where("client_id = ?", *params.ClientID)
	}
	if params.WorkerID != nil {
		query = query.Where("id IN (?)",
			r.db.Model(&entity.SaleItem{}).Select("sale_id").Where("worker_id = ?", *params.WorkerID))
	}
	if params.StartDate != nil {
		query = query.Where("sale_date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("sale_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Client").
		Order("created_at DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) ItemsInRange(ctx context.Context, from, to time.Time) ([]entity.SaleItem, error) {
	var items []entity.SaleItem
	err := r.db.WithContext(ctx).
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Where("sales.sale_date >= ? AND sales.sale_date < ?", from, to).
		Where("sales.status <> ?", enum.SaleStatusVoid).
		Where("sales.deleted_at IS NULL").
		Find(&items).Error
	return items, err
}

func (r *saleRepository) PaymentsInRange(ctx context.Context, from, to time.Time) ([]entity.SalePayment, error) {
	var payments []entity.SalePayment
	err := r.db.WithContext(ctx).
		Joins("JOIN sales ON sales.id = sale_payments.sale_id").
		Where("sales.sale_date >= ? AND sales.sale_date < ?", from, to).
		Where("sales.status <> ?", enum.SaleStatusVoid).
		Where("sales.deleted_at IS NULL").
		Find(&payments).Error
	return payments, err
}

func (r *saleRepository) SalesInRange(ctx context.Context, from, to time.Time) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Where("sale_date >= ? AND sale_date < ?", from, to).
		Order("created_at ASC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) Void(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Where("id = ?", id).
		Update("status", enum.SaleStatusVoid)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
