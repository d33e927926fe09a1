package service

import (
	"context"
	"errors"
	"time"

	"github.com/capelli/salonpos-api/internal/domain/entity"
	"github.com/capelli/salonpos-api/internal/domain/repository"
	"github.com/capelli/salonpos-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fixedRate is a RateProvider pinned to one value for deterministic tests.
type fixedRate struct {
	rate decimal.Decimal
}

func (f fixedRate) CurrentRate() decimal.Decimal { return f.rate }

// fakeServiceRepo is an in-memory ServiceRepository.
type fakeServiceRepo struct {
	services []entity.SalonService
	getAlls  int
	failAll  bool
}

func (r *fakeServiceRepo) Create(_ context.Context, svc *entity.SalonService) error {
	if svc.ID == uuid.Nil {
		svc.ID = uuid.New()
	}
	r.services = append(r.services, *svc)
	return nil
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.SalonService, error) {
	for i := range r.services {
		if r.services[i].ID == id {
			return &r.services[i], nil
		}
	}
	return nil, nil
}

func (r *fakeServiceRepo) GetByName(_ context.Context, name string) (*entity.SalonService, error) {
	for i := range r.services {
		if r.services[i].Name == name {
			return &r.services[i], nil
		}
	}
	return nil, nil
}

func (r *fakeServiceRepo) GetAll(_ context.Context) ([]entity.SalonService, error) {
	r.getAlls++
	if r.failAll {
		return nil, errors.New("database unavailable")
	}
	out := make([]entity.SalonService, len(r.services))
	copy(out, r.services)
	return out, nil
}

func (r *fakeServiceRepo) Update(_ context.Context, svc *entity.SalonService) error {
	for i := range r.services {
		if r.services[i].ID == svc.ID {
			r.services[i] = *svc
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeServiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.services {
		if r.services[i].ID == id {
			r.services = append(r.services[:i], r.services[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

// fakeWorkerRepo is an in-memory WorkerRepository.
type fakeWorkerRepo struct {
	workers []entity.Worker
	rates   []entity.CommissionRate
}

func (r *fakeWorkerRepo) Create(_ context.Context, w *entity.Worker) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	r.workers = append(r.workers, *w)
	return nil
}

func (r *fakeWorkerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Worker, error) {
	for i := range r.workers {
		if r.workers[i].ID == id {
			return &r.workers[i], nil
		}
	}
	return nil, nil
}

func (r *fakeWorkerRepo) GetAll(_ context.Context, activeOnly bool) ([]entity.Worker, error) {
	var out []entity.Worker
	for _, w := range r.workers {
		if activeOnly && !w.Active {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (r *fakeWorkerRepo) Update(_ context.Context, w *entity.Worker) error {
	for i := range r.workers {
		if r.workers[i].ID == w.ID {
			r.workers[i] = *w
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeWorkerRepo) Delete(_ context.Context, id uuid.UUID) error { return nil }

func (r *fakeWorkerRepo) GetCommissionRates(_ context.Context, workerID uuid.UUID) ([]entity.CommissionRate, error) {
	var out []entity.CommissionRate
	for _, cr := range r.rates {
		if cr.WorkerID == workerID {
			out = append(out, cr)
		}
	}
	return out, nil
}

func (r *fakeWorkerRepo) SetCommissionRate(_ context.Context, rate *entity.CommissionRate) error {
	for i := range r.rates {
		if r.rates[i].WorkerID == rate.WorkerID && r.rates[i].Category == rate.Category {
			r.rates[i] = *rate
			return nil
		}
	}
	r.rates = append(r.rates, *rate)
	return nil
}

// fakeClientRepo is an in-memory ClientRepository.
type fakeClientRepo struct {
	clients []entity.Client
}

func (r *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clients = append(r.clients, *c)
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	for i := range r.clients {
		if r.clients[i].ID == id {
			return &r.clients[i], nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Client, int64, error) {
	return r.clients, int64(len(r.clients)), nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *entity.Client) error { return nil }
func (r *fakeClientRepo) Delete(_ context.Context, id uuid.UUID) error     { return nil }

// fakeSaleRepo records committed sales in memory. failCommits makes the
// next N commits fail, for persistence-retry tests.
type fakeSaleRepo struct {
	sales       []entity.Sale
	items       []entity.SaleItem
	payments    []entity.SalePayment
	receivables []entity.Receivable
	failCommits int
}

func (r *fakeSaleRepo) CommitSale(_ context.Context, sale *entity.Sale, items []entity.SaleItem, payments []entity.SalePayment, receivable *entity.Receivable) error {
	if r.failCommits > 0 {
		r.failCommits--
		return errors.New("connection refused")
	}
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	for i := range items {
		items[i].SaleID = sale.ID
	}
	for i := range payments {
		payments[i].SaleID = sale.ID
	}
	r.sales = append(r.sales, *sale)
	r.items = append(r.items, items...)
	r.payments = append(r.payments, payments...)
	if receivable != nil {
		receivable.SaleID = sale.ID
		r.receivables = append(r.receivables, *receivable)
	}
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	for i := range r.sales {
		if r.sales[i].ID == id {
			return &r.sales[i], nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) GetByInvoiceNo(_ context.Context, invoiceNo string) (*entity.Sale, error) {
	for i := range r.sales {
		if r.sales[i].InvoiceNo == invoiceNo {
			return &r.sales[i], nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) List(_ context.Context, _ *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	return r.sales, int64(len(r.sales)), nil
}

func (r *fakeSaleRepo) ItemsInRange(_ context.Context, from, to time.Time) ([]entity.SaleItem, error) {
	return r.items, nil
}

func (r *fakeSaleRepo) PaymentsInRange(_ context.Context, from, to time.Time) ([]entity.SalePayment, error) {
	return r.payments, nil
}

func (r *fakeSaleRepo) SalesInRange(_ context.Context, from, to time.Time) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, s := range r.sales {
		if !s.SaleDate.Before(from) && s.SaleDate.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) Void(_ context.Context, id uuid.UUID) error { return nil }
