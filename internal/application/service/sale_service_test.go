package service

import (
	"context"
	"testing"

	"github.com/capelli/salonpos-api/internal/domain/entity"
	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/capelli/salonpos-api/pkg/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saleServiceFixture struct {
	service     *SaleService
	saleRepo    *fakeSaleRepo
	serviceRepo *fakeServiceRepo
	serviceID   uuid.UUID
	workerID    uuid.UUID
}

func newSaleServiceFixture(t *testing.T, clampNegative bool) *saleServiceFixture {
	t.Helper()

	serviceRepo, serviceID := seededCatalog()
	workerRepo := &fakeWorkerRepo{}
	worker := &entity.Worker{Name: "Maria", DefaultCommissionPct: 40, Active: true}
	require.NoError(t, workerRepo.Create(context.Background(), worker))

	saleRepo := &fakeSaleRepo{}
	svc := NewSaleService(
		saleRepo,
		workerRepo,
		&fakeClientRepo{},
		NewPricingService(serviceRepo),
		NewDiscountEngine(20),
		NewSaleValidator(30, 100, 50000),
		fixedRate{rate: decimal.NewFromInt(40)},
		clampNegative,
	)

	return &saleServiceFixture{
		service:     svc,
		saleRepo:    saleRepo,
		serviceRepo: serviceRepo,
		serviceID:   serviceID,
		workerID:    worker.ID,
	}
}

func (f *saleServiceFixture) addItem(t *testing.T, sessionID uuid.UUID, length enum.HairLength, override int64) {
	t.Helper()
	_, err := f.service.AddItem(context.Background(), sessionID, AddItemInput{
		ServiceID:     f.serviceID,
		WorkerID:      f.workerID,
		HairLength:    length,
		OverrideCents: override,
	})
	require.NoError(t, err)
}

func TestSaleServiceCommitFlow(t *testing.T) {
	f := newSaleServiceFixture(t, true)
	ctx := context.Background()

	sess := f.service.StartSession(uuid.New())
	f.addItem(t, sess.ID, enum.HairLengthCorto, 0)  // 15.00
	f.addItem(t, sess.ID, enum.HairLengthLargo, 0)  // 25.00
	f.addItem(t, sess.ID, enum.HairLengthCorto, 500) // override 5.00

	warnings, err := f.service.SetDiscount(sess.ID, enum.DiscountPolicyPromotion, 0)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.NoError(t, f.service.SetTip(sess.ID, 500, &f.workerID))

	// subtotal 45.00, promo 9.00, tip 5.00 -> total 41.00
	summary, err := f.service.Summarize(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4100), summary.Totals.TotalUSD)
	assert.Equal(t, LedgerCollecting, summary.State)
	assert.False(t, summary.Validation.OK())

	_, err = f.service.AddPayment(sess.ID, enum.PaymentMethodCash, money.USD, 2100, enum.DestinationNone, "")
	require.NoError(t, err)
	_, err = f.service.AddPayment(sess.ID, enum.PaymentMethodMobile, money.VES, 80000, enum.DestinationNone, "")
	require.NoError(t, err)

	sale, validation, err := f.service.Commit(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.True(t, validation.OK())

	assert.Equal(t, enum.SaleStatusPaid, sale.Status)
	assert.Equal(t, int64(4500), sale.Subtotal)
	assert.Equal(t, int64(900), sale.Discount)
	assert.Equal(t, int64(4100), sale.Total)
	assert.Equal(t, int64(4100), sale.TotalPaidUSD)
	assert.True(t, sale.ExchangeRate.Equal(decimal.NewFromInt(40)))
	assert.NotEmpty(t, sale.InvoiceNo)

	require.Len(t, f.saleRepo.sales, 1)
	assert.Len(t, f.saleRepo.items, 3)
	assert.Len(t, f.saleRepo.payments, 2)
	assert.Empty(t, f.saleRepo.receivables)

	// session is gone after a successful commit
	_, err = f.service.GetSession(sess.ID)
	assert.Error(t, err)
}

func TestSaleServiceCommitValidationFailureReturnsData(t *testing.T) {
	f := newSaleServiceFixture(t, true)

	sess := f.service.StartSession(uuid.New())
	f.addItem(t, sess.ID, enum.HairLengthCorto, 0)

	sale, validation, err := f.service.Commit(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Nil(t, sale)
	require.NotNil(t, validation)
	assert.False(t, validation.OK())
	assert.Empty(t, f.saleRepo.sales)

	// session survives a blocked commit
	_, err = f.service.GetSession(sess.ID)
	assert.NoError(t, err)
}

func TestSaleServiceCommitPersistenceFailurePreservesSession(t *testing.T) {
	f := newSaleServiceFixture(t, true)
	ctx := context.Background()

	sess := f.service.StartSession(uuid.New())
	f.addItem(t, sess.ID, enum.HairLengthCorto, 0)
	_, err := f.service.AddPayment(sess.ID, enum.PaymentMethodCash, money.USD, 1500, enum.DestinationNone, "")
	require.NoError(t, err)

	f.saleRepo.failCommits = 1
	sale, _, err := f.service.Commit(ctx, sess.ID)
	require.Error(t, err)
	assert.Nil(t, sale)

	// same session retries and succeeds
	sale, validation, err := f.service.Commit(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.True(t, validation.OK())
	assert.Len(t, f.saleRepo.sales, 1)
}

func TestSaleServiceCommitDeferredCreatesReceivable(t *testing.T) {
	f := newSaleServiceFixture(t, true)
	ctx := context.Background()

	clientRepo := &fakeClientRepo{}
	client := &entity.Client{Name: "Ana"}
	require.NoError(t, clientRepo.Create(ctx, client))
	f.service.clientRepo = clientRepo

	sess := f.service.StartSession(uuid.New())
	f.addItem(t, sess.ID, enum.HairLengthLargo, 0) // 25.00
	require.NoError(t, f.service.SetClient(ctx, sess.ID, &client.ID))

	_, err := f.service.SetDiscount(sess.ID, enum.DiscountPolicyReceivableAccount, 0)
	require.NoError(t, err)
	_, err = f.service.AddPayment(sess.ID, enum.PaymentMethodCash, money.USD, 1000, enum.DestinationNone, "")
	require.NoError(t, err)

	sale, validation, err := f.service.Commit(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.True(t, validation.OK())
	assert.NotEmpty(t, validation.Warnings)

	assert.Equal(t, enum.SaleStatusReceivable, sale.Status)
	require.Len(t, f.saleRepo.receivables, 1)
	assert.Equal(t, int64(1500), f.saleRepo.receivables[0].AmountUSD)
	assert.Equal(t, sale.ID, f.saleRepo.receivables[0].SaleID)
}

func TestSaleServicePromotionTracksSubtotal(t *testing.T) {
	f := newSaleServiceFixture(t, true)

	sess := f.service.StartSession(uuid.New())
	f.addItem(t, sess.ID, enum.HairLengthCorto, 0) // 15.00
	_, err := f.service.SetDiscount(sess.ID, enum.DiscountPolicyPromotion, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(300), sess.DiscountUSD)

	// adding another item re-resolves the 20% discount
	f.addItem(t, sess.ID, enum.HairLengthLargo, 0) // +25.00
	assert.Equal(t, int64(800), sess.DiscountUSD)

	_, err = f.service.RemoveItem(sess.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(300), sess.DiscountUSD)
}

func TestSaleServiceAutoFillSuggestion(t *testing.T) {
	f := newSaleServiceFixture(t, true)

	sess := f.service.StartSession(uuid.New())
	f.addItem(t, sess.ID, enum.HairLengthMediano, 0) // 20.00
	_, err := f.service.AddPayment(sess.ID, enum.PaymentMethodCash, money.USD, 500, enum.DestinationNone, "")
	require.NoError(t, err)

	suggestion, err := f.service.AutoFillRemaining(sess.ID, money.VES)
	require.NoError(t, err)
	assert.Equal(t, int64(60000), suggestion.Amount) // 15 USD at 40 Bs
	assert.Equal(t, money.VES, suggestion.Currency)

	// the suggestion did not add a payment
	assert.Equal(t, 1, sess.Ledger.Len())
}

func TestSaleServiceUnknownSession(t *testing.T) {
	f := newSaleServiceFixture(t, true)

	_, err := f.service.Summarize(uuid.New())
	assert.Error(t, err)
	_, _, err = f.service.Commit(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.Error(t, f.service.CancelSession(uuid.New()))
}
