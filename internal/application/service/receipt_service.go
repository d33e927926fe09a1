package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/capelli/salonpos-api/internal/config"
	"github.com/capelli/salonpos-api/internal/domain/entity"
	"github.com/capelli/salonpos-api/internal/domain/enum"
	"github.com/capelli/salonpos-api/internal/domain/repository"
	"github.com/capelli/salonpos-api/pkg/apperror"
	"github.com/capelli/salonpos-api/pkg/money"
	"github.com/capelli/salonpos-api/pkg/printer"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptService composes printable receipts from committed sales and
// sends them to the configured thermal printer.
type ReceiptService struct {
	saleRepo repository.SaleRepository
	userRepo repository.UserRepository
	printer  printer.Printer
	salonCfg config.SalonConfig
	width    int
}

// NewReceiptService creates a receipt service.
func NewReceiptService(saleRepo repository.SaleRepository, userRepo repository.UserRepository, p printer.Printer, salonCfg config.SalonConfig, charWidth int) *ReceiptService {
	return &ReceiptService{
		saleRepo: saleRepo,
		userRepo: userRepo,
		printer:  p,
		salonCfg: salonCfg,
		width:    charWidth,
	}
}

// Build composes the receipt value object for a committed sale.
func (s *ReceiptService) Build(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	sale, err := s.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			SalonName: s.salonCfg.SalonName,
			Address:   s.salonCfg.SalonAddress,
			Phone:     s.salonCfg.SalonPhone,
			TaxID:     s.salonCfg.SalonTaxID,
		},
		InvoiceNo:    sale.InvoiceNo,
		Date:         sale.SaleDate.Format("02/01/2006"),
		Subtotal:     float64(sale.Subtotal) / 100,
		Discount:     float64(sale.Discount) / 100,
		Tip:          float64(sale.Tip) / 100,
		Total:        float64(sale.Total) / 100,
		ExchangeRate: sale.ExchangeRate.InexactFloat64(),
		ChangeUSD:    float64(sale.ChangeUSD) / 100,
	}
	if totalBs, err := money.LocalCents(decimal.New(sale.Total, 0), sale.ExchangeRate); err == nil {
		receipt.TotalBs = totalBs.Div(decimal.NewFromInt(100)).InexactFloat64()
	}
	if outstanding := sale.Total - sale.TotalPaidUSD; outstanding > 0 {
		receipt.Outstanding = float64(outstanding) / 100
	}

	operator, err := s.userRepo.GetByID(ctx, sale.UserID)
	if err == nil && operator != nil {
		receipt.Operator = operator.Username
	}
	if sale.Client != nil {
		receipt.Client = sale.Client.Name
	}

	for _, item := range sale.Items {
		receipt.Lines = append(receipt.Lines, entity.ReceiptLine{
			Service:  fmt.Sprintf("%s (%s)", item.ServiceName, item.HairLength.String()),
			Worker:   item.WorkerName,
			PriceUSD: float64(item.PriceUSD) / 100,
		})
	}
	for _, p := range sale.Payments {
		rp := entity.ReceiptPayment{
			Method:   p.Method.String(),
			Currency: string(p.Currency),
			Amount:   float64(p.Amount) / 100,
		}
		if p.Method == enum.PaymentMethodMobile {
			rp.Destination = p.Destination.String()
		}
		receipt.Payments = append(receipt.Payments, rp)
	}
	return receipt, nil
}

// Print renders the receipt as ESC/POS and sends it to the printer.
func (s *ReceiptService) Print(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.Build(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if err := s.printer.Print(s.render(receipt)); err != nil {
		return receipt, apperror.NewAppError(http.StatusInternalServerError, fmt.Sprintf("No se pudo imprimir el recibo: %v", err))
	}
	return receipt, nil
}

func (s *ReceiptService) render(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.width)

	doc.SetAlign(printer.AlignCenter).
		SetFontSize(printer.FontDouble).
		Text(r.Header.SalonName).
		SetFontSize(printer.FontNormal)
	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.TextF("Tel: %s", r.Header.Phone)
	}
	if r.Header.TaxID != "" {
		doc.TextF("RIF: %s", r.Header.TaxID)
	}
	doc.LineFeed()

	doc.SetAlign(printer.AlignLeft).
		KeyValue("Factura", r.InvoiceNo).
		KeyValue("Fecha", r.Date)
	if r.Operator != "" {
		doc.KeyValue("Atendido por", r.Operator)
	}
	if r.Client != "" {
		doc.KeyValue("Cliente", r.Client)
	}
	doc.Separator('-')

	for _, line := range r.Lines {
		doc.ItemLine(1, line.Service, fmt.Sprintf("$%.2f", line.PriceUSD))
		doc.TextF("  %s", line.Worker)
	}
	doc.Separator('-')

	doc.KeyValue("Subtotal", fmt.Sprintf("$%.2f", r.Subtotal))
	if r.Discount > 0 {
		doc.KeyValue("Descuento", fmt.Sprintf("-$%.2f", r.Discount))
	}
	if r.Tip > 0 {
		doc.KeyValue("Propina", fmt.Sprintf("$%.2f", r.Tip))
	}
	doc.SetBold(true).
		KeyValue("TOTAL", fmt.Sprintf("$%.2f", r.Total)).
		SetBold(false).
		KeyValue("Total Bs", fmt.Sprintf("Bs %.2f", r.TotalBs)).
		KeyValue("Tasa", fmt.Sprintf("%.2f Bs/$", r.ExchangeRate)).
		Separator('-')

	for _, p := range r.Payments {
		label := p.Method
		if p.Destination != "" {
			label = fmt.Sprintf("%s (%s)", p.Method, p.Destination)
		}
		value := fmt.Sprintf("$%.2f", p.Amount)
		if p.Currency == "VES" {
			value = fmt.Sprintf("Bs %.2f", p.Amount)
		}
		doc.KeyValue(label, value)
	}
	if r.ChangeUSD > 0 {
		doc.KeyValue("Vuelto", fmt.Sprintf("$%.2f", r.ChangeUSD))
	}
	if r.Outstanding > 0 {
		doc.KeyValue("Por cobrar", fmt.Sprintf("$%.2f", r.Outstanding))
	}

	doc.LineFeed().
		SetAlign(printer.AlignCenter).
		Text("Gracias por su visita!").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}
