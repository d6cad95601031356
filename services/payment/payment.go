package payment

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"mindwell/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// Processor is the payment collaborator boundary. The booking core hands a
// descriptor over and is done; it does not own the payment outcome.
type Processor interface {
	Collect(ctx context.Context, descriptor models.BookingDescriptor) (*models.Invoice, error)
}

// StripeProcessor creates a PaymentIntent per booking descriptor.
type StripeProcessor struct {
	logger *zap.Logger
}

func NewStripeProcessor(logger *zap.Logger) *StripeProcessor {
	return &StripeProcessor{logger: logger}
}

func (p *StripeProcessor) Collect(ctx context.Context, d models.BookingDescriptor) (*models.Invoice, error) {
	if d.Fee <= 0 {
		return nil, fmt.Errorf("invalid fee amount %.2f", d.Fee)
	}
	if d.UserID == "" {
		return nil, fmt.Errorf("missing user ID")
	}

	amountCents := int64(math.Round(d.Fee * 100))
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(strings.ToLower(d.Currency)),
		Description: stripe.String(fmt.Sprintf("%s session on %s at %s",
			d.Duration, d.Date, d.Start)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("userId", d.UserID)
	params.AddMetadata("therapistId", d.TherapistID)
	params.AddMetadata("date", d.Date)
	params.AddMetadata("start", d.Start)
	params.AddMetadata("requestClass", string(d.Request))

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	inv := &models.Invoice{
		InvoiceID:    uuid.New().String(),
		UserID:       d.UserID,
		Amount:       d.Fee,
		Currency:     d.Currency,
		Status:       string(pi.Status),
		PaymentID:    pi.ID,
		ClientSecret: pi.ClientSecret,
		CreatedAt:    time.Now(),
	}

	p.logger.Info("payment intent created",
		zap.String("invoice", inv.InvoiceID),
		zap.String("paymentIntent", pi.ID),
		zap.Int64("amountCents", amountCents))
	return inv, nil
}
