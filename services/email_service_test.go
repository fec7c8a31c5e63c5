package services

import (
	"errors"
	"testing"
	"time"

	"brandia_server/structs"
	"brandia_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/resend/resend-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSender struct {
	calls     int
	lastSent  *resend.SendEmailRequest
	messageID string
	errs      []error
}

func (s *stubSender) Send(params *resend.SendEmailRequest) (string, error) {
	s.lastSent = params
	var err error
	if s.calls < len(s.errs) {
		err = s.errs[s.calls]
	}
	s.calls++
	if err != nil {
		return "", err
	}
	return s.messageID, nil
}

func newTestEmailService(sender emailSender) *EmailService {
	return &EmailService{
		logger: gecho.NewDefaultLogger(),
		cfg: &structs.Config{
			Email: &structs.EmailConfig{
				ApiKey:       "test-key",
				From:         "Brandia <orders@brandia.example>",
				SupportEmail: "support@brandia.example",
			},
		},
		sender: sender,
	}
}

func testOrder() (*tables.Order, []*tables.OrderItem) {
	order := &tables.Order{
		Id:                 uuid.New(),
		OrderNumber:        "BR-TEST1234",
		TotalAmount:        5000,
		ShippingName:       "Jamie Buyer",
		ShippingStreet:     "Main Street 1",
		ShippingCity:       "Amsterdam",
		ShippingPostalCode: "1011AB",
		ShippingCountry:    "NL",
		CreatedAt:          time.Now(),
	}
	items := []*tables.OrderItem{
		{
			Id:               uuid.New(),
			OrderId:          order.Id,
			SupplierId:       uuid.New(),
			Quantity:         2,
			UnitPrice:        2500,
			LineTotal:        5000,
			ProductName:      "Ceramic Vase",
			SupplierAmount:   4250,
			CommissionAmount: 750,
		},
	}
	return order, items
}

func TestSendOrderConfirmationEmailSuccess(t *testing.T) {
	sender := &stubSender{messageID: "msg_123"}
	es := newTestEmailService(sender)
	order, items := testOrder()

	result := es.SendOrderConfirmationEmail("buyer@example.com", "Jamie", order, items)

	require.True(t, result.Success)
	assert.Equal(t, "msg_123", result.MessageID)
	assert.Empty(t, result.Error)
	assert.Equal(t, 1, sender.calls)
	assert.Equal(t, []string{"buyer@example.com"}, sender.lastSent.To)
	assert.Contains(t, sender.lastSent.Subject, order.OrderNumber)
	assert.Contains(t, sender.lastSent.Html, "Ceramic Vase")
	assert.Contains(t, sender.lastSent.Html, "€50.00")
}

func TestSendEmailProviderRejectionNotRetried(t *testing.T) {
	sender := &stubSender{errs: []error{errors.New("invalid recipient address")}}
	es := newTestEmailService(sender)
	order, items := testOrder()

	result := es.SendOrderConfirmationEmail("bad-address", "Jamie", order, items)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "invalid recipient")
	assert.Equal(t, 1, sender.calls, "Provider rejections must not be retried")
}

func TestSendEmailTransportErrorRetriedOnce(t *testing.T) {
	sender := &stubSender{
		messageID: "msg_456",
		errs:      []error{errors.New("connection refused")},
	}
	es := newTestEmailService(sender)
	order, items := testOrder()

	result := es.SendOrderConfirmationEmail("buyer@example.com", "Jamie", order, items)

	assert.True(t, result.Success, "Retry should recover a transient failure")
	assert.Equal(t, "msg_456", result.MessageID)
	assert.Equal(t, 2, sender.calls)
}

func TestSendEmailTransportErrorRetriedOnlyOnce(t *testing.T) {
	sender := &stubSender{
		errs: []error{errors.New("connection refused"), errors.New("connection refused")},
	}
	es := newTestEmailService(sender)
	order, items := testOrder()

	result := es.SendOrderConfirmationEmail("buyer@example.com", "Jamie", order, items)

	assert.False(t, result.Success)
	assert.Equal(t, 2, sender.calls, "A persistent transport failure gets exactly one retry")
}

func TestSendSupplierOrderAlertEmailPayoutLine(t *testing.T) {
	sender := &stubSender{messageID: "msg_789"}
	es := newTestEmailService(sender)
	_, items := testOrder()

	result := es.SendSupplierOrderAlertEmail("vendor@example.com", "Vase Makers", "BR-TEST1234", items)

	require.True(t, result.Success)
	assert.Contains(t, sender.lastSent.Html, "Vase Makers")
	assert.Contains(t, sender.lastSent.Html, "€42.50", "Payout line shows the supplier share, not the gross total")
}

func TestSendShippingUpdateEmailTracking(t *testing.T) {
	sender := &stubSender{messageID: "msg_999"}
	es := newTestEmailService(sender)
	_, items := testOrder()
	items[0].TrackingNumber = "NL123456789"

	result := es.SendShippingUpdateEmail("buyer@example.com", "Jamie", "BR-TEST1234", items[0])

	require.True(t, result.Success)
	assert.Contains(t, sender.lastSent.Html, "NL123456789")
}

func TestSendShippingUpdateEmailWithoutTracking(t *testing.T) {
	sender := &stubSender{messageID: "msg_000"}
	es := newTestEmailService(sender)
	_, items := testOrder()

	result := es.SendShippingUpdateEmail("buyer@example.com", "Jamie", "BR-TEST1234", items[0])

	require.True(t, result.Success)
	assert.Contains(t, sender.lastSent.Html, "No tracking number")
}

func TestIsTransportError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"connection refused", errors.New("dial tcp: connection refused"), true},
		{"timeout", errors.New("context deadline exceeded: timeout"), true},
		{"dns failure", errors.New("no such host"), true},
		{"provider rejection", errors.New("422: invalid from address"), false},
		{"quota", errors.New("429: rate limit exceeded for account"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isTransportError(tt.err))
		})
	}
}
