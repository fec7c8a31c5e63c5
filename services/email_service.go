package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"brandia_server/structs"
	"brandia_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

// EmailResult describes the outcome of a notification attempt. Email
// delivery never fails the request that triggered it; callers inspect the
// result, log, and move on.
type EmailResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// emailSender is the transport seam. Production uses Resend; tests plug in
// a stub.
type emailSender interface {
	Send(params *resend.SendEmailRequest) (string, error)
}

type resendSender struct {
	client *resend.Client
}

func (rs *resendSender) Send(params *resend.SendEmailRequest) (string, error) {
	sent, err := rs.client.Emails.Send(params)
	if err != nil {
		return "", err
	}
	return sent.Id, nil
}

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	sender emailSender
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		sender: &resendSender{client: getEmailClient(cfg.Email.ApiKey)},
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

// send delivers one email with a single bounded retry for transport-level
// failures. Provider rejections (bad address, quota) are not retried.
func (es *EmailService) send(to []string, subject, body string) EmailResult {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	messageID, err := es.sender.Send(params)
	if err != nil && isTransportError(err) {
		time.Sleep(500 * time.Millisecond)
		messageID, err = es.sender.Send(params)
	}

	if err != nil {
		es.logger.Error("Failed to send email",
			gecho.Field("error", err),
			gecho.Field("to", to),
			gecho.Field("subject", subject))
		return EmailResult{Success: false, Error: err.Error()}
	}

	return EmailResult{Success: true, MessageID: messageID}
}

// isTransportError reports whether a send failure looks like a network
// problem rather than a provider rejection
func isTransportError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	transportErrors := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"broken pipe",
		"no such host",
		"network is unreachable",
		"eof",
	}

	for _, te := range transportErrors {
		if strings.Contains(errStr, te) {
			return true
		}
	}

	return false
}

func formatCents(cents uint64) string {
	return fmt.Sprintf("€%.2f", float64(cents)/100)
}

// SendOrderConfirmationEmail notifies the buyer that their order was received
func (es *EmailService) SendOrderConfirmationEmail(email, name string, order *tables.Order, items []*tables.OrderItem) EmailResult {
	var itemsBuilder strings.Builder
	for _, item := range items {
		fmt.Fprintf(&itemsBuilder, "<li>%dx %s - %s</li>", item.Quantity, item.ProductName, formatCents(item.LineTotal))
	}

	addressFormatted := fmt.Sprintf("%s<br>%s %s<br>%s",
		order.ShippingStreet, order.ShippingPostalCode, order.ShippingCity, order.ShippingCountry)

	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #1e3a5f; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.order-details { background-color: white; padding: 15px; margin: 15px 0; border-radius: 5px; }
				.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
				ul { list-style-type: none; padding: 0; }
				li { padding: 5px 0; border-bottom: 1px solid #eee; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Thank you for your order!</h1>
				</div>
				<div class="content">
					<p>Dear %s,</p>
					<p>Your order has been received. Below you will find the details.</p>

					<div class="order-details">
						<h3>Order Number: <strong>%s</strong></h3>
						<h4>Order Items:</h4>
						<ul>%s</ul>
						<p><strong>Total: %s</strong></p>

						<h4>Delivery Address:</h4>
						<p>%s</p>
					</div>

					<p>You will receive a shipping update from each seller once your items are on their way.</p>

					<p>Questions? Contact us at %s</p>
				</div>

				<div class="footer">
					<p>Brandia | Marketplace for Independent Brands</p>
				</div>
			</div>
		</body>
		</html>
	`, name, order.OrderNumber, itemsBuilder.String(), formatCents(order.TotalAmount), addressFormatted, es.cfg.Email.SupportEmail)

	subject := fmt.Sprintf("Order confirmation %s", order.OrderNumber)

	return es.send([]string{email}, subject, emailBody)
}

// SendSupplierOrderAlertEmail notifies a supplier that one of their products
// was ordered
func (es *EmailService) SendSupplierOrderAlertEmail(email, companyName, orderNumber string, items []*tables.OrderItem) EmailResult {
	var itemsBuilder strings.Builder
	var supplierTotal uint64
	for _, item := range items {
		fmt.Fprintf(&itemsBuilder, "<li>%dx %s - %s</li>", item.Quantity, item.ProductName, formatCents(item.LineTotal))
		supplierTotal += item.SupplierAmount
	}

	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #1e3a5f; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.order-details { background-color: white; padding: 15px; margin: 15px 0; border-radius: 5px; }
				.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
				ul { list-style-type: none; padding: 0; }
				li { padding: 5px 0; border-bottom: 1px solid #eee; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>You have a new order!</h1>
				</div>
				<div class="content">
					<p>Dear %s,</p>
					<p>Order <strong>%s</strong> contains items from your catalog.</p>

					<div class="order-details">
						<h4>Your items:</h4>
						<ul>%s</ul>
						<p><strong>Your payout (after commission): %s</strong></p>
					</div>

					<p>Log in to your supplier dashboard to process the order.</p>

					<p>Questions? Contact us at %s</p>
				</div>

				<div class="footer">
					<p>Brandia | Marketplace for Independent Brands</p>
				</div>
			</div>
		</body>
		</html>
	`, companyName, orderNumber, itemsBuilder.String(), formatCents(supplierTotal), es.cfg.Email.SupportEmail)

	subject := fmt.Sprintf("New order %s", orderNumber)

	return es.send([]string{email}, subject, emailBody)
}

// SendShippingUpdateEmail notifies the buyer that an item has shipped
func (es *EmailService) SendShippingUpdateEmail(email, name, orderNumber string, item *tables.OrderItem) EmailResult {
	trackingBlock := "<p>No tracking number was provided for this shipment.</p>"
	if item.TrackingNumber != "" {
		trackingBlock = fmt.Sprintf("<p>Tracking number: <strong>%s</strong></p>", item.TrackingNumber)
	}

	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #1e3a5f; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.order-details { background-color: white; padding: 15px; margin: 15px 0; border-radius: 5px; }
				.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Your item is on its way!</h1>
				</div>
				<div class="content">
					<p>Dear %s,</p>
					<p>An item from order <strong>%s</strong> has shipped.</p>

					<div class="order-details">
						<p>%dx %s</p>
						%s
					</div>

					<p>Questions? Contact us at %s</p>
				</div>

				<div class="footer">
					<p>Brandia | Marketplace for Independent Brands</p>
				</div>
			</div>
		</body>
		</html>
	`, name, orderNumber, item.Quantity, item.ProductName, trackingBlock, es.cfg.Email.SupportEmail)

	subject := fmt.Sprintf("Shipping update for order %s", orderNumber)

	return es.send([]string{email}, subject, emailBody)
}
