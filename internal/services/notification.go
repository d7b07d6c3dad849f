package service

import (
	"bytes"
	"context"
	"fmt"
	htmlTemplate "html/template"
	"text/template"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/errors"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/models"
	"github.com/aaravmahajanofficial/storefront-checkout/pkg/sendgrid"
)

type NotificationService interface {
	SendOrderConfirmation(ctx context.Context, session models.CheckoutSession, totals models.OrderTotals) error
}

type notificationService struct {
	emailService sendgrid.EmailService
}

func NewNotificationService(emailService sendgrid.EmailService) NotificationService {
	return &notificationService{emailService: emailService}
}

const confirmationText = `Hi {{.Name}},

Thanks for your order{{if .OrderNumber}} {{.OrderNumber}}{{end}}.

{{range .Lines}}{{.Quantity}} x {{.Name}}  {{$.Currency}} {{.Total}}
{{end}}
Subtotal: {{.Currency}} {{.Subtotal}}
Shipping: {{.Currency}} {{.Shipping}}
Tax:      {{.Currency}} {{.Tax}}
Total:    {{.Currency}} {{.Total}}

Shipping to:
{{.Street}}
{{.City}}, {{.State}} {{.ZipCode}}
`

const confirmationHTML = `<p>Hi {{.Name}},</p>
<p>Thanks for your order{{if .OrderNumber}} <strong>{{.OrderNumber}}</strong>{{end}}.</p>
<table>
{{range .Lines}}<tr><td>{{.Quantity}} x {{.Name}}</td><td>{{$.Currency}} {{.Total}}</td></tr>
{{end}}<tr><td>Subtotal</td><td>{{.Currency}} {{.Subtotal}}</td></tr>
<tr><td>Shipping</td><td>{{.Currency}} {{.Shipping}}</td></tr>
<tr><td>Tax</td><td>{{.Currency}} {{.Tax}}</td></tr>
<tr><td><strong>Total</strong></td><td><strong>{{.Currency}} {{.Total}}</strong></td></tr>
</table>
<p>Shipping to:<br>{{.Street}}<br>{{.City}}, {{.State}} {{.ZipCode}}</p>
`

var (
	confirmationTextTmpl = template.Must(template.New("confirmation.txt").Parse(confirmationText))
	confirmationHTMLTmpl = htmlTemplate.Must(htmlTemplate.New("confirmation.html").Parse(confirmationHTML))
)

type confirmationLine struct {
	Name     string
	Quantity int
	Total    string
}

type confirmationData struct {
	Name        string
	OrderNumber string
	Currency    string
	Lines       []confirmationLine
	Subtotal    string
	Shipping    string
	Tax         string
	Total       string
	models.Address
}

// SendOrderConfirmation emails the buyer a summary of a placed order.
func (n *notificationService) SendOrderConfirmation(ctx context.Context, session models.CheckoutSession, totals models.OrderTotals) error {

	if session.Shipping == nil || session.Shipping.Email == "" {
		return errors.BadRequestError("No email address to send the confirmation to")
	}

	reference := session.OrderNumber
	if reference == "" {
		reference = session.OrderID
	}

	data := confirmationData{
		Name:        session.Shipping.FullName,
		OrderNumber: reference,
		Currency:    totals.Currency,
		Subtotal:    totals.Subtotal.StringFixed(2),
		Shipping:    totals.Shipping.StringFixed(2),
		Tax:         totals.Tax.StringFixed(2),
		Total:       totals.Total.StringFixed(2),
		Address:     session.Shipping.Address,
	}

	for _, line := range session.Lines {
		data.Lines = append(data.Lines, confirmationLine{
			Name:     line.Name,
			Quantity: line.Quantity,
			Total:    line.LineTotal().StringFixed(2),
		})
	}

	var text, html bytes.Buffer

	if err := confirmationTextTmpl.Execute(&text, data); err != nil {
		return errors.InternalError("Failed to render confirmation email").WithError(err)
	}

	if err := confirmationHTMLTmpl.Execute(&html, data); err != nil {
		return errors.InternalError("Failed to render confirmation email").WithError(err)
	}

	subject := "Your order is confirmed"
	if reference != "" {
		subject = fmt.Sprintf("Your order %s is confirmed", reference)
	}

	req := &models.EmailNotificationRequest{
		To:          session.Shipping.Email,
		ToName:      session.Shipping.FullName,
		Subject:     subject,
		Content:     text.String(),
		HTMLContent: html.String(),
	}

	if err := n.emailService.Send(ctx, req); err != nil {
		return errors.ThirdPartyError("Failed to send confirmation email").WithError(err)
	}

	return nil
}
