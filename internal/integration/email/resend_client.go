// Package email provides over-budget alert delivery via Resend.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/adapter"
)

// ResendClient implements the adapter.AlertSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
	toEmail   string
}

// NewResendClient creates a new Resend client. Alerts go to a single
// configured recipient.
func NewResendClient(apiKey, fromName, fromEmail, toEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}
}

// SendOverBudgetAlert sends an email notifying that a category crossed its
// monthly limit.
func (c *ResendClient) SendOverBudgetAlert(ctx context.Context, alert adapter.BudgetAlert) error {
	from := fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)
	subject := fmt.Sprintf("Budget alert: %s is over its limit", alert.Category)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{c.toEmail},
		Subject: subject,
		Html:    alertHTML(alert),
		Text:    alertText(alert),
	}

	if _, err := c.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send budget alert: %w", err)
	}
	return nil
}

func alertHTML(alert adapter.BudgetAlert) string {
	return fmt.Sprintf(
		`<h2>Budget alert</h2>
<p>Spending in <strong>%s</strong> crossed its monthly limit.</p>
<ul>
  <li>Limit: %s</li>
  <li>Spent so far: %s</li>
  <li>Variance: %+d%%</li>
</ul>`,
		alert.Category, alert.Limit, alert.Actual, alert.VariancePercent,
	)
}

func alertText(alert adapter.BudgetAlert) string {
	return fmt.Sprintf(
		"Budget alert: spending in %s crossed its monthly limit.\nLimit: %s\nSpent so far: %s\nVariance: %+d%%\n",
		alert.Category, alert.Limit, alert.Actual, alert.VariancePercent,
	)
}

// MockAlertSender is a mock implementation for testing.
type MockAlertSender struct {
	SentAlerts []adapter.BudgetAlert
	ShouldFail bool
	FailError  error
}

// NewMockAlertSender creates a new mock alert sender.
func NewMockAlertSender() *MockAlertSender {
	return &MockAlertSender{
		SentAlerts: make([]adapter.BudgetAlert, 0),
	}
}

// SendOverBudgetAlert implements the adapter.AlertSender interface for testing.
func (m *MockAlertSender) SendOverBudgetAlert(_ context.Context, alert adapter.BudgetAlert) error {
	if m.ShouldFail {
		if m.FailError != nil {
			return m.FailError
		}
		return fmt.Errorf("mock alert failure")
	}
	m.SentAlerts = append(m.SentAlerts, alert)
	return nil
}
