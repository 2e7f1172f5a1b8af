package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
)

const StockAlert templateName = "stock_alert.gohtml"

type stockAlertData struct {
	Items       []entity.StockProjection
	GeneratedAt string
}

// SendStockAlert mails one summary of items to every alert recipient.
func (m *Mailer) SendStockAlert(ctx context.Context, items []entity.StockProjection) error {
	if len(items) == 0 {
		return nil
	}
	subject := fmt.Sprintf("Stock alert: %d products running out", len(items))
	if len(items) == 1 {
		subject = fmt.Sprintf("Stock alert: %s is running out", items[0].ProductName)
	}

	msg, err := m.buildMessage(m.c.AlertRecipients, StockAlert, subject, stockAlertData{
		Items:       items,
		GeneratedAt: time.Now().UTC().Format(time.RFC1123),
	})
	if err != nil {
		return err
	}
	return m.send(ctx, msg)
}
