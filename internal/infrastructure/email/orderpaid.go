package email

import (
	"context"
	"fmt"
	"html"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	paymentUsecases "github.com/localshop/storefront/internal/application/payment/usecases"
	"github.com/localshop/storefront/internal/shared/biztime"
)

var vndPrinter = message.NewPrinter(language.Vietnamese)

// NotifyOrderPaid sends the payment confirmation for a settled order.
func (s *SMTPEmailService) NotifyOrderPaid(ctx context.Context, cmd paymentUsecases.OrderPaidNotification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cmd.CustomerEmail == "" {
		return nil
	}

	subject, htmlBody, plainBody := s.renderOrderPaid(cmd)
	return s.sendEmail(cmd.CustomerEmail, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) renderOrderPaid(cmd paymentUsecases.OrderPaidNotification) (string, string, string) {
	amount := formatVND(cmd.Amount.IntPart())
	paidAt := biztime.ToBizTimezone(cmd.PaidAt).Format("15:04 02/01/2006")
	orderURL := fmt.Sprintf("%s/order-success?orderId=%s", s.config.BaseURL, cmd.OrderID)

	subject := fmt.Sprintf("Xác nhận thanh toán đơn hàng %s", cmd.OrderNumber)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Cảm ơn %s đã mua hàng!</h2>
			<p>Đơn hàng <strong>%s</strong> đã được thanh toán thành công qua VNPay.</p>
			<table>
				<tr><td>Số tiền</td><td>%s</td></tr>
				<tr><td>Mã giao dịch</td><td>%s</td></tr>
				<tr><td>Thời gian</td><td>%s</td></tr>
			</table>
			<p><a href="%s">Xem đơn hàng</a></p>
		</body>
		</html>
	`,
		html.EscapeString(cmd.CustomerName),
		html.EscapeString(cmd.OrderNumber),
		amount,
		html.EscapeString(cmd.TransactionNo),
		paidAt,
		orderURL,
	)

	plainBody := fmt.Sprintf(`
Cảm ơn %s đã mua hàng!

Đơn hàng %s đã được thanh toán thành công qua VNPay.
Số tiền: %s
Mã giao dịch: %s
Thời gian: %s

Xem đơn hàng: %s
	`, cmd.CustomerName, cmd.OrderNumber, amount, cmd.TransactionNo, paidAt, orderURL)

	return subject, htmlBody, plainBody
}

// formatVND renders a dong amount with Vietnamese digit grouping, e.g. 150.000 ₫.
func formatVND(amount int64) string {
	return vndPrinter.Sprintf("%d ₫", amount)
}
