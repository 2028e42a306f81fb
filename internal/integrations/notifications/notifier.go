package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// DefaultQueueKey ключ списка Redis по умолчанию
const DefaultQueueKey = "agenda:emails"

// Notifier ставит письма клиентам в очередь Redis.
// Ошибки постановки только логируются: бронирование не зависит от доставки письма.
type Notifier struct {
	queue    Queue
	queueKey string
	loc      *time.Location
	log      Logger
}

// NewNotifier создает новый экземпляр Notifier
func NewNotifier(queue Queue, queueKey string, loc *time.Location, log Logger) *Notifier {
	if queueKey == "" {
		queueKey = DefaultQueueKey
	}
	if loc == nil {
		loc = time.Local
	}
	return &Notifier{queue: queue, queueKey: queueKey, loc: loc, log: log}
}

// SendConfirmationEmail ставит в очередь подтверждение бронирования.
// Пропускается, если у бизнеса выключены уведомления.
func (n *Notifier) SendConfirmationEmail(ctx context.Context, res *domain.Reservation, business *domain.Business) {
	if business == nil || !business.NotificationsEnabled {
		return
	}
	if res.Customer.Email == "" {
		return
	}

	subject := fmt.Sprintf("Reserva confirmada - %s", business.Name)
	if res.RescheduledFromID != nil {
		subject = fmt.Sprintf("Reserva reprogramada - %s", business.Name)
	}

	body := fmt.Sprintf(`Hola %s,

Tu reserva en %s quedó registrada.

Fecha: %s
Hora: %s
`, res.Customer.Name, business.Name, res.Date.Format(domain.DateFormat), res.Time)
	if res.PaymentURL != nil {
		body += fmt.Sprintf("\nPara confirmarla realiza el pago del anticipo: %s\n", *res.PaymentURL)
	}
	body += fmt.Sprintf("\n- %s\n", business.Name)

	n.enqueue(ctx, Job{
		To:      res.Customer.Email,
		Subject: subject,
		Body:    body,
		Created: time.Now().In(n.loc),
	})
}

func (n *Notifier) enqueue(ctx context.Context, job Job) {
	data, err := json.Marshal(job)
	if err != nil {
		n.log.Error("Failed to marshal email job: to=%s, error=%v", job.To, err)
		return
	}

	if err := n.queue.LPush(ctx, n.queueKey, data).Err(); err != nil {
		n.log.Error("Failed to queue email: to=%s, error=%v", job.To, err)
		return
	}

	n.log.Info("Email queued: subject=%q, to=%s", job.Subject, job.To)
}
