package get_available_slots

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AgendaService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date       string   `json:"date"`
	ResourceID int64    `json:"resourceId"`
	Slots      []string `json:"slots"`            // ["09:00", "09:30"]
	Reason     string   `json:"reason,omitempty"` // почему слотов нет
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		ResourceID: resp.ResourceID,
		Slots:      slots,
		Reason:     string(resp.Reason),
	}
}
