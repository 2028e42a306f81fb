package sales

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/sales/models"
)

const (
	// maxPeriodDays максимальная длина периода отчёта
	maxPeriodDays = 366

	noServiceName = "Sin servicio"
)

// Service сервис отчётов о продажах
type Service struct {
	reservationRepo ReservationRepository
	resourceRepo    ResourceRepository
	catalogRepo     CatalogRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса продаж
func NewService(
	reservationRepo ReservationRepository,
	resourceRepo ResourceRepository,
	catalogRepo CatalogRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		resourceRepo:    resourceRepo,
		catalogRepo:     catalogRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Report сводит выполненные бронирования за период по специалистам и услугам.
// Выручка считается по текущей цене услуги. Без периода берётся текущий месяц до сегодняшнего дня.
func (s *Service) Report(ctx context.Context, session domain.Session, req *models.ReportRequest) (*models.ReportResponse, error) {
	from, to, err := s.period(req)
	if err != nil {
		s.logger.Warn("Report: invalid period for business=%d: %v", session.BusinessID, err)
		return nil, err
	}

	s.logger.Info("Report: business=%d, period=%s..%s",
		session.BusinessID, from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	reservations, err := s.reservationRepo.List(ctx, domain.ReservationFilter{
		BusinessID: session.BusinessID,
		From:       &from,
		To:         &to,
		Statuses:   []domain.ReservationStatus{domain.StatusFulfilled},
	})
	if err != nil {
		s.logger.Error("Report: failed to list reservations for business=%d: %v", session.BusinessID, err)
		return nil, fmt.Errorf("%w: Report - list reservations: %v", ErrInternal, err)
	}

	// Неактивные ресурсы и услуги нужны для названий в старых бронированиях
	resources, err := s.resourceRepo.List(ctx, session.BusinessID, false)
	if err != nil {
		s.logger.Error("Report: failed to list resources for business=%d: %v", session.BusinessID, err)
		return nil, fmt.Errorf("%w: Report - list resources: %v", ErrInternal, err)
	}
	services, err := s.catalogRepo.List(ctx, session.BusinessID, false)
	if err != nil {
		s.logger.Error("Report: failed to list services for business=%d: %v", session.BusinessID, err)
		return nil, fmt.Errorf("%w: Report - list services: %v", ErrInternal, err)
	}

	report := buildReport(reservations, resources, services)
	report.From = from.Format(domain.DateFormat)
	report.To = to.Format(domain.DateFormat)

	s.logger.Info("Report: business=%d, %d fulfilled reservations, revenue=%.2f",
		session.BusinessID, report.TotalCount, report.TotalRevenue)
	return report, nil
}

func (s *Service) period(req *models.ReportRequest) (time.Time, time.Time, error) {
	now := s.timeProvider.Now()
	loc := now.Location()

	from, to := req.From, req.To
	if to.IsZero() {
		to = now
	}
	if from.IsZero() {
		from = time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, loc)
	}
	from = domain.DateOnly(from, loc)
	to = domain.DateOnly(to, loc)

	if to.Before(from) {
		return from, to, fmt.Errorf("%w: 'to' is before 'from'", ErrInvalidPeriod)
	}
	if to.Sub(from) > maxPeriodDays*24*time.Hour {
		return from, to, fmt.Errorf("%w: period is longer than %d days", ErrInvalidPeriod, maxPeriodDays)
	}
	return from, to, nil
}

// buildReport агрегирует бронирования за один проход
func buildReport(reservations []*domain.Reservation, resources []*domain.Resource, services []*domain.Service) *models.ReportResponse {
	resourceNames := make(map[int64]string, len(resources))
	for _, r := range resources {
		resourceNames[r.ID] = r.Name
	}
	servicesByID := make(map[int64]*domain.Service, len(services))
	for _, svc := range services {
		servicesByID[svc.ID] = svc
	}

	byProfessional := make(map[int64]*models.ReportLine)
	byService := make(map[int64]*models.ReportLine)
	report := &models.ReportResponse{}

	for _, res := range reservations {
		if res.Status != domain.StatusFulfilled {
			continue
		}

		var (
			serviceID   int64
			serviceName = noServiceName
			price       float64
		)
		if res.ServiceID != nil {
			serviceID = *res.ServiceID
			if svc, ok := servicesByID[serviceID]; ok {
				serviceName = svc.Name
				price = svc.Price
			} else {
				serviceName = fmt.Sprintf("Servicio #%d", serviceID)
			}
		}

		professionalName, ok := resourceNames[res.ResourceID]
		if !ok {
			professionalName = fmt.Sprintf("Profesional #%d", res.ResourceID)
		}

		addTo(byProfessional, res.ResourceID, professionalName, price)
		addTo(byService, serviceID, serviceName, price)
		report.TotalCount++
		report.TotalRevenue += price
	}

	report.ByProfessional = sortedLines(byProfessional)
	report.ByService = sortedLines(byService)
	return report
}

func addTo(lines map[int64]*models.ReportLine, id int64, name string, revenue float64) {
	line, ok := lines[id]
	if !ok {
		line = &models.ReportLine{ID: id, Name: name}
		lines[id] = line
	}
	line.Count++
	line.Revenue += revenue
}

// sortedLines по убыванию выручки, затем по названию
func sortedLines(lines map[int64]*models.ReportLine) []models.ReportLine {
	result := make([]models.ReportLine, 0, len(lines))
	for _, line := range lines {
		result = append(result, *line)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Revenue != result[j].Revenue {
			return result[i].Revenue > result[j].Revenue
		}
		return result[i].Name < result[j].Name
	})
	return result
}
