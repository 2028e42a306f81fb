package models

import "time"

// ReportRequest период отчёта (границы включительно)
type ReportRequest struct {
	From time.Time
	To   time.Time
}

// ReportLine агрегат по специалисту или услуге
type ReportLine struct {
	ID      int64   `json:"id"` // 0 - без услуги
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// ReportResponse отчёт о продажах за период
type ReportResponse struct {
	From           string       `json:"from"`
	To             string       `json:"to"`
	ByProfessional []ReportLine `json:"byProfessional"`
	ByService      []ReportLine `json:"byService"`
	TotalCount     int          `json:"totalCount"`
	TotalRevenue   float64      `json:"totalRevenue"`
}
