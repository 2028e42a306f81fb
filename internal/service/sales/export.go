package sales

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/sales/models"
)

const (
	summarySheet      = "Resumen"
	professionalSheet = "Profesionales"
	serviceSheet      = "Servicios"
)

// ExportXLSX формирует отчёт за период и пишет его в w в формате xlsx
func (s *Service) ExportXLSX(ctx context.Context, session domain.Session, req *models.ReportRequest, w io.Writer) error {
	report, err := s.Report(ctx, session, req)
	if err != nil {
		return err
	}

	if err := writeXLSX(report, w); err != nil {
		s.logger.Error("ExportXLSX: business=%d: %v", session.BusinessID, err)
		return fmt.Errorf("%w: %v", ErrExport, err)
	}

	s.logger.Info("ExportXLSX: report for business=%d exported", session.BusinessID)
	return nil
}

func writeXLSX(report *models.ReportResponse, w io.Writer) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// Лист по умолчанию становится сводкой
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	summary := [][]interface{}{
		{"Desde", report.From},
		{"Hasta", report.To},
		{"Reservas cumplidas", report.TotalCount},
		{"Ingresos", report.TotalRevenue},
	}
	for i, row := range summary {
		if err := setRow(f, summarySheet, i+1, row); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A4", header); err != nil {
		return fmt.Errorf("style summary: %w", err)
	}

	if err := writeLines(f, professionalSheet, "Profesional", report.ByProfessional, header); err != nil {
		return err
	}
	if err := writeLines(f, serviceSheet, "Servicio", report.ByService, header); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeLines(f *excelize.File, sheet, nameColumn string, lines []models.ReportLine, header int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	if err := setRow(f, sheet, 1, []interface{}{nameColumn, "Reservas", "Ingresos"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "C1", header); err != nil {
		return fmt.Errorf("style header %s: %w", sheet, err)
	}

	for i, line := range lines {
		if err := setRow(f, sheet, i+2, []interface{}{line.Name, line.Count, line.Revenue}); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d of %s: %w", row, sheet, err)
	}
	return nil
}
