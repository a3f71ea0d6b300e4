package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const (
	exportSheetName   = "Downtime"
	exportRowsMaximum = 10000
	exportTimeLayout  = "2006-01-02 15:04"
)

var exportHeaders = []string{
	"Reference", "Production Order", "Start", "End", "Duration (min)",
	"Reason", "Category", "Reported By", "State", "Description",
}

var exportColumnWidths = []float64{14, 18, 18, 18, 14, 28, 14, 22, 14, 48}

// ExportService renders downtime log listings as spreadsheets
type ExportService struct {
	logs DowntimeLogServiceInterface
}

var _ ExportServiceInterface = (*ExportService)(nil)

// NewExportService creates a new export service
func NewExportService(logs DowntimeLogServiceInterface) *ExportService {
	return &ExportService{logs: logs}
}

// ExportDowntimeLogs writes every log matching req, as seen by viewerID, to an xlsx workbook
func (s *ExportService) ExportDowntimeLogs(ctx context.Context, viewerID uuid.UUID, req *ListDowntimeLogsRequest) ([]byte, error) {
	rows, err := s.collect(ctx, viewerID, req)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, fmt.Errorf("failed to prepare sheet: %w", err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheetName, cell, h)
		f.SetCellStyle(exportSheetName, cell, cell, headerStyle)
	}

	for i, l := range rows {
		row := i + 2
		values := []interface{}{
			l.Reference,
			l.ProductionOrderRef,
			l.StartTime.Format(exportTimeLayout),
			l.EndTime.Format(exportTimeLayout),
			l.DurationMinutes,
			l.ReasonName,
			string(l.Category),
			l.ReportedBy.Name,
			string(l.State),
			l.Description,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(exportSheetName, cell, v)
		}
	}

	for i, w := range exportColumnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(exportSheetName, col, col, w)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// collect pages through the listing until every match (up to the export maximum) is read
func (s *ExportService) collect(ctx context.Context, viewerID uuid.UUID, req *ListDowntimeLogsRequest) ([]DowntimeLogResponse, error) {
	filter := *req
	filter.PageSize = maxPageSize

	var out []DowntimeLogResponse
	for page := 1; len(out) < exportRowsMaximum; page++ {
		filter.Page = page
		res, err := s.logs.List(ctx, viewerID, &filter)
		if err != nil {
			return nil, err
		}
		out = append(out, res.DowntimeLogs...)
		if len(res.DowntimeLogs) < maxPageSize || int64(len(out)) >= res.Total {
			break
		}
	}
	if len(out) > exportRowsMaximum {
		out = out[:exportRowsMaximum]
	}
	return out, nil
}
