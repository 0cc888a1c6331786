package generate_excel

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"proxima-dashboard/internal/service/statistics"
)

const (
	SheetStats    = "Statistieken"
	SheetRegistry = "Log Register"
)

type ReportProvider interface {
	Report(ctx context.Context, selection string) (statistics.Report, error)
}

type GenerateExcelService struct {
	reports ReportProvider
}

func NewGenerateService(reports ReportProvider) *GenerateExcelService {
	return &GenerateExcelService{reports: reports}
}

func (g *GenerateExcelService) GenerateExcel(ctx context.Context, selection string) ([]byte, error) {
	const op = "service.generate-excel.GenerateExcel"

	report, err := g.reports.Report(ctx, selection)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch data: %w", op, err)
	}

	buf, err := Render(report)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf, nil
}

// Render writes the report as a two sheet workbook.
func Render(report statistics.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetStats); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SheetRegistry); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, err
	}

	writeStats(f, report, headerStyle)
	writeRegistry(f, report.Registry, headerStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeStats(f *excelize.File, r statistics.Report, headerStyle int) {
	sheet := SheetStats

	title := "Alle Orders (Totaal)"
	if r.SelectedOrder != nil {
		title = fmt.Sprintf("%s %s", r.SelectedOrder.OrderNumber, r.SelectedOrder.Client)
	}
	f.SetCellValue(sheet, "A1", title)

	headers := []string{"Categorie", "Gelogd", "Budget", "Verschil", "Overschreden"}
	for i, h := range headers {
		f.SetCellValue(sheet, cellName(i+1, 3), h)
	}
	f.SetCellStyle(sheet, "A3", cellName(len(headers), 3), headerStyle)

	row := 4
	for _, b := range r.Budget {
		f.SetCellValue(sheet, cellName(1, row), string(b.Category))
		f.SetCellValue(sheet, cellName(2, row), round(b.Logged))
		f.SetCellValue(sheet, cellName(3, row), round(b.Budget))
		f.SetCellValue(sheet, cellName(4, row), round(b.Diff))
		f.SetCellValue(sheet, cellName(5, row), yesNo(b.Over))
		row++
	}

	f.SetCellValue(sheet, cellName(1, row), "Totaal")
	f.SetCellValue(sheet, cellName(2, row), round(r.Hours.Total))
	f.SetCellValue(sheet, cellName(3, row), round(r.Hours.TotalBudget))
	row += 2

	costs := []struct {
		label string
		value *float64
	}{
		{"Arbeidskosten", &r.Costs.LaborCost},
		{"Inkoopkosten", &r.Costs.PurchaseCost},
		{"Totale kosten", &r.Costs.TotalCost},
		{"Contractwaarde", r.Costs.ContractValue},
		{"Marge", r.Costs.Margin},
		{"Marge %", r.Costs.MarginPct},
	}
	for _, c := range costs {
		f.SetCellValue(sheet, cellName(1, row), c.label)
		if c.value != nil {
			f.SetCellValue(sheet, cellName(2, row), round(*c.value))
		} else {
			f.SetCellValue(sheet, cellName(2, row), "-")
		}
		row++
	}

	f.SetColWidth(sheet, "A", "E", 18)
}

func writeRegistry(f *excelize.File, rows []statistics.RegistryRow, headerStyle int) {
	sheet := SheetRegistry

	headers := []string{"Datum", "Order", "Klant", "Medewerker", "Categorie", "Activiteit", "Uren", "Opmerkingen"}
	for i, h := range headers {
		f.SetCellValue(sheet, cellName(i+1, 1), h)
	}
	f.SetCellStyle(sheet, "A1", cellName(len(headers), 1), headerStyle)

	for i, r := range rows {
		n := i + 2
		f.SetCellValue(sheet, cellName(1, n), r.Date)
		f.SetCellValue(sheet, cellName(2, n), r.OrderNumber)
		f.SetCellValue(sheet, cellName(3, n), r.Client)
		f.SetCellValue(sheet, cellName(4, n), r.Worker)
		f.SetCellValue(sheet, cellName(5, n), r.Category)
		f.SetCellValue(sheet, cellName(6, n), r.Activity)
		f.SetCellValue(sheet, cellName(7, n), round(r.Hours))
		f.SetCellValue(sheet, cellName(8, n), r.Note)
	}

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	f.SetColWidth(sheet, "A", "H", 15)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// round only affects the exported cells, the report keeps full precision.
func round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func yesNo(b bool) string {
	if b {
		return "ja"
	}
	return "nee"
}
