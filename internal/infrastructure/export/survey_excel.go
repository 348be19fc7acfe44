// Package export renders survey reviews as spreadsheets.
package export

import (
	"bytes"
	"fmt"

	"levantamiento_service/internal/domain/budget"
	"levantamiento_service/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary       = "Resumen"
	SheetBudget        = "Presupuesto"
	SheetInvestment    = "Inversión"
	SheetMaterials     = "Materiales"
	SheetTravelExpense = "Gastos de Viaje"
)

var statusLabels = map[entities.BlockStatus]string{
	entities.BlockStatusPending:  "Pendiente",
	entities.BlockStatusApproved: "Aprobado",
	entities.BlockStatusRejected: "Rechazado",
}

type styles struct {
	title  int
	header int
	cell   int
	bold   int
}

// GenerateSurveyWorkbook builds the review workbook of a survey and returns the
// xlsx contents.
func GenerateSurveyWorkbook(s entities.Survey) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	for _, name := range []string{SheetBudget, SheetInvestment, SheetMaterials, SheetTravelExpense} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("new sheet %s: %w", name, err)
		}
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	if err := writeSummary(f, st, s); err != nil {
		return nil, err
	}

	budgetRows := make([][]any, 0, len(s.BudgetItems))
	for _, it := range s.BudgetItems {
		var ipp any
		if it.UCAP.InitialIPP.Valid {
			ipp = it.UCAP.InitialIPP.Decimal.InexactFloat64()
		}
		budgetRows = append(budgetRows, []any{
			it.UCAP.Code, it.UCAP.Description, ipp,
			it.UnitValue.InexactFloat64(), it.Quantity.InexactFloat64(), it.LineTotal().InexactFloat64(),
		})
	}
	if err := writeTable(f, st, SheetBudget,
		[]string{"UCAP", "Descripción", "IPP inicial", "Valor unitario", "Cantidad", "Total"},
		[]float64{12, 40, 12, 16, 10, 18}, budgetRows); err != nil {
		return nil, err
	}

	investmentRows := make([][]any, 0, len(s.InvestmentItems))
	for _, it := range s.InvestmentItems {
		investmentRows = append(investmentRows, []any{
			it.OrderNumber, it.Point, it.Description, it.LuminaireQuantity,
			it.RelocatedLuminaireQuantity, it.PoleQuantity, it.BraidedNetwork, it.Latitude, it.Longitude,
		})
	}
	if err := writeTable(f, st, SheetInvestment,
		[]string{"N° orden", "Punto", "Descripción", "Luminarias", "Luminarias reubicadas", "Postes", "Red trenzada", "Latitud", "Longitud"},
		[]float64{10, 12, 40, 12, 20, 10, 14, 14, 14}, investmentRows); err != nil {
		return nil, err
	}

	materialRows := make([][]any, 0, len(s.MaterialItems))
	for _, it := range s.MaterialItems {
		materialRows = append(materialRows, []any{
			it.Material.Code, it.Material.Description, it.UnitOfMeasure, it.Quantity.InexactFloat64(), it.Observations,
		})
	}
	if err := writeTable(f, st, SheetMaterials,
		[]string{"Código", "Material", "Unidad", "Cantidad", "Observaciones"},
		[]float64{12, 40, 10, 12, 40}, materialRows); err != nil {
		return nil, err
	}

	travelRows := make([][]any, 0, len(s.TravelExpenseItems))
	for _, it := range s.TravelExpenseItems {
		travelRows = append(travelRows, []any{it.Label(), it.Quantity.InexactFloat64(), it.Observations})
	}
	if err := writeTable(f, st, SheetTravelExpense,
		[]string{"Tipo de gasto", "Cantidad", "Observaciones"},
		[]float64{24, 12, 40}, travelRows); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, st styles, s entities.Survey) error {
	sheet := SheetSummary
	for col, w := range map[string]float64{"A": 28, "B": 18, "C": 50} {
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	title := "Levantamiento " + s.Number
	if s.Number == "" {
		title = "Levantamiento " + s.ID
	}
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return fmt.Errorf("set title: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", st.title); err != nil {
		return fmt.Errorf("style title: %w", err)
	}

	rows := [][]any{
		{"Obra", s.WorkID},
		{"Fecha de levantamiento", dateOrEmpty(s)},
		{"Descripción", s.Description},
	}
	row := 3
	for _, r := range rows {
		if err := setRow(f, sheet, row, r, st.bold, -1); err != nil {
			return err
		}
		row++
	}

	row++
	if err := setRow(f, sheet, row, []any{"Bloque", "Estado", "Comentarios"}, st.header, st.header); err != nil {
		return err
	}
	row++
	for _, b := range entities.AllBlocks {
		rev := s.Reviews.Get(b)
		comment := ""
		if rev.Comments != nil {
			comment = *rev.Comments
		}
		if err := setRow(f, sheet, row, []any{b.Title(), statusLabels[rev.Status], comment}, st.cell, st.cell); err != nil {
			return err
		}
		row++
	}

	adj := budget.ReviewAdjustmentFor(s)
	row++
	totals := [][]any{
		{"Todos los bloques aprobados", yesNo(s.AllBlocksApproved())},
		{"Subtotal", adj.Subtotal.InexactFloat64()},
		{"Factor IPP", adj.Factor.InexactFloat64()},
		{"Total ajustado", adj.AdjustedTotal.InexactFloat64()},
	}
	for _, r := range totals {
		if err := setRow(f, sheet, row, r, st.bold, -1); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeTable(f *excelize.File, st styles, sheet string, headers []string, widths []float64, rows [][]any) error {
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	head := make([]any, len(headers))
	for i, h := range headers {
		head[i] = h
	}
	if err := setRow(f, sheet, 1, head, st.header, st.header); err != nil {
		return err
	}
	for i, r := range rows {
		if err := setRow(f, sheet, i+2, r, st.cell, st.cell); err != nil {
			return err
		}
	}
	return nil
}

// setRow writes values from column A. firstStyle applies to column A and restStyle
// to the others; a negative style leaves cells unstyled.
func setRow(f *excelize.File, sheet string, row int, values []any, firstStyle, restStyle int) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
		}
		style := restStyle
		if i == 0 {
			style = firstStyle
		}
		if style < 0 {
			continue
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("style %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func newStyles(f *excelize.File) (styles, error) {
	var (
		st  styles
		err error
	)
	st.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return st, fmt.Errorf("create title style: %w", err)
	}
	st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return st, fmt.Errorf("create header style: %w", err)
	}
	st.cell, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()})
	if err != nil {
		return st, fmt.Errorf("create cell style: %w", err)
	}
	st.bold, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}})
	if err != nil {
		return st, fmt.Errorf("create bold style: %w", err)
	}
	return st, nil
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}

func dateOrEmpty(s entities.Survey) string {
	if s.SurveyDate.IsZero() {
		return ""
	}
	return s.SurveyDate.Format("02/01/2006")
}

func yesNo(v bool) string {
	if v {
		return "Sí"
	}
	return "No"
}
