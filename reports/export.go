package reports

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatPDF   Format = "pdf"
	FormatXLSX  Format = "xlsx"
	FormatPrint Format = "print"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatCSV, FormatPDF, FormatXLSX, FormatPrint:
		return f, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPrint:
		return "text/html; charset=utf-8"
	}
	return "application/json; charset=utf-8"
}

// Filename is the download name for t in this format; print has none.
func (f Format) Filename(t Table) string {
	if f == FormatPrint {
		return ""
	}
	return t.Filename + "." + string(f)
}

// Write renders t in the given format. now stamps the PDF, XLSX and print headers.
func Write(w io.Writer, f Format, t Table, now time.Time) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, t)
	case FormatPDF:
		return WritePDF(w, t, now)
	case FormatXLSX:
		return WriteXLSX(w, t, now)
	case FormatPrint:
		return WritePrintHTML(w, t, now)
	case FormatJSON:
		return json.NewEncoder(w).Encode(t)
	}
	return fmt.Errorf("unsupported export format %q", f)
}

// WriteCSV writes the header row followed by one record per row.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// pdfCurrency spells out currency signs the core PDF fonts cannot encode.
var pdfCurrency = strings.NewReplacer(
	"₱", "PHP ",
	"₹", "INR ",
	"₩", "KRW ",
	"₫", "VND ",
	"₦", "NGN ",
	"₺", "TRY ",
	"₽", "RUB ",
	"₴", "UAH ",
	"₪", "ILS ",
	"₸", "KZT ",
)

func generatedLine(now time.Time) string {
	return "Generated: " + now.Format("2006-01-02 15:04:05")
}

// WritePDF renders a titled, striped table with an optional footer line.
func WritePDF(w io.Writer, t Table, now time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.SetCreationDate(now)
	pdf.AddPage()
	cp1252 := pdf.UnicodeTranslatorFromDescriptor("")
	tr := func(s string) string { return cp1252(pdfCurrency.Replace(s)) }

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(14, 20, tr(t.Title))
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(14, 28, generatedLine(now))

	pdf.SetXY(14, 34)
	pageWidth, _ := pdf.GetPageSize()
	cols := len(t.Headers)
	if cols == 0 {
		cols = 1
	}
	colW := (pageWidth - 28) / float64(cols)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	for _, h := range t.Headers {
		pdf.CellFormat(colW, 8, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for i, row := range t.Rows {
		if i%2 == 1 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for _, cell := range row {
			pdf.CellFormat(colW, 7, tr(cell), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}

	if t.Footer != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, tr(t.Footer), "", 1, "L", false, 0, "")
	}
	return pdf.Output(w)
}

// WriteXLSX writes the table to a single-sheet workbook.
func WriteXLSX(w io.Writer, t Table, now time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Report"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}

	set := func(col, row int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, v)
	}

	if err := set(1, 1, t.Title); err != nil {
		return err
	}
	if err := set(1, 2, generatedLine(now)); err != nil {
		return err
	}

	const headerRow = 4
	for i, h := range t.Headers {
		if err := set(i+1, headerRow, h); err != nil {
			return err
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if len(t.Headers) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(t.Headers), headerRow)
		if err := f.SetCellStyle(sheet, "A4", last, bold); err != nil {
			return err
		}
	}

	for r, row := range t.Rows {
		for c, cell := range row {
			if err := set(c+1, headerRow+1+r, cell); err != nil {
				return err
			}
		}
	}

	if t.Footer != "" {
		if err := set(1, headerRow+len(t.Rows)+2, t.Footer); err != nil {
			return err
		}
	}
	return f.Write(w)
}

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 24px; }
h1 { font-size: 18px; margin-bottom: 4px; }
p.generated { font-size: 12px; color: #555; margin-top: 0; }
table { border-collapse: collapse; width: 100%; font-size: 12px; }
th, td { border: 1px solid #ccc; padding: 4px 6px; text-align: left; }
th { background: #2980b9; color: #fff; }
tr:nth-child(even) td { background: #f5f5f5; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="generated">{{.Generated}}</p>
<table>
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
{{if .Footer}}<p>{{.Footer}}</p>{{end}}
<script>window.onload = function () { window.print(); };</script>
</body>
</html>
`))

// WritePrintHTML renders the same table as a page that opens the browser print dialog.
func WritePrintHTML(w io.Writer, t Table, now time.Time) error {
	return printTemplate.Execute(w, struct {
		Table
		Generated string
	}{t, generatedLine(now)})
}
