package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// Page layout (A4 portrait, mm).
const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	contentWidth = pageWidth - marginLeft - marginRight
	rowHeight    = 7.0
	qrSize       = 28.0
)

// Site accent colours.
var (
	accent    = [3]int{255, 102, 0}
	ink       = [3]int{44, 44, 44}
	muted     = [3]int{107, 107, 107}
	highlight = [3]int{255, 247, 237}
)

// WritePDF renders doc as a single printable PDF. When the document carries a
// URL, a QR code pointing back to the calculator is placed in the header.
func WritePDF(w io.Writer, doc Document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetTitle(doc.Title, false)
	pdf.SetCreator(SiteName, false)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 8)
		setText(pdf, muted)
		pdf.CellFormat(0, 5, fmt.Sprintf("%s.com  |  Report %s  |  Page %d", SiteName, doc.ID, pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	if doc.URL != "" {
		if err := drawQR(pdf, doc.URL); err != nil {
			return err
		}
	}
	renderHeader(pdf, doc)
	for _, s := range doc.Sections {
		renderSection(pdf, s)
	}
	renderClosing(pdf, doc)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("report: build pdf: %w", err)
	}
	return pdf.Output(w)
}

func drawQR(pdf *gofpdf.Fpdf, url string) error {
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("report: qr code: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("qr", pageWidth-marginRight-qrSize, marginTop, qrSize, qrSize, false, opts, 0, url)
	return nil
}

func renderHeader(pdf *gofpdf.Fpdf, doc Document) {
	pdf.SetXY(marginLeft, marginTop)
	pdf.SetFont("Helvetica", "B", 20)
	setText(pdf, ink)
	pdf.CellFormat(contentWidth-qrSize, 10, doc.Title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	setText(pdf, muted)
	pdf.CellFormat(contentWidth-qrSize, 6, doc.Subtitle, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	setText(pdf, accent)
	pdf.CellFormat(contentWidth-qrSize, 6, doc.GeneratedOn(), "", 1, "L", false, 0, "")

	y := marginTop + qrSize + 3
	if pdf.GetY() > y {
		y = pdf.GetY() + 3
	}
	setDraw(pdf, accent)
	pdf.SetLineWidth(0.8)
	pdf.Line(marginLeft, y, pageWidth-marginRight, y)
	pdf.SetY(y + 5)
}

func renderSection(pdf *gofpdf.Fpdf, s Section) {
	pdf.SetFont("Helvetica", "B", 13)
	setText(pdf, ink)
	pdf.CellFormat(contentWidth, 8, s.Title, "", 1, "L", false, 0, "")
	setDraw(pdf, accent)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY()
	pdf.Line(marginLeft, y, pageWidth-marginRight, y)
	pdf.Ln(2)

	labelWidth := contentWidth * 0.65
	for _, row := range s.Rows {
		fill := row.Highlight
		if fill {
			setFill(pdf, highlight)
			pdf.SetFont("Helvetica", "B", 11)
			setText(pdf, accent)
		} else {
			pdf.SetFont("Helvetica", "", 10)
			setText(pdf, muted)
		}
		pdf.CellFormat(labelWidth, rowHeight, row.Label, "", 0, "L", fill, 0, "")
		if !fill {
			setText(pdf, ink)
			pdf.SetFont("Helvetica", "B", 10)
		}
		pdf.CellFormat(contentWidth-labelWidth, rowHeight, row.Value, "", 1, "R", fill, 0, "")
	}
	pdf.Ln(4)
}

func renderClosing(pdf *gofpdf.Fpdf, doc Document) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 9)
	setText(pdf, ink)
	pdf.CellFormat(contentWidth, 5, SiteName+".com - Professional Grade Calculation Tools", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	setText(pdf, muted)
	pdf.CellFormat(contentWidth, 5, FooterLine, "", 1, "C", false, 0, "")
	pdf.Ln(3)

	if doc.Disclaimer == "" {
		return
	}
	setFill(pdf, highlight)
	setDraw(pdf, accent)
	pdf.SetLineWidth(0.3)
	setText(pdf, ink)
	pdf.SetFont("Helvetica", "", 8)
	pdf.MultiCell(contentWidth, 4, "Important Disclaimer: "+doc.Disclaimer, "1", "L", true)
}

func setText(pdf *gofpdf.Fpdf, c [3]int) { pdf.SetTextColor(c[0], c[1], c[2]) }
func setDraw(pdf *gofpdf.Fpdf, c [3]int) { pdf.SetDrawColor(c[0], c[1], c[2]) }
func setFill(pdf *gofpdf.Fpdf, c [3]int) { pdf.SetFillColor(c[0], c[1], c[2]) }
