package report

import (
	"html/template"
	"io"
)

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>{{.Title}} - {{.Site}}</title>
    <style>
      body { font-family: 'Arial', sans-serif; margin: 20px; line-height: 1.6; color: #2C2C2C; }
      .print-header { text-align: center; margin-bottom: 30px; border-bottom: 3px solid #FF6600; padding-bottom: 20px; }
      .print-title { font-size: 28px; font-weight: bold; margin-bottom: 10px; }
      .print-subtitle { color: #6B6B6B; font-size: 16px; margin-bottom: 5px; }
      .print-date { color: #FF6600; font-size: 14px; font-weight: bold; }
      .result-section { margin-bottom: 25px; padding: 20px; border: 2px solid #EFEFEF; border-radius: 12px; }
      .section-title { font-size: 20px; font-weight: bold; margin-bottom: 15px; border-bottom: 2px solid #FF6600; padding-bottom: 8px; }
      .result-row { display: flex; justify-content: space-between; padding: 10px 0; border-bottom: 1px solid #F8F8F8; }
      .result-row:last-child { border-bottom: none; }
      .result-label { color: #6B6B6B; font-weight: 500; }
      .result-value { font-weight: bold; }
      .highlight-row { border-top: 2px solid #FF6600; background: #FFF7ED; border-radius: 8px; padding: 15px; }
      .highlight-row .result-value { color: #FF6600; font-size: 20px; }
      .print-footer { margin-top: 40px; text-align: center; color: #6B6B6B; font-size: 12px; border-top: 2px solid #EFEFEF; padding-top: 20px; }
      .print-footer p { margin: 5px 0; }
      .disclaimer { background: #FFF7ED; border: 1px solid #FF6600; border-radius: 8px; padding: 15px; margin-top: 20px; font-size: 11px; color: #2C2C2C; }
      .disclaimer strong { color: #FF6600; }
      @media print {
        body { margin: 0; }
        .result-section { break-inside: avoid; }
        .print-header { break-after: avoid; }
      }
    </style>
  </head>
  <body>
    <div class="print-header">
      <div class="print-title">{{.Title}}</div>
      <div class="print-subtitle">{{.Subtitle}}</div>
      <div class="print-date">{{.GeneratedOn}}</div>
    </div>
    <div class="results-content">
      {{- range .Sections}}
      <div class="result-section">
        <h3 class="section-title">{{.Title}}</h3>
        {{- range .Rows}}
        <div class="result-row{{if .Highlight}} highlight-row{{end}}">
          <span class="result-label">{{.Label}}:</span>
          <span class="result-value">{{.Value}}</span>
        </div>
        {{- end}}
      </div>
      {{- end}}
    </div>
    <div class="print-footer">
      <p><strong>{{.Site}}.com</strong> - Professional Grade Calculation Tools</p>
      <p>{{.FooterLine}}</p>
      {{- if .URL}}
      <p><a href="{{.URL}}">{{.URL}}</a></p>
      {{- end}}
      {{- if .Disclaimer}}
      <div class="disclaimer">
        <p><strong>Important Disclaimer:</strong> {{.Disclaimer}}</p>
      </div>
      {{- end}}
    </div>
  </body>
</html>
`))

type printView struct {
	Document
	Site       string
	FooterLine string
}

// WriteHTML renders doc as a standalone page styled for the browser print dialog.
func WriteHTML(w io.Writer, doc Document) error {
	return printTemplate.Execute(w, printView{Document: doc, Site: SiteName, FooterLine: FooterLine})
}
