package export

import "strings"

// EncodeWorkbook renders rows into the legacy Excel 2003 SpreadsheetML
// format, which Excel and LibreOffice both open from a .xls download.
// One header row, then one row per record; cell order follows headers.
// Missing keys become empty cells. Output is byte-identical for the
// same input.
func EncodeWorkbook(rows []map[string]string, headers []string) []byte {
	var b strings.Builder

	b.WriteString("<?xml version=\"1.0\"?>\n")
	b.WriteString("<?mso-application progid=\"Excel.Sheet\"?>\n")
	b.WriteString("<Workbook xmlns=\"urn:schemas-microsoft-com:office:spreadsheet\"\n")
	b.WriteString(" xmlns:ss=\"urn:schemas-microsoft-com:office:spreadsheet\">\n")
	b.WriteString("<Worksheet ss:Name=\"Registrations\">\n<Table>\n")

	b.WriteString("<Row>\n")
	for _, h := range headers {
		writeCell(&b, h)
	}
	b.WriteString("</Row>\n")

	for _, row := range rows {
		b.WriteString("<Row>\n")
		for _, h := range headers {
			writeCell(&b, row[lookupKey(h)])
		}
		b.WriteString("</Row>\n")
	}

	b.WriteString("</Table>\n</Worksheet>\n</Workbook>")
	return []byte(b.String())
}

func writeCell(b *strings.Builder, value string) {
	b.WriteString("<Cell><Data ss:Type=\"String\">")
	b.WriteString(escapeXML(value))
	b.WriteString("</Data></Cell>\n")
}

// lookupKey maps a display header to its row-map key: lowercased with
// spaces replaced by underscores.
func lookupKey(header string) string {
	return strings.ReplaceAll(strings.ToLower(header), " ", "_")
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
