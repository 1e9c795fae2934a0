package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Generator is an interface so handlers can be tested with a stub.
type Generator interface {
	GenerateQuote(data QuoteData) (string, error)
}

// QuoteGenerator renders quotation PDFs under RootDir.
type QuoteGenerator struct {
	RootDir string
}

type QuoteData struct {
	OpportunityID string
	CoupleName    string
	Email         string
	Amount        string
	Currency      string
	CreatedAt     time.Time
	Filename      string // without path; generated when empty
}

func NewQuoteGenerator(rootDir string) *QuoteGenerator {
	return &QuoteGenerator{RootDir: filepath.Clean(rootDir)}
}

func (g *QuoteGenerator) GenerateQuote(data QuoteData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("quote_opportunity_%s.pdf", data.OpportunityID)
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Quotation %s", data.OpportunityID), false)
	pdf.SetAuthor("Evermore Weddings & Events", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "WEDDING QUOTATION", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	sub := fmt.Sprintf("No. EVM-%s  of  %s", data.OpportunityID, data.CreatedAt.Format("02.01.2006"))
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)

	pdf.Ln(3)

	g.sectionTitle(pdf, "Parties")
	g.kvLine(pdf, "Agency", "Evermore Weddings & Events")
	g.kvLine(pdf, "Couple", data.CoupleName)
	if data.Email != "" {
		g.kvLine(pdf, "Contact", data.Email)
	}
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Quoted amount")
	amount := data.Amount
	if amount == "" {
		amount = "to be agreed"
	}
	g.kvLine(pdf, "Total", fmt.Sprintf("%s %s", amount, data.Currency))
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 11)
	intro := "This quotation covers planning and coordination services for the event described above. " +
		"The detailed scope, schedule and payment plan are set out in the service agreement and its annexes."
	pdf.MultiCell(0, 6, intro, "", "L", false)
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Terms")
	pdf.SetFont("Helvetica", "", 11)
	terms := []string{
		"1. This quotation is valid for 30 days from the date above.",
		"2. A signed agreement and deposit are required to reserve the date.",
		"3. Third-party vendor prices are estimates and may change until booked.",
	}
	for _, t := range terms {
		pdf.MultiCell(0, 6, t, "", "L", false)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(85, 7, "For the agency: ____________________", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, "For the couple: ____________________", "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", fmt.Errorf("write quote pdf: %w", err)
	}
	return absPath, nil
}

func (g *QuoteGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create files root: %w", err)
	}
	return filepath.Join(g.RootDir, filepath.Base(filename)), nil
}

func (g *QuoteGenerator) hr(pdf *gofpdf.Fpdf) {
	x, y := pdf.GetXY()
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	pdf.Line(left, y+1, pageW-right, y+1)
	pdf.SetXY(x, y+3)
}

func (g *QuoteGenerator) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func (g *QuoteGenerator) kvLine(pdf *gofpdf.Fpdf, key, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}
