package receipt

import (
	"bytes"
	"errors"
	"fmt"
	"log"

	"github.com/jung-kurt/gofpdf"

	"minima-order/order-svc/internal/domain"
)

var ErrNoOrders = errors.New("no orders to print")

const customFont = "receipt"

// Generator renders an aggregated table bill into a PDF receipt. FontPath may
// point at a UTF-8 TTF; when it is empty or the file is unusable the built-in
// core font is used instead and generation continues.
type Generator struct {
	StoreName string
	FontPath  string
}

func NewGenerator(storeName, fontPath string) *Generator {
	return &Generator{StoreName: storeName, FontPath: fontPath}
}

func (g *Generator) Render(bill *domain.TableBill) ([]byte, error) {
	if bill == nil || len(bill.Orders) == 0 {
		return nil, ErrNoOrders
	}

	pdf := gofpdf.New("P", "mm", "A4", "")

	font := "Helvetica"
	if g.FontPath != "" {
		if err := tryAddFont(pdf, g.FontPath); err != nil {
			log.Printf("WARNING: receipt font %s not usable, falling back to core font: %v", g.FontPath, err)
		} else {
			font = customFont
		}
	}

	pdf.AddPage()
	pdf.SetFont(font, "", 18)
	pdf.CellFormat(0, 12, g.StoreName, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(font, "", 11)
	for _, line := range BodyLines(bill) {
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// BodyLines lays out the printable rows of a receipt: date of the latest
// order, table and party size, one row per merged item, the grand total and
// the reference order id.
func BodyLines(bill *domain.TableBill) []string {
	first := bill.Orders[0]

	lines := []string{
		first.CreatedAt.Format("2006/01/02 15:04"),
		fmt.Sprintf("Table %d  (%d guests)", bill.TableNumber, bill.People),
		"",
	}
	for _, line := range bill.Lines {
		lines = append(lines, fmt.Sprintf("%-24s x%d  @%d  %d",
			line.Name, line.Quantity, line.Price, line.Price*line.Quantity))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Total  %d", bill.GrandTotal),
		fmt.Sprintf("Ref: %s", first.ID),
	)
	return lines
}

func tryAddFont(pdf *gofpdf.Fpdf, path string) error {
	pdf.AddUTF8Font(customFont, "", path)
	if pdf.Err() {
		err := pdf.Error()
		pdf.ClearError()
		return err
	}
	return nil
}
