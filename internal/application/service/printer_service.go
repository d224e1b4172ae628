package service

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jjpos/jjpos-api/internal/domain/entity"
	"github.com/jjpos/jjpos-api/pkg/printer"
)

// PrinterService renders receipts to plain text and hands them to the
// configured printer sink. It is the "receipt consumer": the engine only
// produces the Receipt value, never performs print I/O itself.
type PrinterService struct {
	printer     printer.Printer
	printerType string
	khr         *message.Printer
}

// NewPrinterService creates a new printer service
func NewPrinterService(p printer.Printer, printerType string) *PrinterService {
	return &PrinterService{
		printer:     p,
		printerType: printerType,
		khr:         message.NewPrinter(language.Khmer),
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

const receiptWidth = 32

// Render lays out a receipt as monospace text for a 32-column printer
func (s *PrinterService) Render(r *entity.Receipt) string {
	var b strings.Builder
	divider := strings.Repeat("-", receiptWidth)

	center := func(text string) {
		if pad := (receiptWidth - len(text)) / 2; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	row := func(left, right string) {
		gap := receiptWidth - len(left) - len(right)
		if gap < 1 {
			gap = 1
		}
		b.WriteString(left)
		b.WriteString(strings.Repeat(" ", gap))
		b.WriteString(right)
		b.WriteByte('\n')
	}

	center(r.Header.StoreName)
	center("Receipt")
	center(r.Header.Date)
	if r.Header.Customer != "" {
		center("Customer: " + r.Header.Customer)
	}
	b.WriteString(divider)
	b.WriteByte('\n')

	for _, line := range r.Lines {
		b.WriteString(line.Name)
		b.WriteByte('\n')
		row(
			fmt.Sprintf("  $%.2f x %d", line.UnitPrice, line.Quantity),
			fmt.Sprintf("$%.2f", line.Total),
		)
	}

	b.WriteString(divider)
	b.WriteByte('\n')
	row("Total (USD):", fmt.Sprintf("$%.2f", r.TotalUSD))
	row("Total (KHR):", s.khr.Sprintf("%d៛", r.TotalKHR))
	b.WriteString(divider)
	b.WriteByte('\n')
	center("Thank you for your business!")
	center(fmt.Sprintf("Rate: 1 USD = %.0f KHR", r.ExchangeRate))

	return b.String()
}

// Print renders the receipt and sends it to the printer sink. With the null
// printer configured this is a no-op, and the rendered text is still
// returned for on-screen display.
func (s *PrinterService) Print(r *entity.Receipt) (string, error) {
	text := s.Render(r)
	if err := s.printer.Print([]byte(text)); err != nil {
		return text, fmt.Errorf("print receipt: %w", err)
	}
	return text, nil
}
