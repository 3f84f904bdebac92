// Package receipt renders a confirmed booking as a downloadable PDF.
package receipt

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
)

// Data is everything the receipt shows. Payment details arrive already
// redacted; this package never sees a full card number or raw VPA.
type Data struct {
	BookingID     string
	ListingTitle  string
	GuestName     string
	StartDate     time.Time
	EndDate       time.Time
	Nights        int
	TotalCents    int64
	PaymentMethod string
	PaymentDetail string // e.g. "card ending 1111" or masked VPA
	Status        string
	CreatedAt     time.Time
}

// Build returns the PDF bytes and a filesystem-safe filename.
func Build(d Data) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID : %s", d.BookingID),
		fmt.Sprintf("Status     : %s", strings.ToUpper(safe(d.Status, "-"))),
		fmt.Sprintf("Issued     : %s", d.CreatedAt.Format("2006-01-02 15:04")),
		fmt.Sprintf("Guest      : %s", safe(d.GuestName, "-")),
		fmt.Sprintf("Listing    : %s", safe(d.ListingTitle, "-")),
		fmt.Sprintf("Check-in   : %s", d.StartDate.Format("2006-01-02")),
		fmt.Sprintf("Check-out  : %s", d.EndDate.Format("2006-01-02")),
		fmt.Sprintf("Nights     : %d", d.Nights),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Payment")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Method : %s", safe(d.PaymentMethod, "-")))
	pdf.Ln(7)
	if d.PaymentDetail != "" {
		pdf.Cell(0, 7, fmt.Sprintf("Detail : %s", d.PaymentDetail))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Total: "+formatDollars(d.TotalCents))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This receipt confirms a completed booking. Keep it for your records.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%s.pdf", safeFilenamePart(d.BookingID))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}

func formatDollars(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
