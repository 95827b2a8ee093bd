package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// SummaryData is everything the reservation summary document shows.
type SummaryData struct {
	ID           int64
	UserName     string
	Date         string
	Start        string
	End          string
	Title        string
	Description  string
	Approved     bool
	ApproverName string
	Equipment    []SummaryEquipment
	TeamMembers  []string
}

type SummaryEquipment struct {
	Reference string
	Mark      string
}

// Renderer produces the reservation summary document. Kept behind an
// interface so services never depend on a concrete PDF engine.
type Renderer interface {
	ReservationSummary(data *SummaryData) ([]byte, error)
}

type fpdfRenderer struct {
	appName string
}

func NewRenderer(appName string) Renderer {
	return &fpdfRenderer{appName: appName}
}

func (r *fpdfRenderer) ReservationSummary(data *SummaryData) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(fmt.Sprintf("Reservation #%d", data.ID), false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 12, r.appName, "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 10, fmt.Sprintf("Reservation #%d", data.ID), "", 1, "L", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Helvetica", "", 11)
	r.row(doc, "Reserved by", data.UserName)
	r.row(doc, "Title", data.Title)
	r.row(doc, "Date", data.Date)
	r.row(doc, "Time", fmt.Sprintf("%s - %s", data.Start, data.End))
	if data.Description != "" {
		r.row(doc, "Description", data.Description)
	}

	status := "Pending"
	if data.Approved {
		status = "Approved"
	}
	r.row(doc, "Status", status)
	if data.ApproverName != "" {
		r.row(doc, "Approved by", data.ApproverName)
	}

	if len(data.Equipment) > 0 {
		doc.Ln(4)
		doc.SetFont("Helvetica", "B", 12)
		doc.CellFormat(0, 8, "Equipment", "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		for _, eq := range data.Equipment {
			doc.CellFormat(0, 7, fmt.Sprintf("- %s (%s)", eq.Reference, eq.Mark), "", 1, "L", false, 0, "")
		}
	}

	if len(data.TeamMembers) > 0 {
		doc.Ln(4)
		doc.SetFont("Helvetica", "B", 12)
		doc.CellFormat(0, 8, "Team", "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		for _, member := range data.TeamMembers {
			doc.CellFormat(0, 7, "- "+member, "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render reservation summary: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *fpdfRenderer) row(doc *fpdf.Fpdf, label, value string) {
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(40, 7, label, "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.MultiCell(0, 7, value, "", "L", false)
}
