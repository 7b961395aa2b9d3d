package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/unmillondepredicadores/backend/internal/models"
)

// ExportService renders conversations and workshop certificates as PDFs.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// ConversationPDF renders the full message history of one conversation as a
// printable document.
func (s *ExportService) ConversationPDF(conv *models.Conversation, userName string) ([]byte, error) {
	msgs, err := conv.DecodeMessages()
	if err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(30, 58, 95)
	pdf.CellFormat(0, 12, tr("Un Millón de Predicadores"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 8, tr("Conversación con "+AssistantDisplayName(conv.AssistantType)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s · %s", userName, conv.UpdatedAt.Format("02/01/2006"))), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	for _, msg := range msgs {
		label := "Pregunta"
		pdf.SetTextColor(30, 58, 95)
		if msg.Role == models.MessageRoleAssistant {
			label = "Respuesta"
			pdf.SetTextColor(120, 80, 20)
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, tr(label), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(40, 40, 40)
		pdf.MultiCell(0, 6, tr(msg.Content), "", "L", false)
		pdf.Ln(3)
	}

	s.footer(pdf, tr)
	return render(pdf)
}

// WorkshopCertificatePDF renders a completion certificate for one workshop.
func (s *ExportService) WorkshopCertificatePDF(workshop *models.Workshop, userName string) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetDrawColor(30, 58, 95)
	pdf.SetLineWidth(1.2)
	pdf.Rect(10, 10, 277, 190, "D")

	pdf.SetY(40)
	pdf.SetFont("Helvetica", "B", 26)
	pdf.SetTextColor(30, 58, 95)
	pdf.CellFormat(0, 14, tr("Certificado de Finalización"), "", 1, "C", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(70, 70, 70)
	pdf.CellFormat(0, 8, tr("Un Millón de Predicadores certifica que"), "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(0, 12, tr(userName), "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(70, 70, 70)
	pdf.CellFormat(0, 8, tr("ha completado el taller"), "", 1, "C", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(30, 58, 95)
	pdf.CellFormat(0, 10, tr(workshop.Title), "", 1, "C", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 8, tr(time.Now().UTC().Format("02/01/2006")), "", 1, "C", false, 0, "")

	s.footer(pdf, tr)
	return render(pdf)
}

func (s *ExportService) footer(pdf *fpdf.Fpdf, tr func(string) string) {
	pdf.SetY(-18)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 6, tr("www.unmillondepredicadores.org"), "", 0, "C", false, 0, "")
}

func render(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
