package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/shouni/go-artbrief-kit/pkg/deck"
)

// PDFレイアウト定数 (mm)
const (
	pdfMarginX     = 10.0 // 画像の左右余白
	pdfImageY      = 30.0 // 画像の上端位置
	pdfBandHeight  = 24.0 // テキスト帯の高さ
	pdfBandPadding = 4.0  // 画像端からテキスト帯までの間隔
)

// 約70%の不透明度で画像に重ねる暗色の帯 (R, G, B)
var pdfOverlayColor = [3]int{30, 41, 59}

// PDFExporter は、デッキをA4縦のプレゼンテーションPDFへ描画します。
// 1スライドにつき1ページを割り当てます。
type PDFExporter struct {
	resolver *Resolver
}

var _ Exporter = (*PDFExporter)(nil)

// NewPDFExporter は、新しい PDFExporter を返します。
// resolver が nil の場合、画像のダウンロードなしで描画します。
func NewPDFExporter(resolver *Resolver) *PDFExporter {
	if resolver == nil {
		resolver = NewResolver(nil)
	}
	return &PDFExporter{resolver: resolver}
}

// Export は、デッキの全スライドをPDFへ描画してバイト列を返します。
func (e *PDFExporter) Export(ctx context.Context, d *deck.Deck) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pageW, _ := pdf.GetPageSize()

	for i, s := range d.Slides() {
		pdf.AddPage()

		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Arial", "B", 16)
		pdf.CellFormat(0, 10, s.Title, "", 1, "C", false, 0, "")

		img := e.resolver.resolve(ctx, s)
		switch {
		case len(img.Data) > 0:
			e.drawImageSlide(pdf, s, img, pageW)
		case img.Note != "":
			e.drawNoteSlide(pdf, s, img.Note)
		default:
			e.drawTextSlide(pdf, s)
		}

		if pdf.Err() {
			return nil, &SlideError{Format: FormatPDF, Index: i, Title: s.Title, Err: pdf.Error()}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDFの書き出しに失敗しました: %w", err)
	}
	return buf.Bytes(), nil
}

// drawImageSlide は、ページ幅いっぱいの画像とテキスト帯を描画します。
func (e *PDFExporter) drawImageSlide(pdf *gofpdf.Fpdf, s *deck.Slide, img slideImage, pageW float64) {
	imgW := pageW - pdfMarginX*2
	opts := gofpdf.ImageOptions{ImageType: pdfImageType(img.MIME)}

	name := fmt.Sprintf("slide-image-%d", s.ID)
	info := pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
	if info == nil || pdf.Err() {
		return
	}
	wd, ht := info.Extent()
	if wd <= 0 {
		return
	}
	imgH := imgW * ht / wd
	pdf.ImageOptions(name, pdfMarginX, pdfImageY, imgW, imgH, false, opts, 0, "")

	if strings.TrimSpace(s.Text) == "" {
		return
	}

	bandY := pdfBandY(s.Position(), imgH)
	pdf.SetAlpha(0.7, "Normal")
	pdf.SetFillColor(pdfOverlayColor[0], pdfOverlayColor[1], pdfOverlayColor[2])
	pdf.Rect(pdfMarginX, bandY, imgW, pdfBandHeight, "F")
	pdf.SetAlpha(1.0, "Normal")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "", 12)
	pdf.SetXY(pdfMarginX+pdfBandPadding, bandY+pdfBandPadding)
	pdf.MultiCell(imgW-pdfBandPadding*2, 6, s.Text, "", "C", false)
	pdf.SetTextColor(0, 0, 0)
}

// pdfBandY は、テキスト位置の指定からテキスト帯の上端座標を決定します。
func pdfBandY(pos deck.TextPosition, imgH float64) float64 {
	switch pos {
	case deck.PositionTop:
		return pdfImageY + pdfBandPadding
	case deck.PositionCenter:
		return pdfImageY + (imgH-pdfBandHeight)/2
	default:
		return pdfImageY + imgH - pdfBandHeight - pdfBandPadding
	}
}

// drawNoteSlide は、画像の代わりの注記と本文を描画します。
func (e *PDFExporter) drawNoteSlide(pdf *gofpdf.Fpdf, s *deck.Slide, note string) {
	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 11)
	pdf.SetTextColor(128, 128, 128)
	pdf.MultiCell(0, 8, note, "", "L", false)
	pdf.SetTextColor(0, 0, 0)

	pdf.Ln(4)
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 10, s.Text, "", "L", false)
}

// drawTextSlide は、画像を持たないスライドの本文だけを描画します。
func (e *PDFExporter) drawTextSlide(pdf *gofpdf.Fpdf, s *deck.Slide) {
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 10, s.Text, "", "L", false)
}
