package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/shouni/go-artbrief-kit/pkg/deck"
)

// PPTXレイアウト定数 - 16:9ワイド画面 (EMU)
const (
	emuPerInch = 914400

	pptxSlideWidth  = int64(10.0 * emuPerInch)
	pptxSlideHeight = int64(5.625 * emuPerInch)
	pptxMargin      = int64(0.4 * emuPerInch)
	pptxBandHeight  = int64(1.2 * emuPerInch)
	pptxBandMargin  = int64(0.3 * emuPerInch)

	// フォントサイズ (pt)
	pptxFontTitle = 28
	pptxFontBody  = 14
	pptxFontNote  = 11
)

// 画像に重ねる帯の塗り (AARRGGBB、先頭のアルファ 0xB3 ≈ 70%)
const pptxOverlayARGB = "B31E293B"

// helper: create a solid fill
func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

// helper: set paragraph alignment to center
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// PPTXExporter は、デッキを16:9のPowerPointプレゼンテーションへ描画します。
// 画像を持つスライドは全面背景になり、テキストは半透明の帯に載ります。
type PPTXExporter struct {
	resolver *Resolver
}

var _ Exporter = (*PPTXExporter)(nil)

// NewPPTXExporter は、新しい PPTXExporter を返します。
// resolver が nil の場合、画像のダウンロードなしで描画します。
func NewPPTXExporter(resolver *Resolver) *PPTXExporter {
	if resolver == nil {
		resolver = NewResolver(nil)
	}
	return &PPTXExporter{resolver: resolver}
}

// Export は、デッキの全スライドをPPTXへ描画してバイト列を返します。
func (e *PPTXExporter) Export(ctx context.Context, d *deck.Deck) ([]byte, error) {
	p := ppt.New()
	p.GetDocumentProperties().Title = d.Title()
	p.GetDocumentProperties().Creator = "go-artbrief-kit"

	for i, s := range d.Slides() {
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		e.drawSlide(ctx, slide, s)
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("PPTXライターの生成に失敗しました: %w", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("PPTXの書き出しに失敗しました: %w", err)
	}
	return buf.Bytes(), nil
}

// drawSlide は、スライド1枚分の背景画像とテキストを配置します。
func (e *PPTXExporter) drawSlide(ctx context.Context, slide *ppt.Slide, s *deck.Slide) {
	img := e.resolver.resolve(ctx, s)

	if len(img.Data) > 0 {
		bg := slide.CreateDrawingShape()
		bg.SetImageData(img.Data, img.MIME)
		bg.SetOffsetX(0).SetOffsetY(0)
		bg.SetWidth(pptxSlideWidth).SetHeight(pptxSlideHeight)

		e.drawOverlayBand(slide, s)
		return
	}

	e.drawTextOnly(slide, s, img.Note)
}

// drawOverlayBand は、背景画像の上へ半透明の帯とテキストを重ねます。
func (e *PPTXExporter) drawOverlayBand(slide *ppt.Slide, s *deck.Slide) {
	if strings.TrimSpace(s.Title) == "" && strings.TrimSpace(s.Text) == "" {
		return
	}

	band := slide.CreateRichTextShape()
	band.SetOffsetX(pptxMargin).SetOffsetY(pptxBandOffsetY(s.Position()))
	band.SetWidth(pptxSlideWidth - pptxMargin*2).SetHeight(pptxBandHeight)
	band.SetFill(solidFill(pptxOverlayARGB))

	tr := band.CreateTextRun(s.Title)
	tr.GetFont().SetSize(pptxFontTitle).SetBold(true).SetColor(ppt.ColorWhite)
	alignCenter(band.GetActiveParagraph())

	if strings.TrimSpace(s.Text) != "" {
		band.CreateParagraph()
		bodyTr := band.CreateTextRun(s.Text)
		bodyTr.GetFont().SetSize(pptxFontBody).SetColor(ppt.NewColor("FFE2E8F0"))
		alignCenter(band.GetActiveParagraph())
	}
}

// pptxBandOffsetY は、テキスト位置の指定から帯の上端座標を決定します。
func pptxBandOffsetY(pos deck.TextPosition) int64 {
	switch pos {
	case deck.PositionTop:
		return pptxBandMargin
	case deck.PositionCenter:
		return (pptxSlideHeight - pptxBandHeight) / 2
	default:
		return pptxSlideHeight - pptxBandHeight - pptxBandMargin
	}
}

// drawTextOnly は、画像を持たないスライドのタイトル・注記・本文を配置します。
func (e *PPTXExporter) drawTextOnly(slide *ppt.Slide, s *deck.Slide, note string) {
	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(pptxMargin).SetOffsetY(int64(0.4 * emuPerInch))
	titleShape.SetWidth(pptxSlideWidth - pptxMargin*2).SetHeight(int64(0.8 * emuPerInch))
	tr := titleShape.CreateTextRun(s.Title)
	tr.GetFont().SetSize(pptxFontTitle).SetBold(true).SetColor(ppt.NewColor("FF1E293B"))
	alignCenter(titleShape.GetActiveParagraph())

	if note == "" && strings.TrimSpace(s.Text) == "" {
		return
	}

	body := slide.CreateRichTextShape()
	body.SetOffsetX(pptxMargin).SetOffsetY(int64(1.4 * emuPerInch))
	body.SetWidth(pptxSlideWidth - pptxMargin*2).SetHeight(int64(3.6 * emuPerInch))

	wroteNote := false
	if note != "" {
		noteTr := body.CreateTextRun(note)
		noteTr.GetFont().SetSize(pptxFontNote).SetColor(ppt.NewColor("FF94A3B8"))
		wroteNote = true
	}
	if strings.TrimSpace(s.Text) != "" {
		if wroteNote {
			body.CreateParagraph()
		}
		bodyTr := body.CreateTextRun(s.Text)
		bodyTr.GetFont().SetSize(pptxFontBody).SetColor(ppt.NewColor("FF334155"))
	}
}
