package export

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/shouni/go-artbrief-kit/pkg/deck"
)

// ブリーフシートの補助テキストに使う色
var (
	sheetGray     = &props.Color{Red: 100, Green: 116, Blue: 139}
	sheetDarkGray = &props.Color{Red: 71, Green: 85, Blue: 105}
)

// BriefSheetExporter は、全スライドのプロンプトとサムネイルを一覧する
// ブリーフシートPDFを生成します。アートディレクターがスライドごとの
// 生成指示を見比べるための資料です。
type BriefSheetExporter struct {
	resolver *Resolver
}

var _ Exporter = (*BriefSheetExporter)(nil)

// NewBriefSheetExporter は、新しい BriefSheetExporter を返します。
// resolver が nil の場合、サムネイルのダウンロードなしで生成します。
func NewBriefSheetExporter(resolver *Resolver) *BriefSheetExporter {
	if resolver == nil {
		resolver = NewResolver(nil)
	}
	return &BriefSheetExporter{resolver: resolver}
}

// Export は、デッキの全スライドをブリーフシートへまとめてバイト列を返します。
func (e *BriefSheetExporter) Export(ctx context.Context, d *deck.Deck) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	e.addHeader(m, d.Title())
	for i, s := range d.Slides() {
		e.addSlideSection(ctx, m, i, s)
	}

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("ブリーフシートの生成に失敗しました: %w", err)
	}
	return document.GetBytes(), nil
}

// addHeader は、デッキタイトルのヘッダー行を追加します。
func (e *BriefSheetExporter) addHeader(m core.Maroto, title string) {
	m.AddRow(14,
		col.New(12).Add(
			text.New(title, props.Text{
				Size:  18,
				Style: fontstyle.Bold,
				Align: align.Center,
			}),
		),
	)
	m.AddRow(6,
		col.New(12).Add(
			text.New("Prompt reference sheet", props.Text{
				Size:  9,
				Align: align.Center,
				Color: sheetGray,
			}),
		),
	)
	m.AddRow(4)
}

// addSlideSection は、スライド1枚分の見出し・本文・プロンプト・サムネイルを追加します。
func (e *BriefSheetExporter) addSlideSection(ctx context.Context, m core.Maroto, index int, s *deck.Slide) {
	m.AddRow(8,
		col.New(12).Add(
			text.New(fmt.Sprintf("Slide %d - %s", index+1, s.Title), props.Text{
				Size:  12,
				Style: fontstyle.Bold,
			}),
		),
	)

	if s.Text != "" {
		m.AddRow(8,
			col.New(12).Add(
				text.New(s.Text, props.Text{Size: 10}),
			),
		)
	}

	if s.ImagePrompt != "" {
		m.AddRow(5,
			col.New(12).Add(
				text.New("Prompt", props.Text{Size: 9, Style: fontstyle.Bold, Color: sheetDarkGray}),
			),
		)
		m.AddRow(12,
			col.New(12).Add(
				text.New(s.ImagePrompt, props.Text{Size: 8, Color: sheetDarkGray}),
			),
		)
	} else {
		m.AddRow(5,
			col.New(12).Add(
				text.New("No prompt assigned", props.Text{Size: 8, Style: fontstyle.Italic, Color: sheetGray}),
			),
		)
	}

	m.AddRow(5,
		col.New(12).Add(
			text.New("Text position: "+string(s.Position()), props.Text{Size: 8, Color: sheetGray}),
		),
	)

	img := e.resolver.resolve(ctx, s)
	switch {
	case len(img.Data) > 0:
		m.AddRow(45,
			col.New(6).Add(
				image.NewFromBytes(img.Data, marotoExtension(img.MIME), props.Rect{Center: true, Percent: 95}),
			),
			col.New(6),
		)
	case img.Note != "":
		m.AddRow(5,
			col.New(12).Add(
				text.New(img.Note, props.Text{Size: 8, Style: fontstyle.Italic, Color: sheetGray}),
			),
		)
	}

	m.AddRow(4, col.New(12).Add(line.New()))
	m.AddRow(2)
}

// marotoExtension は、MIMEタイプを maroto の画像拡張子へ変換します。
func marotoExtension(mime string) extension.Type {
	switch mime {
	case "image/jpeg":
		return extension.Jpg
	case "image/gif":
		return extension.Gif
	default:
		return extension.Png
	}
}
