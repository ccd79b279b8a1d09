// Package export は、デッキ全体をPDF・PPTX・ブリーフシートの各文書へ描画します。
//
// すべてのエクスポーターは「全枚成功か、さもなくば失敗」の契約を守ります。
// いずれかのスライドの描画に失敗した場合、部分的な文書は返さず、
// 失敗したスライドを特定できるエラーを返します。
package export

import (
	"context"
	"fmt"

	"github.com/shouni/go-artbrief-kit/pkg/deck"
)

// Format は、エクスポートする文書形式です。
type Format string

const (
	// FormatPDF は、A4縦のプレゼンテーションPDFです。
	FormatPDF Format = "pdf"
	// FormatPPTX は、16:9のPowerPointプレゼンテーションです。
	FormatPPTX Format = "pptx"
	// FormatSheet は、全スライドのプロンプトを一覧するブリーフシートPDFです。
	FormatSheet Format = "sheet"
)

// 出力ファイル名の既定値です。
const (
	FileNamePDF   = "presentation.pdf"
	FileNamePPTX  = "Art_Brief.pptx"
	FileNameSheet = "Brief_Sheet.pdf"
)

// ParseFormat は、文字列を Format へ変換します。未知の値はエラーになります。
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPDF, FormatPPTX, FormatSheet:
		return Format(s), nil
	default:
		return "", fmt.Errorf("未対応のエクスポート形式です: %q (pdf / pptx / sheet から選んでください)", s)
	}
}

// FileName は、この形式の既定の出力ファイル名を返します。
func (f Format) FileName() string {
	switch f {
	case FormatPPTX:
		return FileNamePPTX
	case FormatSheet:
		return FileNameSheet
	default:
		return FileNamePDF
	}
}

// ContentType は、この形式のMIMEタイプを返します。
func (f Format) ContentType() string {
	if f == FormatPPTX {
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	}
	return "application/pdf"
}

// Exporter は、デッキ全体を1つの文書のバイト列へ描画するインターフェースです。
type Exporter interface {
	// Export はデッキの全スライドを描画した文書を返します。
	// いずれかのスライドで失敗した場合、文書は生成されません。
	Export(ctx context.Context, d *deck.Deck) ([]byte, error)
}

// SlideError は、特定のスライドの描画に失敗したことを示します。
// どのスライドが原因かを Index と Title で特定できます。
type SlideError struct {
	Format Format
	Index  int
	Title  string
	Err    error
}

func (e *SlideError) Error() string {
	return fmt.Sprintf("%s のエクスポートに失敗しました (スライド %d: %q): %v", e.Format, e.Index+1, e.Title, e.Err)
}

func (e *SlideError) Unwrap() error {
	return e.Err
}
