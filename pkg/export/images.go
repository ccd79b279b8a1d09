package export

import (
	"net/http"
	"strings"
)

// imageMIME は、バイト列を検査して画像のMIMEタイプを返します。
// 画像として認識できない場合は false を返します。
func imageMIME(data []byte) (string, bool) {
	if len(data) == 0 {
		return "", false
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", false
	}
	return mime, true
}

// pdfImageType は、MIMEタイプを gofpdf の画像タイプ名へ変換します。
// 文書へ埋め込めない形式の場合は空文字を返します。
func pdfImageType(mime string) string {
	switch mime {
	case "image/png":
		return "PNG"
	case "image/jpeg":
		return "JPG"
	case "image/gif":
		return "GIF"
	default:
		return ""
	}
}
