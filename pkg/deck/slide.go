package deck

// TextPosition は、スライド上でテキストオーバーレイを配置する位置を表します。
type TextPosition string

const (
	PositionTop    TextPosition = "top"    // ページ上部
	PositionCenter TextPosition = "center" // 垂直中央
	PositionBottom TextPosition = "bottom" // ページ下部（デフォルト）
)

// Normalize は、未設定や不正な値をデフォルト位置（bottom）に丸めて返します。
func (p TextPosition) Normalize() TextPosition {
	switch p {
	case PositionTop, PositionCenter, PositionBottom:
		return p
	}
	return PositionBottom
}

// Slide は、ブリーフを構成する1枚のスライドを表します。
// 生成結果の確定時には ImagePrompt と ImageURL がペアで設定されます。
// ImagePrompt だけを先に書いておき、後から一括生成で画像を補完することもできます。
// ImageData は取得済みピクセルデータの控えで、エクスポート時の
// 再ダウンロードを避けるために保持します。省略可能です。
type Slide struct {
	ID           int          `json:"id"`
	Title        string       `json:"title"`
	Text         string       `json:"text"`
	ImagePrompt  string       `json:"image_prompt,omitempty"`
	ImageURL     string       `json:"image_url,omitempty"`
	ImageData    []byte       `json:"image_data,omitempty"`
	TextPosition TextPosition `json:"text_position,omitempty"`
}

// HasImage は、スライドに埋め込み候補の画像（データまたはURL）があるかを返します。
func (s *Slide) HasImage() bool {
	return len(s.ImageData) > 0 || s.ImageURL != ""
}

// Position は、TextPosition を正規化して返します。ゼロ値は bottom 扱いです。
func (s *Slide) Position() TextPosition {
	return s.TextPosition.Normalize()
}
