package imagegen

// Result は、画像生成1回分の成果物です。
// Data には生成画像をダウンロード済みのバイト列が必ず入ります。
type Result struct {
	// Prompt は生成に使用した最終プロンプトです。
	Prompt string
	// RevisedPrompt は、生成側が書き換えた場合の実際のプロンプトです。
	RevisedPrompt string
	// URL は生成画像の取得元URLです。
	URL string
	// Data はダウンロード済みの画像バイト列です。
	Data []byte
	// MIMEType は Data から判定したコンテンツ種別です。
	MIMEType string
}
