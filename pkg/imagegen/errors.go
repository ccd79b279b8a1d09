package imagegen

import "errors"

// 画像生成の失敗理由を呼び出し側で判別するための番兵エラー群です。
// errors.Is で照合してください。
var (
	// ErrMissingAPIKey は、APIキーが未設定のままアダプターを使おうとしたことを示します。
	// この失敗ではネットワークへのアクセスは一切発生しません。
	ErrMissingAPIKey = errors.New("APIキーが設定されていません")

	// ErrInvalidAPIKey は、設定済みのAPIキーが認証で拒否されたことを示します。
	ErrInvalidAPIKey = errors.New("APIキーが無効です")

	// ErrContentPolicy は、プロンプトがコンテンツポリシーに抵触したことを示します。
	ErrContentPolicy = errors.New("プロンプトがコンテンツポリシーに抵触しました")

	// ErrDownloadFailed は、生成自体は成功したが画像のダウンロードに失敗したことを示します。
	ErrDownloadFailed = errors.New("生成画像のダウンロードに失敗しました")

	// ErrUpstream は、上記のいずれにも分類できないAPI側の失敗を示します。
	ErrUpstream = errors.New("画像生成APIで不明なエラーが発生しました")
)
