package imagegen

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// Generator は、プロンプトから画像を生成するアダプターの公開インターフェースです。
type Generator interface {
	// Generate はプロンプトから画像を1枚生成し、URLと画像バイト列を返します。
	Generate(ctx context.Context, prompt string) (*Result, error)
}

// imagesAPI は、OpenAIクライアントのうち画像生成に必要な操作だけを切り出したものです。
type imagesAPI interface {
	CreateImage(ctx context.Context, request openai.ImageRequest) (openai.ImageResponse, error)
}

// HTTPClient は、生成画像のダウンロードに必要なHTTP操作を定義します。
// go-http-kit のクライアントがこのインターフェースを満たします。
type HTTPClient interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}
