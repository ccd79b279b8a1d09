// Package imagegen は、OpenAI DALL-E による画像生成と生成画像のダウンロードを提供します。
package imagegen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Options は、画像生成リクエストの調整パラメータです。
// ゼロ値のフィールドにはデフォルト値が適用されます。
type Options struct {
	Model   string // 生成モデル（デフォルト: dall-e-3）
	Size    string // 出力サイズ（デフォルト: 1792x1024、16:9に最も近い横長）
	Quality string // 品質（standard / hd）
}

func (o Options) withDefaults() Options {
	if o.Model == "" {
		o.Model = openai.CreateImageModelDallE3
	}
	if o.Size == "" {
		o.Size = openai.CreateImageSize1792x1024
	}
	if o.Quality == "" {
		o.Quality = openai.CreateImageQualityStandard
	}
	return o
}

// DallEGenerator は、OpenAI の画像生成APIを呼び出して結果をダウンロードする Generator 実装です。
type DallEGenerator struct {
	api    imagesAPI
	client HTTPClient
	opts   Options
}

// DallEGenerator が Generator を満たすことを保証します。
var _ Generator = (*DallEGenerator)(nil)

// NewDallEGenerator は、新しい DallEGenerator を生成して返します。
// APIキーが空の場合は、ネットワークへ接続する前に ErrMissingAPIKey で失敗します。
func NewDallEGenerator(apiKey string, httpClient HTTPClient, opts Options) (*DallEGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("DallEGeneratorの初期化に失敗しました: %w", ErrMissingAPIKey)
	}
	if httpClient == nil {
		return nil, errors.New("HTTPクライアントは必須です")
	}

	return &DallEGenerator{
		api:    openai.NewClient(apiKey),
		client: httpClient,
		opts:   opts.withDefaults(),
	}, nil
}

// Generate は、プロンプトから画像を1枚生成し、ダウンロード済みの結果を返します。
// 失敗時は errors.Is で判別可能な番兵エラーへ分類して返します。リトライは行いません。
func (g *DallEGenerator) Generate(ctx context.Context, prompt string) (*Result, error) {
	if g.api == nil {
		return nil, fmt.Errorf("画像生成を実行できません: %w", ErrMissingAPIKey)
	}

	slog.Info("画像生成を開始します",
		"model", g.opts.Model,
		"size", g.opts.Size,
		"quality", g.opts.Quality,
		"prompt_length", len(prompt),
	)

	resp, err := g.api.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          g.opts.Model,
		N:              1,
		Size:           g.opts.Size,
		Quality:        g.opts.Quality,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return nil, classifyAPIError(err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return nil, fmt.Errorf("%w: レスポンスに画像URLが含まれていません", ErrUpstream)
	}

	url := resp.Data[0].URL
	data, mimeType, err := g.download(ctx, url)
	if err != nil {
		return nil, err
	}

	slog.Info("画像生成が完了しました", "bytes", len(data), "mime_type", mimeType)

	return &Result{
		Prompt:        prompt,
		RevisedPrompt: resp.Data[0].RevisedPrompt,
		URL:           url,
		Data:          data,
		MIMEType:      mimeType,
	}, nil
}

// download は、生成画像のURLからバイト列を取得し、画像であることを検証します。
func (g *DallEGenerator) download(ctx context.Context, url string) ([]byte, string, error) {
	data, err := g.client.FetchBytes(ctx, url)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, "", fmt.Errorf("%w: 画像ではないコンテンツを受信しました (%s)", ErrDownloadFailed, mimeType)
	}
	return data, mimeType, nil
}

// classifyAPIError は、OpenAI APIのエラーを呼び出し側が判別できる番兵エラーへ分類します。
func classifyAPIError(err error) error {
	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	switch {
	case apiErr.HTTPStatusCode == http.StatusUnauthorized,
		strings.Contains(apiErr.Message, "Incorrect API key"):
		return fmt.Errorf("%w: %s", ErrInvalidAPIKey, apiErr.Message)
	case fmt.Sprint(apiErr.Code) == "content_policy_violation":
		return fmt.Errorf("%w: %s", ErrContentPolicy, apiErr.Message)
	default:
		return fmt.Errorf("%w: %s", ErrUpstream, apiErr.Message)
	}
}
