package builder

import (
	"context"
	"fmt"

	"github.com/shouni/go-artbrief-kit/internal/runner"
	"github.com/shouni/go-artbrief-kit/pkg/export"
	"github.com/shouni/go-artbrief-kit/pkg/imagegen"
)

// BuildGenerateRunner は画像生成を担当する Runner を構築します。
// APIキーが未設定の場合、ネットワークに触れる前にここで失敗するのだ。
func BuildGenerateRunner(ctx context.Context, appCtx *AppContext) (runner.GenerateRunner, error) {
	imgGen, err := InitializeImageGenerator(appCtx)
	if err != nil {
		return nil, fmt.Errorf("DallEGeneratorの初期化に失敗したのだ: %w", err)
	}

	briefRunner, err := runner.NewBriefGenerateRunner(imgGen)
	if err != nil {
		return nil, fmt.Errorf("生成ランナーの構築に失敗しました: %w", err)
	}

	return briefRunner, nil
}

// BuildExportRunner は文書の書き出しを担当する Runner を構築します。
func BuildExportRunner(ctx context.Context, appCtx *AppContext) (runner.ExportRunner, error) {
	// リゾルバは HTTP クライアントを共有し、同一 URL の重複ダウンロードを1回に抑えるのだ。
	resolver := export.NewResolver(appCtx.httpClient)

	exportRunner, err := runner.NewDocumentExportRunner(resolver, appCtx.Writer, appCtx.Options.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("エクスポートランナーの初期化に失敗しました: %w", err)
	}

	return exportRunner, nil
}

// InitializeImageGenerator は ImageGenerator を初期化します。
// モデル・サイズ・品質はフラグ指定を環境変数設定より優先するのだ。
func InitializeImageGenerator(appCtx *AppContext) (imagegen.Generator, error) {
	opts := imagegen.Options{
		Model:   appCtx.Config.ImageModel,
		Size:    appCtx.Config.ImageSize,
		Quality: appCtx.Config.ImageQuality,
	}
	if appCtx.Options.ImageModel != "" {
		opts.Model = appCtx.Options.ImageModel
	}
	if appCtx.Options.ImageSize != "" {
		opts.Size = appCtx.Options.ImageSize
	}
	if appCtx.Options.ImageQuality != "" {
		opts.Quality = appCtx.Options.ImageQuality
	}

	imgGen, err := imagegen.NewDallEGenerator(appCtx.Config.OpenAIAPIKey, appCtx.httpClient, opts)
	if err != nil {
		return nil, fmt.Errorf("DallEGeneratorの初期化に失敗したのだ: %w", err)
	}

	return imgGen, nil
}
