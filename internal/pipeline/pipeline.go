package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime"
	"os"

	"github.com/shouni/go-artbrief-kit/internal/builder"
	"github.com/shouni/go-artbrief-kit/internal/config"
	"github.com/shouni/go-artbrief-kit/internal/runner"
	"github.com/shouni/go-artbrief-kit/pkg/deck"
	"github.com/shouni/go-artbrief-kit/pkg/export"
	"github.com/shouni/go-artbrief-kit/pkg/imagegen"
	"github.com/shouni/go-artbrief-kit/pkg/prompts"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"github.com/shouni/go-utils/urlpath"
)

// StdinPath は、デッキJSONを標準入力から読むことを示す位置引数なのだ。
const StdinPath = "-"

// ExecuteGenerate は、ブリーフ項目からプロンプトを組み立てて画像を1枚生成し、
// 保存した上で生成結果を返すのだ。デッキには触れない単発コマンドなのだ。
func ExecuteGenerate(ctx context.Context, cfg *config.Config, fields prompts.BriefFields) (*imagegen.Result, error) {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// 生成結果は保留スロットに載るだけで、どのスライドにも確定しないのだ
	sess := deck.NewSession(config.DefaultDeckTitle)

	result, err := runBriefStep(ctx, appCtx, sess, fields)
	if err != nil {
		return nil, err
	}

	outputPath, err := resolveImagePath(cfg.Options, result.MIMEType)
	if err != nil {
		return nil, fmt.Errorf("生成画像の保存先の解決に失敗したのだ: %w", err)
	}
	if err := appCtx.Writer.Write(ctx, outputPath, bytes.NewReader(result.Data), result.MIMEType); err != nil {
		return nil, fmt.Errorf("生成画像の保存に失敗したのだ: %w", err)
	}

	slog.Info("画像の生成と保存が完了したのだ！",
		"path", outputPath,
		"url", result.URL,
		"bytes", len(result.Data),
	)
	return result, nil
}

// ExecuteExport は、デッキファイルを読み込み、指定された形式の文書を書き出すのだ。
// generateMissing が真の場合、プロンプトを持ちながら画像が未保持のスライドを先に補完するのだ。
func ExecuteExport(ctx context.Context, cfg *config.Config, formats []export.Format, generateMissing bool) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	deckPath := cfg.Options.DeckFile
	d, err := loadDeckStep(ctx, appCtx, deckPath)
	if err != nil {
		return err
	}

	if generateMissing {
		generated, err := runGenerateMissingStep(ctx, appCtx, d)
		if err != nil {
			return err
		}
		if generated > 0 {
			if deckPath == StdinPath {
				slog.Warn("標準入力のデッキは書き戻せないのだ。補完した画像はこの実行限りなのだ")
			} else {
				// 補完した画像はデッキへ書き戻し、次回の再生成コストを避けるのだ
				if err := runner.SaveDeck(ctx, appCtx.Writer, deckPath, d); err != nil {
					return fmt.Errorf("補完後のデッキ保存に失敗したのだ: %w", err)
				}
			}
		}
	}

	results, err := runExportStep(ctx, appCtx, d, formats)
	if err != nil {
		return err
	}

	slog.Info("全ての文書の書き出しが完了したのだ！", "count", len(results))
	return nil
}

// ExecuteInit は、1枚構成のスターターデッキを新規作成するのだ。
// 最初のスライドには定番ブリーフのプロンプトを添えるので、
// そのまま export --generate-missing の入力として使えるのだ。
// 既存のデッキファイルがある場合は、上書きを避けて中止するのだ。
func ExecuteInit(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	uri := cfg.Options.DeckFile
	if rc, err := appCtx.Reader.Open(ctx, uri); err == nil {
		rc.Close()
		return fmt.Errorf("デッキファイル '%s' は既に存在するのだ。上書きしたい場合は先に削除してほしいのだ", uri)
	}

	d := deck.New(config.DefaultDeckTitle)
	d.Current().ImagePrompt = prompts.DefaultFields().Build()

	if err := runner.SaveDeck(ctx, appCtx.Writer, uri, d); err != nil {
		return fmt.Errorf("スターターデッキの保存に失敗したのだ: %w", err)
	}

	slog.Info("スターターデッキを作成したのだ！", "path", uri, "title", d.Title())
	return nil
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、アプリケーションコンテキストを初期化して返すのだ。
// ライフサイクル管理用の context と設定オブジェクトを受け取るのだ。
// 初期化中にエラーが発生した場合は、AppContext のポインタとエラーを返すのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	timeout := cfg.Options.HTTPTimeout
	if timeout <= 0 {
		timeout = config.DefaultHTTPTimeout
	}
	httpClient := httpkit.New(timeout)

	gcsFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.NewInputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.NewOutputWriter()
	if err != nil {
		return nil, err
	}

	return builder.NewAppContext(cfg, httpClient, reader, writer), nil
}

// resolveImagePath は、生成画像の保存先を決めるのだ。
// --out が未指定なら、MIMEタイプから拡張子を求めて出力ディレクトリ配下に置くのだ。
// gs:// と ローカルパスの両方に対応するのだ。
func resolveImagePath(opts config.GenerateOptions, mimeType string) (string, error) {
	if opts.OutputFile != "" {
		return opts.OutputFile, nil
	}

	extension := ".png"
	if extensions, err := mime.ExtensionsByType(mimeType); err == nil && len(extensions) > 0 {
		extension = extensions[0]
	} else {
		slog.Warn("MIMEタイプから拡張子を決められなかったのだ。.png で保存するのだ", "mime_type", mimeType)
	}

	return urlpath.ResolveOutputPath(opts.OutputDir, "brief_image"+extension)
}

// loadDeckStep は、位置引数のパス（'-' なら標準入力）からデッキを読み込むのだ
func loadDeckStep(ctx context.Context, appCtx *builder.AppContext, deckPath string) (*deck.Deck, error) {
	if deckPath == StdinPath {
		d, err := runner.DecodeDeck(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("標準入力のデッキJSONの解析に失敗しました: %w", err)
		}
		return d, nil
	}

	d, err := runner.LoadDeck(ctx, appCtx.Reader, deckPath)
	if err != nil {
		return nil, fmt.Errorf("デッキファイル '%s' の読み込みに失敗しました: %w", deckPath, err)
	}
	return d, nil
}

// runBriefStep は BriefGenerateRunner を使って画像を生成し、セッションの保留スロットに載せるのだ
func runBriefStep(ctx context.Context, appCtx *builder.AppContext, sess *deck.Session, fields prompts.BriefFields) (*imagegen.Result, error) {
	slog.Info("ブリーフから画像生成を開始するのだ...", "style", fields.Style)
	genRunner, err := builder.BuildGenerateRunner(ctx, appCtx)
	if err != nil {
		return nil, fmt.Errorf("GenerateRunnerの構築に失敗したのだ: %w", err)
	}

	result, err := genRunner.Run(ctx, sess, fields)
	if err != nil {
		return nil, fmt.Errorf("画像生成に失敗したのだ: %w", err)
	}
	return result, nil
}

// runGenerateMissingStep は、画像を持たないプロンプト付きスライドを並列補完するのだ
func runGenerateMissingStep(ctx context.Context, appCtx *builder.AppContext, d *deck.Deck) (int, error) {
	slog.Info("画像未保持スライドの補完を開始するのだ...", "slides", d.Len())
	genRunner, err := builder.BuildGenerateRunner(ctx, appCtx)
	if err != nil {
		return 0, fmt.Errorf("GenerateRunnerの構築に失敗したのだ: %w", err)
	}

	generated, err := genRunner.RunMissing(ctx, d)
	if err != nil {
		return 0, fmt.Errorf("画像の補完生成に失敗したのだ: %w", err)
	}
	return generated, nil
}

// runExportStep は DocumentExportRunner を使って指定形式の文書を書き出すのだ
func runExportStep(ctx context.Context, appCtx *builder.AppContext, d *deck.Deck, formats []export.Format) ([]runner.ExportResult, error) {
	slog.Info("文書の書き出しを開始するのだ...", "formats", len(formats), "slides", d.Len())
	exportRunner, err := builder.BuildExportRunner(ctx, appCtx)
	if err != nil {
		return nil, fmt.Errorf("ExportRunnerの構築に失敗したのだ: %w", err)
	}

	results, err := exportRunner.Run(ctx, d, formats)
	if err != nil {
		return nil, fmt.Errorf("文書の書き出しに失敗したのだ: %w", err)
	}
	return results, nil
}
