package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-artbrief-kit/internal/config"
	"github.com/shouni/go-artbrief-kit/internal/pipeline"
	"github.com/shouni/go-artbrief-kit/pkg/prompts"

	"github.com/spf13/cobra"
)

// fields は、フラグから束ねるクリエイティブブリーフの10項目なのだ。
var fields = prompts.DefaultFields()

// generateCmd は、ブリーフからプロンプトを組み立てて画像を1枚生成するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "ブリーフ10項目から画像を1枚生成して保存するのだ。",
	Long: `10項目のクリエイティブブリーフをラベル付きプロンプトへ組み立て、
画像生成APIを1回だけ呼んで結果を保存するのだ。
フラグを省略した項目は定番ブリーフ（嵐の崖の銀竜）で埋まるのだよ。`,
	Example: `  artbrief generate --subject "a lighthouse" --style illustration --out output/hero.png`,
	RunE:    generateCommand,
}

// init は、ブリーフ10項目と保存先のフラグを定義するのだ。
func init() {
	f := generateCmd.Flags()
	f.StringVar(&fields.Subject, "subject", fields.Subject, "主役（被写体）なのだ。")
	f.StringVar(&fields.Action, "action", fields.Action, "主役の動きなのだ。")
	f.StringVar(&fields.Environment, "environment", fields.Environment, "舞台・環境なのだ。")
	f.StringVar(&fields.Style, "style", fields.Style, "画風なのだ。候補: "+strings.Join(prompts.Styles, " / "))
	f.StringVar(&fields.Perspective, "perspective", fields.Perspective, "カメラの視点なのだ。")
	f.StringVar(&fields.Lighting, "lighting", fields.Lighting, "光の演出なのだ。")
	f.StringVar(&fields.ColorPalette, "color-palette", fields.ColorPalette, "色調なのだ。")
	f.StringVar(&fields.KeyDetails, "key-details", fields.KeyDetails, "描き込みたいディテールなのだ。")
	f.StringVar(&fields.Atmosphere, "atmosphere", fields.Atmosphere, "空気感・ムードなのだ。")
	f.StringVar(&fields.Composition, "composition", fields.Composition, "構図の指示なのだ。")
	f.StringVar(&opts.OutputFile, "out", "", "生成画像の保存パス（ローカル or gs://...）なのだ。未指定なら出力ディレクトリ配下なのだ。")
}

// generateCommand は、generate サブコマンドの実行ロジック本体なのだ。
func generateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. スタイルの必須チェック
	if !prompts.IsValidStyle(fields.Style) {
		return fmt.Errorf("未対応のスタイル %q なのだ。候補: %s", fields.Style, strings.Join(prompts.Styles, " / "))
	}

	// 2. 環境変数等から基本設定をロードするのだ
	cfg := config.LoadConfig()
	if cfg.OpenAIAPIKey == "" {
		return fmt.Errorf("エラー: 環境変数 OPENAI_API_KEY が設定されていません。画像生成には必須なのだ")
	}
	if opts.OutputDir == "" {
		opts.OutputDir = cfg.OutputDir
	}
	cfg.Options = opts

	slog.Info("ブリーフ画像生成を起動するのだ！",
		"style", fields.Style,
		"out", opts.OutputFile,
		"output_dir", opts.OutputDir)

	// 3. パイプライン実行
	result, err := pipeline.ExecuteGenerate(ctx, cfg, fields)
	if err != nil {
		return fmt.Errorf("画像生成パイプラインの実行に失敗したのだ: %w", err)
	}

	// 4. 結果表示（組み立てたプロンプトと、API側で磨かれたプロンプトの両方を見せるのだ）
	fmt.Println("\n" + strings.Repeat("✨", 25))
	fmt.Printf("🎨 プロンプト: %s\n", result.Prompt)
	if result.RevisedPrompt != "" {
		fmt.Printf("📝 リバイズ版: %s\n", result.RevisedPrompt)
	}
	fmt.Printf("🔗 画像URL: %s\n", result.URL)
	fmt.Println(strings.Repeat("✨", 25))

	return nil
}
