package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/shouni/go-artbrief-kit/internal/config"

	"github.com/spf13/cobra"
)

// opts は、全コマンドで共有される実行時パラメータなのだ。
var opts config.GenerateOptions

// rootCmd は、アプリケーションの親コマンドなのだ。
var rootCmd = &cobra.Command{
	Use:   "artbrief",
	Short: "アートディレクター向けのブリーフデッキを作って書き出すCLIなのだ。",
	Long: `10項目のクリエイティブブリーフから画像を生成し、
スライドデッキ（JSON）を PDF / PPTX / ブリーフシートへ書き出すツールなのだ。`,
	SilenceUsage:      true,
	PersistentPreRunE: preRunAppE,
}

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputDir, "output-dir", "o", "", "文書と画像の保存先ディレクトリ（ローカル or gs://...）なのだ。未指定なら ARTBRIEF_OUTPUT_DIR に従うのだ。")

	// --- 画像生成の挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.ImageModel, "model", "", "使用する画像生成モデル名なのだ。未指定なら環境変数設定に従うのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.ImageSize, "size", "", "生成画像のサイズなのだ（例: 1792x1024）。")
	rootCmd.PersistentFlags().StringVar(&opts.ImageQuality, "quality", "", "生成画像の品質なのだ（standard / hd）。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "timeout", config.DefaultHTTPTimeout, "画像APIとダウンロードのタイムアウトなのだ。")
}

// preRunAppE は、コマンド実行前の共通チェックを行うのだ。
// APIキーは画像生成を伴うコマンドだけが要求するので、ここでは強制しないのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	if q := opts.ImageQuality; q != "" && q != "standard" && q != "hd" {
		return fmt.Errorf("エラー: --quality は standard か hd なのだ（指定値: %q）", q)
	}
	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	addAppFlags(rootCmd)
	rootCmd.AddCommand(
		initCmd,
		generateCmd,
		exportCmd,
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
