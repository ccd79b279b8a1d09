package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-artbrief-kit/internal/config"
	"github.com/shouni/go-artbrief-kit/internal/pipeline"
	"github.com/shouni/go-artbrief-kit/pkg/export"

	"github.com/spf13/cobra"
)

// export コマンド固有のフラグなのだ。
var (
	exportFormat    string
	generateMissing bool
)

// exportCmd は、デッキJSONから納品文書を書き出すのだ。
var exportCmd = &cobra.Command{
	Use:   "export <deck.json | ->",
	Short: "デッキJSONから PDF / PPTX / ブリーフシートを書き出すのだ。",
	Long: `デッキJSON（ファイル、gs://...、'-'で標準入力）を読み込み、プレゼン資料を書き出すのだ。
--format で pdf / pptx / sheet / all を選べるのだよ。
--generate-missing を付けると、プロンプトだけで画像を持たないスライドを
先にまとめて生成してから書き出すのだ。`,
	Example: "  artbrief export examples/deck.json --format all -o output",
	Args:    cobra.ExactArgs(1),
	RunE:    exportCommand,
}

// init は、export コマンドのフラグを定義するのだ。
func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "all", "書き出す形式（pdf / pptx / sheet / all）なのだ。")
	exportCmd.Flags().BoolVar(&generateMissing, "generate-missing", false, "画像未保持のスライドを書き出し前に補完生成するのだ。")
}

// exportCommand は、export サブコマンドの実行ロジック本体なのだ。
func exportCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	formats, err := parseExportFormats(exportFormat)
	if err != nil {
		return err
	}

	// 基本設定をロードし、位置引数とフラグを反映するのだ
	cfg := config.LoadConfig()
	opts.DeckFile = args[0]
	if opts.OutputDir == "" {
		opts.OutputDir = cfg.OutputDir
	}
	cfg.Options = opts

	// 補完生成は画像APIを呼ぶので、キーの存在チェックは欠かせないのだ！
	if generateMissing && cfg.OpenAIAPIKey == "" {
		return fmt.Errorf("エラー: --generate-missing には環境変数 OPENAI_API_KEY が必須なのだ")
	}

	slog.Info("文書書き出しモードを起動するのだ！",
		"deck", opts.DeckFile,
		"format", exportFormat,
		"output_dir", opts.OutputDir)

	if err := pipeline.ExecuteExport(ctx, cfg, formats, generateMissing); err != nil {
		return fmt.Errorf("書き出し中にエラーが発生したのだ: %w", err)
	}

	slog.Info("納品文書の書き出しが完了したのだ！", "output_dir", opts.OutputDir)
	return nil
}

// parseExportFormats は、--format の値を書き出し対象の一覧へ展開するのだ。
func parseExportFormats(value string) ([]export.Format, error) {
	if value == "all" {
		return []export.Format{export.FormatPDF, export.FormatPPTX, export.FormatSheet}, nil
	}

	f, err := export.ParseFormat(value)
	if err != nil {
		return nil, fmt.Errorf("--format の解釈に失敗したのだ: %w", err)
	}
	return []export.Format{f}, nil
}
