package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-artbrief-kit/internal/config"
	"github.com/shouni/go-artbrief-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// initCmd は、これからブリーフ作業を始めるためのスターターデッキを作るのだ。
var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "1枚構成のスターターデッキ（JSON）を作成するのだ。",
	Long: `新しいブリーフ作業の出発点となるデッキJSONを作成するのだ。
最初のスライドには定番ブリーフのプロンプトが入っているので、
そのまま export --generate-missing で画像を付けられるのだよ。
既存のファイルは上書きしないのだ。`,
	Example: "  artbrief init\n  artbrief init briefs/campaign.json",
	Args:    cobra.MaximumNArgs(1),
	RunE:    initCommand,
}

// initCommand は、init サブコマンドの実行ロジック本体なのだ。
func initCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := config.LoadConfig()
	opts.DeckFile = config.DefaultDeckFile
	if len(args) == 1 {
		opts.DeckFile = args[0]
	}
	if opts.OutputDir == "" {
		opts.OutputDir = cfg.OutputDir
	}
	cfg.Options = opts

	slog.Info("デッキ初期化モードを起動するのだ！", "deck", opts.DeckFile)

	if err := pipeline.ExecuteInit(ctx, cfg); err != nil {
		return fmt.Errorf("デッキの初期化に失敗したのだ: %w", err)
	}

	slog.Info("新しいブリーフの準備ができたのだ！まずは generate で一枚試すのだよ", "deck", opts.DeckFile)
	return nil
}
