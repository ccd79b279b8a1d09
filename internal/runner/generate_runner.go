package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-artbrief-kit/internal/config"
	"github.com/shouni/go-artbrief-kit/pkg/deck"
	"github.com/shouni/go-artbrief-kit/pkg/imagegen"
	"github.com/shouni/go-artbrief-kit/pkg/prompts"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// GenerateRunner は、ブリーフから画像を生成するためのインターフェース。
type GenerateRunner interface {
	// Run はブリーフ1件から画像を生成し、セッションの保留スロットへ預ける。
	Run(ctx context.Context, sess *deck.Session, fields prompts.BriefFields) (*imagegen.Result, error)
	// RunMissing はプロンプトを持つのに画像が無いスライドへ一括で画像を生成する。
	RunMissing(ctx context.Context, d *deck.Deck) (int, error)
}

// BriefGenerateRunner は、画像生成アダプターを介してブリーフを画像にする実体。
type BriefGenerateRunner struct {
	generator imagegen.Generator
}

// NewBriefGenerateRunner は、BriefGenerateRunnerの新しいインスタンスを生成して返す。
func NewBriefGenerateRunner(gen imagegen.Generator) (*BriefGenerateRunner, error) {
	if gen == nil {
		return nil, fmt.Errorf("画像生成アダプターは必須です")
	}
	return &BriefGenerateRunner{generator: gen}, nil
}

// Run はブリーフからプロンプトを組み立てて画像を生成し、結果をセッションへ預けるのだ。
// コミットするまでスライドには反映されないのだ。
func (r *BriefGenerateRunner) Run(ctx context.Context, sess *deck.Session, fields prompts.BriefFields) (*imagegen.Result, error) {
	prompt := fields.Build()
	slog.Info("ブリーフから画像を生成するのだ", "prompt_length", len(prompt))

	res, err := r.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	sess.SetPending(res.Prompt, res.URL, res.Data)
	slog.Info("生成結果を保留スロットへ預けたのだ", "url", res.URL, "bytes", len(res.Data))
	return res, nil
}

// RunMissing は並列処理を用いて、画像が欠けているスライドを埋めるメインロジックなのだ。
func (r *BriefGenerateRunner) RunMissing(ctx context.Context, d *deck.Deck) (int, error) {
	var targets []*deck.Slide
	for _, s := range d.Slides() {
		// URLだけ持つスライドはエクスポート時にダウンロードされるので対象外なのだ
		if s.ImagePrompt != "" && !s.HasImage() {
			targets = append(targets, s)
		}
	}
	if len(targets) == 0 {
		slog.Info("画像が欠けているスライドは無いのだ")
		return 0, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)

	// 設定ファイルから取得した間隔で、レートリミット（流量制限）をかけるのだ
	// Burst 2 により、開始直後に2枚までは同時にリクエストを開始できるのだ
	limiter := rate.NewLimiter(rate.Every(config.DefaultRateLimit), 2)
	slog.Info("不足画像の一括生成を開始するのだ", "count", len(targets), "interval", config.DefaultRateLimit)

	for i, s := range targets {
		i, s := i, s // ゴルーチンのクロージャ対策なのだ

		eg.Go(func() error {
			// 1. レートリミットに従って、自分の番が来るまで待機するのだ
			if err := limiter.Wait(egCtx); err != nil {
				return err
			}

			slog.Info("画像を生成中...", "slide_id", s.ID, "index", i+1, "total", len(targets))

			// 2. スライドに保存済みのプロンプトをそのまま使って生成するのだ
			res, err := r.generator.Generate(egCtx, s.ImagePrompt)
			if err != nil {
				slog.Error("画像生成に失敗したのだ", "slide_id", s.ID, "error", err)
				return fmt.Errorf("スライドID %d の画像生成に失敗しました: %w", s.ID, err)
			}

			s.ImageURL = res.URL
			s.ImageData = res.Data
			slog.Info("画像生成に成功したのだ", "slide_id", s.ID)
			return nil
		})
	}

	// すべての並列処理が完了するのを待つのだ
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	slog.Info("すべての不足画像が正常に生成されたのだ", "total", len(targets))
	return len(targets), nil
}
