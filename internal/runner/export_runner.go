package runner

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-artbrief-kit/internal/config"
	"github.com/shouni/go-artbrief-kit/pkg/deck"
	"github.com/shouni/go-artbrief-kit/pkg/export"

	"github.com/shouni/go-utils/urlpath"
)

// ExportRunner は、デッキを文書化して保存するためのインターフェース。
type ExportRunner interface {
	// Run は指定された各形式でデッキをエクスポートし、保存結果のリストを返す。
	Run(ctx context.Context, d *deck.Deck, formats []export.Format) ([]ExportResult, error)
}

// ExportResult は、1形式分の保存結果。
type ExportResult struct {
	Format export.Format // 出力した文書形式
	Path   string        // 保存先のパス
	Bytes  int           // 文書のサイズ
}

// DocumentExportRunner は、形式ごとのエクスポーターを束ねて順に実行する実体。
type DocumentExportRunner struct {
	exporters map[export.Format]export.Exporter
	writer    DocumentWriter
	outputDir string
}

// NewDocumentExportRunner は、DocumentExportRunnerの新しいインスタンスを生成して返す。
// 全形式が同じ resolver を共有するため、同じ画像URLのダウンロードは1回で済むのだ。
func NewDocumentExportRunner(resolver *export.Resolver, writer DocumentWriter, outputDir string) (*DocumentExportRunner, error) {
	if writer == nil {
		return nil, fmt.Errorf("OutputWriter は必須です")
	}
	if outputDir == "" {
		outputDir = config.DefaultOutputDir
	}

	return &DocumentExportRunner{
		exporters: map[export.Format]export.Exporter{
			export.FormatPDF:   export.NewPDFExporter(resolver),
			export.FormatPPTX:  export.NewPPTXExporter(resolver),
			export.FormatSheet: export.NewBriefSheetExporter(resolver),
		},
		writer:    writer,
		outputDir: outputDir,
	}, nil
}

// Run は各形式のエクスポートと保存を順番に実行するのだ。
// 1形式でも失敗したら、その時点で処理を打ち切るのだ。
func (r *DocumentExportRunner) Run(ctx context.Context, d *deck.Deck, formats []export.Format) ([]ExportResult, error) {
	results := make([]ExportResult, 0, len(formats))

	for _, f := range formats {
		exp, ok := r.exporters[f]
		if !ok {
			return nil, fmt.Errorf("未対応のエクスポート形式です: %s", f)
		}

		slog.Info("エクスポートを開始するのだ", "format", f, "slides", d.Len())
		data, err := exp.Export(ctx, d)
		if err != nil {
			return nil, err
		}

		// gs:// と ローカルパスの両方を考慮して保存先を組み立てるのだ
		path, err := urlpath.ResolveOutputPath(r.outputDir, f.FileName())
		if err != nil {
			return nil, fmt.Errorf("保存先パスの解決に失敗しました (%s): %w", r.outputDir, err)
		}
		if err := r.writer.Write(ctx, path, bytes.NewReader(data), f.ContentType()); err != nil {
			return nil, fmt.Errorf("%s の保存に失敗しました: %w", path, err)
		}

		slog.Info("エクスポートが完了したのだ", "format", f, "path", path, "bytes", len(data))
		results = append(results, ExportResult{Format: f, Path: path, Bytes: len(data)})
	}

	return results, nil
}
