package runner

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-artbrief-kit/pkg/deck"
	"github.com/shouni/go-artbrief-kit/pkg/export"
)

func TestNewDocumentExportRunner(t *testing.T) {
	t.Run("writerがnilなら構築に失敗するのだ", func(t *testing.T) {
		_, err := NewDocumentExportRunner(nil, nil, "out")
		assert.Error(t, err)
	})
}

func TestDocumentExportRunner_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("指定した全形式が出力ディレクトリ配下へ保存されるのだ", func(t *testing.T) {
		w := newMockWriter()
		r, err := NewDocumentExportRunner(nil, w, "out")
		require.NoError(t, err)

		d := deck.New("storm brief")
		d.Add()

		results, err := r.Run(ctx, d, []export.Format{export.FormatPDF, export.FormatPPTX, export.FormatSheet})

		require.NoError(t, err)
		require.Len(t, results, 3)

		wantPaths := []string{
			filepath.Join("out", "presentation.pdf"),
			filepath.Join("out", "Art_Brief.pptx"),
			filepath.Join("out", "Brief_Sheet.pdf"),
		}
		assert.Equal(t, wantPaths, w.order)
		for i, res := range results {
			assert.Equal(t, wantPaths[i], res.Path)
			assert.Positive(t, res.Bytes)
			assert.NotEmpty(t, w.files[res.Path])
		}
		assert.Equal(t, "application/pdf", w.contentTypes[wantPaths[0]])
		assert.Equal(t,
			"application/vnd.openxmlformats-officedocument.presentationml.presentation",
			w.contentTypes[wantPaths[1]])
	})

	t.Run("出力ディレクトリ未指定ならデフォルトへ保存するのだ", func(t *testing.T) {
		w := newMockWriter()
		r, err := NewDocumentExportRunner(nil, w, "")
		require.NoError(t, err)

		_, err = r.Run(ctx, deck.New(""), []export.Format{export.FormatPDF})

		require.NoError(t, err)
		require.Len(t, w.order, 1)
		assert.Equal(t, filepath.Join("output", "presentation.pdf"), w.order[0])
	})

	t.Run("gs://の出力ディレクトリでもパスが壊れないのだ", func(t *testing.T) {
		w := newMockWriter()
		r, err := NewDocumentExportRunner(nil, w, "gs://assets/briefs")
		require.NoError(t, err)

		_, err = r.Run(ctx, deck.New(""), []export.Format{export.FormatPDF})

		require.NoError(t, err)
		require.Len(t, w.order, 1)
		assert.Equal(t, "gs://assets/briefs/presentation.pdf", w.order[0])
	})

	t.Run("未対応の形式は保存前に拒否するのだ", func(t *testing.T) {
		w := newMockWriter()
		r, err := NewDocumentExportRunner(nil, w, "out")
		require.NoError(t, err)

		_, err = r.Run(ctx, deck.New(""), []export.Format{export.Format("docx")})

		require.Error(t, err)
		assert.Empty(t, w.order, "保存は一切行われないはずなのだ")
	})

	t.Run("エクスポートに失敗したら後続の形式を処理しないのだ", func(t *testing.T) {
		// PNGシグネチャだけ本物で中身が壊れた埋め込み画像なのだ
		corrupt := append([]byte("\x89PNG\r\n\x1a\n"), 0xFF, 0xFF, 0xFF, 0xFF)
		d := deck.New("")
		d.Current().ImageData = corrupt

		w := newMockWriter()
		r, err := NewDocumentExportRunner(nil, w, "out")
		require.NoError(t, err)

		_, err = r.Run(ctx, d, []export.Format{export.FormatPDF, export.FormatPPTX})

		require.Error(t, err)
		var slideErr *export.SlideError
		assert.True(t, errors.As(err, &slideErr), "SlideErrorがそのまま届くはずなのだ: %v", err)
		assert.Empty(t, w.order)
	})

	t.Run("保存に失敗したらエラーを返すのだ", func(t *testing.T) {
		w := newMockWriter()
		w.err = errors.New("disk full")
		r, err := NewDocumentExportRunner(nil, w, "out")
		require.NoError(t, err)

		_, err = r.Run(ctx, deck.New(""), []export.Format{export.FormatPDF})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "保存に失敗しました")
	})
}
