package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-artbrief-kit/pkg/deck"
)

func TestBriefSheetExporter_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("プロンプトとサムネイル付きのブリーフシートが生成されること", func(t *testing.T) {
		d := deck.New("storm brief")
		s := d.Current()
		s.Text = "Opening scene"
		s.ImagePrompt = "Subject: a silver dragon. Output Specs: 16:9 aspect ratio, 3840x2160"
		s.ImageData = createDummyImageData(t)
		d.Add()

		out, err := NewBriefSheetExporter(nil).Export(ctx, d)

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "PDFのマジックナンバーで始まるはず")
	})

	t.Run("プロンプトの無いデッキでも生成できること", func(t *testing.T) {
		d := deck.New("")
		d.Add()

		out, err := NewBriefSheetExporter(nil).Export(ctx, d)

		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})

	t.Run("取得できない画像は注記として載ること", func(t *testing.T) {
		httpMock := &mockHTTPClient{err: assert.AnError}
		d := deck.New("")
		d.Current().ImageURL = "https://example.com/gone.png"

		out, err := NewBriefSheetExporter(NewResolver(httpMock)).Export(ctx, d)

		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})
}
