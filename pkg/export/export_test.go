package export

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Run("対応形式を受け付けること", func(t *testing.T) {
		for _, s := range []string{"pdf", "pptx", "sheet"} {
			f, err := ParseFormat(s)
			require.NoError(t, err)
			assert.Equal(t, Format(s), f)
		}
	})

	t.Run("未知の形式を拒否すること", func(t *testing.T) {
		_, err := ParseFormat("docx")
		assert.Error(t, err)
	})
}

func TestFormat_FileName(t *testing.T) {
	t.Run("形式ごとの既定ファイル名が返ること", func(t *testing.T) {
		assert.Equal(t, "presentation.pdf", FormatPDF.FileName())
		assert.Equal(t, "Art_Brief.pptx", FormatPPTX.FileName())
		assert.Equal(t, "Brief_Sheet.pdf", FormatSheet.FileName())
	})
}

func TestFormat_ContentType(t *testing.T) {
	t.Run("形式ごとのMIMEタイプが返ること", func(t *testing.T) {
		assert.Equal(t, "application/pdf", FormatPDF.ContentType())
		assert.Equal(t,
			"application/vnd.openxmlformats-officedocument.presentationml.presentation",
			FormatPPTX.ContentType())
		assert.Equal(t, "application/pdf", FormatSheet.ContentType())
	})
}

func TestSlideError(t *testing.T) {
	t.Run("失敗したスライドをメッセージで特定できること", func(t *testing.T) {
		cause := errors.New("broken image")
		err := &SlideError{Format: FormatPDF, Index: 2, Title: "Finale", Err: cause}

		assert.Contains(t, err.Error(), "スライド 3")
		assert.Contains(t, err.Error(), "Finale")
		assert.ErrorIs(t, err, cause)
	})
}
