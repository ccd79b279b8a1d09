package runner

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-artbrief-kit/pkg/deck"
)

func TestDecodeDeck(t *testing.T) {
	t.Run("タイトルとスライドが復元されるのだ", func(t *testing.T) {
		input := `{
			"title": "storm brief",
			"slides": [
				{"id": 0, "title": "Intro", "text": "Hello"},
				{"id": 4, "title": "Finale", "text_position": "top"}
			]
		}`

		d, err := DecodeDeck(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, "storm brief", d.Title())
		require.Equal(t, 2, d.Len())
		assert.Equal(t, "Intro", d.Slides()[0].Title)
		assert.Equal(t, deck.PositionTop, d.Slides()[1].Position())
	})

	t.Run("タイトルが空ならデフォルトを補うのだ", func(t *testing.T) {
		d, err := DecodeDeck(strings.NewReader(`{"slides":[{"id":0,"title":"A"}]}`))

		require.NoError(t, err)
		assert.Equal(t, "Art Director's Brief", d.Title())
	})

	t.Run("壊れたJSONはエラーになるのだ", func(t *testing.T) {
		_, err := DecodeDeck(strings.NewReader(`{"title":`))
		assert.Error(t, err)
	})
}

func TestLoadDeck(t *testing.T) {
	t.Run("リーダー経由で指定パスのデッキを開くのだ", func(t *testing.T) {
		opener := &mockOpener{data: []byte(`{"title":"t","slides":[{"id":0,"title":"A"}]}`)}

		d, err := LoadDeck(context.Background(), opener, "briefs/deck.json")

		require.NoError(t, err)
		assert.Equal(t, "briefs/deck.json", opener.lastURI)
		assert.Equal(t, 1, d.Len())
	})

	t.Run("開けないファイルはエラーになるのだ", func(t *testing.T) {
		opener := &mockOpener{err: errors.New("not found")}

		_, err := LoadDeck(context.Background(), opener, "missing.json")

		assert.Error(t, err)
	})
}

func TestSaveDeck(t *testing.T) {
	t.Run("保存したJSONを読み戻すと同じデッキになるのだ", func(t *testing.T) {
		d := deck.New("storm brief")
		d.Current().ImagePrompt = "Subject: a silver dragon"
		d.Add().Title = "Second"

		w := newMockWriter()
		require.NoError(t, SaveDeck(context.Background(), w, "deck.json", d))

		assert.Equal(t, "application/json", w.contentTypes["deck.json"])

		loaded, err := DecodeDeck(bytes.NewReader(w.files["deck.json"]))
		require.NoError(t, err)
		assert.Equal(t, "storm brief", loaded.Title())
		require.Equal(t, 2, loaded.Len())
		assert.Equal(t, "Subject: a silver dragon", loaded.Slides()[0].ImagePrompt)
		assert.Equal(t, "Second", loaded.Slides()[1].Title)
	})
}
