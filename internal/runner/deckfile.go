package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shouni/go-artbrief-kit/internal/config"
	"github.com/shouni/go-artbrief-kit/pkg/deck"
)

// DeckOpener は、デッキ定義ファイルの読み込み元。
// go-remote-io の InputReader がこのインターフェースを満たす。
type DeckOpener interface {
	Open(ctx context.Context, uri string) (io.ReadCloser, error)
}

// DocumentWriter は、デッキや生成文書の保存先。
// go-remote-io の OutputWriter がこのインターフェースを満たす。
type DocumentWriter interface {
	Write(ctx context.Context, path string, reader io.Reader, contentType string) error
}

// deckFile は、デッキJSONの永続化表現。
type deckFile struct {
	Title  string       `json:"title"`
	Slides []deck.Slide `json:"slides"`
}

// LoadDeck は、デッキJSONを読み込んでデッキを復元するのだ。
func LoadDeck(ctx context.Context, reader DeckOpener, uri string) (*deck.Deck, error) {
	rc, err := reader.Open(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("デッキファイルを開けませんでした (%s): %w", uri, err)
	}
	defer rc.Close()

	d, err := DecodeDeck(rc)
	if err != nil {
		return nil, fmt.Errorf("デッキJSONの解析に失敗しました (%s): %w", uri, err)
	}
	return d, nil
}

// DecodeDeck は、ストリームからデッキJSONを読み取ってデッキを復元するのだ。
// タイトルが空の入力にはデフォルトのタイトルを補うのだ。
func DecodeDeck(r io.Reader) (*deck.Deck, error) {
	var f deckFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, err
	}

	if f.Title == "" {
		f.Title = config.DefaultDeckTitle
	}
	return deck.Load(f.Title, f.Slides), nil
}

// SaveDeck は、デッキをJSONとして保存するのだ。
func SaveDeck(ctx context.Context, writer DocumentWriter, path string, d *deck.Deck) error {
	slides := make([]deck.Slide, 0, d.Len())
	for _, s := range d.Slides() {
		slides = append(slides, *s)
	}

	data, err := json.MarshalIndent(deckFile{Title: d.Title(), Slides: slides}, "", "  ")
	if err != nil {
		return fmt.Errorf("デッキJSONへの変換に失敗しました: %w", err)
	}

	if err := writer.Write(ctx, path, bytes.NewReader(data), "application/json"); err != nil {
		return fmt.Errorf("デッキファイルの保存に失敗しました (%s): %w", path, err)
	}
	return nil
}
