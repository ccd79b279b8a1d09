package export

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shouni/go-artbrief-kit/pkg/deck"
)

var errNotAnImage = errors.New("取得したコンテンツが対応画像形式ではありません")

// HTTPClient は、スライド画像の取得に必要なHTTP操作を定義します。
// go-http-kit のクライアントがこのインターフェースを満たします。
type HTTPClient interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// slideImage は、1枚のスライドについて解決済みの画像です。
// 画像が得られなかった場合、Note に文書へ埋め込む注記が入ります。
// Data と Note の両方が空なら、そのスライドに画像はありません。
type slideImage struct {
	Data []byte
	MIME string
	Note string
}

type fetchOutcome struct {
	data []byte
	mime string
	err  error
}

// Resolver は、スライドの画像バイト列を解決します。
// 埋め込み済みのデータを優先し、URLしか持たないスライドはダウンロードします。
// 1回のエクスポートで同じURLを重複して取得しないよう、結果を記録します。
type Resolver struct {
	client  HTTPClient
	fetched map[string]fetchOutcome
}

// NewResolver は、新しい Resolver を返します。
// client が nil の場合、URLしか持たないスライドはすべて注記へ置き換わります。
func NewResolver(client HTTPClient) *Resolver {
	return &Resolver{
		client:  client,
		fetched: make(map[string]fetchOutcome),
	}
}

// resolve は、スライド1枚分の画像を決定します。
// 取得や検証の失敗はエラーにせず、注記付きの結果として返します。
func (r *Resolver) resolve(ctx context.Context, s *deck.Slide) slideImage {
	if len(s.ImageData) > 0 {
		mime, ok := imageMIME(s.ImageData)
		if !ok || pdfImageType(mime) == "" {
			slog.Warn("埋め込み画像を文書へ変換できないため、注記へ置き換えます",
				"slide_id", s.ID, "mime_type", mime)
			return slideImage{Note: imageNote("embedded image data is not a supported image format")}
		}
		return slideImage{Data: s.ImageData, MIME: mime}
	}

	if s.ImageURL == "" {
		return slideImage{}
	}

	if r.client == nil {
		slog.Warn("HTTPクライアントが無いため、画像URLを注記へ置き換えます",
			"slide_id", s.ID, "url", s.ImageURL)
		return slideImage{Note: imageNote("image download is disabled for " + s.ImageURL)}
	}

	out := r.fetch(ctx, s.ImageURL)
	if out.err != nil {
		slog.Warn("画像の取得に失敗したため、注記へ置き換えます",
			"slide_id", s.ID, "url", s.ImageURL, "error", out.err)
		return slideImage{Note: imageNote("failed to fetch " + s.ImageURL)}
	}
	return slideImage{Data: out.data, MIME: out.mime}
}

// fetch は、URLの取得結果を記録しながらダウンロードします。
func (r *Resolver) fetch(ctx context.Context, url string) fetchOutcome {
	if out, seen := r.fetched[url]; seen {
		return out
	}

	var out fetchOutcome
	out.data, out.err = r.client.FetchBytes(ctx, url)
	if out.err == nil {
		mime, ok := imageMIME(out.data)
		if !ok || pdfImageType(mime) == "" {
			out = fetchOutcome{err: errNotAnImage}
		} else {
			out.mime = mime
		}
	}

	r.fetched[url] = out
	return out
}

// imageNote は、画像の代わりに文書へ載せる注記テキストを組み立てます。
func imageNote(reason string) string {
	return "[image unavailable: " + reason + "]"
}
