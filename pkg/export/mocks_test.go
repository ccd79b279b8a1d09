package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// --- Mocks ---

// mockHTTPClient は HTTPClient インターフェースのテスト用モックです。
type mockHTTPClient struct {
	data    map[string][]byte
	err     error
	calls   int
	lastURL string
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.calls++
	m.lastURL = url
	if m.err != nil {
		return nil, m.err
	}
	if d, ok := m.data[url]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("unexpected url: %s", url)
}

// テスト用のダミーPNG画像（横長 32x18 の単色）を作成するヘルパー
func createDummyImageData(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 18))
	for x := 0; x < 32; x++ {
		for y := 0; y < 18; y++ {
			img.Set(x, y, color.RGBA{30, 41, 59, 255})
		}
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("failed to encode dummy image: %v", err)
	}
	return buf.Bytes()
}
