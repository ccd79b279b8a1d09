package imagegen

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// --- Mocks ---

// mockImagesAPI は imagesAPI インターフェースのテスト用モックです。
type mockImagesAPI struct {
	resp    openai.ImageResponse
	err     error
	calls   int
	lastReq openai.ImageRequest
}

func (m *mockImagesAPI) CreateImage(ctx context.Context, request openai.ImageRequest) (openai.ImageResponse, error) {
	m.calls++
	m.lastReq = request
	return m.resp, m.err
}

// mockHTTPClient は HTTPClient インターフェースのテスト用モックです。
type mockHTTPClient struct {
	data    []byte
	err     error
	calls   int
	lastURL string
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.calls++
	m.lastURL = url
	return m.data, m.err
}
