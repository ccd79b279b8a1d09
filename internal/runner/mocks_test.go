package runner

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/shouni/go-artbrief-kit/pkg/imagegen"
)

// --- Mocks ---

// mockGenerator は imagegen.Generator のテスト用モックなのだ。
// RunMissing は複数ゴルーチンから呼ぶので、記録はロックで守るのだ。
type mockGenerator struct {
	mu      sync.Mutex
	result  *imagegen.Result
	err     error
	calls   int
	prompts []string
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (*imagegen.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.prompts = append(m.prompts, prompt)

	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &imagegen.Result{
		Prompt:   prompt,
		URL:      "https://example.com/generated.png",
		Data:     []byte("generated-bytes"),
		MIMEType: "image/png",
	}, nil
}

// mockWriter は DocumentWriter のテスト用モックなのだ。
type mockWriter struct {
	files        map[string][]byte
	contentTypes map[string]string
	order        []string
	err          error
}

func newMockWriter() *mockWriter {
	return &mockWriter{
		files:        make(map[string][]byte),
		contentTypes: make(map[string]string),
	}
}

func (m *mockWriter) Write(ctx context.Context, path string, reader io.Reader, contentType string) error {
	if m.err != nil {
		return m.err
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.files[path] = data
	m.contentTypes[path] = contentType
	m.order = append(m.order, path)
	return nil
}

// mockOpener は DeckOpener のテスト用モックなのだ。
type mockOpener struct {
	data    []byte
	err     error
	lastURI string
}

func (m *mockOpener) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	m.lastURI = uri
	if m.err != nil {
		return nil, m.err
	}
	return io.NopCloser(bytes.NewReader(m.data)), nil
}
