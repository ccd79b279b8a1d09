package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultImageModel   = "dall-e-3"
	DefaultImageSize    = "1792x1024" // 16:9 に最も近い DALL-E 3 の横長サイズ
	DefaultImageQuality = "standard"
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultRateLimit    = 15 * time.Second // 一括生成で画像APIを呼ぶ間隔
	DefaultDeckTitle    = "Art Director's Brief"
	DefaultOutputDir    = "output"
	DefaultDeckFile     = "deck.json"
)

// Config はアプリケーション全体の環境設定（APIキーなど）を保持する構造体なのだ。
type Config struct {
	OpenAIAPIKey string
	ImageModel   string
	ImageSize    string
	ImageQuality string
	OutputDir    string

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	cfg := &Config{
		OpenAIAPIKey: envutil.GetEnv("OPENAI_API_KEY", ""),
		ImageModel:   envutil.GetEnv("ARTBRIEF_IMAGE_MODEL", DefaultImageModel),
		ImageSize:    envutil.GetEnv("ARTBRIEF_IMAGE_SIZE", DefaultImageSize),
		ImageQuality: envutil.GetEnv("ARTBRIEF_IMAGE_QUALITY", DefaultImageQuality),
		OutputDir:    envutil.GetEnv("ARTBRIEF_OUTPUT_DIR", DefaultOutputDir),
	}
	return cfg
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// 入出力関連
	DeckFile   string // export / init の位置引数: デッキJSONのパス（'-'で標準入力）
	OutputDir  string // --output-dir: 生成文書の保存先ディレクトリ
	OutputFile string // --out: generate が保存する画像のパス（未指定なら出力ディレクトリ配下）

	// 画像生成関連
	ImageModel   string // --model: 画像生成モデル
	ImageSize    string // --size: 出力サイズ
	ImageQuality string // --quality: standard / hd

	// 実行制御
	HTTPTimeout time.Duration // --timeout
}
