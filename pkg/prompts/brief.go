// Package prompts は、アートディレクション用の構造化された画像生成プロンプトを組み立てます。
package prompts

import (
	"slices"
	"strings"
)

// OutputSpecSuffix は、すべてのプロンプト末尾へ固定で付与する出力仕様です。
const OutputSpecSuffix = "Output Specs: 16:9 aspect ratio, 3840x2160"

// Styles は、Style フィールドに指定できる画風の選択肢です。
var Styles = []string{
	"digital matte painting, hyper-realistic",
	"illustration",
	"abstract",
	"photorealistic",
	"cel-shaded anime",
}

// IsValidStyle は、指定された画風が選択肢に含まれるかを判定します。
func IsValidStyle(style string) bool {
	return slices.Contains(Styles, style)
}

// BriefFields は、画像生成ブリーフを構成する10個の創作要素です。
// 空のフィールドはプロンプトから除外されます。
type BriefFields struct {
	Subject      string `json:"subject"`
	Action       string `json:"action"`
	Environment  string `json:"environment"`
	Style        string `json:"style"`
	Perspective  string `json:"perspective"`
	Lighting     string `json:"lighting"`
	ColorPalette string `json:"color_palette"`
	KeyDetails   string `json:"key_details"`
	Atmosphere   string `json:"atmosphere"`
	Composition  string `json:"composition"`
}

// DefaultFields は、フォームの初期値となるサンプルブリーフを返します。
func DefaultFields() BriefFields {
	return BriefFields{
		Subject:      "a silver dragon perched on a jagged cliff",
		Action:       "roaring toward the stormy sky",
		Environment:  "craggy seaside coast at dusk",
		Style:        "digital matte painting, hyper-realistic",
		Perspective:  "low-angle shot",
		Lighting:     "dramatic backlight with lightning flashes",
		ColorPalette: "dark slate grays with electric blue highlights",
		KeyDetails:   "swirling mist around wings, ancient carved runes on cliff face",
		Atmosphere:   "tense and awe-inspiring",
		Composition:  "dragon silhouette centered against lightning bolts",
	}
}

// Build は、ラベル付きの各要素をカンマ区切りで連結し、出力仕様を末尾に付けた
// 最終プロンプトを構築します。すべて空の場合は出力仕様のみを返します。
func (f BriefFields) Build() string {
	pairs := []struct {
		label string
		value string
	}{
		{"Subject", f.Subject},
		{"Action", f.Action},
		{"Environment", f.Environment},
		{"Style", f.Style},
		{"Perspective", f.Perspective},
		{"Lighting", f.Lighting},
		{"Color Palette", f.ColorPalette},
		{"Key Details", f.KeyDetails},
		{"Atmosphere", f.Atmosphere},
		{"Composition", f.Composition},
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		v := strings.TrimSpace(p.value)
		if v == "" {
			continue
		}
		parts = append(parts, p.label+": "+v)
	}

	if len(parts) == 0 {
		return OutputSpecSuffix
	}
	return strings.Join(parts, ", ") + ". " + OutputSpecSuffix
}
