package deck

import "errors"

// コレクション操作が拒否されたときに返される番兵エラーです。
// 呼び出し側は errors.Is で種別を判定できます。
var (
	// ErrLastSlide は、最後の1枚を削除しようとしたときに返されます。
	ErrLastSlide = errors.New("最後の1枚は削除できません")

	// ErrOutOfRange は、存在しないスライド番号を指定したときに返されます。
	ErrOutOfRange = errors.New("スライド番号が範囲外です")

	// ErrNothingPending は、コミット待ちの生成結果が無い状態でコミットしたときに返されます。
	ErrNothingPending = errors.New("コミット待ちの生成結果がありません")
)
