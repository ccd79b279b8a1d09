package deck

// PendingGeneration は、生成済みでまだスライドに反映されていない
// 画像1件分の記録です。
type PendingGeneration struct {
	Prompt string
	URL    string
	Data   []byte
}

// Session は、1ユーザーセッション分の編集状態を保持します。
// 編集対象のデッキと、コミット待ちの生成結果（最大1件）からなります。
// 操作はすべて同期的で、単一アクターから順番に呼ばれる前提です。
type Session struct {
	deck    *Deck
	pending *PendingGeneration
}

// NewSession は、新規デッキを編集対象とするセッションを返します。
func NewSession(title string) *Session {
	return &Session{deck: New(title)}
}

// NewSessionWith は、既存のデッキを編集対象とするセッションを返します。
// d が nil の場合は新規デッキで開始します。
func NewSessionWith(d *Deck) *Session {
	if d == nil {
		d = New("")
	}
	return &Session{deck: d}
}

// Deck は、編集対象のデッキを返します。
func (s *Session) Deck() *Deck { return s.deck }

// SetPending は、生成結果を保留スロットへ格納します。既存の保留値は
// 上書きされます。保持されるのは常に最新の1件だけです。
func (s *Session) SetPending(prompt, url string, data []byte) {
	s.pending = &PendingGeneration{Prompt: prompt, URL: url, Data: data}
}

// Pending は、保留中の生成結果を返します。スロットが空なら false を返します。
func (s *Session) Pending() (*PendingGeneration, bool) {
	if s.pending == nil {
		return nil, false
	}
	return s.pending, true
}

// Commit は、保留中の生成結果を index のスライドへ反映し、スロットを
// 空にします。スロットが空なら ErrNothingPending、index が不正なら
// ErrOutOfRange を返し、どちらの場合も状態は変化しません。
func (s *Session) Commit(index int) error {
	if s.pending == nil {
		return ErrNothingPending
	}
	if err := s.deck.check(index); err != nil {
		return err
	}

	target := s.deck.slides[index]
	target.ImagePrompt = s.pending.Prompt
	target.ImageURL = s.pending.URL
	target.ImageData = s.pending.Data
	s.pending = nil
	return nil
}

// CommitCurrent は、保留中の生成結果を編集対象のスライドへ反映します。
func (s *Session) CommitCurrent() error {
	return s.Commit(s.deck.CurrentIndex())
}

// ClearPending は、保留中の生成結果をコミットせずに破棄します。
func (s *Session) ClearPending() { s.pending = nil }
