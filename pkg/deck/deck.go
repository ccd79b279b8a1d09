// Package deck は、アートブリーフを構成するスライドの順序付きコレクションと、
// 1ユーザーセッション分の編集状態を管理します。
package deck

import (
	"fmt"
	"log/slog"
)

// 新規デッキの先頭スライドに与えるデフォルト値です。
const (
	initialSlideTitle = "Slide 1: Title"
	initialSlideText  = "Add your bullet points here."
)

// newSlideTitle は、追加スライドのデフォルトタイトルを組み立てます。
func newSlideTitle(id int) string {
	return fmt.Sprintf("Slide %d: New Slide", id+1)
}

// Deck は、プレゼンテーション順に並んだスライドの集合と編集カーソルを管理します。
//
// 不変条件: スライドは常に1枚以上存在し、カーソルは常に有効なインデックスを
// 指します。ID は単調増加カウンターから採番され、削除後も再利用されません。
// 単一セッション・単一アクターからの同期的な利用を前提とし、ロックは行いません。
type Deck struct {
	title   string
	slides  []*Slide
	current int
	nextID  int
}

// New は、デフォルトの1枚を持つ新しい Deck を返します。
func New(title string) *Deck {
	d := &Deck{title: title}
	d.reset()
	return d
}

// Load は、デッキ定義から復元した Deck を返します。既存の ID は保持し、
// 採番カウンターは最大 ID+1 から再開します。カーソルは先頭を指します。
// スライドが1枚も無い場合はデフォルトの1枚で初期化します。
func Load(title string, slides []Slide) *Deck {
	d := &Deck{title: title}
	if len(slides) == 0 {
		d.reset()
		return d
	}

	d.slides = make([]*Slide, len(slides))
	for i := range slides {
		s := slides[i]
		s.TextPosition = s.TextPosition.Normalize()
		d.slides[i] = &s
		if s.ID >= d.nextID {
			d.nextID = s.ID + 1
		}
	}
	return d
}

// reset は、コレクションをデフォルトの1枚へ初期化します。採番は継続します。
func (d *Deck) reset() {
	s := &Slide{
		ID:           d.nextID,
		Title:        initialSlideTitle,
		Text:         initialSlideText,
		TextPosition: PositionBottom,
	}
	d.nextID++
	d.slides = []*Slide{s}
	d.current = 0
}

// Add は、新しいスライドを末尾に追加し、それを編集対象にして返します。
// 失敗することはありません。
func (d *Deck) Add() *Slide {
	s := &Slide{
		ID:           d.nextID,
		Title:        newSlideTitle(d.nextID),
		TextPosition: PositionBottom,
	}
	d.nextID++
	d.slides = append(d.slides, s)
	d.current = len(d.slides) - 1
	return s
}

// Delete は、index のスライドを削除します。最後の1枚は削除できず
// ErrLastSlide を返します。拒否された場合、状態は一切変化しません。
// 削除位置がカーソル以前なら、カーソルを1つ戻します（下限 0）。
func (d *Deck) Delete(index int) error {
	if err := d.check(index); err != nil {
		return err
	}
	if len(d.slides) == 1 {
		return ErrLastSlide
	}

	d.slides = append(d.slides[:index], d.slides[index+1:]...)
	if index <= d.current {
		d.current = max(d.current-1, 0)
	}
	return nil
}

// MoveUp は、index のスライドを1つ前へ移動し、カーソルを移動先に合わせます。
// 先頭のスライドに対しては何もしません。
func (d *Deck) MoveUp(index int) error {
	if err := d.check(index); err != nil {
		return err
	}
	if index == 0 {
		return nil
	}

	d.slides[index-1], d.slides[index] = d.slides[index], d.slides[index-1]
	d.current = index - 1
	return nil
}

// MoveDown は、index のスライドを1つ後ろへ移動し、カーソルを移動先に合わせます。
// 末尾のスライドに対しては何もしません。
func (d *Deck) MoveDown(index int) error {
	if err := d.check(index); err != nil {
		return err
	}
	if index == len(d.slides)-1 {
		return nil
	}

	d.slides[index], d.slides[index+1] = d.slides[index+1], d.slides[index]
	d.current = index + 1
	return nil
}

// Select は、index のスライドを編集対象にします。
func (d *Deck) Select(index int) error {
	if err := d.check(index); err != nil {
		return err
	}
	d.current = index
	return nil
}

// Current は、編集対象のスライドを返します。万一コレクションが空に
// なっていた場合は、デフォルトの1枚へ自己修復してそれを返します。
// 通常の操作経路ではこの復旧に到達することはありません。
func (d *Deck) Current() *Slide {
	if len(d.slides) == 0 {
		slog.Warn("スライドが空になっていたため、デフォルトの1枚へ復旧します")
		d.reset()
	}
	return d.slides[d.current]
}

// Len は、スライドの枚数を返します。
func (d *Deck) Len() int { return len(d.slides) }

// CurrentIndex は、編集カーソルの位置を返します。
func (d *Deck) CurrentIndex() int { return d.current }

// Title は、デッキのタイトルを返します。
func (d *Deck) Title() string { return d.title }

// Slides は、プレゼンテーション順のスライド列を返します。
// 返されるスライスは内部状態を共有します。
func (d *Deck) Slides() []*Slide { return d.slides }

// check は、index がコレクションの範囲内にあるかを検証します。
func (d *Deck) check(index int) error {
	if index < 0 || index >= len(d.slides) {
		return fmt.Errorf("スライド番号 %d は範囲外です (全%d枚): %w", index, len(d.slides), ErrOutOfRange)
	}
	return nil
}
