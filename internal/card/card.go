// Package card projects a deck position into the unit the view draws.
package card

import (
	"fmt"
	"math"

	"principles/internal/principles"
)

// Kind distinguishes a principle card from the end card.
type Kind int

const (
	KindPrinciple Kind = iota
	KindEnd
)

// Unit is what the view shows for one deck index.
type Unit struct {
	Kind      Kind
	Principle principles.Principle
	// Position is 1-based; zero on the end card.
	Position int
	Total    int
}

// ProgressLabel returns "i / N" for principle cards and "" for the end card.
func (u Unit) ProgressLabel() string {
	if u.Kind != KindPrinciple {
		return ""
	}
	return fmt.Sprintf("%d / %d", u.Position, u.Total)
}

// Headline is the main line of the card.
func (u Unit) Headline() string {
	if u.Kind == KindEnd {
		return fmt.Sprintf("You've read all %d principles", u.Total)
	}
	return u.Principle.Text
}

// Renderer projects indices over a fixed store.
type Renderer struct {
	store *principles.Store
}

// NewRenderer returns a renderer over store.
func NewRenderer(store *principles.Store) *Renderer {
	return &Renderer{store: store}
}

// Total is N.
func (r *Renderer) Total() int {
	return r.store.Len()
}

// Project returns the principle at index with its 1-based progress, or the
// end unit for index >= N. Negative indices project the first card.
func (r *Renderer) Project(index int) Unit {
	n := r.store.Len()
	if index < 0 {
		index = 0
	}
	if index >= n {
		return Unit{Kind: KindEnd, Total: n}
	}
	p, _ := r.store.At(index)
	return Unit{
		Kind:      KindPrinciple,
		Principle: p,
		Position:  index + 1,
		Total:     n,
	}
}

// Visual is the card transform derived from the drag offset.
type Visual struct {
	TranslateX float64
	RotateDeg  float64
	Opacity    float64
}

// Transform returns the card transform for offset. While animating the card is
// fully transparent; otherwise it fades with distance down to half opacity.
func Transform(offset float64, animating bool) Visual {
	v := Visual{
		TranslateX: offset,
		RotateDeg:  offset * 0.02,
	}
	if animating {
		v.Opacity = 0
		return v
	}
	v.Opacity = math.Max(0.5, 1-math.Abs(offset)/400)
	return v
}
