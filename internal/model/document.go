// internal/model/document.go
package model

import "github.com/google/uuid"

// ArticleSummary is the list-view projection of an article.
type ArticleSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Prompt    string    `json:"prompt"`
	Published bool      `json:"published"`
}

// OptionView is one candidate completion as served to the exercise renderer.
type OptionView struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
	Error   string `json:"error,omitempty"`
}

// BlankView carries a blank's identity and its options in display order.
type BlankView struct {
	ID      uuid.UUID    `json:"id"`
	Options []OptionView `json:"options"`
}

// SegmentView is one ordered unit of the assembled document: either literal
// text (Type TEXT) or a blank (Type BLANK).
type SegmentView struct {
	Type  SegmentType `json:"type"`
	Text  string      `json:"text,omitempty"`
	Blank *BlankView  `json:"blank,omitempty"`
}

// ExpressionView is the flattened French/English pair in the document.
type ExpressionView struct {
	French  string `json:"french"`
	English string `json:"english"`
}

// ArticleDocument is the fully assembled, denormalized exercise document:
// everything the renderer needs in one read. It is immutable once built;
// the shuffle stage works on copies.
type ArticleDocument struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Prompt      string           `json:"prompt"`
	Segments    []SegmentView    `json:"segments"`
	Expressions []ExpressionView `json:"expressions"`
}

// Blanks returns the document's blanks in reading order.
func (d *ArticleDocument) Blanks() []BlankView {
	var blanks []BlankView
	for _, seg := range d.Segments {
		if seg.Type == SegmentBlank && seg.Blank != nil {
			blanks = append(blanks, *seg.Blank)
		}
	}
	return blanks
}
