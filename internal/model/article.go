// internal/model/article.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SegmentType distinguishes literal text segments from fill-in blanks.
type SegmentType string

const (
	SegmentText  SegmentType = "TEXT"
	SegmentBlank SegmentType = "BLANK"
)

// Article is one exercise unit: an ordered body of segments plus the key
// expressions the learner is practicing. Articles are created by seeding only
// and never mutated by the running application.
type Article struct {
	ArticleID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Prompt    string    `gorm:"not null" json:"prompt"`
	Content   *string   `json:"content,omitempty"`
	Published bool      `gorm:"not null;default:false" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations (Preload)
	Segments    []ArticleSegment    `gorm:"foreignKey:ArticleID;references:ArticleID" json:"segments,omitempty"`
	Expressions []ArticleExpression `gorm:"foreignKey:ArticleID;references:ArticleID" json:"expressions,omitempty"`
}

func (Article) TableName() string {
	return "articles"
}

// ArticleSegment is one ordered unit of an article body. Order values are
// unique and contiguous from 0 within an article; the rendering path
// concatenates segments strictly in order. A TEXT segment carries Content,
// a BLANK segment carries no inline content and owns exactly one Blank.
type ArticleSegment struct {
	SegmentID uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	ArticleID uuid.UUID   `gorm:"type:uuid;not null;index" json:"-"`
	Order     int         `gorm:"column:order;not null" json:"order"`
	Type      SegmentType `gorm:"type:varchar(8);not null" json:"type"`
	Content   *string     `json:"content"`
	CreatedAt time.Time   `json:"-"`
	UpdatedAt time.Time   `json:"-"`

	Blank *Blank `gorm:"foreignKey:SegmentID;references:SegmentID" json:"blank"`
}

func (ArticleSegment) TableName() string {
	return "article_segments"
}

// Blank is a multiple-choice gap owned by exactly one BLANK segment.
// Position is the blank's index within the article (0-based, reading order).
type Blank struct {
	BlankID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SegmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	Position  int       `gorm:"not null" json:"position"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Options []Option `gorm:"foreignKey:BlankID;references:BlankID" json:"options"`
}

func (Blank) TableName() string {
	return "blanks"
}

// Option is one candidate completion for a blank. Exactly one option per
// blank carries Correct=true; that invariant is an authoring contract
// enforced by seed-time validation, not by the schema or the serve path.
// Error is the explanatory note shown to the learner and is populated only
// on incorrect options.
type Option struct {
	OptionID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BlankID   uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Text      string    `gorm:"not null" json:"text"`
	Correct   bool      `gorm:"not null;default:false" json:"correct"`
	Error     *string   `json:"error"`
	CreatedAt time.Time `json:"-"`

	Position int `gorm:"not null" json:"-"` // authored display order, pre-shuffle
}

func (Option) TableName() string {
	return "options"
}

// ArticleExpression links an article to one of its key expressions (m:n join).
type ArticleExpression struct {
	ArticleID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	ExpressionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`

	Expression *Expression `gorm:"foreignKey:ExpressionID;references:ExpressionID" json:"expression,omitempty"`
}

func (ArticleExpression) TableName() string {
	return "article_expressions"
}
