// internal/model/expression.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Expression is an immutable French/English reference pair. Expressions are
// created by seeding only and shared across articles via article_expressions.
type Expression struct {
	ExpressionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	French       string    `gorm:"not null" json:"french"`
	English      string    `gorm:"not null" json:"english"`
	CreatedAt    time.Time `json:"-"`
}

func (Expression) TableName() string {
	return "expressions"
}
