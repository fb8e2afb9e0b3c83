package models

import (
	"time"

	"gorm.io/gorm"
)

// UserAnswer records one user's submission for one question. Append-only:
// the unique (user, question) index rejects re-answering instead of
// overwriting, and no update path exists.
type UserAnswer struct {
	gorm.Model
	UserID         uint      `json:"user" gorm:"index:idx_user_question,unique;not null"`
	QuestionID     uint      `json:"question" gorm:"index:idx_user_question,unique;not null"`
	SelectedOption string    `json:"selected_option" gorm:"type:varchar(1)"` // option letter label, A-Z by position
	IsCorrect      bool      `json:"is_correct" gorm:"default:false"`
	AnsweredAt     time.Time `json:"answered_at" gorm:"autoCreateTime"`
}
