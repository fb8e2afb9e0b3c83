package models

import "gorm.io/gorm"

// QuizQuestion belongs to exactly one scenario and rewards XP when answered
// correctly
type QuizQuestion struct {
	gorm.Model
	ScenarioID   uint         `json:"scenario" gorm:"index;not null"`
	QuestionText string       `json:"question_text" gorm:"type:text"`
	XPReward     int          `json:"xp_reward" gorm:"default:10"`
	Options      []QuizOption `json:"options" gorm:"foreignKey:QuestionID"`
}

// QuizOption is one choice for a question. Exactly one option per question
// carries is_correct=true; the authoring endpoint enforces this.
type QuizOption struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	OptionText string `json:"option_text" gorm:"type:varchar(255)"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
}
