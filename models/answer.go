package models

import (
	"time"
)

type Answer struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	QuestionID  uint      `json:"question_id" gorm:"not null;index"`
	Question    *Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	AuthorID    *uint     `json:"author_id"`
	Author      *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Content     string    `json:"content" gorm:"type:text"`
	IsCorrect   bool      `json:"is_correct" gorm:"default:false"`
	RatingTotal int       `json:"rating_total" gorm:"default:0"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
