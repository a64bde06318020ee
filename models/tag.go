package models

import (
	"time"
)

type Tag struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagRating is a Tag annotated with the summed rating of its active questions.
type TagRating struct {
	Tag
	RatingTotal int `json:"rating_total"`
}
