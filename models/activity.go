package models

import (
	"time"
)

type ActivityType string

const (
	ActivityQuestionReceivedLike   ActivityType = "Q_RECEIVED_LIKE"
	ActivityQuestionReceivedAnswer ActivityType = "Q_RECEIVED_ANSWER"
	ActivityAnswerReceivedLike     ActivityType = "A_RECEIVED_LIKE"
	ActivityAnswerMarkedCorrect    ActivityType = "A_MARKED_CORRECT"
	ActivityUserChangedAvatar      ActivityType = "U_CHANGED_AVATAR"
	ActivityUserChangedName        ActivityType = "U_CHANGED_NAME"
)

// Activity records something that happened to a user's content. The target
// points at a question for Q_* types, an answer for A_* types and the user
// themselves for U_* types.
type Activity struct {
	ID         uint         `json:"id" gorm:"primarykey"`
	UserID     uint         `json:"user_id" gorm:"not null;index"`
	User       *User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Type       ActivityType `json:"type" gorm:"not null"`
	TargetType TargetType   `json:"target_type" gorm:"not null;index:idx_activities_target"`
	TargetID   uint         `json:"target_id" gorm:"not null;index:idx_activities_target"`
	CreatedAt  time.Time    `json:"created_at"`
}
