package services

import (
	"fmt"

	"qa-forum/models"
	"qa-forum/repositories"
)

// FeedService turns a user's recent activities into human-readable feed
// entries with navigable links.
type FeedService interface {
	RecentActivity(userID uint, count int) ([]models.FeedItem, error)
}

type feedService struct {
	activityRepo repositories.ActivityRepository
	questionRepo repositories.QuestionRepository
	answerRepo   repositories.AnswerRepository
}

func NewFeedService(activityRepo repositories.ActivityRepository, questionRepo repositories.QuestionRepository, answerRepo repositories.AnswerRepository) FeedService {
	return &feedService{
		activityRepo: activityRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
	}
}

var activityTemplates = map[models.ActivityType]string{
	models.ActivityQuestionReceivedLike:   "received a like on question: %s",
	models.ActivityQuestionReceivedAnswer: "received an answer on question: %s",
	models.ActivityAnswerReceivedLike:     "received a like on answer to %s",
	models.ActivityAnswerMarkedCorrect:    "had an answer marked correct on %s",
	models.ActivityUserChangedAvatar:      "changed their avatar",
	models.ActivityUserChangedName:        "changed their display name",
}

func (s *feedService) RecentActivity(userID uint, count int) ([]models.FeedItem, error) {
	activities, err := s.activityRepo.GetRecentByUser(userID, count)
	if err != nil {
		return nil, err
	}

	items := make([]models.FeedItem, 0, len(activities))
	for _, activity := range activities {
		item, err := s.formatActivity(activity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (s *feedService) formatActivity(activity models.Activity) (models.FeedItem, error) {
	template, ok := activityTemplates[activity.Type]
	if !ok {
		return models.FeedItem{}, fmt.Errorf("%w: %q", models.ErrUnknownActivityType, activity.Type)
	}

	switch activity.Type {
	case models.ActivityQuestionReceivedLike, models.ActivityQuestionReceivedAnswer:
		question, err := s.questionRepo.GetByID(activity.TargetID)
		if err != nil {
			return models.FeedItem{}, err
		}
		return models.FeedItem{
			Description: fmt.Sprintf(template, question.Title),
			LinkURL:     discussionURL(question.ID, question.Slug),
		}, nil

	case models.ActivityAnswerReceivedLike, models.ActivityAnswerMarkedCorrect:
		answer, err := s.answerRepo.GetByID(activity.TargetID)
		if err != nil {
			return models.FeedItem{}, err
		}
		question := answer.Question
		if question == nil {
			loaded, err := s.questionRepo.GetByID(answer.QuestionID)
			if err != nil {
				return models.FeedItem{}, err
			}
			question = loaded
		}

		link := discussionURL(question.ID, question.Slug)
		if activity.Type == models.ActivityAnswerMarkedCorrect {
			// TODO Fix incorrect linking to answers not on the first page
			// of the paginated discussion view.
			link = fmt.Sprintf("%s#%d", link, answer.ID)
		}
		return models.FeedItem{
			Description: fmt.Sprintf(template, question.Title),
			LinkURL:     link,
		}, nil

	case models.ActivityUserChangedAvatar, models.ActivityUserChangedName:
		return models.FeedItem{
			Description: template,
			LinkURL:     fmt.Sprintf("/users/%d/", activity.TargetID),
		}, nil
	}

	return models.FeedItem{}, fmt.Errorf("%w: %q", models.ErrUnknownActivityType, activity.Type)
}

func discussionURL(questionID uint, slug string) string {
	return fmt.Sprintf("/questions/question/%d/%s/", questionID, slug)
}
