package services

import (
	"qa-forum/models"
	"qa-forum/repositories"
)

type AnswerService interface {
	CreateAnswer(questionID uint, req models.CreateAnswerRequest, userID uint) (*models.Answer, error)
	MarkCorrect(answerID uint, userID uint) error
}

type answerService struct {
	answerRepo   repositories.AnswerRepository
	questionRepo repositories.QuestionRepository
	activityRepo repositories.ActivityRepository
}

func NewAnswerService(answerRepo repositories.AnswerRepository, questionRepo repositories.QuestionRepository, activityRepo repositories.ActivityRepository) AnswerService {
	return &answerService{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		activityRepo: activityRepo,
	}
}

func (s *answerService) CreateAnswer(questionID uint, req models.CreateAnswerRequest, userID uint) (*models.Answer, error) {
	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		return nil, err
	}

	answer := &models.Answer{
		QuestionID: question.ID,
		AuthorID:   &userID,
		Content:    req.Content,
		IsActive:   true,
	}

	if err := s.answerRepo.Create(answer); err != nil {
		return nil, err
	}

	// The question's author receives the feed entry; the target is the
	// question itself.
	if question.AuthorID != nil && *question.AuthorID != userID {
		activity := &models.Activity{
			UserID:     *question.AuthorID,
			Type:       models.ActivityQuestionReceivedAnswer,
			TargetType: models.TargetQuestion,
			TargetID:   question.ID,
		}
		if err := s.activityRepo.Create(activity); err != nil {
			return nil, err
		}
	}

	return s.answerRepo.GetByID(answer.ID)
}

// MarkCorrect flags an answer as the accepted one. Only the author of the
// question may do this.
func (s *answerService) MarkCorrect(answerID uint, userID uint) error {
	answer, err := s.answerRepo.GetByID(answerID)
	if err != nil {
		return err
	}

	question, err := s.questionRepo.GetByID(answer.QuestionID)
	if err != nil {
		return err
	}

	if question.AuthorID == nil || *question.AuthorID != userID {
		return models.ErrUnauthorized
	}

	if err := s.answerRepo.MarkCorrect(answerID); err != nil {
		return err
	}

	if answer.AuthorID != nil {
		activity := &models.Activity{
			UserID:     *answer.AuthorID,
			Type:       models.ActivityAnswerMarkedCorrect,
			TargetType: models.TargetAnswer,
			TargetID:   answer.ID,
		}
		if err := s.activityRepo.Create(activity); err != nil {
			return err
		}
	}

	return nil
}
