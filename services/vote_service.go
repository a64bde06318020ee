package services

import (
	"errors"

	"qa-forum/models"
	"qa-forum/repositories"

	"gorm.io/gorm"
)

type VoteService interface {
	CastVote(req models.CastVoteRequest, userID uint) (*models.Vote, error)
}

type voteService struct {
	voteRepo     repositories.VoteRepository
	questionRepo repositories.QuestionRepository
	answerRepo   repositories.AnswerRepository
	activityRepo repositories.ActivityRepository
}

func NewVoteService(voteRepo repositories.VoteRepository, questionRepo repositories.QuestionRepository, answerRepo repositories.AnswerRepository, activityRepo repositories.ActivityRepository) VoteService {
	return &voteService{
		voteRepo:     voteRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		activityRepo: activityRepo,
	}
}

// CastVote records a like/dislike on a question or answer. A second vote by
// the same user on the same target fails with ErrAlreadyVoted; the stored
// vote count for the pair stays at 1.
func (s *voteService) CastVote(req models.CastVoteRequest, userID uint) (*models.Vote, error) {
	if req.Type != models.VoteLike && req.Type != models.VoteDislike {
		return nil, errors.New("invalid vote type")
	}

	contentAuthorID, err := s.resolveTarget(req.TargetType, req.TargetID)
	if err != nil {
		return nil, err
	}

	vote := &models.Vote{
		UserID:     userID,
		Type:       req.Type,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
	}

	if err := s.voteRepo.Cast(vote); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrAlreadyVoted
		}
		return nil, err
	}

	// Likes land in the content author's activity feed.
	if req.Type == models.VoteLike && contentAuthorID != nil && *contentAuthorID != userID {
		activityType := models.ActivityQuestionReceivedLike
		if req.TargetType == models.TargetAnswer {
			activityType = models.ActivityAnswerReceivedLike
		}

		activity := &models.Activity{
			UserID:     *contentAuthorID,
			Type:       activityType,
			TargetType: req.TargetType,
			TargetID:   req.TargetID,
		}
		if err := s.activityRepo.Create(activity); err != nil {
			return nil, err
		}
	}

	return vote, nil
}

// resolveTarget dereferences the polymorphic target, failing fast on an
// unrecognized tag, and returns the content author's id.
func (s *voteService) resolveTarget(targetType models.TargetType, targetID uint) (*uint, error) {
	switch targetType {
	case models.TargetQuestion:
		question, err := s.questionRepo.GetByID(targetID)
		if err != nil {
			return nil, err
		}
		return question.AuthorID, nil
	case models.TargetAnswer:
		answer, err := s.answerRepo.GetByID(targetID)
		if err != nil {
			return nil, err
		}
		return answer.AuthorID, nil
	default:
		return nil, models.ErrUnknownTargetType
	}
}
