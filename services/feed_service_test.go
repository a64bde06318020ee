package services

import (
	"testing"

	"qa-forum/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedFixture() (*fakeActivityRepo, *fakeQuestionRepo, *fakeAnswerRepo) {
	question := &models.Question{ID: 3, Slug: "foo", Title: "How do slugs work?"}

	activityRepo := &fakeActivityRepo{}
	questionRepo := &fakeQuestionRepo{questions: map[uint]*models.Question{3: question}}
	answerRepo := &fakeAnswerRepo{answers: map[uint]*models.Answer{
		9: {ID: 9, QuestionID: 3, Question: question},
	}}

	return activityRepo, questionRepo, answerRepo
}

func TestFeedQuestionReceivedLike(t *testing.T) {
	activityRepo, questionRepo, answerRepo := feedFixture()
	activityRepo.activities = []models.Activity{
		{UserID: 1, Type: models.ActivityQuestionReceivedLike, TargetType: models.TargetQuestion, TargetID: 3},
	}

	svc := NewFeedService(activityRepo, questionRepo, answerRepo)
	items, err := svc.RecentActivity(1, 10)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "received a like on question: How do slugs work?", items[0].Description)
	assert.Equal(t, "/questions/question/3/foo/", items[0].LinkURL)
}

func TestFeedQuestionReceivedAnswer(t *testing.T) {
	activityRepo, questionRepo, answerRepo := feedFixture()
	activityRepo.activities = []models.Activity{
		{UserID: 1, Type: models.ActivityQuestionReceivedAnswer, TargetType: models.TargetQuestion, TargetID: 3},
	}

	svc := NewFeedService(activityRepo, questionRepo, answerRepo)
	items, err := svc.RecentActivity(1, 10)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "received an answer on question: How do slugs work?", items[0].Description)
	assert.Equal(t, "/questions/question/3/foo/", items[0].LinkURL)
}

func TestFeedAnswerMarkedCorrectFragmentLink(t *testing.T) {
	activityRepo, questionRepo, answerRepo := feedFixture()
	activityRepo.activities = []models.Activity{
		{UserID: 1, Type: models.ActivityAnswerMarkedCorrect, TargetType: models.TargetAnswer, TargetID: 9},
	}

	svc := NewFeedService(activityRepo, questionRepo, answerRepo)
	items, err := svc.RecentActivity(1, 10)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "/questions/question/3/foo/#9", items[0].LinkURL)
	assert.Contains(t, items[0].Description, "How do slugs work?")
}

func TestFeedAnswerReceivedLikeLinksParentQuestion(t *testing.T) {
	activityRepo, questionRepo, answerRepo := feedFixture()
	activityRepo.activities = []models.Activity{
		{UserID: 1, Type: models.ActivityAnswerReceivedLike, TargetType: models.TargetAnswer, TargetID: 9},
	}

	svc := NewFeedService(activityRepo, questionRepo, answerRepo)
	items, err := svc.RecentActivity(1, 10)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "received a like on answer to How do slugs work?", items[0].Description)
	assert.Equal(t, "/questions/question/3/foo/", items[0].LinkURL, "plain like carries no fragment")
}

func TestFeedUserActivitiesLinkProfile(t *testing.T) {
	activityRepo, questionRepo, answerRepo := feedFixture()
	activityRepo.activities = []models.Activity{
		{UserID: 7, Type: models.ActivityUserChangedAvatar, TargetType: models.TargetUser, TargetID: 7},
		{UserID: 7, Type: models.ActivityUserChangedName, TargetType: models.TargetUser, TargetID: 7},
	}

	svc := NewFeedService(activityRepo, questionRepo, answerRepo)
	items, err := svc.RecentActivity(7, 10)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "changed their avatar", items[0].Description)
	assert.Equal(t, "/users/7/", items[0].LinkURL)
	assert.Equal(t, "changed their display name", items[1].Description)
}

func TestFeedUnknownActivityTypeFailsLoudly(t *testing.T) {
	activityRepo, questionRepo, answerRepo := feedFixture()
	activityRepo.activities = []models.Activity{
		{UserID: 1, Type: "Q_SOMETHING_ELSE", TargetType: models.TargetQuestion, TargetID: 3},
	}

	svc := NewFeedService(activityRepo, questionRepo, answerRepo)
	_, err := svc.RecentActivity(1, 10)

	assert.ErrorIs(t, err, models.ErrUnknownActivityType)
}

func TestFeedHonorsCount(t *testing.T) {
	activityRepo, questionRepo, answerRepo := feedFixture()
	for i := 0; i < 20; i++ {
		activityRepo.activities = append(activityRepo.activities, models.Activity{
			UserID: 1, Type: models.ActivityQuestionReceivedLike, TargetType: models.TargetQuestion, TargetID: 3,
		})
	}

	svc := NewFeedService(activityRepo, questionRepo, answerRepo)
	items, err := svc.RecentActivity(1, 10)

	require.NoError(t, err)
	assert.Len(t, items, 10)
}
