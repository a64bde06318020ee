package services

import (
	"time"

	"qa-forum/models"
	"qa-forum/repositories"

	"gorm.io/gorm"
)

// Hand-written fakes over the repository interfaces. Embedding the interface
// keeps them small; calling an unstubbed method panics, which is what we want
// in a test.

type fakeActivityRepo struct {
	repositories.ActivityRepository
	activities []models.Activity
	created    []models.Activity
}

func (f *fakeActivityRepo) GetRecentByUser(userID uint, count int) ([]models.Activity, error) {
	if len(f.activities) > count {
		return f.activities[:count], nil
	}
	return f.activities, nil
}

func (f *fakeActivityRepo) Create(activity *models.Activity) error {
	f.created = append(f.created, *activity)
	return nil
}

type fakeQuestionRepo struct {
	repositories.QuestionRepository
	questions     map[uint]*models.Question
	created       []models.Question
	existingSlugs map[string]bool

	hotCutoff   time.Time
	hotDisliked []uint
}

func (f *fakeQuestionRepo) GetByID(id uint) (*models.Question, error) {
	question, ok := f.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return question, nil
}

func (f *fakeQuestionRepo) Create(question *models.Question) error {
	question.ID = uint(len(f.created) + 1)
	f.created = append(f.created, *question)
	if f.questions == nil {
		f.questions = map[uint]*models.Question{}
	}
	f.questions[question.ID] = question
	return nil
}

func (f *fakeQuestionRepo) ExistsBySlug(slug string) (bool, error) {
	return f.existingSlugs[slug], nil
}

func (f *fakeQuestionRepo) GetHotList(cutoff time.Time, dislikedIDs []uint, page, pageSize int) ([]models.QuestionListItem, int64, error) {
	f.hotCutoff = cutoff
	f.hotDisliked = dislikedIDs
	return []models.QuestionListItem{}, 0, nil
}

type fakeAnswerRepo struct {
	repositories.AnswerRepository
	answers map[uint]*models.Answer
}

func (f *fakeAnswerRepo) GetByID(id uint) (*models.Answer, error) {
	answer, ok := f.answers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return answer, nil
}

type fakeVoteRepo struct {
	repositories.VoteRepository
	castErr  error
	cast     []models.Vote
	disliked []uint
}

func (f *fakeVoteRepo) Cast(vote *models.Vote) error {
	if f.castErr != nil {
		return f.castErr
	}
	f.cast = append(f.cast, *vote)
	return nil
}

func (f *fakeVoteRepo) DislikedQuestionIDs(userID uint) ([]uint, error) {
	return f.disliked, nil
}

type fakeTagRepo struct {
	repositories.TagRepository
	tagsByName   map[string]*models.Tag
	created      []models.Tag
	popular      []models.TagRating
	popularCalls int
}

func (f *fakeTagRepo) GetByName(name string) (*models.Tag, error) {
	tag, ok := f.tagsByName[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tag, nil
}

func (f *fakeTagRepo) Create(tag *models.Tag) error {
	tag.ID = uint(len(f.created) + 100)
	f.created = append(f.created, *tag)
	return nil
}

func (f *fakeTagRepo) GetPopular(count int) ([]models.TagRating, error) {
	f.popularCalls++
	return f.popular, nil
}

type fakeUserRepo struct {
	repositories.UserRepository
	users         map[uint]*models.User
	bestMembers   []models.User
	bestErr       error
	bestCalls     int
	savedProfiles []models.UserProfile
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetBestMembers(count int) ([]models.User, error) {
	f.bestCalls++
	if f.bestErr != nil {
		return nil, f.bestErr
	}
	if len(f.bestMembers) > count {
		return f.bestMembers[:count], nil
	}
	return f.bestMembers, nil
}

func (f *fakeUserRepo) UpdateProfile(profile *models.UserProfile) error {
	f.savedProfiles = append(f.savedProfiles, *profile)
	return nil
}
