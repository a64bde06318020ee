package main

import (
	"fmt"
	"time"

	"qa-forum/helper"
	"qa-forum/models"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	batchSize       = 1000
	defaultPassword = "qwerty"
)

// Entity counts scale off a single ratio, mirroring a site where every user
// asks a handful of questions and votes a lot.
var modelMultipliers = map[string]int{
	"user":     1,
	"tag":      1,
	"question": 10,
	"answer":   100,
	"vote":     200,
	"activity": 200,
}

var modelOrder = []string{"user", "tag", "question", "answer", "vote", "activity"}

var (
	fillRatio  int
	fillModels []string
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill the database with generated users, questions, answers, tags, votes and activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		if fillRatio < 1 {
			return fmt.Errorf("ratio must be positive, got %d", fillRatio)
		}

		db := openDB()
		filler := &dataFiller{db: db, ratio: fillRatio}

		selected := fillModels
		if len(selected) == 0 {
			selected = modelOrder
		}
		include := make(map[string]bool, len(selected))
		for _, name := range selected {
			include[name] = true
		}

		for _, name := range modelOrder {
			if !include[name] {
				continue
			}
			count := fillRatio * modelMultipliers[name]

			start := time.Now()
			if err := filler.create(name, count); err != nil {
				return fmt.Errorf("creating %s records: %w", name, err)
			}
			fmt.Printf("Created %d %s records in %.2fs\n", count, name, time.Since(start).Seconds())
		}

		fmt.Println("Recomputing denormalized rating totals...")
		return filler.recomputeRatings()
	},
}

func init() {
	fillCmd.Flags().IntVar(&fillRatio, "ratio", 0, "scale coefficient, e.g. 10000 for 10k users")
	fillCmd.Flags().StringSliceVar(&fillModels, "models", nil, "subset of models to fill (user, tag, question, answer, vote, activity)")
	fillCmd.MarkFlagRequired("ratio")
}

type dataFiller struct {
	db    *gorm.DB
	ratio int
}

func (f *dataFiller) create(name string, count int) error {
	switch name {
	case "user":
		return f.createUsers(count)
	case "tag":
		return f.createTags(count)
	case "question":
		return f.createQuestions(count)
	case "answer":
		return f.createAnswers(count)
	case "vote":
		return f.createVotes(count)
	case "activity":
		return f.createActivities(count)
	default:
		return fmt.Errorf("unknown model %q", name)
	}
}

func (f *dataFiller) createUsers(count int) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.MinCost)
	if err != nil {
		return err
	}

	users := make([]models.User, 0, count)
	for i := 1; i <= count; i++ {
		rating := (i * 37) % 1000
		users = append(users, models.User{
			Login:    fmt.Sprintf("user_%d", i),
			Email:    fmt.Sprintf("user_%d@example.com", i),
			Password: string(hashed),
			IsActive: i%250 != 0,
			IsStaff:  i%100 == 0,
			Profile: &models.UserProfile{
				DisplayName: fmt.Sprintf("Member %d", i),
				Rating:      rating,
			},
		})
	}

	return f.db.CreateInBatches(users, batchSize).Error
}

func (f *dataFiller) createTags(count int) error {
	tags := make([]models.Tag, 0, count)
	for i := 1; i <= count; i++ {
		name := fmt.Sprintf("topic-%d", i)
		tags = append(tags, models.Tag{
			Name: name,
			Slug: helper.Slugify(name),
		})
	}
	return f.db.CreateInBatches(tags, batchSize).Error
}

func (f *dataFiller) createQuestions(count int) error {
	userCount := f.ratio
	tagCount := f.ratio

	questions := make([]models.Question, 0, count)
	for i := 1; i <= count; i++ {
		authorID := uint((i-1)%userCount + 1)
		title := fmt.Sprintf("Generated question %d", i)
		questions = append(questions, models.Question{
			AuthorID: &authorID,
			Slug:     fmt.Sprintf("generated-question-%d", i),
			Title:    title,
			Content:  fmt.Sprintf("Long-form body for generated question %d.", i),
			IsActive: i%50 != 0,
			Tags: []models.Tag{
				{ID: uint((i-1)%tagCount + 1)},
				{ID: uint(i%tagCount + 1)},
			},
			CreatedAt: time.Now().Add(-time.Duration(i%30*24) * time.Hour),
		})
	}
	return f.db.CreateInBatches(questions, batchSize).Error
}

func (f *dataFiller) createAnswers(count int) error {
	userCount := f.ratio
	questionCount := f.ratio * modelMultipliers["question"]

	answers := make([]models.Answer, 0, count)
	for i := 1; i <= count; i++ {
		authorID := uint((i*7-1)%userCount + 1)
		answers = append(answers, models.Answer{
			QuestionID: uint((i-1)%questionCount + 1),
			AuthorID:   &authorID,
			Content:    fmt.Sprintf("Generated answer %d.", i),
			IsCorrect:  i%10 == 0,
			IsActive:   true,
		})
	}
	return f.db.CreateInBatches(answers, batchSize).Error
}

// createVotes maps the sequence index onto distinct (user, target) pairs so
// the per-pair uniqueness constraint never trips during bulk load.
func (f *dataFiller) createVotes(count int) error {
	userCount := f.ratio
	questionCount := f.ratio * modelMultipliers["question"]
	answerCount := f.ratio * modelMultipliers["answer"]

	votes := make([]models.Vote, 0, count)
	for i := 1; i <= count; i++ {
		userID := uint((i-1)%userCount + 1)
		targetIndex := (i - 1) / userCount

		voteType := models.VoteLike
		if i%5 == 0 {
			voteType = models.VoteDislike
		}

		vote := models.Vote{
			UserID: userID,
			Type:   voteType,
		}
		if targetIndex < questionCount {
			vote.TargetType = models.TargetQuestion
			vote.TargetID = uint(targetIndex + 1)
		} else {
			vote.TargetType = models.TargetAnswer
			vote.TargetID = uint((targetIndex-questionCount)%answerCount + 1)
		}
		votes = append(votes, vote)
	}
	return f.db.CreateInBatches(votes, batchSize).Error
}

func (f *dataFiller) createActivities(count int) error {
	userCount := f.ratio
	questionCount := f.ratio * modelMultipliers["question"]
	answerCount := f.ratio * modelMultipliers["answer"]

	types := []models.ActivityType{
		models.ActivityQuestionReceivedLike,
		models.ActivityQuestionReceivedAnswer,
		models.ActivityAnswerReceivedLike,
		models.ActivityAnswerMarkedCorrect,
		models.ActivityUserChangedAvatar,
		models.ActivityUserChangedName,
	}

	activities := make([]models.Activity, 0, count)
	for i := 1; i <= count; i++ {
		userID := uint((i-1)%userCount + 1)
		activityType := types[i%len(types)]

		activity := models.Activity{
			UserID:    userID,
			Type:      activityType,
			CreatedAt: time.Now().Add(-time.Duration(i%72) * time.Hour),
		}
		switch activityType[0] {
		case 'Q':
			activity.TargetType = models.TargetQuestion
			activity.TargetID = uint((i-1)%questionCount + 1)
		case 'A':
			activity.TargetType = models.TargetAnswer
			activity.TargetID = uint((i-1)%answerCount + 1)
		default:
			activity.TargetType = models.TargetUser
			activity.TargetID = userID
		}
		activities = append(activities, activity)
	}
	return f.db.CreateInBatches(activities, batchSize).Error
}

// recomputeRatings rebuilds the denormalized rating_total counters from the
// votes table after a bulk load.
func (f *dataFiller) recomputeRatings() error {
	questionUpdate := `
		UPDATE questions SET rating_total = COALESCE(v.total, 0)
		FROM (
			SELECT target_id, SUM(type) AS total
			FROM votes WHERE target_type = 'question'
			GROUP BY target_id
		) v
		WHERE questions.id = v.target_id
	`
	if err := f.db.Exec(questionUpdate).Error; err != nil {
		return err
	}

	answerUpdate := `
		UPDATE answers SET rating_total = COALESCE(v.total, 0)
		FROM (
			SELECT target_id, SUM(type) AS total
			FROM votes WHERE target_type = 'answer'
			GROUP BY target_id
		) v
		WHERE answers.id = v.target_id
	`
	return f.db.Exec(answerUpdate).Error
}
