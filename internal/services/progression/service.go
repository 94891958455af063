package progression

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
	profileRepo "github.com/salex1993/Who-Am-I-Bible-Riddles/internal/repositories/profile"
)

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new progression service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.ProfileRepo == nil {
		return nil, errors.New("profile repository cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &service{config: cfg}, nil
}

// Commit applies one finished game and persists the profile
func (s *service) Commit(ctx context.Context, input *CommitInput) (*CommitOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	stored, err := s.config.ProfileRepo.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile := stored.Clone()
	output := &CommitOutput{PreviousRank: profile.Rank}

	profile.GamesPlayed++
	profile.TotalXP += input.Session.Score
	if input.BestStreak > profile.BestStreak {
		profile.BestStreak = input.BestStreak
	}

	output.WisdomLevelUps = s.foldCategories(&profile, input.Session.CategoryScores)

	if input.Session.Mode == models.GameModeDaily && input.Session.Score > 0 {
		s.advanceDailyStreak(&profile, input.Date)
	}

	output.Unlocked = s.unlockAchievements(&profile, input)

	profile.Rank = models.RankForXP(profile.TotalXP)
	output.RankedUp = profile.Rank != output.PreviousRank

	if err := s.config.ProfileRepo.SaveProfile(ctx, &profileRepo.SaveProfileInput{Profile: &profile}); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	output.Profile = &profile
	return output, nil
}

// foldCategories adds the session's per-category points into the lifetime
// ledger and reports every wisdom threshold crossed
func (s *service) foldCategories(profile *models.PlayerProfile, categoryScores map[string]int) []WisdomLevelUp {
	var ups []WisdomLevelUp
	for category, points := range categoryScores {
		if points <= 0 {
			continue
		}
		before := models.WisdomLevel(profile.CategoryProgress[category])
		profile.CategoryProgress[category] += points
		after := models.WisdomLevel(profile.CategoryProgress[category])
		for level := before + 1; level <= after; level++ {
			ups = append(ups, WisdomLevelUp{Category: category, Level: level})
		}
	}
	return ups
}

// advanceDailyStreak counts a scoring daily game. A repeat on the same
// date is a no-op, the next calendar day extends the streak, any other
// gap restarts it at 1.
func (s *service) advanceDailyStreak(profile *models.PlayerProfile, date string) {
	if date == "" || date == profile.LastDailyDate {
		return
	}

	if isNextDay(profile.LastDailyDate, date) {
		profile.DailyStreak++
	} else {
		profile.DailyStreak = 1
	}
	profile.LastDailyDate = date
}

// unlockAchievements runs one ordered pass over the ladder. Rewards are
// credited as they unlock, so an early reward can push a later threshold
// over the line in the same commit.
func (s *service) unlockAchievements(profile *models.PlayerProfile, input *CommitInput) []models.Achievement {
	var unlocked []models.Achievement
	now := s.config.Clock.Now()

	for _, achievement := range models.AchievementLadder {
		if _, have := profile.Achievements[achievement.ID]; have {
			continue
		}
		if !s.earned(achievement.ID, profile, input) {
			continue
		}
		profile.Achievements[achievement.ID] = now
		profile.TotalXP += achievement.RewardXP
		unlocked = append(unlocked, achievement)
	}

	return unlocked
}

func (s *service) earned(id string, profile *models.PlayerProfile, input *CommitInput) bool {
	switch id {
	case models.AchievementFirstSteps:
		return profile.GamesPlayed >= 1
	case models.AchievementWisdomSeeker:
		return profile.TotalXP >= WisdomSeekerXP
	case models.AchievementFaithful:
		return profile.DailyStreak >= FaithfulDays
	case models.AchievementRefinersFire:
		return input.Session.Mode == models.GameModeSuddenDeath && input.Session.Score >= RefinersFireScore
	case models.AchievementUnbroken:
		return profile.BestStreak >= UnbrokenStreak
	default:
		return false
	}
}

// isNextDay reports whether b is the calendar day after a
func isNextDay(a, b string) bool {
	if a == "" {
		return false
	}
	dayA, errA := time.Parse("2006-01-02", a)
	dayB, errB := time.Parse("2006-01-02", b)
	if errA != nil || errB != nil {
		return false
	}
	return dayA.AddDate(0, 0, 1).Equal(dayB)
}
