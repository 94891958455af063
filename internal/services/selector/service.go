package selector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/rng"
)

// kidsCategories is the fixed allow-list of child-safe categories
var kidsCategories = map[string]struct{}{
	"Patriarchs & Matriarchs":     {},
	"Women of the Bible":          {},
	"Angels & Heavenly Beings":    {},
	"Parables & Symbolic Figures": {},
	"Judges & Deliverers":         {},
	"Apostles & Early Church":     {},
	"Gentiles & Foreigners":       {},
}

// categoryBooks maps a category to the book shown when a record carries
// only the generic "Bible" reference
var categoryBooks = map[string]string{
	"Patriarchs & Matriarchs":     "Genesis",
	"Prophets & Seers":            "The Prophets",
	"Kings & Rulers":              "Kings & Chronicles",
	"Women of the Bible":          "Various Scriptures",
	"Judges & Deliverers":         "Judges & Joshua",
	"Apostles & Early Church":     "Acts & Epistles",
	"Gentiles & Foreigners":       "Old & New Testament",
	"Angels & Heavenly Beings":    "Heavenly Realms",
	"Enemies & Villains":          "Historical Books",
	"Parables & Symbolic Figures": "The Gospels",
}

// tierLevels maps each difficulty tier to its record level set
var tierLevels = map[models.Difficulty][]int{
	models.DifficultyEasy:   {1, 2},
	models.DifficultyMedium: {3, 4},
	models.DifficultyHard:   {5},
	models.DifficultyKids:   {1, 2},
}

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new selector service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RiddleRepo == nil {
		return nil, errors.New("riddle repository cannot be nil")
	}
	if cfg.Roller == nil {
		return nil, errors.New("roller cannot be nil")
	}

	return &service{config: cfg}, nil
}

// GetRiddle picks one riddle for the requested difficulty or category
func (s *service) GetRiddle(ctx context.Context, input *GetRiddleInput) (*models.PresentedRiddle, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := s.simulateFetch(ctx); err != nil {
		return nil, err
	}

	records, err := s.config.RiddleRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load riddles: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("riddle repository is empty")
	}

	var pool []*models.RiddleRecord
	if input.Category != "" {
		for _, record := range records {
			if record.Category == input.Category {
				pool = append(pool, record)
			}
		}
	} else {
		levels, ok := tierLevels[input.Difficulty]
		if !ok {
			levels = tierLevels[models.DifficultyEasy]
		}
		for _, record := range records {
			if !containsLevel(levels, record.DifficultyLevel) {
				continue
			}
			if input.Difficulty == models.DifficultyKids {
				if _, safe := kidsCategories[record.Category]; !safe {
					continue
				}
			}
			pool = append(pool, record)
		}
	}

	// Small data sets may not cover every tier; never fail on that.
	if len(pool) == 0 {
		pool = records
	}

	picked := pool[s.config.Roller.Intn(len(pool))]
	return s.present(picked, records, input.Difficulty), nil
}

// GetDailyRiddles returns the deterministic riddle set for a date. The
// date string seeds a fixed generator so every player sees the same
// ordered set.
func (s *service) GetDailyRiddles(ctx context.Context, input *GetDailyRiddlesInput) (*GetDailyRiddlesOutput, error) {
	if input == nil || input.Date == "" {
		return nil, errors.New("input and date cannot be empty")
	}

	if err := s.simulateFetch(ctx); err != nil {
		return nil, err
	}

	records, err := s.config.RiddleRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load riddles: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("riddle repository is empty")
	}

	seq := rng.NewSequence(rng.HashString(input.Date))

	pool := make([]*models.RiddleRecord, len(records))
	copy(pool, records)

	var selected []*models.PresentedRiddle
	for i := 0; i < DailyRiddleCount && len(pool) > 0; i++ {
		idx := seq.Intn(len(pool))
		selected = append(selected, s.present(pool[idx], records, models.DifficultyMedium))
		pool = append(pool[:idx], pool[idx+1:]...)
	}

	return &GetDailyRiddlesOutput{Riddles: selected}, nil
}

// GetCategories returns the selectable category names
func (s *service) GetCategories(ctx context.Context) ([]string, error) {
	return s.config.RiddleRepo.GetCategories(ctx)
}

// present projects a record into a PresentedRiddle with shuffled options
func (s *service) present(record *models.RiddleRecord, all []*models.RiddleRecord, preference models.Difficulty) *models.PresentedRiddle {
	label := "Easy"
	if preference == models.DifficultyKids {
		label = "Kids"
	} else if record.DifficultyLevel >= 5 {
		label = "Hard"
	} else if record.DifficultyLevel >= 3 {
		label = "Medium"
	}

	reference := record.Reference
	if reference == "Bible" || reference == "" {
		if book, ok := categoryBooks[record.Category]; ok {
			reference = book
		} else {
			reference = "The Scriptures"
		}
	}

	return &models.PresentedRiddle{
		Question:        record.Poem,
		Options:         s.buildOptions(record, all),
		CorrectAnswer:   record.Answer,
		Reference:       reference,
		Explanation:     fmt.Sprintf("See %s.", reference),
		Difficulty:      label,
		DifficultyLevel: record.DifficultyLevel,
		Category:        record.Category,
	}
}

// buildOptions returns the record's 4 options shuffled, synthesizing
// distractors when the record carries none
func (s *service) buildOptions(record *models.RiddleRecord, all []*models.RiddleRecord) []string {
	if len(record.Options) == 4 {
		return s.shuffled(record.Options)
	}

	// Prefer distractors from the same category, never the same answer.
	var candidates []*models.RiddleRecord
	for _, other := range all {
		if other.ID != record.ID && other.Category == record.Category && other.Answer != record.Answer {
			candidates = append(candidates, other)
		}
	}
	if len(candidates) < 3 {
		candidates = candidates[:0]
		for _, other := range all {
			if other.ID != record.ID && other.Answer != record.Answer {
				candidates = append(candidates, other)
			}
		}
	}

	shuffledCandidates := make([]*models.RiddleRecord, len(candidates))
	copy(shuffledCandidates, candidates)
	s.config.Roller.Shuffle(len(shuffledCandidates), func(i, j int) {
		shuffledCandidates[i], shuffledCandidates[j] = shuffledCandidates[j], shuffledCandidates[i]
	})

	options := []string{record.Answer}
	for i := 0; i < len(shuffledCandidates) && len(options) < 4; i++ {
		options = append(options, shuffledCandidates[i].Answer)
	}

	return s.shuffled(options)
}

// shuffled returns a shuffled copy
func (s *service) shuffled(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	s.config.Roller.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// simulateFetch models the content boundary's latency
func (s *service) simulateFetch(ctx context.Context) error {
	if s.config.FetchDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.config.FetchDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func containsLevel(levels []int, level int) bool {
	for _, l := range levels {
		if l == level {
			return true
		}
	}
	return false
}
