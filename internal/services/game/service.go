package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/services/leaderboard"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/services/messaging"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/services/progression"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/services/scoring"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/services/selector"
)

const fetchErrorMessage = "The scroll could not be opened. Please try again."

// service owns all session state. Mutation is copy-on-write: the session
// and party config are replaced whole, never patched in place, so every
// callback and tick observes a consistent snapshot.
type service struct {
	config *Config

	mu sync.Mutex

	screen   Screen
	session  models.GameSession
	partyCfg models.PartyConfig

	queue     []models.Turn
	turnIndex int

	dailySet []*models.PresentedRiddle

	riddle   *models.PresentedRiddle
	question questionState
	feedback Feedback

	ascensionPending bool

	questionDeadline time.Time
	globalDeadline   time.Time
	advanceAt        time.Time

	bestStreak int
	gameOver   bool
	committed  bool
	commit     *progression.CommitOutput
	board      *leaderboard.SubmitScoreOutput

	errorMessage string
}

// New creates a new game machine at the start screen
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Selector == nil {
		return nil, errors.New("selector cannot be nil")
	}
	if cfg.PartyService == nil {
		return nil, errors.New("party service cannot be nil")
	}
	if cfg.Engine == nil {
		return nil, errors.New("engine cannot be nil")
	}
	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}
	if cfg.Progression == nil {
		return nil, errors.New("progression service cannot be nil")
	}
	if cfg.Leaderboard == nil {
		return nil, errors.New("leaderboard service cannot be nil")
	}
	if cfg.Notifier == nil {
		return nil, errors.New("notifier cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	svc := &service{
		config: cfg,
		screen: ScreenStart,
	}

	// The persisted device record is read once here so the session
	// reports it before the player beats it in-process.
	if board, err := cfg.Leaderboard.GetBoard(context.Background()); err != nil {
		log.Warn().Err(err).Msg("high score load failed")
	} else {
		svc.session.HighScore = board.HighScore
	}

	return svc, nil
}

// Snapshot returns a consistent view for rendering
func (s *service) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := &Snapshot{
		Screen:            s.screen,
		Session:           s.session.Clone(),
		Party:             s.partyCfg.Clone(),
		TurnIndex:         s.turnIndex,
		TurnCount:         len(s.queue),
		HintLevel:         s.question.hintLevel,
		Hints:             append([]string(nil), s.question.hints...),
		RemovedOptions:    append([]string(nil), s.question.removed...),
		Selected:          s.question.selected,
		Resolved:          s.question.resolved,
		Feedback:          s.feedback,
		AscensionPending:  s.ascensionPending,
		QuestionRemaining: s.remaining(s.questionDeadline),
		GlobalRemaining:   s.remaining(s.globalDeadline),
		ErrorMessage:      s.errorMessage,
		Commit:            s.commit,
		Board:             s.board,
	}
	if s.riddle != nil {
		riddle := *s.riddle
		snapshot.Riddle = &riddle
	}
	if turn := s.currentTurn(); turn != nil {
		t := *turn
		snapshot.Turn = &t
	}
	return snapshot
}

// Start leaves the start screen
func (s *service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != ScreenStart {
		return nil
	}
	s.screen = ScreenSetupMode
	return nil
}

// SetAvatar records the player's avatar
func (s *service) SetAvatar(avatar string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.session.Clone()
	session.Avatar = avatar
	s.session = session
	return nil
}

// ChooseMode picks the game mode
func (s *service) ChooseMode(ctx context.Context, mode models.GameMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != ScreenSetupMode {
		return nil
	}

	switch mode {
	case models.GameModeSingle:
		s.resetSession(mode, models.DifficultyEasy)
		s.screen = ScreenSetupDifficulty

	case models.GameModeParty:
		s.resetSession(mode, models.DifficultyEasy)
		if len(s.partyCfg.Teams) == 0 {
			s.partyCfg = s.config.PartyService.DefaultConfig()
		}
		s.screen = ScreenSetupParty

	case models.GameModeDaily:
		s.resetSession(mode, models.DifficultyMedium)
		return s.startDaily(ctx)

	case models.GameModeSuddenDeath:
		s.resetSession(mode, models.DifficultyHard)
		log.Info().Msg("sudden death started")
		return s.fetchAndPlay(ctx)

	default:
		return fmt.Errorf("unknown game mode %q", mode)
	}
	return nil
}

// SetPartyConfig replaces the party roster during party setup
func (s *service) SetPartyConfig(cfg models.PartyConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != ScreenSetupParty {
		return nil
	}
	s.partyCfg = cfg.Clone()
	return nil
}

// ConfirmParty moves from party setup to difficulty selection
func (s *service) ConfirmParty() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != ScreenSetupParty {
		return nil
	}
	s.screen = ScreenSetupDifficulty
	return nil
}

// BrowseCategories opens the category picker
func (s *service) BrowseCategories() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != ScreenSetupDifficulty {
		return nil
	}
	s.screen = ScreenSetupCategory
	return nil
}

// ChooseCategory starts a category game at the medium tier
func (s *service) ChooseCategory(ctx context.Context, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != ScreenSetupCategory {
		return nil
	}

	session := s.session.Clone()
	session.Category = category
	session.Difficulty = models.DifficultyMedium
	s.session = session

	return s.beginGame(ctx)
}

// ChooseDifficulty starts the game at the picked tier
func (s *service) ChooseDifficulty(ctx context.Context, difficulty models.Difficulty) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != ScreenSetupDifficulty {
		return nil
	}

	session := s.session.Clone()
	session.Difficulty = difficulty
	s.session = session

	return s.beginGame(ctx)
}

// beginGame starts play for single and party games after setup
func (s *service) beginGame(ctx context.Context) error {
	if s.session.Mode == models.GameModeParty {
		cfg := s.partyCfg
		if s.session.Difficulty == models.DifficultyKids {
			cfg = s.config.PartyService.SetSeriesLength(cfg, KidsPartyRounds)
		}
		cfg = s.config.PartyService.ResetScores(cfg)
		s.partyCfg = cfg
		s.queue = s.config.PartyService.BuildTurnQueue(cfg)
		s.turnIndex = 0

		log.Info().Int("turns", len(s.queue)).Str("flow", string(cfg.Flow)).Msg("party started")

		// Young players pass the device without a formal hand-off.
		if s.session.Difficulty == models.DifficultyKids {
			return s.fetchAndPlay(ctx)
		}
		return s.showTurnTransition()
	}

	if s.session.Mode == models.GameModeSingle && s.session.Difficulty != models.DifficultyKids {
		s.globalDeadline = s.config.Clock.Now().Add(GlobalBudget)
	}
	return s.fetchAndPlay(ctx)
}

// BeginTurn leaves the turn hand-off screen
func (s *service) BeginTurn(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != ScreenTurnTransition {
		return nil
	}
	return s.fetchAndPlay(ctx)
}

// Answer resolves the chosen option
func (s *service) Answer(ctx context.Context, option string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if option == "" {
		return ErrMissingOption
	}
	if !s.answerable() {
		return nil
	}
	return s.resolve(ctx, option, false)
}

// Skip abandons the current question and advances immediately
func (s *service) Skip(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.answerable() {
		return nil
	}

	out, err := s.config.Engine.Skip(&scoring.SkipInput{
		Session:    s.session,
		Teams:      s.partyCfg.Teams,
		TurnTeamID: s.currentTeamID(),
	})
	if err != nil {
		return err
	}
	s.session = out.Session
	s.partyCfg.Teams = out.Teams
	s.clearQuestionTimer()

	if out.GameOver {
		return s.finishGame(ctx)
	}
	return s.advance(ctx)
}

// Hint reveals the next hint
func (s *service) Hint(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.answerable() || s.riddle == nil {
		return nil
	}

	out, err := s.config.Engine.Hint(&scoring.HintInput{
		Session:    s.session,
		Teams:      s.partyCfg.Teams,
		TurnTeamID: s.currentTeamID(),
		HintLevel:  s.question.hintLevel,
		Selected:   s.question.resolved,
	})
	if err != nil {
		return err
	}
	if out.Refused {
		return nil
	}

	s.session = out.Session
	s.partyCfg.Teams = out.Teams
	s.question.hintLevel = out.HintLevel

	// Hints reveal the category first, the scripture second.
	switch out.HintLevel {
	case 1:
		s.question.hints = append(s.question.hints, fmt.Sprintf("Category: %s", s.riddle.Category))
	case 2:
		s.question.hints = append(s.question.hints, fmt.Sprintf("Scripture: %s", s.riddle.Reference))
	}
	return nil
}

// FiftyFifty fires the power-up
func (s *service) FiftyFifty(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.answerable() || s.riddle == nil {
		return nil
	}

	out, err := s.config.Engine.FiftyFifty(&scoring.FiftyFiftyInput{
		Session:    s.session,
		Teams:      s.partyCfg.Teams,
		TurnTeamID: s.currentTeamID(),
		Riddle:     s.riddle,
		Used:       s.question.fiftyUsed,
		Selected:   s.question.resolved,
	})
	if err != nil {
		return err
	}
	if out.Refused {
		return nil
	}

	s.session = out.Session
	s.partyCfg.Teams = out.Teams
	s.question.fiftyUsed = true
	s.question.removed = out.Removed
	return nil
}

// AcceptAscension upgrades the session to medium and continues
func (s *service) AcceptAscension(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != ScreenPlaying || !s.ascensionPending {
		return nil
	}

	session := s.session.Clone()
	session.Difficulty = models.DifficultyMedium
	s.session = session
	s.ascensionPending = false

	log.Info().Msg("ascension accepted")
	return s.advance(ctx)
}

// DeclineAscension continues at the easy tier
func (s *service) DeclineAscension(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != ScreenPlaying || !s.ascensionPending {
		return nil
	}
	s.ascensionPending = false
	return s.advance(ctx)
}

// Tick advances the clocks. Ticks outside play, and ticks landing after
// a screen change, are no-ops.
func (s *service) Tick(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != ScreenPlaying {
		return nil
	}
	now := s.config.Clock.Now()

	if s.question.resolved {
		if s.ascensionPending || now.Before(s.advanceAt) {
			return nil
		}
		if s.gameOver {
			return s.finishGame(ctx)
		}
		return s.advance(ctx)
	}

	if !s.globalDeadline.IsZero() && !now.Before(s.globalDeadline) {
		log.Info().Msg("global timer expired")
		s.clearTimers()
		return s.finishGame(ctx)
	}

	if !s.questionDeadline.IsZero() && !now.Before(s.questionDeadline) {
		return s.resolve(ctx, "", true)
	}
	return nil
}

// EndGame finishes the game at the player's request
func (s *service) EndGame(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != ScreenPlaying {
		return nil
	}
	s.clearTimers()
	return s.finishGame(ctx)
}

// Retry re-runs the failed fetch from the error screen
func (s *service) Retry(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != ScreenError {
		return nil
	}
	s.errorMessage = ""

	if s.session.Mode == models.GameModeDaily && len(s.dailySet) == 0 {
		return s.startDaily(ctx)
	}
	return s.fetchAndPlay(ctx)
}

// Home abandons everything and returns to the start screen
func (s *service) Home() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetGame()
	s.resetSession("", models.DifficultyEasy)
	s.screen = ScreenStart
	return nil
}

// PlayAgain returns to setup. Single games keep the picked mode and go
// straight to the difficulty screen; everything else re-picks the mode.
func (s *service) PlayAgain() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != ScreenGameSummary {
		return nil
	}

	mode := s.session.Mode
	s.resetGame()
	if mode == models.GameModeSingle {
		s.resetSession(mode, models.DifficultyEasy)
		s.screen = ScreenSetupDifficulty
	} else {
		s.resetSession("", models.DifficultyEasy)
		s.screen = ScreenSetupMode
	}
	return nil
}

// Share copies the share text for the finished game
func (s *service) Share(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != ScreenGameSummary {
		return nil
	}

	out, err := s.config.Messaging.BuildShareText(&messaging.BuildShareTextInput{
		Mode:       s.session.Mode,
		Score:      s.session.Score,
		BestStreak: s.bestStreak,
		Difficulty: s.session.Difficulty,
		Date:       s.session.Date,
		Teams:      s.partyCfg.Teams,
	})
	if err != nil {
		return err
	}
	s.config.Notifier.CopyShareText(out.Text)
	return nil
}

// SubmitInitials offers the finished score to the leaderboard
func (s *service) SubmitInitials(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != ScreenGameSummary || s.session.Mode == models.GameModeParty {
		return nil
	}

	out, err := s.config.Leaderboard.SubmitScore(ctx, &leaderboard.SubmitScoreInput{
		Name:       name,
		Score:      s.session.Score,
		Avatar:     s.session.Avatar,
		Difficulty: s.session.Difficulty,
	})
	if err != nil {
		return err
	}
	s.board = out
	return nil
}

// resolve settles the active question as an answer or a timeout
func (s *service) resolve(ctx context.Context, option string, timeout bool) error {
	out, err := s.config.Engine.Answer(&scoring.AnswerInput{
		Session:    s.session,
		Teams:      s.partyCfg.Teams,
		TurnTeamID: s.currentTeamID(),
		Riddle:     s.riddle,
		Selected:   option,
		Timeout:    timeout,
	})
	if err != nil {
		return err
	}

	s.session = out.Session
	s.partyCfg.Teams = out.Teams
	s.question.selected = option
	s.question.resolved = true
	s.question.correct = out.Correct
	s.clearQuestionTimer()

	if s.session.Streak > s.bestStreak {
		s.bestStreak = s.session.Streak
	}

	feedback, err := s.config.Messaging.GetFeedbackMessage(&messaging.GetFeedbackMessageInput{
		Correct: out.Correct,
		Answer:  s.riddle.CorrectAnswer,
		Streak:  s.session.Streak,
		Kids:    s.session.Difficulty == models.DifficultyKids,
	})
	if err != nil {
		return err
	}
	s.feedback = Feedback{Title: feedback.Title, Message: feedback.Message}

	if out.Correct {
		s.config.Notifier.NotifyCorrect()
	} else {
		s.config.Notifier.NotifyWrong()
	}

	s.gameOver = out.GameOver
	s.ascensionPending = out.AscensionOffer
	s.advanceAt = s.config.Clock.Now().Add(out.FeedbackDelay)
	return nil
}

// advance routes past a settled question to the next turn, question or
// the summary
func (s *service) advance(ctx context.Context) error {
	switch s.session.Mode {
	case models.GameModeParty:
		s.turnIndex++
		if s.turnIndex >= len(s.queue) {
			return s.finishGame(ctx)
		}
		if s.session.Difficulty == models.DifficultyKids {
			return s.fetchAndPlay(ctx)
		}
		return s.showTurnTransition()

	case models.GameModeDaily:
		session := s.session.Clone()
		session.DailyIndex++
		s.session = session
		if s.session.DailyIndex >= len(s.dailySet) {
			return s.finishGame(ctx)
		}
		s.presentRiddle(s.dailySet[s.session.DailyIndex])
		return nil

	default:
		return s.fetchAndPlay(ctx)
	}
}

// startDaily fetches the date's fixed riddle set and starts play
func (s *service) startDaily(ctx context.Context) error {
	date := s.config.Clock.Now().Format("2006-01-02")

	session := s.session.Clone()
	session.Date = date
	session.DailyIndex = 0
	s.session = session

	s.screen = ScreenLoading
	out, err := s.config.Selector.GetDailyRiddles(ctx, &selector.GetDailyRiddlesInput{Date: date})
	if err != nil {
		log.Warn().Err(err).Msg("daily fetch failed")
		s.toError()
		return nil
	}

	log.Info().Str("date", date).Msg("daily challenge started")
	s.dailySet = out.Riddles
	s.presentRiddle(s.dailySet[0])
	return nil
}

// fetchAndPlay fetches the next riddle for the session settings
func (s *service) fetchAndPlay(ctx context.Context) error {
	s.screen = ScreenLoading
	riddle, err := s.config.Selector.GetRiddle(ctx, &selector.GetRiddleInput{
		Difficulty: s.session.Difficulty,
		Category:   s.session.Category,
	})
	if err != nil {
		log.Warn().Err(err).Msg("riddle fetch failed")
		s.toError()
		return nil
	}

	s.presentRiddle(riddle)
	return nil
}

// presentRiddle installs a riddle and arms the question clock
func (s *service) presentRiddle(riddle *models.PresentedRiddle) {
	s.riddle = riddle
	s.question = questionState{}
	s.feedback = Feedback{}
	s.screen = ScreenPlaying

	if d := s.questionBudget(riddle); d > 0 {
		s.questionDeadline = s.config.Clock.Now().Add(d)
	} else {
		s.questionDeadline = time.Time{}
	}
}

// questionBudget computes the per-question clock; zero means untimed
func (s *service) questionBudget(riddle *models.PresentedRiddle) time.Duration {
	switch {
	case s.session.Mode == models.GameModeDaily:
		return DailyQuestionBudget
	case s.session.Mode == models.GameModeSuddenDeath:
		return 0
	case s.session.Difficulty == models.DifficultyKids:
		return 0
	}

	var base time.Duration
	switch {
	case riddle.DifficultyLevel >= 4:
		base = questionBudgetLong
	case riddle.DifficultyLevel == 3:
		base = questionBudgetMid
	default:
		base = questionBudgetShort
	}

	switch {
	case s.session.Streak >= 10:
		base += streakBonusLarge
	case s.session.Streak >= 5:
		base += streakBonusSmall
	}
	return base
}

// finishGame commits once and shows the summary
func (s *service) finishGame(ctx context.Context) error {
	s.clearTimers()
	s.screen = ScreenGameSummary

	if s.committed {
		return nil
	}
	s.committed = true

	out, err := s.config.Progression.Commit(ctx, &progression.CommitInput{
		Session:    s.session,
		BestStreak: s.bestStreak,
		Date:       s.config.Clock.Now().Format("2006-01-02"),
	})
	if err != nil {
		log.Warn().Err(err).Msg("progression commit failed")
	} else {
		s.commit = out
	}

	if s.session.Mode != models.GameModeParty {
		if err := s.config.Leaderboard.RecordHighScore(ctx, s.session.HighScore); err != nil {
			log.Warn().Err(err).Msg("high score save failed")
		}
	}

	log.Info().
		Str("mode", string(s.session.Mode)).
		Int("score", s.session.Score).
		Int("bestStreak", s.bestStreak).
		Msg("game finished")
	return nil
}

// showTurnTransition announces the next turn
func (s *service) showTurnTransition() error {
	s.clearTimers()
	s.screen = ScreenTurnTransition
	s.config.Notifier.NotifyTransition()

	if turn := s.currentTurn(); turn != nil {
		out, err := s.config.Messaging.GetTurnMessage(&messaging.GetTurnMessageInput{Turn: *turn})
		if err != nil {
			return err
		}
		s.feedback = Feedback{Message: out.Message}
	}
	return nil
}

func (s *service) toError() {
	s.clearTimers()
	s.errorMessage = fetchErrorMessage
	s.screen = ScreenError
}

// answerable reports whether gameplay input applies right now
func (s *service) answerable() bool {
	return s.screen == ScreenPlaying && !s.question.resolved && !s.ascensionPending
}

func (s *service) currentTurn() *models.Turn {
	if s.session.Mode != models.GameModeParty || s.turnIndex >= len(s.queue) {
		return nil
	}
	return &s.queue[s.turnIndex]
}

func (s *service) currentTeamID() string {
	if turn := s.currentTurn(); turn != nil {
		return turn.TeamID
	}
	return ""
}

// resetSession replaces the session, keeping what outlives a game
func (s *service) resetSession(mode models.GameMode, difficulty models.Difficulty) {
	s.session = models.GameSession{
		Mode:           mode,
		Difficulty:     difficulty,
		HighScore:      s.session.HighScore,
		Avatar:         s.session.Avatar,
		CategoryScores: make(map[string]int),
	}
}

// resetGame clears per-game state without touching the session
func (s *service) resetGame() {
	s.clearTimers()
	s.queue = nil
	s.turnIndex = 0
	s.dailySet = nil
	s.riddle = nil
	s.question = questionState{}
	s.feedback = Feedback{}
	s.ascensionPending = false
	s.bestStreak = 0
	s.gameOver = false
	s.committed = false
	s.commit = nil
	s.board = nil
	s.errorMessage = ""
}

func (s *service) clearQuestionTimer() {
	s.questionDeadline = time.Time{}
}

func (s *service) clearTimers() {
	s.questionDeadline = time.Time{}
	s.globalDeadline = time.Time{}
	s.advanceAt = time.Time{}
}

// remaining converts a deadline into whole seconds; -1 means untimed
func (s *service) remaining(deadline time.Time) int {
	if deadline.IsZero() {
		return -1
	}
	left := deadline.Sub(s.config.Clock.Now())
	if left < 0 {
		return 0
	}
	return int(left / time.Second)
}
