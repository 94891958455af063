package scoring

//go:generate mockgen -destination=mocks/mock_engine.go -package=mocks github.com/salex1993/Who-Am-I-Bible-Riddles/internal/services/scoring Engine

// Engine resolves gameplay events into updated score snapshots
type Engine interface {
	// Answer resolves one answer or timeout
	Answer(input *AnswerInput) (*AnswerOutput, error)

	// Skip abandons the current question
	Skip(input *SkipInput) (*SkipOutput, error)

	// Hint charges for one hint reveal
	Hint(input *HintInput) (*HintOutput, error)

	// FiftyFifty charges for hiding two wrong options
	FiftyFifty(input *FiftyFiftyInput) (*FiftyFiftyOutput, error)
}
