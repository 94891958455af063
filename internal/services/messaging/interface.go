package messaging

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/salex1993/Who-Am-I-Bible-Riddles/internal/services/messaging Service

// Service generates the player-facing flavor text
type Service interface {
	// GetFeedbackMessage returns a feedback line for a resolved answer
	GetFeedbackMessage(input *GetFeedbackMessageInput) (*GetFeedbackMessageOutput, error)

	// GetTurnMessage returns a turn announcement line
	GetTurnMessage(input *GetTurnMessageInput) (*GetTurnMessageOutput, error)

	// BuildShareText returns the clipboard text for a finished game
	BuildShareText(input *BuildShareTextInput) (*BuildShareTextOutput, error)
}
