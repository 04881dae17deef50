// Package ai contains AI-assisted use cases.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fitness-partner/backend/internal/application/adapter"
	"github.com/fitness-partner/backend/internal/domain/entity"
	domainerror "github.com/fitness-partner/backend/internal/domain/error"
)

// contextMessageCount is how many recent turns feed the prompt context block.
const contextMessageCount = 6

// AskCoachInput represents the input for a fitness question.
type AskCoachInput struct {
	PhoneNumber string
	Question    string
}

// AskCoachOutput represents the output of a fitness question.
type AskCoachOutput struct {
	Answer string
}

// AskCoachUseCase answers free-form fitness questions, threading the user's
// recent conversation history into the prompt.
type AskCoachUseCase struct {
	estimator        adapter.NutritionEstimator
	conversationRepo adapter.ConversationRepository
	userRepo         adapter.UserRepository
	timeout          time.Duration
}

// NewAskCoachUseCase creates a new AskCoachUseCase instance.
func NewAskCoachUseCase(
	estimator adapter.NutritionEstimator,
	conversationRepo adapter.ConversationRepository,
	userRepo adapter.UserRepository,
	timeout time.Duration,
) *AskCoachUseCase {
	return &AskCoachUseCase{
		estimator:        estimator,
		conversationRepo: conversationRepo,
		userRepo:         userRepo,
		timeout:          timeout,
	}
}

// Execute answers the question and records both turns in the conversation.
func (uc *AskCoachUseCase) Execute(ctx context.Context, input AskCoachInput) (*AskCoachOutput, error) {
	if strings.TrimSpace(input.Question) == "" {
		return nil, domainerror.NewEstimationError(
			domainerror.ErrCodeInvalidQuestion,
			"question must not be empty",
			nil,
		)
	}

	user, err := uc.userRepo.FindActiveByPhoneNumber(ctx, input.PhoneNumber)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeUserNotFound,
				"user not found with phone number: "+input.PhoneNumber,
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	conversation, err := uc.conversationRepo.FindLatestByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	if conversation == nil {
		conversation = entity.NewConversation(user.ID)
	}

	priorContext := formatContext(conversation.LastMessages(contextMessageCount))

	callCtx := ctx
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	answer, err := uc.estimator.GenerateCoachResponse(callCtx, input.Question, priorContext)
	if err != nil {
		return nil, fmt.Errorf("failed to generate coach response: %w", err)
	}

	conversation.AddUserMessage(input.Question)
	conversation.AddAssistantMessage(answer)
	if err := uc.conversationRepo.Save(ctx, conversation); err != nil {
		return nil, fmt.Errorf("failed to save conversation: %w", err)
	}

	return &AskCoachOutput{Answer: answer}, nil
}

// formatContext renders recent turns as role-prefixed lines for the prompt.
func formatContext(messages []entity.Message) string {
	if len(messages) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, m := range messages {
		sb.WriteString(string(m.Role))
		sb.WriteString(": ")
		sb.WriteString(m.Content)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
