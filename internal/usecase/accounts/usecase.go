package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ocf/api/internal/entity"
	"github.com/ocf/api/internal/entity/dto/v1"
	"github.com/ocf/api/internal/tasks"
	"github.com/ocf/api/pkg/logger"
)

// Print quota limits, pages.
const (
	_dailyQuota      = 10
	_semesterlyQuota = 100
)

const (
	_createAccountTask = "validate_then_create_account"
	_submitWaitBudget  = 5 * time.Second
)

// ValidationError rejects a registration request with a caller-visible
// message.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// UseCase -.
type UseCase struct {
	dir   AccountDirectory
	quota QuotaRepository
	queue TaskQueue
	log   logger.Interface
	now   func() time.Time
}

// New -.
func New(dir AccountDirectory, quota QuotaRepository, queue TaskQueue, log logger.Interface) *UseCase {
	return &UseCase{
		dir:   dir,
		quota: quota,
		queue: queue,
		log:   log,
		now:   time.Now,
	}
}

// Me reshapes the caller's verified token into the account profile response.
func (uc *UseCase) Me(ctx context.Context, token *entity.UserToken) (dto.AccountInfo, error) {
	isGroup, err := uc.dir.IsGroupAccount(ctx, token.Username)
	if err != nil {
		return dto.AccountInfo{}, fmt.Errorf("accounts - Me: %w", err)
	}

	accountType := "personal"
	if isGroup {
		accountType = "group"
	}

	return dto.AccountInfo{
		Username: token.Username,
		Email:    token.Email,
		Name:     token.Name,
		Type:     accountType,
		Groups:   token.Groups,
	}, nil
}

// PaperQuota returns the remaining daily and semesterly print quota.
func (uc *UseCase) PaperQuota(ctx context.Context, username string) (dto.PaperQuota, error) {
	today, semester, err := uc.quota.PagesPrinted(ctx, username, semesterStart(uc.now()))
	if err != nil {
		return dto.PaperQuota{}, err
	}

	return dto.PaperQuota{
		User:       username,
		Daily:      clampQuota(_dailyQuota - today),
		Semesterly: clampQuota(_semesterlyQuota - semester),
	}, nil
}

type createAccountPayload struct {
	Username           string `json:"username"`
	Password           string `json:"password"`
	ContactEmail       string `json:"contact_email"`
	AccountAssociation int    `json:"account_association"`
	CalnetUID          int    `json:"calnet_uid"`
}

// Register submits an account creation task for the identity proven by the
// bridge token. The submission wait is bounded; validation failures come back
// as ValidationError.
func (uc *UseCase) Register(ctx context.Context, calnetUID int, input dto.RegisterAccountInput) (dto.RegisterAccountOutput, error) {
	taskID, err := uc.queue.Submit(ctx, _createAccountTask, createAccountPayload{
		Username:           input.Username,
		Password:           input.Password,
		ContactEmail:       input.ContactEmail,
		AccountAssociation: input.AccountAssociation,
		CalnetUID:          calnetUID,
	})
	if err != nil {
		return dto.RegisterAccountOutput{}, fmt.Errorf("accounts - Register - Submit: %w", err)
	}

	res, err := uc.queue.Wait(ctx, taskID, _submitWaitBudget)
	if errors.Is(err, tasks.ErrResultTimeout) {
		// validation passed quickly or the worker is busy; either way the
		// task is queued and the client can poll
		return dto.RegisterAccountOutput{Status: "pending", TaskID: taskID}, nil
	}

	if err != nil {
		return dto.RegisterAccountOutput{}, err
	}

	switch res.State {
	case tasks.StateRejected, tasks.StateFlagged:
		return dto.RegisterAccountOutput{}, ValidationError{Message: joinErrors(res)}
	case tasks.StatePending:
		return dto.RegisterAccountOutput{Status: "pending", TaskID: taskID}, nil
	default:
		return dto.RegisterAccountOutput{Status: "success", TaskID: taskID}, nil
	}
}

// RegisterStatus reports progress of a creation task.
func (uc *UseCase) RegisterStatus(ctx context.Context, taskID string) (dto.RegisterStatusOutput, error) {
	res, err := uc.queue.Result(ctx, taskID)
	if err != nil {
		return dto.RegisterStatusOutput{}, err
	}

	if res == nil {
		return dto.RegisterStatusOutput{State: "pending", Status: []string{"Starting creation"}}, nil
	}

	switch res.State {
	case tasks.StateCreated:
		return dto.RegisterStatusOutput{State: "success"}, nil
	case tasks.StatePending:
		return dto.RegisterStatusOutput{State: "pending", Message: "requires staff approval"}, nil
	case tasks.StateFlagged:
		return dto.RegisterStatusOutput{State: "flagged", Message: "there were some warnings when creating your account"}, nil
	case tasks.StateRejected:
		return dto.RegisterStatusOutput{State: "rejected", Message: "account not created due to fatal error"}, nil
	default:
		return dto.RegisterStatusOutput{State: "unknown", Message: res.Message}, nil
	}
}

// semesterStart returns the start of the current semester: August 1 for fall,
// January 1 for spring.
func semesterStart(now time.Time) time.Time {
	year := now.Year()

	if now.Month() >= time.August {
		return time.Date(year, time.August, 1, 0, 0, 0, 0, now.Location())
	}

	return time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())
}

func clampQuota(remaining int) int {
	if remaining < 0 {
		return 0
	}

	return remaining
}

func joinErrors(res *tasks.Result) string {
	if len(res.Errors) == 0 {
		return "account request was not accepted"
	}

	msg := res.Errors[0]
	for _, e := range res.Errors[1:] {
		msg += "; " + e
	}

	return msg
}
