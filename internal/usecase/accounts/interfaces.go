// Package accounts implements account-facing operations: profile info, paper
// quota, and registration through the task queue.
package accounts

import (
	"context"
	"time"

	"github.com/ocf/api/internal/tasks"
)

type (
	// AccountDirectory answers account questions from the directory service.
	AccountDirectory interface {
		IsGroupAccount(ctx context.Context, username string) (bool, error)
	}

	// QuotaRepository reads print accounting data.
	QuotaRepository interface {
		PagesPrinted(ctx context.Context, user string, semesterStart time.Time) (today, semester int, err error)
	}

	// TaskQueue submits asynchronous account-management work.
	TaskQueue interface {
		Submit(ctx context.Context, task string, payload interface{}) (string, error)
		Result(ctx context.Context, taskID string) (*tasks.Result, error)
		Wait(ctx context.Context, taskID string, timeout time.Duration) (*tasks.Result, error)
	}
)
