// Package usecase bundles the application's business logic services.
package usecase

import (
	"github.com/ocf/api/internal/usecase/accounts"
	"github.com/ocf/api/internal/usecase/hours"
	"github.com/ocf/api/internal/usecase/labstats"
	"github.com/ocf/api/internal/usecase/shorturls"
)

// Usecases carries the constructed services handed to the HTTP layer.
type Usecases struct {
	Accounts  *accounts.UseCase
	Tracker   *labstats.Tracker
	Stats     *labstats.Stats
	Shorturls *shorturls.UseCase
	Hours     *hours.Schedule
}
