// Package agent wires the lifecycle handlers, the application store and the
// availability refresh loop together.
package agent

import (
	"context"
	"fmt"
	"time"

	"applens-agent/internal/application/availability"
	"applens-agent/internal/application/command/delete_apps"
	"applens-agent/internal/application/navigation"
	"applens-agent/internal/application/notification"
	"applens-agent/internal/application/query/get_apps"
	"applens-agent/internal/application/session"
	"applens-agent/internal/application/store"
	"applens-agent/internal/config"
	"applens-agent/internal/infra/api"
	"applens-agent/internal/infra/query"
	"applens-agent/pkg/backoff"
	"applens-agent/pkg/cqrs"
	"applens-agent/pkg/log"
)

// refreshBackoffBase and refreshBackoffMax bound the retry delay after a
// failed application fetch.
const (
	refreshBackoffBase = 5 * time.Second
	refreshBackoffMax  = 2 * time.Minute
)

// Agent owns the lifecycle orchestration runtime.
type Agent struct {
	config     *config.Config
	store      *store.ApplicationStore
	toasts     *notification.ToastList
	events     *notification.Events
	drafts     *session.DraftStore
	navigator  *navigation.Recorder
	commandBus cqrs.CommandBus
	queryBus   cqrs.QueryBus

	deleteHandler *delete_apps.DeleteAppsHandler
}

// NewAgent builds the full dependency graph from the configuration and
// registers every command and query handler.
func NewAgent(ctx context.Context, cfg *config.Config) (*Agent, error) {
	drafts, err := session.OpenDraftStore(cfg.DraftsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open draft store: %w", err)
	}

	a := &Agent{
		config:     cfg,
		store:      store.NewApplicationStore(),
		toasts:     notification.NewToastList(),
		events:     notification.NewEvents(),
		drafts:     drafts,
		navigator:  navigation.NewRecorder(),
		commandBus: cqrs.NewCommandBus(ctx),
		queryBus:   cqrs.NewQueryBus(),
	}

	client := api.NewClient(cfg.APIBaseURL)
	scorer := query.NewScorer(cfg.QueryBaseURL)
	refresher := availability.NewRefresher(a.store, scorer)

	deleteHandler, err := registerHandlers(a, client, refresher)
	if err != nil {
		return nil, err
	}
	a.deleteHandler = deleteHandler

	return a, nil
}

// Run executes the periodic availability refresh loop until ctx is
// cancelled. Failed fetches back off exponentially instead of hammering the
// backend at the refresh interval.
func (a *Agent) Run(ctx context.Context) error {
	if a.config.IsFeatureEnabled(config.FeatureAvailabilityRefreshDisabled) {
		log.Info("Availability refresh disabled by feature flag")
		<-ctx.Done()
		return ctx.Err()
	}

	interval := a.config.RefreshEvery()
	retry := backoff.New(refreshBackoffBase, refreshBackoffMax)
	log.Info("Starting availability refresh loop", "interval", interval)

	timer := time.NewTimer(0) // first refresh immediately
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		if _, err := a.queryBus.Dispatch(get_apps.GetAppsQuery{}); err != nil {
			delay := retry.Next()
			log.Warn("Application refresh failed, backing off", "delay", delay, "error", err)
			timer.Reset(delay)
			continue
		}
		retry.Reset()
		timer.Reset(interval)
	}
}

// Close drains the command bus and waits for in-flight delete cascades.
func (a *Agent) Close() {
	a.commandBus.Shutdown()
	a.commandBus.WaitForCompletion()
	if a.deleteHandler != nil {
		a.deleteHandler.WaitForCascade()
	}
	log.Info("Agent stopped")
}

// CommandBus returns the bus external surfaces dispatch mutations on.
func (a *Agent) CommandBus() cqrs.CommandBus { return a.commandBus }

// QueryBus returns the bus external surfaces dispatch queries on.
func (a *Agent) QueryBus() cqrs.QueryBus { return a.queryBus }

// Store returns the application store observers read snapshots from.
func (a *Agent) Store() *store.ApplicationStore { return a.store }

// Toasts returns the pending user notifications.
func (a *Agent) Toasts() *notification.ToastList { return a.toasts }

// Events returns the entity lifecycle event channel.
func (a *Agent) Events() *notification.Events { return a.events }

// Navigator returns the routing hint recorder.
func (a *Agent) Navigator() *navigation.Recorder { return a.navigator }
