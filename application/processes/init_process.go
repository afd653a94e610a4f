// Package processes wires long-running startup behavior: restoring
// the saved session and keeping the deals board fresh.
package processes

import (
	"context"
	"time"

	"go.uber.org/zap"

	"travelbook/application/commands"
	"travelbook/application/services"
)

// InitProcess runs once at startup. It restores the persisted session
// and starts the deals watch; everything else reacts to the events
// those two produce.
type InitProcess struct {
	restoreUser *services.RestoreUserHandler
	watch       *services.DealsWatch
	interval    time.Duration
	logger      *zap.Logger
}

// NewInitProcess creates a new process instance
func NewInitProcess(
	restoreUser *services.RestoreUserHandler,
	watch *services.DealsWatch,
	interval time.Duration,
	logger *zap.Logger,
) *InitProcess {
	return &InitProcess{
		restoreUser: restoreUser,
		watch:       watch,
		interval:    interval,
		logger:      logger,
	}
}

// Run restores the session and starts the watch. A failed restore is
// logged and swallowed; the app simply starts signed out.
func (p *InitProcess) Run(ctx context.Context) {
	if _, err := p.restoreUser.Execute(ctx, commands.RestoreUserCommand{}); err != nil {
		p.logger.Warn("session restore failed", zap.Error(err))
	}

	p.watch.Start(p.interval)
	p.logger.Info("deals watch started", zap.Duration("interval", p.interval))
}

// Shutdown stops the deals watch
func (p *InitProcess) Shutdown() {
	p.watch.Stop()
}
