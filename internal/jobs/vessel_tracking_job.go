package jobs

import (
	"context"
	"log/slog"
	"sync"

	"dronedelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const DefaultVesselTrackingSchedule = "0 * * * * *"

// VesselRefresher is satisfied by *commands.RefreshVesselPositionsCommandHandler.
type VesselRefresher interface {
	Handle(ctx context.Context, cmd commands.RefreshVesselPositionsCommand) (int, error)
}

// VesselTrackingJob periodically stores the last known position of the
// customers' vessels on their open missions. Runs never overlap.
type VesselTrackingJob struct {
	schedule string
	handler  VesselRefresher
	cron     *cron.Cron
	logger   *slog.Logger
	mu       sync.Mutex
}

func NewVesselTrackingJob(schedule string, handler VesselRefresher, logger *slog.Logger) *VesselTrackingJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &VesselTrackingJob{
		schedule: schedule,
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "vessel_tracking_job"),
	}
}

func (j *VesselTrackingJob) Name() string {
	return "vessel tracking"
}

// Start registers the schedule and starts the scheduler. An invalid
// schedule is returned as an error.
func (j *VesselTrackingJob) Start() error {
	_, err := j.cron.AddJob(j.schedule, cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(
		cron.FuncJob(func() { j.Run(context.Background()) }),
	))
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Vessel tracking job started", "schedule", j.schedule)
	return nil
}

// Run performs one refresh. Errors are logged.
func (j *VesselTrackingJob) Run(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	updated, err := j.handler.Handle(ctx, commands.NewRefreshVesselPositionsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Vessel tracking job failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Vessel positions refreshed", "updated", updated)
}

// Stop waits for a running refresh to finish.
func (j *VesselTrackingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Vessel tracking job stopped")
}
