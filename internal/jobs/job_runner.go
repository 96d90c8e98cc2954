package jobs

import (
	"bloodbank-backend/internal/config"
	"bloodbank-backend/internal/logger"
	"bloodbank-backend/internal/repository"
	"bloodbank-backend/internal/service"
)

// JobRunner coordinates all scheduled maintenance jobs. It works against the
// repository interfaces so both store backends can drive it.
type JobRunner struct {
	campRepo repository.CampRepository
	apptRepo repository.AppointmentRepository
	invRepo  repository.InventoryRepository
	emailSvc service.EmailService
	config   *config.Config
}

func NewJobRunner(
	campRepo repository.CampRepository,
	apptRepo repository.AppointmentRepository,
	invRepo repository.InventoryRepository,
	emailSvc service.EmailService,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		campRepo: campRepo,
		apptRepo: apptRepo,
		invRepo:  invRepo,
		emailSvc: emailSvc,
		config:   cfg,
	}
}

// Config exposes the runner's configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllDailyJobs runs every daily job once, for manual execution.
func (jr *JobRunner) RunAllDailyJobs() {
	jr.CompletePastCamps()
	jr.SendLowStockAlerts()
}
