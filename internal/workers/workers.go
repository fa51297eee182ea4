package workers

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-fleet-logbook/internal/config"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the configured jobs. The monthly report is skipped when
// no report directory is set.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) (*Workers, error) {
	w := &Workers{}

	if cfg.ReportDir == "" {
		logger.Info().Msg("monthly report worker disabled: no report directory")
		return w, nil
	}

	report, err := NewMonthlyReportWorker(services.StatsService, cfg, logger)
	if err != nil {
		return nil, err
	}
	w.workers = append(w.workers, report)

	return w, nil
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops every worker and joins their errors.
func (w *Workers) Stop(ctx context.Context) error {
	var errs []error
	for _, worker := range w.workers {
		if err := worker.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
