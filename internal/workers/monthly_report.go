package workers

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/MKhiriev/go-fleet-logbook/internal/config"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/service"
	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/models"
	"github.com/robfig/cron/v3"
)

// reportCaller is the identity the scheduled job acts as.
var reportCaller = models.User{
	ID:     "system:monthly-report",
	Name:   "monthly report",
	Role:   models.RoleOwner,
	Status: models.StatusActive,
}

var reportHeader = []string{"user_id", "vehicle_id", "initial_km", "final_km", "distance_km"}

// totalRowLabel fills the vehicle column of a per-user total row.
const totalRowLabel = "TOTAL"

// MonthlyReportWorker writes every driver's previous-month mileage to a CSV
// file on a cron schedule.
type MonthlyReportWorker struct {
	stats service.StatsService
	dir   string

	cron *cron.Cron
	now  func() time.Time

	logger *logger.Logger
}

func NewMonthlyReportWorker(stats service.StatsService, cfg config.Workers, logger *logger.Logger) (*MonthlyReportWorker, error) {
	w := &MonthlyReportWorker{
		stats:  stats,
		dir:    cfg.ReportDir,
		cron:   cron.New(),
		now:    time.Now,
		logger: logger,
	}

	if _, err := w.cron.AddFunc(cfg.ReportSchedule, w.runScheduled); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSchedule, cfg.ReportSchedule, err)
	}

	return w, nil
}

func (w *MonthlyReportWorker) Run() {
	w.logger.Info().Str("dir", w.dir).Msg("monthly report worker started")
	w.cron.Start()
}

func (w *MonthlyReportWorker) Stop(ctx context.Context) error {
	select {
	case <-w.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("monthly report worker stop: %w", ctx.Err())
	}
}

func (w *MonthlyReportWorker) runScheduled() {
	month := models.MonthOf(w.now()).Previous()

	path, err := w.Generate(context.Background(), month)
	if err != nil {
		w.logger.Err(err).Str("month", month.String()).Msg("monthly report failed")
		return
	}
	w.logger.Info().Str("month", month.String()).Str("path", path).Msg("monthly report written")
}

// Generate writes the report of month and returns the file path. The file
// is written under a temporary name and renamed into place.
func (w *MonthlyReportWorker) Generate(ctx context.Context, month models.MonthKey) (string, error) {
	ctx = utils.WithCaller(ctx, reportCaller, "")

	totals, err := w.stats.MonthReport(ctx, month)
	if err != nil {
		return "", fmt.Errorf("building month report: %w", err)
	}

	if err = os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingReport, err)
	}

	path := filepath.Join(w.dir, reportFileName(month))
	tmp, err := os.CreateTemp(w.dir, ".report-*.csv")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingReport, err)
	}
	defer os.Remove(tmp.Name())

	if err = WriteReportCSV(tmp, totals); err != nil {
		tmp.Close()
		return "", fmt.Errorf("%w: %w", ErrWritingReport, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingReport, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingReport, err)
	}

	return path, nil
}

func reportFileName(month models.MonthKey) string {
	return "fleet-report-" + month.String() + ".csv"
}

// WriteReportCSV writes one row per vehicle and a total row per user.
// Missing bounds are left empty.
func WriteReportCSV(out io.Writer, totals []models.MonthlyTotal) error {
	cw := csv.NewWriter(out)

	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, total := range totals {
		for _, row := range total.Breakdown {
			record := []string{
				total.UserID,
				row.VehicleID,
				formatKm(row.InitialKm),
				formatKm(row.FinalKm),
				strconv.FormatInt(row.DistanceKm, 10),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		if err := cw.Write([]string{total.UserID, totalRowLabel, "", "", strconv.FormatInt(total.TotalKm, 10)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatKm(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
