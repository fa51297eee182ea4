package workers

import "errors"

var (
	ErrInvalidSchedule = errors.New("invalid cron schedule")
	ErrWritingReport   = errors.New("error writing report")
)
