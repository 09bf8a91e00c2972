package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"kumoov/pkg/schedule"
)

// Setup configures the global zerolog logger.
// Output is JSON when KUMOOV_LOG_FORMAT=JSON, a console writer otherwise.
// Debug level is enabled by KUMOOV_DEBUG=YES or the debug argument.
func Setup(w io.Writer, debug bool) {
	if w == nil {
		w = os.Stderr
	}

	if strings.EqualFold(os.Getenv("KUMOOV_LOG_FORMAT"), "JSON") {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	}

	if debug || os.Getenv("KUMOOV_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}
}

// DroppedItemLogger returns a schedule.Group hook that reports items hidden because
// their day is not a canonical weekday.
func DroppedItemLogger(logger zerolog.Logger) schedule.Option {
	return schedule.WithDropHook(func(it schedule.Item) {
		logger.Debug().
			Int64("id", it.ID).
			Str("course_id", it.CourseID).
			Str("day_of_week", string(it.DayOfWeek)).
			Msg("Hiding schedule item with unknown day")
	})
}
