// Package logging builds the zerolog loggers shared by the server, middleware and tracing setup.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// TimestampField is the key carrying the event time on every log line.
const TimestampField = "ts"

type timestampHook struct {
	loc *time.Location
}

func (h timestampHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str(TimestampField, time.Now().In(h.loc).Format(time.RFC3339Nano))
}

// New returns a JSON logger writing one object per line to w, stamping events in loc.
func New(w io.Writer, loc *time.Location) zerolog.Logger {
	if loc == nil {
		loc = time.UTC
	}
	return zerolog.New(w).Hook(timestampHook{loc: loc})
}
