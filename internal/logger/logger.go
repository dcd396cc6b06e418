package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// locationFormatter renders entry timestamps in a fixed time zone.
type locationFormatter struct {
	loc   *time.Location
	inner logrus.Formatter
}

func (f locationFormatter) Format(e *logrus.Entry) ([]byte, error) {
	e.Time = e.Time.In(f.loc)
	return f.inner.Format(e)
}

// New returns a JSON logger writing one object per line to w.
// Keys: ts, level, msg plus any attached fields.
func New(w io.Writer, level string, loc *time.Location) *logrus.Logger {
	if loc == nil {
		loc = time.UTC
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(locationFormatter{
		loc: loc,
		inner: &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "ts",
			},
		},
	})
	return l
}

// Setup configures the package-level logrus logger and returns it.
func Setup(level string, loc *time.Location) *logrus.Logger {
	l := New(os.Stdout, level, loc)
	logrus.SetOutput(l.Out)
	logrus.SetLevel(l.Level)
	logrus.SetFormatter(l.Formatter)
	return l
}

// LoadLocation resolves a time zone name, falling back to UTC.
func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
