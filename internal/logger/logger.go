package logger

import (
	"io"
	"os"
	"time"

	"github.com/google/goterm/term"
	"github.com/rs/zerolog"
)

const defaultTimeLayout = "2006-01-02 15:04:05"

// Options control the console/JSON output of New.
type Options struct {
	Level   string
	Colored bool
	JSON    bool
	Out     io.Writer
}

// New builds a zerolog logger. Console output tags levels as [INF], [WAR]
// and so on, colored when requested.
func New(opts Options) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return zerolog.Nop(), err
		}
		level = parsed
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	if opts.JSON {
		return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
	}

	cw := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    !opts.Colored,
		TimeFormat: defaultTimeLayout,
	}
	cw.FormatLevel = func(i interface{}) string {
		return formatLevel(i, opts.Colored)
	}

	return zerolog.New(cw).Level(level).With().Timestamp().Logger(), nil
}

// Must is New for callers that can't proceed without a logger.
func Must(opts Options) zerolog.Logger {
	l, err := New(opts)
	if err != nil {
		panic(err)
	}
	return l
}

func formatLevel(i interface{}, colored bool) string {
	level, _ := i.(string)
	tag, paint := levelTag(level)
	if !colored {
		return tag
	}
	return paint("%s", tag)
}

func levelTag(level string) (string, func(string, ...interface{}) string) {
	switch level {
	case zerolog.LevelTraceValue:
		return "[TRC]", term.Cyanf
	case zerolog.LevelDebugValue:
		return "[DBG]", term.Cyanf
	case zerolog.LevelInfoValue:
		return "[INF]", term.Greenf
	case zerolog.LevelWarnValue:
		return "[WAR]", term.Yellowf
	case zerolog.LevelErrorValue:
		return "[ERR]", term.Redf
	case zerolog.LevelFatalValue:
		return "[FTL]", term.Redf
	case zerolog.LevelPanicValue:
		return "[PAN]", term.Redf
	default:
		return "[UNK]", term.Whitef
	}
}

// Since is a helper for latency fields.
func Since(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}
