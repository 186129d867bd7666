package commands

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/fivetwenty-io/gw2api/pkg/gw2"
)

// zerologLogger implements gw2.Logger on top of zerolog.
type zerologLogger struct {
	logger zerolog.Logger
}

var _ gw2.Logger = (*zerologLogger)(nil)

// newLogger writes human readable log lines to out. Verbose lowers the level
// to debug; color is only used on a terminal.
func newLogger(out io.Writer, verbose, noColor bool) *zerologLogger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    noColor || !isTerminal(out),
	}

	return &zerologLogger{logger: zerolog.New(output).Level(level).With().Timestamp().Logger()}
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

func (l *zerologLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}
