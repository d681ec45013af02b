package main

import (
	"fmt"
	"io"

	"github.com/hhkbp2/go-logging"
)

const logFormat = "%(asctime)s %(levelname)s %(name)s: %(message)s\n"

var logLevels = map[string]logging.LogLevelType{
	"DEBUG":    logging.LevelDebug,
	"INFO":     logging.LevelInfo,
	"WARN":     logging.LevelWarn,
	"ERROR":    logging.LevelError,
	"CRITICAL": logging.LevelCritical,
}

// writerStream lets a go-logging stream handler write to any io.Writer.
type writerStream struct {
	w io.Writer
}

func (s *writerStream) Tell() (int64, error) { return 0, nil }
func (s *writerStream) Flush() error         { return nil }
func (s *writerStream) Close() error         { return nil }

func (s *writerStream) Write(msg string) error {
	_, err := io.WriteString(s.w, msg)
	return err
}

// setupLogging sets the level of the "wxindex" logger and attaches a handler
// writing to w. Results go to stdout, so w is normally os.Stderr.
func setupLogging(w io.Writer, level string) (logging.Logger, logging.Handler, error) {
	lv, ok := logLevels[level]
	if !ok {
		return nil, nil, fmt.Errorf("unknown log level %q", level)
	}

	handler := logging.NewStreamHandler("stderr", logging.LevelNotset, &writerStream{w: w})
	handler.SetFormatter(logging.NewStandardFormatter(logFormat, "%Y-%m-%d %H:%M:%S"))

	logger := logging.GetLogger("wxindex")
	if err := logger.SetLevel(lv); err != nil {
		return nil, nil, err
	}
	logger.AddHandler(handler)
	return logger, handler, nil
}
