package main

import (
	"bytes"
	"testing"

	"github.com/hhkbp2/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udawtr/wxindex-go/wxindex"
)

// captureLog routes the wxindex logger into a buffer for one test.
func captureLog(t *testing.T, level string) *bytes.Buffer {
	var buf bytes.Buffer
	logger, handler, err := setupLogging(&buf, level)
	require.NoError(t, err)
	t.Cleanup(func() {
		logger.RemoveHandler(handler)
		logger.SetLevel(logging.LevelNotset)
	})
	return &buf
}

func Test_setupLogging_InfoGoesToWriter(t *testing.T) {
	logs := captureLog(t, "INFO")

	in := writeFile(t, "daily.csv", "tmax,tmin,rh\n30,20,50\n25,15,60\n")
	req := newRequest("VPD", in)
	req.opts = []wxindex.Option{wxindex.WithWorkers(4)}

	out := bytes.NewBuffer([]byte{})
	require.NoError(t, run(req, out))

	assert.Contains(t, logs.String(), "INFO wxindex: loading "+in)
	assert.NotContains(t, logs.String(), "parallel batch")
	// the CSV result never contains log lines
	assert.NotContains(t, out.String(), "loading")
}

func Test_setupLogging_Debug(t *testing.T) {
	logs := captureLog(t, "DEBUG")

	in := writeFile(t, "daily.csv", "tmax,tmin,rh\n30,20,50\n25,15,60\n")
	req := newRequest("VPD", in)
	req.opts = []wxindex.Option{wxindex.WithWorkers(2)}
	require.NoError(t, run(req, bytes.NewBuffer([]byte{})))

	assert.Contains(t, logs.String(), "DEBUG wxindex: parallel batch: 2 elements on 2 workers")
}

func Test_setupLogging_ErrorLevelIsQuiet(t *testing.T) {
	logs := captureLog(t, "ERROR")

	in := writeFile(t, "daily.csv", "tmax,tmin,rh\n30,20,50\n")
	require.NoError(t, run(newRequest("VPD", in), bytes.NewBuffer([]byte{})))
	assert.Empty(t, logs.String())
}

func Test_setupLogging_UnknownLevel(t *testing.T) {
	_, _, err := setupLogging(&bytes.Buffer{}, "VERBOSE")
	assert.Error(t, err)
}
