package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udawtr/wxindex-go/wxindex"
)

func writeFile(t *testing.T, name string, body string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func newRequest(mode string, input string) request {
	return request{
		mode:    mode,
		input:   input,
		columns: wxindex.DefaultSettings().Columns,
		opts:    []wxindex.Option{wxindex.WithWorkers(1)},
	}
}

func Test_run_VPD(t *testing.T) {
	in := writeFile(t, "daily.csv", "tmax,tmin,rh\n30,20,100\n")
	buf := bytes.NewBuffer([]byte{})
	require.NoError(t, run(newRequest("VPD", in), buf))
	assert.Equal(t, "index,vpd\n0,0\n", buf.String())
}

func Test_run_WBGT(t *testing.T) {
	in := writeFile(t, "daily.csv", "date,tmax,rh\n2020-08-01 00:00:00,30,90\n2020-08-02 00:00:00,35,10\n")
	buf := bytes.NewBuffer([]byte{})
	require.NoError(t, run(newRequest("WBGT", in), buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,tmax,rh,hi,wbgt,formula,correction", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2020-08-01 00:00:00,30,90,"))
	assert.True(t, strings.HasSuffix(lines[1], ",rothfusz,high_humidity"))
	assert.True(t, strings.HasSuffix(lines[2], ",rothfusz,low_humidity"))
}

func Test_run_RH(t *testing.T) {
	in := writeFile(t, "rh.csv", "tdew,pressure,tmax,tmin\n18,101325,303.15,298.15\n")
	buf := bytes.NewBuffer([]byte{})
	require.NoError(t, run(newRequest("RH", in), buf))
	assert.True(t, strings.HasPrefix(buf.String(), "index,rh\n0,56.0701"))
}

func Test_run_RHX(t *testing.T) {
	var hourly strings.Builder
	hourly.WriteString("ta,tdew\n")
	for h := 0; h < 48; h++ {
		fmt.Fprintf(&hourly, "%d,10\n", 15+h%24/2)
	}
	in := writeFile(t, "hourly.csv", hourly.String())
	daily := writeFile(t, "daily.csv", "date,tmax,tmin\n2020-08-01 00:00:00,25,15\n2020-08-02 00:00:00,25,15\n")

	req := newRequest("RHX", in)
	req.daily = daily
	buf := bytes.NewBuffer([]byte{})
	require.NoError(t, run(req, buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,rhx,rhave", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "2020-08-02 00:00:00,"))
}

func Test_run_Errors(t *testing.T) {
	in := writeFile(t, "daily.csv", "tmax,rh\n30,50\n")
	buf := bytes.NewBuffer([]byte{})

	err := run(newRequest("VPD", in), buf)
	assert.ErrorIs(t, err, wxindex.ErrMissingColumn)

	err = run(newRequest("RHX", in), buf)
	assert.Error(t, err)

	err = run(newRequest("UTCI", in), buf)
	assert.Error(t, err)

	err = run(newRequest("WBGT", filepath.Join(t.TempDir(), "none.csv")), buf)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func Test_run_HourlyNotWholeDays(t *testing.T) {
	in := writeFile(t, "hourly.csv", "ta,tdew\n20,10\n")
	daily := writeFile(t, "daily.csv", "tmax,tmin\n25,15\n")
	req := newRequest("RHX", in)
	req.daily = daily
	err := run(req, bytes.NewBuffer([]byte{}))
	assert.ErrorIs(t, err, wxindex.ErrHourlyLength)
}

const yearsCSV = "date,tmax,tmin,rh\n" +
	"2019-07-01 00:00:00,30,20,50\n" +
	"2020-07-01 00:00:00,31,21,50\n" +
	"2021-07-01 00:00:00,32,22,50\n"

func Test_run_StartYearOnly(t *testing.T) {
	req := newRequest("VPD", writeFile(t, "daily.csv", yearsCSV))
	req.startYear = 2020
	buf := bytes.NewBuffer([]byte{})
	require.NoError(t, run(req, buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "2020-07-01 00:00:00,"))
}

func Test_run_YearWindow(t *testing.T) {
	req := newRequest("VPD", writeFile(t, "daily.csv", yearsCSV))
	req.startYear = 2020
	req.endYear = 2021
	buf := bytes.NewBuffer([]byte{})
	require.NoError(t, run(req, buf))
	assert.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), 3)
}

func Test_run_InvalidYearWindow(t *testing.T) {
	in := writeFile(t, "daily.csv", yearsCSV)

	req := newRequest("VPD", in)
	req.startYear = 2021
	req.endYear = 2020
	assert.Error(t, run(req, bytes.NewBuffer([]byte{})))

	req = newRequest("VPD", in)
	req.endYear = 2020
	assert.Error(t, run(req, bytes.NewBuffer([]byte{})))
}
