package main

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/udawtr/wxindex-go/wxindex"
)

// request is one command line invocation after flags and settings are merged.
type request struct {
	mode      string
	input     string
	daily     string
	startYear int
	endYear   int
	columns   wxindex.Columns
	opts      []wxindex.Option
}

// years returns the year window to extract. ok is false when no window was
// requested. A missing end year means the start year only.
func (req request) years() (start int, end int, ok bool, err error) {
	start, end = req.startYear, req.endYear
	if start == 0 && end == 0 {
		return 0, 0, false, nil
	}
	if start == 0 {
		return 0, 0, false, fmt.Errorf("--end_year %d needs --start_year", end)
	}
	if end == 0 {
		end = start
	}
	if end < start {
		return 0, 0, false, fmt.Errorf("--end_year %d is before --start_year %d", end, start)
	}
	return start, end, true, nil
}

func (req request) load(path string) (*wxindex.Table, error) {
	start, end, window, err := req.years()
	if err != nil {
		return nil, err
	}
	t, err := wxindex.LoadTableFile(path)
	if err != nil {
		return nil, err
	}
	if window {
		t = t.ExtractYears(start, end)
	}
	return t, nil
}

// columns reads the named columns of t in order.
func columns(t *wxindex.Table, names ...string) ([][]float64, error) {
	cols := make([][]float64, len(names))
	for i, name := range names {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}
	return cols, nil
}

// run computes the requested quantity and writes it as CSV into buf.
func run(req request, buf *bytes.Buffer) error {
	t, err := req.load(req.input)
	if err != nil {
		return err
	}
	c := req.columns

	switch req.mode {
	case "VPD":
		cols, err := columns(t, c.Tmax, c.Tmin, c.RH)
		if err != nil {
			return err
		}
		vpd, err := wxindex.ComputeVPD(cols[0], cols[1], cols[2], req.opts...)
		if err != nil {
			return err
		}
		wxindex.WriteVPDCSV(buf, t.Date, vpd)

	case "WBGT":
		cols, err := columns(t, c.Tmax, c.RH)
		if err != nil {
			return err
		}
		records, err := wxindex.ComputeWBGT(cols[0], cols[1], req.opts...)
		if err != nil {
			return err
		}
		wxindex.WriteWBGTCSV(buf, t.Date, records)

	case "RH":
		cols, err := columns(t, c.Tdew, c.Pressure, c.Tmax, c.Tmin)
		if err != nil {
			return err
		}
		rh, err := wxindex.ComputeRHFromDewpointPressure(cols[0], cols[1], cols[2], cols[3], req.opts...)
		if err != nil {
			return err
		}
		wxindex.WriteRHCSV(buf, t.Date, rh)

	case "RHX":
		if req.daily == "" {
			return errors.New("RHX mode needs --daily")
		}
		d, err := req.load(req.daily)
		if err != nil {
			return err
		}
		hourly, err := columns(t, c.TA, c.Tdew)
		if err != nil {
			return err
		}
		dailyCols, err := columns(d, c.Tmax, c.Tmin)
		if err != nil {
			return err
		}
		res, err := wxindex.ComputeRHxRHave(hourly[0], hourly[1], dailyCols[0], dailyCols[1], req.opts...)
		if err != nil {
			return err
		}
		wxindex.WriteDailyRHCSV(buf, dailyDates(d.Date, len(res.RHx)), res)

	default:
		return fmt.Errorf("unknown mode %q", req.mode)
	}
	return nil
}

// dailyDates returns dates when it has one entry per day, nil otherwise.
func dailyDates(dates []time.Time, days int) []time.Time {
	if len(dates) != days {
		return nil
	}
	return dates
}
