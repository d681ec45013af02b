package wxindex

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_WriteVPDCSV(t *testing.T) {
	buf := bytes.NewBuffer([]byte{})
	WriteVPDCSV(buf, nil, []float64{1.5, math.NaN()})
	assert.Equal(t, "index,vpd\n0,1.5\n1,NaN\n", buf.String())
}

func Test_WriteWBGTCSV(t *testing.T) {
	buf := bytes.NewBuffer([]byte{})
	dates := []time.Time{time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)}
	WriteWBGTCSV(buf, dates, []WBGTRecord{{
		Tmax: 30, RH: 90, HI: 100.5, WBGT: 28.25,
		Formula: Rothfusz, Correction: HighHumidityCorrection,
	}})
	assert.Equal(t,
		"date,tmax,rh,hi,wbgt,formula,correction\n"+
			"2020-08-01 00:00:00,30,90,100.5,28.25,rothfusz,high_humidity\n",
		buf.String())
}

func Test_WriteRHCSV(t *testing.T) {
	buf := bytes.NewBuffer([]byte{})
	WriteRHCSV(buf, nil, []float64{56.25})
	assert.Equal(t, "index,rh\n0,56.25\n", buf.String())
}

func Test_WriteDailyRHCSV(t *testing.T) {
	buf := bytes.NewBuffer([]byte{})
	WriteDailyRHCSV(buf, nil, DailyRH{RHx: []float64{30.5, 40}, RHave: []float64{50, 60.25}})
	assert.Equal(t, "index,rhx,rhave\n0,30.5,50\n1,40,60.25\n", buf.String())
}
