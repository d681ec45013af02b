package wxindex

import (
	"bytes"
	"strconv"
	"time"
)

func writeFloat(buf *bytes.Buffer, v float64) {
	buf.WriteString(",")
	buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
}

// writeRowStart writes the date (or row number when dates is nil) that
// starts each data line.
func writeRowStart(buf *bytes.Buffer, dates []time.Time, i int) {
	if dates != nil {
		buf.WriteString(dates[i].Format(DateLayout))
	} else {
		buf.WriteString(strconv.Itoa(i))
	}
}

func writeHeader(buf *bytes.Buffer, dates []time.Time, cols ...string) {
	if dates != nil {
		buf.WriteString("date")
	} else {
		buf.WriteString("index")
	}
	for _, c := range cols {
		buf.WriteString(",")
		buf.WriteString(c)
	}
	buf.WriteString("\n")
}

// CSV形式

// WriteVPDCSV writes one vpd value per row. dates may be nil.
func WriteVPDCSV(buf *bytes.Buffer, dates []time.Time, vpd []float64) {
	writeHeader(buf, dates, "vpd")
	for i := range vpd {
		writeRowStart(buf, dates, i)
		writeFloat(buf, vpd[i])
		buf.WriteString("\n")
	}
}

// WriteWBGTCSV writes the WBGT records along with the heat index formula and
// correction used for each row.
func WriteWBGTCSV(buf *bytes.Buffer, dates []time.Time, records []WBGTRecord) {
	writeHeader(buf, dates, "tmax", "rh", "hi", "wbgt", "formula", "correction")
	for i, r := range records {
		writeRowStart(buf, dates, i)
		writeFloat(buf, r.Tmax)
		writeFloat(buf, r.RH)
		writeFloat(buf, r.HI)
		writeFloat(buf, r.WBGT)
		buf.WriteString(",")
		buf.WriteString(r.Formula.String())
		buf.WriteString(",")
		buf.WriteString(r.Correction.String())
		buf.WriteString("\n")
	}
}

// WriteRHCSV writes the dew point/pressure humidity ratio per row.
func WriteRHCSV(buf *bytes.Buffer, dates []time.Time, rh []float64) {
	writeHeader(buf, dates, "rh")
	for i := range rh {
		writeRowStart(buf, dates, i)
		writeFloat(buf, rh[i])
		buf.WriteString("\n")
	}
}

// WriteDailyRHCSV writes rhx and rhave per day.
func WriteDailyRHCSV(buf *bytes.Buffer, dates []time.Time, daily DailyRH) {
	writeHeader(buf, dates, "rhx", "rhave")
	for i := range daily.RHx {
		writeRowStart(buf, dates, i)
		writeFloat(buf, daily.RHx[i])
		writeFloat(buf, daily.RHave[i])
		buf.WriteString("\n")
	}
}
