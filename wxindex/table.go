package wxindex

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hhkbp2/go-logging"
)

// DateLayout is the timestamp format of the optional "date" column.
const DateLayout = "2006-01-02 15:04:05"

// ErrMissingColumn is returned by Table.Column for an unknown column name.
var ErrMissingColumn = errors.New("missing column")

// Table is a column-oriented set of observations read from CSV.
type Table struct {
	Date    []time.Time // nil when the source had no "date" column
	columns map[string][]float64
	names   []string
}

// Len is the number of rows.
func (t *Table) Len() int {
	for _, c := range t.columns {
		return len(c)
	}
	return len(t.Date)
}

// Names lists the numeric columns in file order.
func (t *Table) Names() []string {
	return append([]string{}, t.names...)
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) ([]float64, error) {
	c, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	return append([]float64{}, c...), nil
}

// 期間 [start, end] の行を抽出して新しいテーブルを返します。
// 日付は昇順であること。日付列がない場合はそのまま返す。
func (t *Table) Extract(start time.Time, end time.Time) *Table {
	if t.Date == nil {
		return t
	}
	startIndex := sort.Search(len(t.Date), func(i int) bool {
		return !t.Date[i].Before(start)
	})
	endIndex := sort.Search(len(t.Date), func(i int) bool {
		return t.Date[i].After(end)
	})
	if endIndex < startIndex {
		endIndex = startIndex
	}

	out := &Table{
		Date:    append([]time.Time{}, t.Date[startIndex:endIndex]...),
		columns: make(map[string][]float64, len(t.columns)),
		names:   t.Names(),
	}
	for name, c := range t.columns {
		out.columns[name] = append([]float64{}, c[startIndex:endIndex]...)
	}
	return out
}

// startYear-01-01 00:00 から endYear-12-31 23:00 までの行を抽出
func (t *Table) ExtractYears(startYear int, endYear int) *Table {
	start := time.Date(startYear, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear, 12, 31, 23, 0, 0, 0, time.UTC)
	return t.Extract(start, end)
}

// 空欄、NA、数値でないセルは NaN とする
func parseCell(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "NA") {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// LoadTable reads a CSV with a header row. A column named "date" is parsed
// with DateLayout; every other column is numeric.
func LoadTable(r io.Reader) (*Table, error) {
	csvReader := csv.NewReader(r)
	csvReader.ReuseRecord = true

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	t := &Table{columns: map[string][]float64{}}
	dateCol := -1
	names := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		names[i] = h
		if h == "date" {
			dateCol = i
			t.Date = []time.Time{}
			continue
		}
		if _, dup := t.columns[h]; dup {
			return nil, fmt.Errorf("duplicate column %q", h)
		}
		t.columns[h] = []float64{}
		t.names = append(t.names, h)
	}

	for line := 2; ; line++ {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		for i, cell := range row {
			if i == dateCol {
				date, err := time.Parse(DateLayout, strings.TrimSpace(cell))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				t.Date = append(t.Date, date)
				continue
			}
			t.columns[names[i]] = append(t.columns[names[i]], parseCell(cell))
		}
	}

	return t, nil
}

// LoadTableFile opens path and reads it with LoadTable. Files ending in .gz
// are decompressed.
func LoadTableFile(path string) (*Table, error) {
	logger := logging.GetLogger("wxindex")
	logger.Infof("loading %s", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gf, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer gf.Close()
		r = gf
	}

	t, err := LoadTable(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debugf("%s: %d rows, columns %v", path, t.Len(), t.names)
	return t, nil
}
