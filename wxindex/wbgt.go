package wxindex

import (
	"math"
	"time"
)

//--------------------------------------
// 暑さ指数 (Heat Index) と日最高 WBGT
// NOAA の Heat Index (Steadman / Rothfusz) と Tuholske et al. 2021 の WBGT 換算式
//--------------------------------------

// Heat Index の計算式
type HeatIndexFormula int

const (
	Steadman HeatIndexFormula = iota
	Rothfusz
)

func (f HeatIndexFormula) String() string {
	switch f {
	case Steadman:
		return "steadman"
	case Rothfusz:
		return "rothfusz"
	}
	return "unknown"
}

// Heat Index の補正 (NOAA)
type HeatIndexCorrection int

const (
	NoCorrection HeatIndexCorrection = iota
	LowHumidityCorrection
	HighHumidityCorrection
)

func (c HeatIndexCorrection) String() string {
	switch c {
	case NoCorrection:
		return "none"
	case LowHumidityCorrection:
		return "low_humidity"
	case HighHumidityCorrection:
		return "high_humidity"
	}
	return "unknown"
}

// 補正の温度範囲 80..112, 80..87 [℉] の判定方法
type RangeMode int

const (
	// 範囲内の整数値のみ一致 (86.0 は対象、86.5 は対象外)
	IntegerRange RangeMode = iota
	// lo <= tf <= hi であれば一致
	ContinuousRange
)

// ParseRangeMode accepts "integer" or "continuous".
func ParseRangeMode(s string) (RangeMode, bool) {
	switch s {
	case "integer":
		return IntegerRange, true
	case "continuous":
		return ContinuousRange, true
	}
	return IntegerRange, false
}

func (m RangeMode) String() string {
	if m == ContinuousRange {
		return "continuous"
	}
	return "integer"
}

func (m RangeMode) contains(tf float64, lo float64, hi float64) bool {
	if !(tf >= lo && tf <= hi) {
		return false
	}
	if m == IntegerRange {
		return tf == math.Trunc(tf)
	}
	return true
}

// 1レコード分の Heat Index と、選択した計算式・補正
type HeatIndexResult struct {
	Formula    HeatIndexFormula
	Correction HeatIndexCorrection
	Raw        float64 // 補正前の Heat Index [℉]
	Adjusted   float64 // 補正後の Heat Index [℉]
}

// WBGT 計算結果の1行
type WBGTRecord struct {
	Tmax float64 // 日最高気温 [℃]
	RH   float64 // 相対湿度 [%]
	HI   float64 // 補正後の Heat Index [℉]
	WBGT float64 // 日最高 WBGT [℃]

	Formula    HeatIndexFormula
	Correction HeatIndexCorrection
}

// 摂氏 [℃] を華氏 [℉] に変換します。
func FahrenheitFromCelsius(c float64) float64 {
	return c*9/5 + 32
}

// Steadman の簡易式による Heat Index [℉]
func SteadmanHeatIndex(tf float64, rh float64) float64 {
	return 0.5*(tf+61+(tf-68)*1.2) + 0.094*rh
}

// Rothfusz の回帰式 (9項) による Heat Index [℉]
func RothfuszHeatIndex(tf float64, rh float64) float64 {
	return -42.379 +
		2.04901523*tf +
		10.14333127*rh -
		0.22475541*tf*rh -
		0.00683783*tf*tf -
		0.05481717*rh*rh +
		0.00122874*tf*tf*rh +
		0.00085282*tf*rh*rh -
		0.00000199*tf*tf*rh*rh
}

// Steadman 式の値と tf の平均が 80℉ 未満なら Steadman、それ以外は Rothfusz を選択します。
func SelectHeatIndexFormula(tf float64, rh float64) HeatIndexFormula {
	if (SteadmanHeatIndex(tf, rh)+tf)/2 < 80 {
		return Steadman
	}
	return Rothfusz
}

// 補正は高々1つ。低湿度の補正を先に判定します。
func SelectHeatIndexCorrection(tf float64, rh float64, mode RangeMode) HeatIndexCorrection {
	switch {
	case mode.contains(tf, 80, 112) && rh < 13:
		return LowHumidityCorrection
	case mode.contains(tf, 80, 87) && rh > 85:
		return HighHumidityCorrection
	default:
		return NoCorrection
	}
}

// 補正量 [℉]
func heatIndexAdjustment(c HeatIndexCorrection, tf float64, rh float64) float64 {
	switch c {
	case LowHumidityCorrection:
		return -((13 - rh) / 4) * math.Sqrt((17-math.Abs(tf-95))/17)
	case HighHumidityCorrection:
		return ((rh - 85) / 10) * ((87 - tf) / 5)
	}
	return 0
}

// 気温 tf [℉] と相対湿度 rh [%] から Heat Index [℉] を計算します。
func HeatIndex(tf float64, rh float64, mode RangeMode) HeatIndexResult {
	r := HeatIndexResult{
		Formula:    SelectHeatIndexFormula(tf, rh),
		Correction: SelectHeatIndexCorrection(tf, rh, mode),
	}
	if r.Formula == Steadman {
		r.Raw = SteadmanHeatIndex(tf, rh)
	} else {
		r.Raw = RothfuszHeatIndex(tf, rh)
	}
	r.Adjusted = r.Raw
	if r.Correction != NoCorrection {
		r.Adjusted = r.Raw + heatIndexAdjustment(r.Correction, tf, rh)
	}
	return r
}

// Heat Index [℉] を日最高 WBGT [℃] に換算します。
func WBGTFromHeatIndex(hi float64) float64 {
	return -0.0034*hi*hi + 0.96*hi - 34
}

// 日最高気温 tmax [℃] と相対湿度 rh [%] から WBGT を計算します。
func WBGT(tmax float64, rh float64, mode RangeMode) WBGTRecord {
	hi := HeatIndex(FahrenheitFromCelsius(tmax), rh, mode)
	return WBGTRecord{
		Tmax:       tmax,
		RH:         rh,
		HI:         hi.Adjusted,
		WBGT:       WBGTFromHeatIndex(hi.Adjusted),
		Formula:    hi.Formula,
		Correction: hi.Correction,
	}
}

// WBGT を要素ごとに計算します。tmax と rh は同じ長さであること。
func ComputeWBGT(tmax []float64, rh []float64, opts ...Option) ([]WBGTRecord, error) {
	if err := checkLengths([]string{"tmax", "rh"}, tmax, rh); err != nil {
		return nil, err
	}
	c := newConfig(opts)
	start := time.Now()

	records := make([]WBGTRecord, len(tmax))
	parallelFor(len(tmax), c.workers, func(i int) {
		records[i] = WBGT(tmax[i], rh[i], c.rangeMode)
	})

	if c.metrics != nil {
		wbgt := make([]float64, len(records))
		for i, r := range records {
			wbgt[i] = r.WBGT
		}
		c.metrics.observe("wbgt", wbgt, start)
	}
	return records, nil
}
