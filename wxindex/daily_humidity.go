package wxindex

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//--------------------------------------
// 毎時データから日最高気温時の相対湿度 (RHx) と日平均相対湿度 (RHave) を計算
//--------------------------------------

// 1日あたりの時間数
const HoursPerDay = 24

// 日別の相対湿度 [%]
type DailyRH struct {
	RHx   []float64 // 日最高気温時の相対湿度 [%]
	RHave []float64 // 日平均露点温度と日平均気温による相対湿度 [%]
}

// Tetens 式による気温 t [℃] の飽和水蒸気圧 [kPa]
// ただし、SaturationVaporPressureDaly とは定数が異なるため置き換え不可。
func SaturationVaporPressureTetens(t float64) float64 {
	return 0.6111 * math.Exp(17.3*t/(t+237.3))
}

// 100·e(td)/e(t)。td は t を上限とする。
func rhFromDewpoint(td float64, t float64) float64 {
	if td > t {
		td = t
	}
	svp := SaturationVaporPressureTetens(t)
	avp := SaturationVaporPressureTetens(td)
	return 100 * avp / svp
}

// 1日の気温 taDay が最高となる時刻のインデックスを返します。
// 同値の場合は早い時刻、NaN は除外。すべて NaN の場合 ok は false
func PeakHour(taDay []float64) (hour int, ok bool) {
	if len(taDay) == 0 {
		return 0, false
	}
	hour = floats.MaxIdx(taDay)
	return hour, !math.IsNaN(taDay[hour])
}

// 最高気温となる時刻の露点温度と日最高気温 tmax [℃] から相対湿度 [%] を計算します。
func RHx(taDay []float64, tdewDay []float64, tmax float64) float64 {
	hour, ok := PeakHour(taDay)
	if !ok {
		return math.NaN()
	}
	return rhFromDewpoint(tdewDay[hour], tmax)
}

// 有限値のみの算術平均。有限値がなければ NaN
func MeanFinite(x []float64) float64 {
	finite := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return math.NaN()
	}
	return stat.Mean(finite, nil)
}

// 日平均露点温度と、tmax と tmin の平均 [℃] から相対湿度 [%] を計算します。
func RHave(tdewDay []float64, tmax float64, tmin float64) float64 {
	tave := (tmin + tmax) / 2
	return rhFromDewpoint(MeanFinite(tdewDay), tave)
}

// 毎時の気温と露点温度から日別の RHx, RHave を計算します。
// 引数:
// ta, tdew: 毎時の気温・露点温度 [℃] (1日24時間、時系列順)
// tmax, tmin: 日最高・最低気温 [℃] (1日1値)
// 戻り値:
// 日別の RHx, RHave [%]
func ComputeRHxRHave(ta []float64, tdew []float64, tmax []float64, tmin []float64, opts ...Option) (DailyRH, error) {
	if err := checkLengths([]string{"ta", "tdew"}, ta, tdew); err != nil {
		return DailyRH{}, err
	}
	if len(ta)%HoursPerDay != 0 {
		return DailyRH{}, fmt.Errorf("%w: got %d hours", ErrHourlyLength, len(ta))
	}
	days := len(ta) / HoursPerDay
	if err := checkLengths([]string{"tmax", "tmin"}, tmax, tmin); err != nil {
		return DailyRH{}, err
	}
	if len(tmax) != days {
		return DailyRH{}, fmt.Errorf("%w: %d days of hourly data, %d daily values",
			ErrLengthMismatch, days, len(tmax))
	}
	c := newConfig(opts)
	start := time.Now()

	res := DailyRH{
		RHx:   make([]float64, days),
		RHave: make([]float64, days),
	}
	parallelFor(days, c.workers, func(d int) {
		lo, hi := d*HoursPerDay, (d+1)*HoursPerDay
		res.RHx[d] = RHx(ta[lo:hi], tdew[lo:hi], tmax[d])
		res.RHave[d] = RHave(tdew[lo:hi], tmax[d], tmin[d])
	})

	c.metrics.observe("rhx", res.RHx, start)
	c.metrics.observe("rhave", res.RHave, start)
	return res, nil
}
