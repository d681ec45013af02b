// Package wxindex derives vapor pressure deficit, wet-bulb globe temperature
// and relative humidity from daily and hourly surface observations.
//
// Every quantity has a scalar form and a batch form over slices. Batch forms
// check that their inputs line up, then evaluate each position independently.
// Numeric singularities are not errors: they come out as NaN or ±Inf in the
// affected position only.
package wxindex

import (
	"math"
	"time"
)

//--------------------------------------
// 飽差 VPD (Daly et al. 2015)
//--------------------------------------

// 気温 t [℃] における飽和水蒸気圧 [kPa] を計算します。
func SaturationVaporPressureDaly(t float64) float64 {
	return 0.611 * math.Exp(17.3*t/(t+273.3))
}

// 日最高気温 tmax、日最低気温 tmin [℃] と相対湿度 rh [%] から飽差 [kPa] を計算します。
// rh は丸めないため、rh > 100 では負の値になります。
func VPD(tmax float64, tmin float64, rh float64) float64 {
	t := (tmax + tmin) / 2
	svp := SaturationVaporPressureDaly(t)
	return svp * (1 - rh/100)
}

// VPD を要素ごとに計算します。
// 引数:
// tmax, tmin: 日最高・最低気温 [℃]
// rh: 相対湿度 [%]
// 戻り値:
// 入力と同じ長さの飽差 [kPa]。入力の長さが揃わない場合は ErrLengthMismatch
func ComputeVPD(tmax []float64, tmin []float64, rh []float64, opts ...Option) ([]float64, error) {
	if err := checkLengths([]string{"tmax", "tmin", "rh"}, tmax, tmin, rh); err != nil {
		return nil, err
	}
	c := newConfig(opts)
	start := time.Now()

	vpd := make([]float64, len(tmax))
	parallelFor(len(tmax), c.workers, func(i int) {
		vpd[i] = VPD(tmax[i], tmin[i], rh[i])
	})

	c.metrics.observe("vpd", vpd, start)
	return vpd, nil
}
