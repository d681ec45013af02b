package wxindex

import (
	"math"
	"time"
)

//--------------------------------------
// 露点温度と地上気圧による相対湿度
//--------------------------------------

// 露点温度 tdew [℃] から水蒸気圧 e [hPa] を計算します (Magnus 式, Bolton の係数)。
func VaporPressureFromDewpoint(tdew float64) float64 {
	return 6.112 * math.Exp(17.67*tdew/(tdew+243.5))
}

// 水蒸気圧 e [hPa] と地上気圧 pres [Pa] から比湿 q [kg/kg] を計算します。
func SpecificHumidity(e float64, pres float64) float64 {
	return 0.622 * e / (pres/100 - 0.378*e)
}

// exp(17.67 (T - 273.15) / (T - 29.65))  T [K]
func saturationTerm(tK float64) float64 {
	return math.Exp(17.67 * (tK - 273.15) / (tK - 29.65))
}

// 露点温度と地上気圧から相対湿度を計算します。
// 0.263·p·q / exp(17.67(T-273.15)/(T-29.65))
// 引数:
// tdew: 露点温度 [℃]
// pres: 地上気圧 [Pa]
// tmaxK, tminK: 日最高・最低気温 [K] (分母は両者の平均)
// 戻り値:
// パーセント相当の値。露点18℃, 101325Pa, 30/25℃ で約56となり、
// 0-1 の比 (0.56) ではない。スケール変換はしない。RHx, RHave は [%]
func RHFromDewpointPressure(tdew float64, pres float64, tmaxK float64, tminK float64) float64 {
	e := VaporPressureFromDewpoint(tdew)
	q := SpecificHumidity(e, pres)
	p1 := 0.263 * pres * q
	p2 := (saturationTerm(tminK) + saturationTerm(tmaxK)) / 2
	return p1 / p2
}

// RHFromDewpointPressure を要素ごとに計算します。
func ComputeRHFromDewpointPressure(tdew []float64, pres []float64, tmaxK []float64, tminK []float64, opts ...Option) ([]float64, error) {
	if err := checkLengths([]string{"tdew", "pressure", "tmax", "tmin"}, tdew, pres, tmaxK, tminK); err != nil {
		return nil, err
	}
	c := newConfig(opts)
	start := time.Now()

	rh := make([]float64, len(tdew))
	parallelFor(len(tdew), c.workers, func(i int) {
		rh[i] = RHFromDewpointPressure(tdew[i], pres[i], tmaxK[i], tminK[i])
	})

	c.metrics.observe("rh", rh, start)
	return rh, nil
}
