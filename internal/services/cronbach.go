package services

// CronbachAlpha estimates internal consistency for a [respondents][items]
// matrix using population variance throughout, so perfectly correlated
// items yield 1. Ragged rows, fewer than two items or zero total variance
// yield 0. The result is clamped to [0, 1].
func CronbachAlpha(matrix [][]float64) float64 {
	n := len(matrix)
	if n == 0 {
		return 0
	}
	k := len(matrix[0])
	if k < 2 {
		return 0
	}

	totals := make([]float64, n)
	itemVar := make([]float64, k)
	for j := 0; j < k; j++ {
		col := make([]float64, n)
		for i, row := range matrix {
			if len(row) != k {
				return 0
			}
			col[i] = row[j]
			totals[i] += row[j]
		}
		itemVar[j] = variance(col)
	}

	totalVar := variance(totals)
	if totalVar == 0 {
		return 0
	}
	var sum float64
	for _, v := range itemVar {
		sum += v
	}
	kf := float64(k)
	alpha := kf / (kf - 1) * (1 - sum/totalVar)
	switch {
	case alpha < 0:
		return 0
	case alpha > 1:
		return 1
	}
	return alpha
}

func variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return ss / float64(len(xs))
}
