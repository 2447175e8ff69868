package analysis

import "gonum.org/v1/gonum/stat"

// Stat is the mean and sample standard deviation of one metric across a
// batch. Std is 0 for batches of fewer than two pieces.
type Stat struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// Summary aggregates a batch of Results per metric.
type Summary struct {
	Count      int  `json:"count"`
	H0         Stat `json:"h0"`
	HK         Stat `json:"hk"`
	HMax       Stat `json:"hmax"`
	Redundancy Stat `json:"redundancy"`
	LZC        Stat `json:"lzc"`
	LZCNorm    Stat `json:"lzc_normalized"`
	IP         Stat `json:"ip"`
}

// Summarize reduces results to per-metric statistics. An empty batch
// yields the zero Summary.
func Summarize(results []Result) Summary {
	n := len(results)
	if n == 0 {
		return Summary{}
	}
	h0 := make([]float64, n)
	hk := make([]float64, n)
	hmax := make([]float64, n)
	red := make([]float64, n)
	c := make([]float64, n)
	cn := make([]float64, n)
	ip := make([]float64, n)
	for i, r := range results {
		h0[i], hk[i], hmax[i] = r.H0, r.HK, r.HMax
		red[i], c[i], cn[i], ip[i] = r.Redundancy, float64(r.LZC), r.LZCNorm, r.IP
	}
	return Summary{
		Count:      n,
		H0:         columnStat(h0),
		HK:         columnStat(hk),
		HMax:       columnStat(hmax),
		Redundancy: columnStat(red),
		LZC:        columnStat(c),
		LZCNorm:    columnStat(cn),
		IP:         columnStat(ip),
	}
}

// columnStat computes one metric column's statistics.
func columnStat(xs []float64) Stat {
	s := Stat{Mean: stat.Mean(xs, nil)}
	if len(xs) > 1 {
		s.Std = stat.StdDev(xs, nil)
	}
	return s
}
