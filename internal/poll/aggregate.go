package poll

import (
	"math"
	"strconv"
	"strings"
)

// weightedAcc carries the running sums of a weighted mean.
type weightedAcc struct {
	w  float64
	wv float64
}

// add folds one record into the accumulator. The record contributes
// only when both Influence and Approve parse as finite numbers and the
// weight is strictly positive; anything else is silently excluded.
func (a *weightedAcc) add(rec Record) {
	w, okW := parseFinite(rec.Get(ColInfluence))
	v, okV := parseFinite(rec.Get(ColApprove))
	if okW && okV && w > 0 {
		a.w += w
		a.wv += w * v
	}
}

// mean returns the weighted mean so far; ok is false while the
// accumulated weight is zero.
func (a weightedAcc) mean() (float64, bool) {
	if a.w <= 0 {
		return 0, false
	}
	return a.wv / a.w, true
}

func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// GlobalWeightedAverage computes the Influence-weighted mean of Approve
// over all rows, independent of row order. ok is false when no row
// qualifies.
func GlobalWeightedAverage(rows []Record) (avg float64, ok bool) {
	var acc weightedAcc
	for _, rec := range rows {
		acc.add(rec)
	}
	return acc.mean()
}

// AnnotateRolling walks rows in their current (newest-first) order and
// stamps each with the weighted mean of every row from the top down to
// and including itself, formatted to five decimals. A row that fails
// the inclusion rule still receives the latest ratio; rows before the
// first qualifying one get an empty string.
func AnnotateRolling(rows []Record) {
	var acc weightedAcc
	for _, rec := range rows {
		acc.add(rec)
		if mean, ok := acc.mean(); ok {
			rec[ColRolling] = strconv.FormatFloat(mean, 'f', 5, 64)
		} else {
			rec[ColRolling] = ""
		}
	}
}
