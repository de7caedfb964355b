package poll

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// SortByDateDesc orders rows newest first by their canonical Dates cell.
// A cell that does not parse as YYYY-MM-DD maps to the zero time, so
// such rows collect at the end; the sort is stable, so ties and
// unparseable rows keep their relative input order.
func SortByDateDesc(rows []Record) {
	sort.SliceStable(rows, func(i, j int) bool {
		return isoDateOrMin(rows[i].Get(ColDates)).After(isoDateOrMin(rows[j].Get(ColDates)))
	})
}

// isoDateOrMin parses YYYY-MM-DD, returning the zero time on any failure.
func isoDateOrMin(s string) time.Time {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}
	}
	y, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	d, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil || !validDate(y, m, d) {
		return time.Time{}
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}
