package poll

// Column names with fixed roles in the pipeline.
const (
	ColDates      = "Dates"
	ColPollster   = "Pollster"
	ColSponsor    = "Sponsor"
	ColApprove    = "Approve"
	ColDisapprove = "Disapprove"
	ColNet        = "Net"
	ColInfluence  = "Influence"
	ColRolling    = "RollingWeightedApprove"
)

// OutputFields computes the output column order from the input header:
// Disapprove and Net are dropped, Sponsor is inserted directly after
// Pollster, and RollingWeightedApprove directly after Approve. When the
// anchor column is missing the new column is appended instead. Names are
// compared case-sensitively.
func OutputFields(in []string) []string {
	fields := make([]string, 0, len(in)+2)
	for _, f := range in {
		if f == ColDisapprove || f == ColNet {
			continue
		}
		fields = append(fields, f)
	}
	fields = insertAfter(fields, ColSponsor, ColPollster)
	fields = insertAfter(fields, ColRolling, ColApprove)
	return fields
}

// insertAfter places name directly after anchor, appending when the
// anchor is absent. A name already present is left where it is.
func insertAfter(fields []string, name, anchor string) []string {
	if indexOf(fields, name) >= 0 {
		return fields
	}
	i := indexOf(fields, anchor)
	if i < 0 {
		return append(fields, name)
	}
	out := make([]string, 0, len(fields)+1)
	out = append(out, fields[:i+1]...)
	out = append(out, name)
	out = append(out, fields[i+1:]...)
	return out
}

func indexOf(fields []string, name string) int {
	for i, f := range fields {
		if f == name {
			return i
		}
	}
	return -1
}
