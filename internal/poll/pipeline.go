package poll

// Enrich produces the output form of one raw record: the Dates cell is
// rewritten to canonical form, Sponsor is extracted from the raw
// Pollster cell before that cell is cleaned, and every output column
// the row is missing is defaulted to an empty string. The input record
// is not modified.
func Enrich(rec Record, fields []string) Record {
	out := rec.Clone()

	if v, ok := rec.Lookup(ColDates); ok {
		out[ColDates] = ExtractDate(v)
	}

	// Sponsor must come from the original markup, not the cleaned name.
	out[ColSponsor] = ExtractSponsor(rec.Get(ColPollster))

	if v, ok := rec.Lookup(ColPollster); ok {
		out[ColPollster] = ExtractPollster(v)
	}

	for _, f := range fields {
		if _, ok := out[f]; !ok {
			out[f] = ""
		}
	}
	return out
}

// EnrichAll applies Enrich to every record, preserving order.
func EnrichAll(rows []Record, fields []string) []Record {
	out := make([]Record, 0, len(rows))
	for _, rec := range rows {
		out = append(out, Enrich(rec, fields))
	}
	return out
}
