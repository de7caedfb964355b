package poll

// Record is a single poll row keyed by column name. A missing key means
// the source row had no cell for that column, which is distinct from a
// present-but-empty cell; extractors and aggregates rely on that
// distinction matching the input file.
type Record map[string]string

// Lookup returns the cell value and whether the column is present.
func (r Record) Lookup(key string) (string, bool) {
	v, ok := r[key]
	return v, ok
}

// Get returns the cell value, or an empty string when the column is absent.
func (r Record) Get(key string) string {
	return r[key]
}

// Clone returns an independent shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
