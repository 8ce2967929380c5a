package table

// Resolver picks the first column present in a table from an ordered list of
// candidate names
type Resolver struct {
	Name       string
	Candidates []string
}

// Resolve returns the highest priority candidate the table has
func (r Resolver) Resolve(t *Table) (string, bool) {
	if t == nil {
		return "", false
	}
	for _, c := range r.Candidates {
		if t.Has(c) {
			return c, true
		}
	}
	return "", false
}

// Primary returns the first candidate, the column the resolver prefers
func (r Resolver) Primary() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	return r.Candidates[0]
}
