package xrm

// matchResult records, for one aligned entry, how each query position
// was consumed. The entry is referenced by its index in the database
// rather than by pointer.
type matchResult struct {
	entryIndex int
	flags      []matchFlags
}

// match selects the best matching entry for the query under the
// classical precedence rules. The first matching entry in database
// order is the incumbent; a later entry replaces it only when the
// comparison finds a position where it wins.
func (db *Database) match(name, class []Component) (*Entry, bool) {
	var best *matchResult
	n := len(name)

	for idx, entry := range db.entries {
		candidate := &matchResult{entryIndex: idx, flags: make([]matchFlags, n)}
		if !alignEntry(entry, name, class, candidate.flags) {
			continue
		}
		if best == nil || candidateWins(best.flags, candidate.flags) {
			best = candidate
		}
	}

	if best == nil {
		return nil, false
	}
	return db.entries[best.entryIndex], true
}

// alignEntry walks the entry components against the query positions and
// fills the per-position flags. It reports whether the entry matches at
// all, i.e. both the entry and the query are fully consumed. class may
// be nil.
func alignEntry(entry *Entry, name, class []Component, flags []matchFlags) bool {
	useClass := class != nil
	comps := entry.Components

	i, j := 0, 0
	for i < len(name) && j < len(comps) {
		c := comps[j]
		if c.Binding == BindLoose {
			flags[i] = matchPrecedingLoose
		}

		switch c.Type {
		case CompNormal:
			switch {
			case c.Name == name[i].Name:
				flags[i] |= matchName
				i++
				j++
			case useClass && c.Name == class[i].Name:
				flags[i] |= matchClass
				i++
				j++
			default:
				if c.Binding == BindTight {
					return false
				}
				// The loose marker re-attaches to the final matching
				// position of the loose run.
				flags[i] &^= matchPrecedingLoose
				flags[i] |= matchSkipped
				i++
			}

		case CompWildcard:
			flags[i] |= matchWildcard
			i++
			j++
		}
	}

	return i == len(name) && j == len(comps)
}

// candidateWins reports whether the candidate record beats the current
// best. The scan is asymmetric on purpose: only candidate wins under
// rules 1-3 are tested, at every position in turn, so a best record that
// is better at an earlier position does not end the scan. If the
// candidate wins nowhere, the incumbent is retained.
func candidateWins(best, candidate []matchFlags) bool {
	for i := range best {
		b, c := best[i], candidate[i]

		// Rule 1: matching components, including '?', outweigh skipped ones.
		if b&matchSkipped != 0 && c&(matchName|matchClass|matchWildcard) != 0 {
			return true
		}

		// Rule 2: a matching name outweighs both a matching class and '?';
		// a matching class outweighs '?'.
		if b&(matchClass|matchWildcard) != 0 && c&matchName != 0 {
			return true
		}
		if b&matchWildcard != 0 && c&matchClass != 0 {
			return true
		}

		// Rule 3: a preceding tight binding outweighs a preceding loose one.
		if b&matchPrecedingLoose != 0 && c&matchPrecedingLoose == 0 {
			return true
		}
	}
	return false
}
