package a

type Edge struct {
	ParentID string
	ChildID  string
}

func badIDScan(parentsA, parentsB []string) string {
	for _, a := range parentsA {
		for _, b := range parentsA { // want "quadratic scan: nested loop over \"parentsA\""
			if a == b {
				_ = a
			}
		}
		_ = parentsB
	}
	return ""
}

func badEdgePairs(edges []Edge) {
	for _, a := range edges {
		for _, b := range edges { // want "quadratic scan: nested loop over \"edges\""
			if a.ParentID != b.ParentID {
				_ = a.ChildID + b.ChildID
			}
		}
	}
}

func goodDifferentSlices(parentsA, parentsB []string) bool {
	for _, a := range parentsA {
		for _, b := range parentsB {
			if a == b {
				return true
			}
		}
	}
	return false
}

func goodSetProbe(parentsA, parentsB []string) bool {
	seen := make(map[string]bool, len(parentsA))
	for _, a := range parentsA {
		seen[a] = true
	}
	for _, b := range parentsB {
		if seen[b] {
			return true
		}
	}
	return false
}

func goodMapTwice(members map[string]bool) {
	// Map iteration nested over itself is odd but not the pairwise id
	// scan this check is after.
	for a := range members {
		for b := range members {
			_ = a + b
		}
	}
}
