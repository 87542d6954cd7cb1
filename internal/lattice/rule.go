package lattice

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Rule decides the next state of a point from its active neighbour count.
type Rule struct {
	// Birth lists the neighbour counts that activate an inactive point.
	Birth []int
	// Survive lists the neighbour counts that keep an active point active.
	Survive []int
}

// Conway returns the B3/S23 rule.
func Conway() Rule {
	return Rule{Birth: []int{3}, Survive: []int{2, 3}}
}

// Next reports whether a point with the given state and neighbour count is
// active in the next generation.
func (r Rule) Next(active bool, neighbours int) bool {
	if active {
		return slices.Contains(r.Survive, neighbours)
	}
	return slices.Contains(r.Birth, neighbours)
}

// String renders the rule in B/S notation.
func (r Rule) String() string {
	return "B" + joinCounts(r.Birth) + "/S" + joinCounts(r.Survive)
}

// Validate rejects negative counts.
func (r Rule) Validate() error {
	for _, n := range slices.Concat(r.Birth, r.Survive) {
		if n < 0 {
			return fmt.Errorf("%w: negative neighbour count %d", ErrRule, n)
		}
	}
	return nil
}

// ParseRule parses B/S notation such as "B3/S23" or "B3,6/S2,3". Counts
// written without commas are read one digit at a time.
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("%w: %q", ErrRule, s)
	}
	var r Rule
	for _, part := range parts {
		if part == "" {
			return Rule{}, fmt.Errorf("%w: %q", ErrRule, s)
		}
		counts, err := ParseCounts(part[1:])
		if err != nil {
			return Rule{}, fmt.Errorf("%w: %q: %v", ErrRule, s, err)
		}
		switch part[0] {
		case 'B':
			r.Birth = counts
		case 'S':
			r.Survive = counts
		default:
			return Rule{}, fmt.Errorf("%w: %q", ErrRule, s)
		}
	}
	return r, nil
}

// ParseCounts parses "23" or "2,3" into neighbour counts.
func ParseCounts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	var fields []string
	if strings.Contains(s, ",") {
		fields = strings.Split(s, ",")
	} else {
		fields = strings.Split(s, "")
	}
	counts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("negative count %d", n)
		}
		counts = append(counts, n)
	}
	return counts, nil
}

func joinCounts(counts []int) string {
	multi := false
	for _, n := range counts {
		if n > 9 {
			multi = true
		}
	}
	parts := make([]string, len(counts))
	for i, n := range counts {
		parts[i] = strconv.Itoa(n)
	}
	if multi {
		return strings.Join(parts, ",")
	}
	return strings.Join(parts, "")
}
