// Package coordinate orders dependency versions. Versions that parse as
// semantic versions are compared with golang.org/x/mod/semver; anything else
// falls back to a segment-wise comparison that treats numeric segments as
// numbers.
package coordinate

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// IsDynamic reports whether a version is a prefix request such as "1.+".
func IsDynamic(v string) bool {
	return strings.HasSuffix(v, "+")
}

// canonical turns a declared version into a semver string, or "" if it is
// not one. Dynamic versions compare by their prefix.
func canonical(v string) string {
	v = strings.TrimSuffix(strings.TrimSuffix(v, "+"), ".")
	if v == "" {
		return ""
	}
	sv := "v" + v
	if !semver.IsValid(sv) {
		return ""
	}
	return sv
}

// Compare returns -1, 0 or +1 as a is lower than, equal to or higher than b.
func Compare(a, b string) int {
	ca, cb := canonical(a), canonical(b)
	if ca != "" && cb != "" {
		return semver.Compare(ca, cb)
	}
	return compareSegments(a, b)
}

// Major returns the major component used to decide whether two versions are
// compatible.
func Major(v string) string {
	if c := canonical(v); c != "" {
		return strings.TrimPrefix(semver.Major(c), "v")
	}
	if segs := segments(v); len(segs) > 0 {
		return segs[0]
	}
	return v
}

// Highest returns the highest of the given versions. It returns "" for an
// empty input.
func Highest(versions ...string) string {
	best := ""
	for i, v := range versions {
		if i == 0 || Compare(v, best) > 0 {
			best = v
		}
	}
	return best
}

func segments(v string) []string {
	return strings.FieldsFunc(v, func(r rune) bool { return r == '.' || r == '-' || r == '+' })
}

func compareSegments(a, b string) int {
	sa, sb := segments(a), segments(b)
	for i := 0; i < len(sa) || i < len(sb); i++ {
		if i >= len(sa) {
			if c := compareMissing(sb[i]); c != 0 {
				return -c
			}
			continue
		}
		if i >= len(sb) {
			if c := compareMissing(sa[i]); c != 0 {
				return c
			}
			continue
		}
		if c := compareSegment(sa[i], sb[i]); c != 0 {
			return c
		}
	}
	return 0
}

// compareMissing compares a trailing segment with the absent segment of a
// shorter version. Against numbers the absent segment counts as 0, while a
// trailing qualifier marks a pre-release: 1.0-rc1 < 1.0 < 1.0.1.
func compareMissing(seg string) int {
	n, err := strconv.Atoi(seg)
	switch {
	case err != nil:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func compareSegment(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	case errA == nil:
		// Numbers sort after qualifiers, so "1.0" > "1.alpha".
		return 1
	case errB == nil:
		return -1
	}
	return strings.Compare(a, b)
}
