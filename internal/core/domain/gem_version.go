package domain

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"go.trai.ch/zerr"
)

// GemVersion is a version number ordered the way RubyGems orders them:
// numeric segments compare numerically, letter segments mark a prerelease
// and sort before any number, and missing segments count as zero.
type GemVersion struct {
	raw      string
	segments []gemSegment
}

type gemSegment struct {
	num   int
	str   string
	isNum bool
}

// ParseGemVersion parses strings such as "4.0.2", "4.0.0.beta" or "4.1.0.beta1".
func ParseGemVersion(s string) (GemVersion, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return GemVersion{}, invalidGemVersion(s, nil)
	}

	// RubyGems treats "1.0-rc1" as "1.0.pre.rc1".
	normalized := strings.ReplaceAll(raw, "-", ".pre.")

	var segments []gemSegment
	for _, part := range strings.Split(normalized, ".") {
		if part == "" {
			return GemVersion{}, invalidGemVersion(s, nil)
		}
		for _, run := range splitRuns(part) {
			if unicode.IsDigit(rune(run[0])) {
				n, err := strconv.Atoi(run)
				if err != nil {
					return GemVersion{}, invalidGemVersion(s, err)
				}
				segments = append(segments, gemSegment{num: n, isNum: true})
				continue
			}
			for _, r := range run {
				if !unicode.IsLetter(r) {
					return GemVersion{}, invalidGemVersion(s, nil)
				}
			}
			segments = append(segments, gemSegment{str: run})
		}
	}

	if !segments[0].isNum {
		return GemVersion{}, invalidGemVersion(s, nil)
	}

	return GemVersion{raw: raw, segments: segments}, nil
}

func invalidGemVersion(s string, cause error) error {
	err := zerr.New("malformed gem version")
	if cause != nil {
		err = zerr.Wrap(cause, "malformed gem version")
	}
	return errors.Join(ErrInvalidGemVersion, zerr.With(err, "version", s))
}

// MustParseGemVersion is like ParseGemVersion but panics on malformed input.
// It is meant for version constants.
func MustParseGemVersion(s string) GemVersion {
	v, err := ParseGemVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// splitRuns splits "beta1" into "beta" and "1".
func splitRuns(part string) []string {
	var runs []string
	start := 0
	for i := 1; i < len(part); i++ {
		if unicode.IsDigit(rune(part[i])) != unicode.IsDigit(rune(part[i-1])) {
			runs = append(runs, part[start:i])
			start = i
		}
	}
	return append(runs, part[start:])
}

// String returns the version as it was written.
func (v GemVersion) String() string {
	return v.raw
}

// IsPrerelease reports whether the version contains a letter segment.
func (v GemVersion) IsPrerelease() bool {
	for _, s := range v.segments {
		if !s.isNum {
			return true
		}
	}
	return false
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to or after o.
func (v GemVersion) Compare(o GemVersion) int {
	n := max(len(v.segments), len(o.segments))
	zero := gemSegment{isNum: true}
	for i := range n {
		a, b := zero, zero
		if i < len(v.segments) {
			a = v.segments[i]
		}
		if i < len(o.segments) {
			b = o.segments[i]
		}
		if c := compareSegments(a, b); c != 0 {
			return c
		}
	}
	return 0
}

func compareSegments(a, b gemSegment) int {
	switch {
	case a.isNum && b.isNum:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	case a.isNum:
		return 1
	case b.isNum:
		return -1
	default:
		return strings.Compare(a.str, b.str)
	}
}

// InRange reports whether lower <= v < upper.
func (v GemVersion) InRange(lower, upper GemVersion) bool {
	return v.Compare(lower) >= 0 && v.Compare(upper) < 0
}
