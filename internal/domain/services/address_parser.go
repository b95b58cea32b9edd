package services

import (
	"regexp"
	"strings"

	"shopdesk-http-service/internal/domain/models"
)

// mooPrefix marks a village-number segment in Thai addresses ("หมู่ 4").
const mooPrefix = "หมู่"

var zipPattern = regexp.MustCompile(`^\d{5}$`)

// ParseShopAddress parses the flat comma-joined address string into the
// structured form shape. The input is free text, not a structured format, so
// this is a best-effort positional heuristic:
//
//   - the first segment is always the house number
//   - a trailing 5-digit segment is the postal code, and the three segments
//     before it map right-to-left to province, district, subdistrict
//   - remaining middle segments are scanned for a "หมู่"-prefixed moo token
//     versus a bare soi token
//   - without a postal code, a fixed-position mapping by segment count is
//     used (3, 4, or >=5 segments)
//
// The returned flag is true whenever the parse had to guess: every no-postal
// fallback, and any middle-segment layout the heuristic cannot assign
// deterministically. Callers must treat flagged results as approximate rather
// than silently trusting them.
func ParseShopAddress(address string) (models.FormAddress, bool) {
	var parsed models.FormAddress

	segments := splitSegments(address)
	if len(segments) == 0 {
		return parsed, false
	}

	parsed.HouseNumber = segments[0]
	if len(segments) == 1 {
		return parsed, true
	}

	last := segments[len(segments)-1]
	if zipPattern.MatchString(last) {
		parsed.PostalCode = last
		rest := segments[1 : len(segments)-1]

		// The three segments before the postal code are, right to left,
		// province, district, subdistrict.
		n := len(rest)
		if n >= 1 {
			parsed.Province = rest[n-1]
		}
		if n >= 2 {
			parsed.District = rest[n-2]
		}
		if n >= 3 {
			parsed.Subdistrict = rest[n-3]
		}
		if n < 3 {
			// Too few segments to cover the full hierarchy.
			return parsed, true
		}

		ambiguous := assignMooSoi(&parsed, rest[:n-3])
		return parsed, ambiguous
	}

	// No postal code: fixed-position fallback by segment count. These shapes
	// are inherently underspecified, so every fallback parse is flagged.
	switch len(segments) {
	case 2:
		parsed.Province = segments[1]
	case 3:
		parsed.District = segments[1]
		parsed.Province = segments[2]
	case 4:
		parsed.Subdistrict = segments[1]
		parsed.District = segments[2]
		parsed.Province = segments[3]
	default: // >= 5
		n := len(segments)
		parsed.Province = segments[n-1]
		parsed.District = segments[n-2]
		parsed.Subdistrict = segments[n-3]
		assignMooSoi(&parsed, segments[1:n-3])
	}
	return parsed, true
}

// assignMooSoi distributes the middle segments between moo and soi. Returns
// true when the layout is ambiguous: more than two middles, two middles
// where the moo marker does not single one out, or any leftover the
// heuristic had to drop into soi.
func assignMooSoi(parsed *models.FormAddress, middles []string) bool {
	switch len(middles) {
	case 0:
		return false
	case 1:
		if moo, ok := stripMooPrefix(middles[0]); ok {
			parsed.Moo = moo
		} else {
			parsed.Soi = middles[0]
		}
		return false
	case 2:
		first, firstIsMoo := stripMooPrefix(middles[0])
		second, secondIsMoo := stripMooPrefix(middles[1])
		if firstIsMoo && !secondIsMoo {
			parsed.Moo = first
			parsed.Soi = middles[1]
			return false
		}
		if secondIsMoo && !firstIsMoo {
			parsed.Moo = second
			parsed.Soi = middles[0]
			return false
		}
		// Both or neither marked: keep positional order but flag it.
		if firstIsMoo {
			parsed.Moo = first
			parsed.Soi = second
		} else {
			parsed.Moo = middles[0]
			parsed.Soi = middles[1]
		}
		return true
	default:
		// More middles than the form has fields for.
		if moo, ok := stripMooPrefix(middles[0]); ok {
			parsed.Moo = moo
			parsed.Soi = strings.Join(middles[1:], ", ")
		} else {
			parsed.Soi = strings.Join(middles, ", ")
		}
		return true
	}
}

// BuildShopAddress rebuilds the flat comma-joined address string from the
// structured form shape. It is the near-inverse of ParseShopAddress:
// round-tripping is only guaranteed for well-formed 5/6-segment inputs.
func BuildShopAddress(addr models.FormAddress) string {
	var segments []string

	appendIf := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			segments = append(segments, s)
		}
	}

	appendIf(addr.HouseNumber)
	if moo := strings.TrimSpace(addr.Moo); moo != "" {
		segments = append(segments, mooPrefix+" "+moo)
	}
	appendIf(addr.Soi)
	appendIf(addr.Subdistrict)
	appendIf(addr.District)
	appendIf(addr.Province)
	appendIf(addr.PostalCode)

	return strings.Join(segments, ", ")
}

// splitSegments splits on commas and drops empty segments
func splitSegments(address string) []string {
	parts := strings.Split(address, ",")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// stripMooPrefix reports whether the segment carries the moo marker and
// returns the bare value ("หมู่ 4" -> "4")
func stripMooPrefix(segment string) (string, bool) {
	if !strings.HasPrefix(segment, mooPrefix) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(segment, mooPrefix)), true
}
