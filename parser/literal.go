package parser

import "github.com/nullmx/isemail/diagnosis"

// analyzeAddressLiteral classifies the content of a closed domain literal
// (the bytes between "[" and "]", not including the brackets) against
// RFC 5321 §4.1.3. It returns one or two diagnoses: the group-count
// family and the colon-edge family are independent checks over the same
// IPv6 text, not a single decision tree, so both can fire (the aggregator's
// worst-wins reduction settles which one matters).
func analyzeAddressLiteral(literal string) []diagnosis.Kind {
	addressLiteral := literal
	ipv4Only := false

	if idx, ok := trailingIPv4Index(literal); ok {
		if idx == 0 {
			ipv4Only = true
		} else {
			// Rewrite the trailing IPv4-address-literal to a placeholder
			// 16-bit group pair so the IPv6 group-count checks below see a
			// shape they understand (IPv6v4-full / IPv6v4-comp).
			addressLiteral = literal[:idx] + "0:0"
		}
	}

	switch {
	case ipv4Only:
		return []diagnosis.Kind{diagnosis.KindRFC5321AddressLiteral}
	case len(addressLiteral) < 5 || addressLiteral[:5] != "IPv6:":
		return []diagnosis.Kind{diagnosis.KindRFC5322DomainLiteral}
	}

	ipv6 := addressLiteral[5:]
	if len(ipv6) == 0 {
		return []diagnosis.Kind{diagnosis.KindRFC5322DomainLiteral}
	}

	groups := splitColon(ipv6)
	grpCount := len(groups)
	maxGroups := 8

	var kinds []diagnosis.Kind

	doubleIdx := indexDoubleColon(ipv6)
	if doubleIdx == -1 {
		if grpCount != maxGroups {
			kinds = append(kinds, diagnosis.KindRFC5322IPv6GrpCount)
		}
	} else {
		if doubleIdx != lastIndexDoubleColon(ipv6) {
			kinds = append(kinds, diagnosis.KindRFC5322IPv62x2xColon)
		} else {
			if doubleIdx == 0 || doubleIdx == len(ipv6)-2 {
				// RFC 4291 allows "::" at the start or end of an address
				// with 7 other groups in addition.
				maxGroups++
			}
			if grpCount > maxGroups {
				kinds = append(kinds, diagnosis.KindRFC5322IPv6MaxGrps)
			} else if grpCount == maxGroups {
				kinds = append(kinds, diagnosis.KindRFC5321IPv6Deprecated)
			}
		}
	}

	switch {
	case ipv6[0] == ':' && (len(ipv6) < 2 || ipv6[1] != ':'):
		kinds = append(kinds, diagnosis.KindRFC5322IPv6ColonStrt)
	case ipv6[len(ipv6)-1] == ':' && (len(ipv6) < 2 || ipv6[len(ipv6)-2] != ':'):
		kinds = append(kinds, diagnosis.KindRFC5322IPv6ColonEnd)
	case hasBadHexGroup(groups):
		kinds = append(kinds, diagnosis.KindRFC5322IPv6BadChar)
	default:
		kinds = append(kinds, diagnosis.KindRFC5321AddressLiteral)
	}

	return kinds
}

// trailingIPv4Index returns the left-most byte offset at which s ends in a
// valid IPv4-address-literal (anchored to the end of s, and preceded by a
// word boundary — the start of s or a non-alnum byte), mirroring the
// original's `\b(...){3}(...)$` regex search without pulling in regexp for
// a single fixed-shape lookup.
func trailingIPv4Index(s string) (int, bool) {
	for idx := 0; idx < len(s); idx++ {
		if idx > 0 {
			c := s[idx-1]
			if isAlpha(c) || isDigit(c) {
				continue
			}
		}
		if isIPv4(s[idx:]) {
			return idx, true
		}
	}
	return 0, false
}

func splitColon(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

func indexDoubleColon(s string) int {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == ':' && s[i+1] == ':' {
			return i
		}
	}
	return -1
}

func lastIndexDoubleColon(s string) int {
	for i := len(s) - 2; i >= 0; i-- {
		if s[i] == ':' && s[i+1] == ':' {
			return i
		}
	}
	return -1
}

func hasBadHexGroup(groups []string) bool {
	for _, g := range groups {
		if !isHexGroup(g) {
			return true
		}
	}
	return false
}

// isHexGroup reports whether s is 0-4 hex digits — an IPv6-hex group, which
// may be empty (as either side of "::" is when adjacent to it).
func isHexGroup(s string) bool {
	if len(s) > 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		if !(isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')) {
			return false
		}
	}
	return true
}
