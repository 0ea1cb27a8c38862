package parser

// Character classification predicates operate on raw bytes, never runes:
// address strings are octet sequences, not Unicode text (spec.md §4.2,
// §9 — the 9216-9229 "Unicode control picture" translation the original
// implementation performs on its way in is an input-sanitation quirk of
// that runtime and is not reproduced here).

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isAtext reports whether b is allowed inside an atom (RFC 5322 §3.2.3).
func isAtext(b byte) bool {
	if isAlpha(b) || isDigit(b) {
		return true
	}
	switch b {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '/', '=', '?',
		'^', '_', '`', '{', '|', '}', '~':
		return true
	}
	return false
}

// isQtext reports whether b is allowed, unescaped, inside a quoted string.
func isQtext(b byte) bool {
	return b == 33 || (b >= 35 && b <= 91) || (b >= 93 && b <= 126)
}

// isQtextDeprecated reports whether b is qtext only under the obsolete
// grammar (NO-WS-CTL, excluding LF).
func isQtextDeprecated(b byte) bool {
	return (b > 0 && b < 32 && b != '\n') || b == 127
}

// isCtext reports whether b is allowed, unescaped, inside a comment.
func isCtext(b byte) bool {
	return (b >= 33 && b <= 39) || (b >= 42 && b <= 91) || (b >= 93 && b <= 126)
}

func isCtextDeprecated(b byte) bool {
	return (b > 0 && b < 32) || b == 127
}

// isDtext reports whether b is allowed, unescaped, inside a domain literal.
func isDtext(b byte) bool {
	return (b >= 33 && b <= 90) || (b >= 94 && b <= 126)
}

func isDtextDeprecated(b byte) bool {
	return (b > 0 && b < 32) || b == 127
}

func isVchar(b byte) bool { return b >= 33 && b <= 126 }

func isWSP(b byte) bool { return b == ' ' || b == '\t' }

// isLetDig reports whether b is a plain letter or digit — RFC 5321's
// Let-dig, the character class a DNS label is actually built from.
func isLetDig(b byte) bool { return isAlpha(b) || isDigit(b) }

// isIPv4 reports whether s is a dotted-quad IPv4 literal, anchored to the
// whole string: D "." D "." D "." D where D is 25[0-5] | 2[0-4][0-9] |
// [01]?[0-9][0-9]? (spec.md §4.2). Hand-rolled rather than regexp — this
// grammar is small and fixed-shape, and the teacher repo (t0gun-go-spf)
// consistently prefers direct byte/CIDR parsing over regexp for this exact
// class of problem (see parser/parser.go's ip4/ip6 mechanism parsers).
func isIPv4(s string) bool {
	octets := 0
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '.' {
			if !isDecOctet(s[start:i]) {
				return false
			}
			octets++
			start = i + 1
			continue
		}
		if !isDigit(s[i]) {
			return false
		}
	}
	return octets == 4
}

// isDecOctet reports whether s is 1-3 digits in [0, 255] — RFC 5321's Snum
// production, 25[0-5] | 2[0-4][0-9] | [01]?[0-9][0-9]?. That grammar, taken
// literally, does not exclude a leading zero on a 3-digit group ("008"
// matches the third alternative digit for digit), and neither does the
// original implementation's identical regex, so this doesn't reject one
// either.
func isDecOctet(s string) bool {
	if len(s) == 0 || len(s) > 3 {
		return false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n <= 255
}
