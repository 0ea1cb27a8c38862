package parser

import "github.com/nullmx/isemail/diagnosis"

// finalChecks runs the terminal-state validations that only make sense
// once the whole address has been consumed: an unclosed nested context,
// a dangling fold, or one of the fixed length limits from RFC 5321 §4.5.3.
//
// It is skipped entirely once an ERR-band diagnosis already fired during
// the main loop — at that point the address is unsalvageably invalid and
// these checks would only report on a parse that gave up partway through.
func (s *state) finalChecks() {
	if s.diagnoses.Worst().Code >= uint8(diagnosis.RFC5322) {
		return
	}

	switch {
	case s.context == ContextQuotedString:
		s.raise(diagnosis.KindErrUnclosedQuotedStr)
	case s.context == ContextQuotedPair:
		s.raise(diagnosis.KindErrBackslashEnd)
	case s.context == ContextComment:
		s.raise(diagnosis.KindErrUnclosedComment)
	case s.context == ContextLiteral:
		s.raise(diagnosis.KindErrUnclosedDomLit)
	case s.lastToken == '\r':
		// The address ended mid-fold: a CRLF with nothing after it.
		s.raise(diagnosis.KindErrFWSCRLFEnd)
	case s.domain.Len() == 0:
		s.raise(diagnosis.KindErrNoDomain)
	case s.elementLen == 0:
		s.raise(diagnosis.KindErrDotEnd)
	case s.hyphenFlag:
		s.raise(diagnosis.KindErrDomainHyphenEnd)
	// RFC 5321 §4.5.3.1.2: a domain name or number is at most 255 octets.
	case s.domain.Len() > 255:
		s.raise(diagnosis.KindRFC5322DomainTooLong)
	// RFC 3696 errata 1690: a mailbox is at most 254 octets including "@".
	case s.localPart.Len()+1+s.domain.Len() > 254:
		s.raise(diagnosis.KindRFC5322TooLong)
	// RFC 1035 §2.3.4: a label is at most 63 octets.
	case s.elementLen > 63:
		s.offendingAtom = s.currentAtom(ContextDomain)
		s.raise(diagnosis.KindRFC5322LabelTooLong)
	}
}
