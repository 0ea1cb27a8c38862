// Package parser implements the single-pass, octet-driven RFC 5321/5322
// address parser: a finite state machine over raw bytes with an explicit
// context stack, matching the grammar's own recursive structure (a comment
// or a folding run can nest inside almost any other context) without
// recursion in the Go code itself.
package parser

import "github.com/nullmx/isemail/diagnosis"

// Result is the outcome of a single Parse call: the split address
// components, gathered as far as parsing reached, plus every diagnosis
// raised along the way.
type Result struct {
	LocalPart        string
	Domain           string
	AddressLiteral   string
	IsAddressLiteral bool
	Diagnoses        diagnosis.Set

	// OffendingAtom is the specific dot-atom a RFC5322_LOCAL_TOOLONG or
	// RFC5322_LABEL_TOOLONG diagnosis fired on, when either did; empty
	// otherwise.
	OffendingAtom string
}

// Parse validates address against RFC 5321/5322 one byte at a time. It
// never panics and performs no I/O — it is pure over its input, safe for
// concurrent use by independent callers.
func Parse(address string) *Result {
	s := newState()
	raw := []byte(address)
	rawLen := len(raw)

	for i := 0; i < rawLen; i++ {
		if s.skipNext {
			s.skipNext = false
			continue
		}

		token := raw[i]
		s.lastToken = token

		repeat := true
		for repeat {
			repeat = false

			switch s.context {
			case ContextLocalPart:
				repeat = s.stepLocalPart(token, raw, i, rawLen)
			case ContextDomain:
				repeat = s.stepDomain(token, raw, i, rawLen)
			case ContextLiteral:
				repeat = s.stepLiteral(token, raw, i, rawLen)
			case ContextQuotedString:
				repeat = s.stepQuotedString(token, raw, i, rawLen)
			case ContextQuotedPair:
				repeat = s.stepQuotedPair(token)
			case ContextComment:
				repeat = s.stepComment(token, raw, i, rawLen)
			case ContextFWS:
				repeat = s.stepFWS(token, raw, i, rawLen)
			default:
				s.raise(diagnosis.KindErrBadParse)
			}
		}

		// No point going on once a fatal (ERR-band) diagnosis has been
		// raised — everything past this point would just be noise.
		if s.diagnoses.Worst().Code > uint8(diagnosis.RFC5322) {
			break
		}
	}

	s.finalChecks()

	return &Result{
		LocalPart:        s.localPart.String(),
		Domain:           s.domain.String(),
		AddressLiteral:   s.literal.String(),
		IsAddressLiteral: s.sawLiteral,
		Diagnoses:        s.diagnoses,
		OffendingAtom:    s.offendingAtom,
	}
}

// checkCR verifies that a CR just read at raw[i] is immediately followed by
// LF, arranging for the LF to be skipped on the next iteration. A CR not
// followed by LF is a fatal parse error wherever it occurs — spec.md treats
// CRLF as a single, unsplittable token.
func (s *state) checkCR(raw []byte, i, rawLen int) bool {
	s.skipNext = true
	if i+1 == rawLen || raw[i+1] != '\n' {
		s.raise(diagnosis.KindErrCRNoLF)
		return false
	}
	return true
}

func (s *state) stepLocalPart(token byte, raw []byte, i, rawLen int) bool {
	switch {
	case token == '(':
		if s.elementLen == 0 {
			if s.elementCount == 0 {
				s.raise(diagnosis.KindCFWSComment)
			} else {
				s.raise(diagnosis.KindDeprecComment)
			}
		} else {
			s.raise(diagnosis.KindCFWSComment)
			s.endOrDie = true
		}
		s.stack.push(s.context)
		s.context = ContextComment

	case token == '.':
		if s.elementLen == 0 {
			if s.elementCount == 0 {
				s.raise(diagnosis.KindErrDotStart)
			} else {
				s.raise(diagnosis.KindErrConsecutiveDots)
			}
		} else {
			if s.endOrDie {
				s.raise(diagnosis.KindDeprecLocalPart)
			}
			s.endOrDie = false
			s.elementLen = 0
			s.elementCount++
			s.localAtoms.ensure(int(s.elementCount))
			s.localPart.WriteByte(token)
		}

	case token == '"':
		if s.elementLen == 0 {
			if s.elementCount == 0 {
				s.raise(diagnosis.KindRFC5321QuotedString)
			} else {
				s.raise(diagnosis.KindDeprecLocalPart)
			}
			s.localPart.WriteByte(token)
			s.localAtoms.appendByte(int(s.elementCount), token)
			s.elementLen++
			s.endOrDie = true
			s.stack.push(s.context)
			s.context = ContextQuotedString
		} else {
			s.raise(diagnosis.KindErrExpectingAtext)
		}

	case token == '@':
		switch {
		case s.localPart.Len() == 0:
			s.raise(diagnosis.KindErrNoLocalPart)
		case s.elementLen == 0:
			s.raise(diagnosis.KindErrDotEnd)
		case s.localPart.Len() > 64:
			s.offendingAtom = s.currentAtom(ContextLocalPart)
			s.raise(diagnosis.KindRFC5322LocalTooLong)
		case s.contextPrior == ContextComment || s.contextPrior == ContextFWS:
			s.raise(diagnosis.KindDeprecCFWSNearAt)
		}

		s.context = ContextDomain
		s.stack = newContextStack()
		s.elementCount = 0
		s.elementLen = 0
		s.endOrDie = false

	case token == '\r' || token == ' ' || token == '\t':
		if token == '\r' {
			if !s.checkCR(raw, i, rawLen) {
				return false
			}
		}
		if s.elementLen == 0 {
			if s.elementCount == 0 {
				s.raise(diagnosis.KindCFWSFWS)
			} else {
				s.raise(diagnosis.KindDeprecFWS)
			}
		} else {
			s.endOrDie = true
		}
		s.stack.push(s.context)
		s.context = ContextFWS
		s.tokenPrior = token

	default:
		if s.endOrDie {
			switch s.contextPrior {
			case ContextComment, ContextFWS:
				s.raise(diagnosis.KindErrAtextAfterCFWS)
			case ContextQuotedString:
				s.raise(diagnosis.KindErrAtextAfterQS)
			default:
				s.raise(diagnosis.KindErrBadParse)
			}
			return false
		}

		s.contextPrior = s.context
		if !isAtext(token) {
			s.raise(diagnosis.KindErrExpectingAtext)
		}
		s.localPart.WriteByte(token)
		s.localAtoms.appendByte(int(s.elementCount), token)
		s.elementLen++
	}
	return false
}

func (s *state) stepDomain(token byte, raw []byte, i, rawLen int) bool {
	switch {
	case token == '(':
		if s.elementLen == 0 {
			if s.elementCount == 0 {
				s.raise(diagnosis.KindDeprecCFWSNearAt)
			} else {
				s.raise(diagnosis.KindDeprecComment)
			}
		} else {
			s.raise(diagnosis.KindCFWSComment)
			s.endOrDie = true
		}
		s.stack.push(s.context)
		s.context = ContextComment

	case token == '.':
		switch {
		case s.elementLen == 0:
			if s.elementCount == 0 {
				s.raise(diagnosis.KindErrDotStart)
			} else {
				s.raise(diagnosis.KindErrConsecutiveDots)
			}
		case s.hyphenFlag:
			s.raise(diagnosis.KindErrDomainHyphenEnd)
		default:
			if s.elementLen > 63 {
				s.offendingAtom = s.currentAtom(ContextDomain)
				s.raise(diagnosis.KindRFC5322LabelTooLong)
			}
			s.endOrDie = false
			s.elementLen = 0
			s.elementCount++
			s.domainAtoms.ensure(int(s.elementCount))
			s.domain.WriteByte(token)
		}

	case token == '[':
		if s.domain.Len() == 0 {
			s.endOrDie = true
			s.elementLen++
			s.stack.push(s.context)
			s.context = ContextLiteral
			s.domain.WriteByte(token)
			s.domainAtoms.appendByte(int(s.elementCount), token)
			s.literal.Reset()
			s.sawLiteral = true
		} else {
			s.raise(diagnosis.KindErrExpectingAtext)
		}

	case token == '\r' || token == ' ' || token == '\t':
		if token == '\r' {
			if !s.checkCR(raw, i, rawLen) {
				return false
			}
		}
		if s.elementLen == 0 {
			if s.elementCount == 0 {
				s.raise(diagnosis.KindDeprecCFWSNearAt)
			} else {
				s.raise(diagnosis.KindDeprecFWS)
			}
		} else {
			s.raise(diagnosis.KindCFWSFWS)
			s.endOrDie = true
		}
		s.stack.push(s.context)
		s.context = ContextFWS
		s.tokenPrior = token

	default:
		if s.endOrDie {
			switch s.contextPrior {
			case ContextComment, ContextFWS:
				s.raise(diagnosis.KindErrAtextAfterCFWS)
			case ContextLiteral:
				s.raise(diagnosis.KindErrAtextAfterDomLit)
			default:
				s.raise(diagnosis.KindErrBadParse)
			}
		}

		s.hyphenFlag = false

		switch {
		case !isAtext(token):
			s.raise(diagnosis.KindErrExpectingAtext)
		case token == '-':
			if s.elementLen == 0 {
				s.raise(diagnosis.KindErrDomainHyphenStart)
			}
			s.hyphenFlag = true
		case !isLetDig(token):
			s.raise(diagnosis.KindRFC5322Domain)
		}

		s.domain.WriteByte(token)
		s.domainAtoms.appendByte(int(s.elementCount), token)
		s.elementLen++
	}
	return false
}

func (s *state) stepLiteral(token byte, raw []byte, i, rawLen int) bool {
	switch {
	case token == ']':
		if s.diagnoses.Worst().Code < uint8(diagnosis.Deprecated) {
			for _, kind := range analyzeAddressLiteral(s.literal.String()) {
				s.raise(kind)
			}
		} else {
			s.raise(diagnosis.KindRFC5322DomainLiteral)
		}
		s.domain.WriteByte(token)
		s.domainAtoms.appendByte(int(s.elementCount), token)
		s.elementLen++
		s.contextPrior = s.context
		s.context = s.stack.pop()

	case token == '\\':
		s.raise(diagnosis.KindRFC5322DomLitObsDText)
		s.stack.push(s.context)
		s.context = ContextQuotedPair

	case token == '\r' || token == ' ' || token == '\t':
		if token == '\r' {
			if !s.checkCR(raw, i, rawLen) {
				return false
			}
		}
		s.raise(diagnosis.KindCFWSFWS)
		s.stack.push(s.context)
		s.context = ContextFWS
		s.tokenPrior = token

	default:
		if token > 127 || token == 0 || token == '[' {
			s.raise(diagnosis.KindErrExpectingDText)
			return false
		}
		if token < 33 || token == 127 {
			s.raise(diagnosis.KindRFC5322DomLitObsDText)
		}
		s.literal.WriteByte(token)
		s.domain.WriteByte(token)
		s.domainAtoms.appendByte(int(s.elementCount), token)
		s.elementLen++
	}
	return false
}

func (s *state) stepQuotedString(token byte, raw []byte, i, rawLen int) bool {
	switch {
	case token == '\\':
		s.stack.push(s.context)
		s.context = ContextQuotedPair

	case token == '\r' || token == '\t':
		if token == '\r' {
			if !s.checkCR(raw, i, rawLen) {
				return false
			}
		}
		// A space folded out of a quoted string is semantically invisible
		// (RFC 5322 §3.2.4); what survives into the local-part is a single
		// literal space standing in for the fold.
		s.localPart.WriteByte(' ')
		s.localAtoms.appendByte(int(s.elementCount), ' ')
		s.elementLen++
		s.raise(diagnosis.KindCFWSFWS)
		s.stack.push(s.context)
		s.context = ContextFWS
		s.tokenPrior = token

	case token == '"':
		s.localPart.WriteByte(token)
		s.localAtoms.appendByte(int(s.elementCount), token)
		s.elementLen++
		s.contextPrior = s.context
		s.context = s.stack.pop()

	default:
		if token > 127 || token == 0 || token == '\n' {
			s.raise(diagnosis.KindErrExpectingQText)
		} else if token < 32 || token == 127 {
			s.raise(diagnosis.KindDeprecQText)
		}
		s.localPart.WriteByte(token)
		s.localAtoms.appendByte(int(s.elementCount), token)
		s.elementLen++
	}
	return false
}

func (s *state) stepQuotedPair(token byte) bool {
	if token > 127 {
		s.raise(diagnosis.KindErrExpectingQPair)
	} else if (token < 31 && token != 9) || token == 127 {
		s.raise(diagnosis.KindDeprecQP)
	}

	s.contextPrior = s.context
	s.context = s.stack.pop()

	switch s.context {
	case ContextComment:
		// A quoted pair inside a comment leaves no trace in any
		// accumulated component — comments are discarded entirely.
	case ContextQuotedString:
		s.localPart.WriteByte('\\')
		s.localPart.WriteByte(token)
		s.localAtoms.appendByte(int(s.elementCount), '\\')
		s.localAtoms.appendByte(int(s.elementCount), token)
		// RFC 5321's length limits are octet counts, so the backslash counts.
		s.elementLen += 2
	case ContextLiteral:
		s.domain.WriteByte('\\')
		s.domain.WriteByte(token)
		s.domainAtoms.appendByte(int(s.elementCount), '\\')
		s.domainAtoms.appendByte(int(s.elementCount), token)
		s.elementLen += 2
	default:
		s.raise(diagnosis.KindErrBadParse)
	}
	return false
}

func (s *state) stepComment(token byte, raw []byte, i, rawLen int) bool {
	switch {
	case token == '(':
		s.stack.push(s.context)
		s.context = ContextComment

	case token == ')':
		s.contextPrior = s.context
		s.context = s.stack.pop()

	case token == '\\':
		s.stack.push(s.context)
		s.context = ContextQuotedPair

	case token == '\r' || token == ' ' || token == '\t':
		if token == '\r' {
			if !s.checkCR(raw, i, rawLen) {
				return false
			}
		}
		s.raise(diagnosis.KindCFWSFWS)
		s.stack.push(s.context)
		s.context = ContextFWS
		s.tokenPrior = token

	default:
		if token > 127 || token == 0 || token == '\n' {
			s.raise(diagnosis.KindErrExpectingCText)
			return false
		}
		if token < 32 || token == 127 {
			s.raise(diagnosis.KindDeprecCText)
		}
	}
	return false
}

func (s *state) stepFWS(token byte, raw []byte, i, rawLen int) bool {
	if s.tokenPrior == '\r' {
		if token == '\r' {
			s.raise(diagnosis.KindErrFWSCRLFx2)
			return false
		}
		if s.crlfCount != -1 {
			s.crlfCount++
			if s.crlfCount > 1 {
				// A second fold on the same run of FWS is only legal under
				// the obsolete grammar (obs-FWS = 1*([CRLF] WSP)).
				s.raise(diagnosis.KindDeprecFWS)
			}
		} else {
			s.crlfCount = 1
		}
	}

	repeat := false

	switch {
	case token == '\r':
		if !s.checkCR(raw, i, rawLen) {
			return false
		}
	case token == ' ' || token == '\t':
		// still folding

	default:
		if s.tokenPrior == '\r' {
			s.raise(diagnosis.KindErrFWSCRLFEnd)
			return false
		}
		if s.crlfCount != -1 {
			s.crlfCount = -1
		}
		s.contextPrior = s.context
		s.context = s.stack.pop()
		repeat = true
	}

	s.tokenPrior = token
	return repeat
}
