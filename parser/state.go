package parser

import (
	"strings"

	"github.com/nullmx/isemail/diagnosis"
)

// Context is both the parser's current state and the stack entry type used
// to remember a context awaiting resumption (spec.md §3).
type Context uint8

const (
	ContextLocalPart Context = iota
	ContextDomain
	ContextLiteral
	ContextComment
	ContextFWS
	ContextQuotedString
	ContextQuotedPair
)

// contextStack is a small LIFO of Context values. Depth is bounded by the
// address length in practice (one push per nested comment/FWS/quote), so a
// plain slice with a modest starting capacity is all that's needed.
type contextStack []Context

func newContextStack() contextStack {
	return make(contextStack, 0, 8)
}

func (s *contextStack) push(c Context) {
	*s = append(*s, c)
}

func (s *contextStack) pop() Context {
	n := len(*s)
	if n == 0 {
		return ContextLocalPart
	}
	c := (*s)[n-1]
	*s = (*s)[:n-1]
	return c
}

func (s contextStack) empty() bool {
	return len(s) == 0
}

// atomList holds the dot-separated atoms of one component (local-part or
// domain), indexed by element_count, so the post-parse validator can report
// which specific atom overran a length limit without re-splitting.
type atomList []strings.Builder

func (a *atomList) ensure(i int) {
	for len(*a) <= i {
		*a = append(*a, strings.Builder{})
	}
}

func (a *atomList) appendByte(i int, b byte) {
	a.ensure(i)
	(*a)[i].WriteByte(b)
}

func (a atomList) lenAt(i int) int {
	if i < 0 || i >= len(a) {
		return 0
	}
	return a[i].Len()
}

// state is the parser's mutable working set for a single call to Parse. It
// is built fresh on entry and discarded on return — no state survives
// across calls (spec.md §5: no shared mutable state outside the call).
type state struct {
	context      Context
	stack        contextStack
	contextPrior Context

	elementCount uint32
	elementLen   uint32
	hyphenFlag   bool
	endOrDie     bool

	crlfCount int32 // -1 when unset
	skipNext  bool
	tokenPrior byte
	lastToken  byte
	sawLiteral bool

	localPart strings.Builder
	domain    strings.Builder
	literal   strings.Builder

	localAtoms  atomList
	domainAtoms atomList

	// offendingAtom names the specific dot-atom a length-limit diagnosis
	// fired on, when one did (see currentAtom).
	offendingAtom string

	diagnoses diagnosis.Set
}

func newState() *state {
	return &state{
		context:      ContextLocalPart,
		stack:        newContextStack(),
		contextPrior: ContextLocalPart,
		crlfCount:    -1,
		diagnoses:    diagnosis.NewSet(),
	}
}

// raise records a diagnosis by Kind, looking it up in the registry.
func (s *state) raise(kind diagnosis.Kind) {
	s.diagnoses.Add(diagnosis.New(kind))
}

// atomsFor returns the accumulated-atoms slice for the local-part or domain
// component, selected by ctx (ContextLocalPart or ContextDomain).
func (s *state) atomsFor(ctx Context) *atomList {
	if ctx == ContextLocalPart {
		return &s.localAtoms
	}
	return &s.domainAtoms
}

// currentAtom returns the text of the atom currently being built in ctx (the
// one indexed by elementCount), so a length-limit diagnosis can name the
// specific dot-atom that overran instead of just the whole component.
func (s *state) currentAtom(ctx Context) string {
	atoms := s.atomsFor(ctx)
	idx := int(s.elementCount)
	if atoms.lenAt(idx) == 0 {
		return ""
	}
	return (*atoms)[idx].String()
}
