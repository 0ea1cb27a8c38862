package isemail

import (
	"github.com/nullmx/isemail/diagnosis"
	"github.com/nullmx/isemail/dnscheck"
)

// config holds the resolved effect of a caller's Option list. The zero
// value is never used directly — newConfig always seeds the defaults
// (gTLDs allowed, no DNS check, the package's default severity threshold)
// before applying opts.
type config struct {
	checkDNS  bool
	allowGTLD bool
	threshold diagnosis.Category
	checker   dnscheck.Checker
}

// Option configures a call to Validate, IsEmail, or Parse. The functional-
// option shape mirrors the teacher repo's own Checker configuration style
// rather than Python's keyword arguments.
type Option func(*config)

// WithDNSCheck enables the DNS collaborator: Validate/IsEmail will resolve
// the address's domain (MX, falling back to A) before returning.
func WithDNSCheck() Option {
	return func(c *config) { c.checkDNS = true }
}

// WithoutGTLD rejects addresses whose domain is a bare top-level domain
// (no dot) as a DNSWarn-band diagnosis instead of silently allowing it.
func WithoutGTLD() Option {
	return func(c *config) { c.allowGTLD = false }
}

// WithThreshold overrides the severity category a diagnosis must reach
// before it survives compression to VALID (default diagnosis.Threshold).
func WithThreshold(threshold diagnosis.Category) Option {
	return func(c *config) { c.threshold = threshold }
}

// WithDNSChecker supplies a specific dnscheck.Checker (e.g. one pointed at
// a test nameserver, or a mock) and implies WithDNSCheck.
func WithDNSChecker(checker dnscheck.Checker) Option {
	return func(c *config) {
		c.checker = checker
		c.checkDNS = true
	}
}

func newConfig(opts ...Option) *config {
	c := &config{
		allowGTLD: true,
		threshold: diagnosis.Threshold,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
