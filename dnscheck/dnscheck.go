// Package dnscheck implements the address validator's DNS collaborator: it
// walks MX, falls back to A, and distinguishes a genuinely nonexistent
// domain from a merely misconfigured or unreachable one.
package dnscheck

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/nullmx/isemail/diagnosis"
)

// DefaultTimeout bounds a single Check call when the caller's context
// carries no earlier deadline.
const DefaultTimeout = 5 * time.Second

// DefaultNameserver is used when no nameserver is configured via
// WithNameserver. It must include a port, per miekg/dns convention.
const DefaultNameserver = "1.1.1.1:53"

// Checker resolves a domain's mail-exchange reachability into a Diagnosis.
// Implementations must never panic across this boundary (spec.md §5).
type Checker interface {
	Check(ctx context.Context, domain string) diagnosis.Diagnosis
}

// sentinel errors from exchange, mapped to diagnoses by Check.
var (
	errTimeout       = errors.New("dnscheck: lookup timed out")
	errNoNameservers = errors.New("dnscheck: no nameservers reachable")
	errNXDomain      = errors.New("dnscheck: nxdomain")
)

// MiekgChecker implements Checker against a single configured nameserver
// using github.com/miekg/dns directly, rather than the stdlib resolver,
// because it exposes the raw RCODE and individual MX fields needed to tell
// apart NXDOMAIN, a server failure, a timeout, and a genuine null MX
// record — distinctions the stdlib's *net.DNSError collapses.
type MiekgChecker struct {
	client     *dns.Client
	nameserver string
	timeout    time.Duration
	logger     *slog.Logger
}

// Option configures a MiekgChecker.
type Option func(*MiekgChecker)

// WithNameserver overrides the nameserver address (host:port) to query.
func WithNameserver(addr string) Option {
	return func(c *MiekgChecker) { c.nameserver = addr }
}

// WithTimeout overrides the bounded timeout applied around each exchange.
func WithTimeout(d time.Duration) Option {
	return func(c *MiekgChecker) { c.timeout = d }
}

// WithLogger overrides the logger used for exchange failures and the
// recovered-panic case. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *MiekgChecker) { c.logger = l }
}

// NewMiekgChecker builds a Checker with DefaultNameserver and
// DefaultTimeout, adjustable via opts.
func NewMiekgChecker(opts ...Option) *MiekgChecker {
	c := &MiekgChecker{
		client:     new(dns.Client),
		nameserver: DefaultNameserver,
		timeout:    DefaultTimeout,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check resolves domain's MX records, falling back to A, and reports the
// corresponding diagnosis. It applies a bounded timeout regardless of
// whether ctx already carries a deadline, and never lets a panic escape.
func (c *MiekgChecker) Check(ctx context.Context, domain string) (result diagnosis.Diagnosis) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("dnscheck: recovered panic during exchange",
				"domain", domain, "panic", r)
			result = diagnosis.New(diagnosis.KindNoNameservers)
		}
	}()

	mxResp, err := c.exchange(ctx, domain, dns.TypeMX)
	switch {
	case errors.Is(err, errTimeout):
		// Infrastructure failures short-circuit without a TLD guess:
		// unlike NXDOMAIN, they say nothing about whether the domain
		// exists, so there is nothing useful to fall back to.
		c.logger.Warn("dnscheck: MX lookup timed out", "domain", domain)
		return diagnosis.New(diagnosis.KindDNSTimedOut)
	case errors.Is(err, errNoNameservers):
		c.logger.Warn("dnscheck: no nameservers reachable", "domain", domain)
		return diagnosis.New(diagnosis.KindNoNameservers)
	case errors.Is(err, errNXDomain):
		// dns_validator.py: NXDOMAIN leaves dns_checked False, so the TLD
		// guess below still applies on top of NO_RECORD.
		return worstOf(diagnosis.New(diagnosis.KindDNSWarnNoRecord), tldDiagnosis(domain))
	case err != nil:
		c.logger.Warn("dnscheck: MX exchange failed", "domain", domain, "err", err)
		return diagnosis.New(diagnosis.KindNoNameservers)
	}

	mxRecords := extractMX(mxResp)

	if len(mxRecords) == 0 {
		aResp, aErr := c.exchange(ctx, domain, dns.TypeA)
		switch {
		case errors.Is(aErr, errTimeout):
			return diagnosis.New(diagnosis.KindDNSTimedOut)
		case errors.Is(aErr, errNoNameservers):
			return diagnosis.New(diagnosis.KindNoNameservers)
		case aErr == nil && len(aResp.Answer) > 0:
			return worstOf(diagnosis.New(diagnosis.KindDNSWarnNoMXRecord), tldDiagnosis(domain))
		default:
			return worstOf(diagnosis.New(diagnosis.KindDNSWarnNoRecord), tldDiagnosis(domain))
		}
	}

	if len(mxRecords) == 1 && mxRecords[0].Preference == 0 && mxRecords[0].Mx == "." {
		return diagnosis.New(diagnosis.KindDNSWarnNullMX)
	}

	// An MX record was found: the domain's existence is confirmed, so the
	// TLD checks below (which only matter when DNS couldn't confirm
	// anything) are skipped — mirrors dns_validator.py's `if not
	// dns_checked` guard.
	return diagnosis.New(diagnosis.KindValid)
}

func worstOf(a, b diagnosis.Diagnosis) diagnosis.Diagnosis {
	if b.Code > a.Code {
		return b
	}
	return a
}

func (c *MiekgChecker) exchange(ctx context.Context, domain string, qtype uint16) (*dns.Msg, error) {
	req := new(dns.Msg)
	req.SetQuestion(dns.Fqdn(domain), qtype)

	resp, _, err := c.client.ExchangeContext(ctx, req, c.nameserver)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errTimeout
		}
		return nil, errNoNameservers
	}

	switch resp.Rcode {
	case dns.RcodeNameError:
		return nil, errNXDomain
	case dns.RcodeSuccess:
		return resp, nil
	default:
		return nil, errNoNameservers
	}
}

func extractMX(msg *dns.Msg) []*dns.MX {
	if msg == nil {
		return nil
	}
	var out []*dns.MX
	for _, rr := range msg.Answer {
		if mx, ok := rr.(*dns.MX); ok {
			out = append(out, mx)
		}
	}
	return out
}

// tldDiagnosis implements the "no DNS record could confirm existence, so
// fall back to a structural guess" check from dns_validator.py: a
// single-label domain is flagged as a bare TLD, and a last label starting
// with a digit is flagged as numeric (RFC 1123 erratum 1353). Both checks
// are independent and can both fire; the worse of the two stands.
func tldDiagnosis(domain string) diagnosis.Diagnosis {
	set := diagnosis.NewSet()
	set.Add(diagnosis.New(diagnosis.KindValid))

	atoms := strings.Split(domain, ".")
	if len(atoms) == 1 {
		set.Add(diagnosis.New(diagnosis.KindRFC5321TLD))
	}

	last := atoms[len(atoms)-1]
	if len(last) > 0 && last[0] >= '0' && last[0] <= '9' {
		set.Add(diagnosis.New(diagnosis.KindRFC5321TLDNumeric))
	}

	return set.Worst()
}
