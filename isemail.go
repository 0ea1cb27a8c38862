// Package isemail validates Internet message addresses against RFC 5321
// and RFC 5322, reporting not just a yes/no verdict but the specific
// diagnosis — which RFC was bent, how badly, and why — behind it.
package isemail

import (
	"context"

	"github.com/nullmx/isemail/diagnosis"
	"github.com/nullmx/isemail/dnscheck"
	"github.com/nullmx/isemail/gtld"
	"github.com/nullmx/isemail/parser"
)

// ParsedAddress is the result of Parse: the address split into its parts
// plus the same diagnosis Validate returns for it (the worst one raised,
// compressed to VALID when it falls below the threshold).
type ParsedAddress struct {
	LocalPart        string
	Domain           string
	AddressLiteral   string
	IsAddressLiteral bool
	Diagnosis        diagnosis.Diagnosis
}

// IsEmail reports whether address is valid enough to pass the configured
// boolean cut-off. It uses the same threshold Validate and Parse compress
// against — including the tightening to diagnosis.Valid that WithDNSCheck
// or WithoutGTLD triggers — so the three entry points never disagree about
// what counts as passing.
func IsEmail(address string, opts ...Option) bool {
	_, d, threshold := evaluate(address, opts...)
	return d.PassesThreshold(threshold)
}

// Validate parses and, depending on opts, checks address's domain against
// DNS and gTLD structure, returning the single worst diagnosis raised (or
// KindValid if that worst diagnosis falls below the threshold in effect).
func Validate(address string, opts ...Option) diagnosis.Diagnosis {
	_, d, _ := evaluate(address, opts...)
	return d
}

// Parse runs the same evaluation as Validate but also returns the address
// broken into its local-part, domain, and (if present) address-literal
// components, sparing a caller who wants both a second pass over address.
func Parse(address string, opts ...Option) ParsedAddress {
	result, d, _ := evaluate(address, opts...)
	return ParsedAddress{
		LocalPart:        result.LocalPart,
		Domain:           result.Domain,
		AddressLiteral:   result.AddressLiteral,
		IsAddressLiteral: result.IsAddressLiteral,
		Diagnosis:        d,
	}
}

// evaluate runs the parser and, only when that parse came back cleaner than
// DNSWarn, the configured collaborators — mirroring is_email()'s own gate
// of "only bother checking DNS when the syntax alone raised nothing worse
// than a warning". The same gate tightens the compression threshold to
// diagnosis.Valid, so a caller who explicitly asked for DNS or gTLD
// checking gets a real answer from them instead of having a GTLD or
// DNSWarn-band finding silently smoothed away by the default lenient
// threshold. The tightened threshold is returned alongside the reduced
// diagnosis so every caller — boolean or not — judges the result against
// the same cut-off.
func evaluate(address string, opts ...Option) (*parser.Result, diagnosis.Diagnosis, diagnosis.Category) {
	cfg := newConfig(opts...)
	result := parser.Parse(address)
	set := result.Diagnoses
	threshold := cfg.threshold

	if set.Worst().Code < uint8(diagnosis.DNSWarn) {
		if !cfg.allowGTLD {
			set.Add(gtld.Check(result.Domain))
		}
		if cfg.checkDNS {
			checker := cfg.checker
			if checker == nil {
				checker = dnscheck.NewMiekgChecker()
			}
			ctx, cancel := context.WithTimeout(context.Background(), dnscheck.DefaultTimeout)
			set.Add(checker.Check(ctx, result.Domain))
			cancel()
		}
		if cfg.checkDNS || !cfg.allowGTLD {
			threshold = diagnosis.Valid
		}
	}

	return result, diagnosis.Reduce(set, threshold), threshold
}
