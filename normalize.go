package isemail

import "golang.org/x/net/idna"

// NormalizeDomain converts domain to its ASCII (Punycode) form per IDNA
// 2008, for callers who need to compare or look up an internationalized
// domain before or after validation.
//
// It is never called internally by IsEmail, Validate, or Parse: the core
// parser works on octets per RFC 5321/5322, which do not define Unicode
// domains, so IDN handling stays an opt-in edge helper rather than part of
// the validation path.
func NormalizeDomain(domain string) (string, error) {
	return idna.ToASCII(domain)
}
