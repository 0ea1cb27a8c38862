// Package gtld implements the address validator's lightest collaborator:
// flagging addresses whose domain has no visible subdomain structure, i.e.
// whose domain is itself a top-level domain.
package gtld

import (
	"strings"

	"github.com/nullmx/isemail/diagnosis"
)

// Check reports KindGTLD if domain contains no dot (it is, or resolves
// under, a bare top-level domain), otherwise KindValid. This mirrors
// pyisemail's gtld check: a single structural test, no DNS lookup.
func Check(domain string) diagnosis.Diagnosis {
	if !strings.Contains(domain, ".") {
		return diagnosis.New(diagnosis.KindGTLD)
	}
	return diagnosis.New(diagnosis.KindValid)
}
