package diagnosis

// Reference is a citation into the RFC (or errata) backing a diagnosis.
type Reference struct {
	Citation string
	Link     string
}

// referenceTable is the citation lookup, grounded on pyisemail's
// reference.py: one entry per grammar production or rule the parser
// enforces, each pointing at the RFC section that defines it.
var referenceTable = map[string]Reference{
	"local-part":         {"RFC5322 section 3.4.1", "http://tools.ietf.org/html/rfc5322#section-3.4.1"},
	"local-part-maximum": {"RFC5321 section 4.5.3.1.1", "http://tools.ietf.org/html/rfc5321#section-4.5.3.1.1"},
	"obs-local-part":     {"RFC 5322 section 3.4.1", "http://tools.ietf.org/html/rfc5322#section-3.4.1"},
	"dot-atom":           {"RFC 5322 section 3.4.1", "http://tools.ietf.org/html/rfc5322#section-3.4.1"},
	"quoted-string":      {"RFC 5322 section 3.4.1", "http://tools.ietf.org/html/rfc5322#section-3.4.1"},
	"CFWS-near-at":       {"RFC 5322 section 3.4.1", "http://tools.ietf.org/html/rfc5322#section-3.4.1"},
	"SHOULD-NOT":         {"RFC2119 section 4", "http://tools.ietf.org/html/rfc2119"},
	"atext":              {"RFC5322 section 3.2.3", "http://tools.ietf.org/html/rfc5322#section-3.2.3"},
	"obs-domain":         {"RFC5322 section 3.4.1", "http://tools.ietf.org/html/rfc5322#section-3.4.1"},
	"domain-RFC5322":     {"RFC5322 section 3.4.1", "http://tools.ietf.org/html/rfc5322#section-3.4.1"},
	"domain-RFC5321":     {"RFC5321 section 4.1.2", "http://tools.ietf.org/html/rfc5321#section-4.1.2"},
	"sub-domain":         {"RFC5321 section 4.1.2", "http://tools.ietf.org/html/rfc5321#section-4.1.2"},
	"label":              {"RFC1035 section 2.3.4", "http://tools.ietf.org/html/rfc1035#section-2.3.4"},
	"CRLF":                {"RFC5234 section 2.3", "http://tools.ietf.org/html/rfc5234#section-2.3"},
	"CFWS":                {"RFC5322 section 3.2.2", "http://tools.ietf.org/html/rfc5322#section-3.2.2"},
	"domain-literal":      {"RFC5322 section 3.4.1", "http://tools.ietf.org/html/rfc5322#section-3.4.1"},
	"address-literal":     {"RFC5321 section 4.1.2", "http://tools.ietf.org/html/rfc5321#section-4.1.2"},
	"address-literal-IPv4": {"RFC5321 section 4.1.3", "http://tools.ietf.org/html/rfc5321#section-4.1.3"},
	"address-literal-IPv6": {"RFC5321 section 4.1.3", "http://tools.ietf.org/html/rfc5321#section-4.1.3"},
	"dtext":               {"RFC5322 section 3.4.1", "http://tools.ietf.org/html/rfc5322#section-3.4.1"},
	"obs-dtext":           {"RFC5322 section 3.4.1", "http://tools.ietf.org/html/rfc5322#section-3.4.1"},
	"qtext":               {"RFC5322 section 3.2.4", "http://tools.ietf.org/html/rfc5322#section-3.2.4"},
	"obs-qtext":           {"RFC5322 section 4.1", "http://tools.ietf.org/html/rfc5322#section-4.1"},
	"ctext":               {"RFC5322 section 3.2.3", "http://tools.ietf.org/html/rfc5322#section-3.2.3"},
	"obs-ctext":           {"RFC5322 section 4.1", "http://tools.ietf.org/html/rfc5322#section-4.1"},
	"quoted-pair":         {"RFC5322 section 3.2.1", "http://tools.ietf.org/html/rfc5322#section-3.2.1"},
	"obs-qp":              {"RFC5322 section 4.1", "http://tools.ietf.org/html/rfc5322#section-4.1"},
	"TLD":                 {"RFC5321 section 2.3.5", "http://tools.ietf.org/html/rfc5321#section-2.3.5"},
	"TLD-format":          {"John Klensin, RFC 1123 erratum 1353", "http://www.rfc-editor.org/errata_search.php?eid=1353"},
	"mailbox-maximum":     {"Dominic Sayers, RFC 3696 erratum 1690", "http://www.rfc-editor.org/errata_search.php?eid=1690"},
	"domain-maximum":      {"RFC 5321 section 4.5.3.1.2", "http://tools.ietf.org/html/rfc5321#section-4.5.3.1.2"},
	"mailbox":             {"RFC 5321 section 4.1.2", "http://tools.ietf.org/html/rfc5321#section-4.1.2"},
	"addr-spec":           {"RFC 5322 section 3.4.1", "http://tools.ietf.org/html/rfc5322#section-3.4.1"},
}

func lookupReference(token string) Reference {
	return referenceTable[token]
}
