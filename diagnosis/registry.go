package diagnosis

// All normative Kind constants, grouped by category band as listed in
// spec.md §6.2. Codes are the authoritative severity ordering.
const (
	KindValid Kind = "VALID"

	// GTLD sits in the DNSWarn band: a recognized-but-flagged condition a
	// caller may choose to reject, same as the DNS collaborator's warnings.
	KindGTLD Kind = "GTLD"

	KindNoNameservers     Kind = "NO_NAMESERVERS"
	KindDNSTimedOut       Kind = "DNS_TIMEDOUT"
	KindDNSWarnNoMXRecord Kind = "DNSWARN_NO_MX_RECORD"
	KindDNSWarnNoRecord   Kind = "DNSWARN_NO_RECORD"
	KindDNSWarnNullMX     Kind = "DNSWARN_NULL_MX_RECORD"

	KindRFC5321TLD            Kind = "RFC5321_TLD"
	KindRFC5321TLDNumeric     Kind = "RFC5321_TLDNUMERIC"
	KindRFC5321QuotedString   Kind = "RFC5321_QUOTEDSTRING"
	KindRFC5321AddressLiteral Kind = "RFC5321_ADDRESSLITERAL"
	KindRFC5321IPv6Deprecated Kind = "RFC5321_IPV6DEPRECATED"

	KindCFWSComment Kind = "CFWS_COMMENT"
	KindCFWSFWS     Kind = "CFWS_FWS"

	KindDeprecLocalPart Kind = "DEPREC_LOCALPART"
	KindDeprecFWS       Kind = "DEPREC_FWS"
	KindDeprecQText     Kind = "DEPREC_QTEXT"
	KindDeprecQP        Kind = "DEPREC_QP"
	KindDeprecComment   Kind = "DEPREC_COMMENT"
	KindDeprecCText     Kind = "DEPREC_CTEXT"
	KindDeprecCFWSNearAt Kind = "DEPREC_CFWS_NEAR_AT"

	KindRFC5322Domain         Kind = "RFC5322_DOMAIN"
	KindRFC5322TooLong        Kind = "RFC5322_TOOLONG"
	KindRFC5322LocalTooLong   Kind = "RFC5322_LOCAL_TOOLONG"
	KindRFC5322DomainTooLong  Kind = "RFC5322_DOMAIN_TOOLONG"
	KindRFC5322LabelTooLong   Kind = "RFC5322_LABEL_TOOLONG"
	KindRFC5322DomainLiteral  Kind = "RFC5322_DOMAINLITERAL"
	KindRFC5322DomLitObsDText Kind = "RFC5322_DOMLIT_OBSDTEXT"
	KindRFC5322IPv6GrpCount   Kind = "RFC5322_IPV6_GRPCOUNT"
	KindRFC5322IPv62x2xColon Kind = "RFC5322_IPV6_2X2XCOLON"
	KindRFC5322IPv6BadChar   Kind = "RFC5322_IPV6_BADCHAR"
	KindRFC5322IPv6MaxGrps   Kind = "RFC5322_IPV6_MAXGRPS"
	KindRFC5322IPv6ColonStrt Kind = "RFC5322_IPV6_COLONSTRT"
	KindRFC5322IPv6ColonEnd  Kind = "RFC5322_IPV6_COLONEND"

	KindErrExpectingDText     Kind = "ERR_EXPECTING_DTEXT"
	KindErrNoLocalPart        Kind = "ERR_NOLOCALPART"
	KindErrNoDomain           Kind = "ERR_NODOMAIN"
	KindErrConsecutiveDots    Kind = "ERR_CONSECUTIVEDOTS"
	KindErrAtextAfterCFWS     Kind = "ERR_ATEXT_AFTER_CFWS"
	KindErrAtextAfterQS       Kind = "ERR_ATEXT_AFTER_QS"
	KindErrAtextAfterDomLit   Kind = "ERR_ATEXT_AFTER_DOMLIT"
	KindErrExpectingQPair     Kind = "ERR_EXPECTING_QPAIR"
	KindErrExpectingAtext     Kind = "ERR_EXPECTING_ATEXT"
	KindErrExpectingQText     Kind = "ERR_EXPECTING_QTEXT"
	KindErrExpectingCText     Kind = "ERR_EXPECTING_CTEXT"
	KindErrBackslashEnd       Kind = "ERR_BACKSLASHEND"
	KindErrDotStart           Kind = "ERR_DOT_START"
	KindErrDotEnd             Kind = "ERR_DOT_END"
	KindErrDomainHyphenStart  Kind = "ERR_DOMAINHYPHENSTART"
	KindErrDomainHyphenEnd    Kind = "ERR_DOMAINHYPHENEND"
	KindErrUnclosedQuotedStr  Kind = "ERR_UNCLOSEDQUOTEDSTR"
	KindErrUnclosedComment    Kind = "ERR_UNCLOSEDCOMMENT"
	KindErrUnclosedDomLit     Kind = "ERR_UNCLOSEDDOMLIT"
	KindErrFWSCRLFx2          Kind = "ERR_FWS_CRLF_X2"
	KindErrFWSCRLFEnd         Kind = "ERR_FWS_CRLF_END"
	KindErrCRNoLF             Kind = "ERR_CR_NO_LF"

	// KindErrBadParse is not in the normative table (spec.md §6.2); it is
	// the internal-invariant escape hatch required by spec.md §7 so that an
	// unreachable parser state becomes data, never a panic that crosses the
	// package boundary.
	KindErrBadParse Kind = "ERR_BAD_PARSE"
)

type registryEntry struct {
	category    Category
	code        uint8
	description string
	message     string
	references  []string
}

var registry = map[Kind]registryEntry{
	KindValid: {
		category: Valid, code: 0,
		description: "Address is valid.",
		message: "Address is valid. Please note that this does not mean the " +
			"address actually exists, nor even that the domain actually " +
			"exists. This address could be issued by the domain owner " +
			"without breaking the rules of any RFCs.",
	},

	KindGTLD: {
		category: DNSWarn, code: 2,
		description: "Address uses a gTLD as its domain.",
		message:     "Address has a gTLD as its domain and the check disallows those.",
	},
	KindNoNameservers: {
		category: DNSWarn, code: 3,
		description: "Address is valid but a DNS check was not successful.",
		message:     "No nameservers could be reached to resolve this domain.",
	},
	KindDNSTimedOut: {
		category: DNSWarn, code: 4,
		description: "Address is valid but a DNS check was not successful.",
		message:     "The DNS lookup for this domain timed out.",
	},
	KindDNSWarnNoMXRecord: {
		category: DNSWarn, code: 5,
		description: "Address is valid but a DNS check was not successful.",
		message:     "Couldn't find an MX record for this domain but an A record does exist.",
	},
	KindDNSWarnNoRecord: {
		category: DNSWarn, code: 6,
		description: "Address is valid but a DNS check was not successful.",
		message:     "Couldn't find an MX record or A record for this domain.",
	},
	KindDNSWarnNullMX: {
		category: DNSWarn, code: 7,
		description: "Address is valid but a DNS check was not successful.",
		message:     "This domain publishes a null MX record and accepts no mail.",
	},

	KindRFC5321TLD: {
		category: RFC5321, code: 9,
		description: "Address is valid for SMTP but has unusual elements.",
		message:     "Address is valid but at a Top Level Domain.",
		references:  []string{"TLD"},
	},
	KindRFC5321TLDNumeric: {
		category: RFC5321, code: 10,
		description: "Address is valid for SMTP but has unusual elements.",
		message:     "Address is valid but the Top Level Domain begins with a number.",
		references:  []string{"TLD-format"},
	},
	KindRFC5321QuotedString: {
		category: RFC5321, code: 11,
		description: "Address is valid for SMTP but has unusual elements.",
		message:     "Address is valid but contains a quoted string.",
		references:  []string{"quoted-string"},
	},
	KindRFC5321AddressLiteral: {
		category: RFC5321, code: 12,
		description: "Address is valid for SMTP but has unusual elements.",
		message:     "Address is valid but at a literal address, not a domain.",
		references:  []string{"address-literal", "address-literal-IPv4"},
	},
	KindRFC5321IPv6Deprecated: {
		category: RFC5321, code: 13,
		description: "Address is valid for SMTP but has unusual elements.",
		message:     "Address is valid but contains a :: that only elides one zero group.",
		references:  []string{"address-literal-IPv6"},
	},

	KindCFWSComment: {
		category: CFWS, code: 17,
		description: "Address is valid within the message but cannot be used unmodified for the envelope.",
		message:     "Address contains a comment.",
		references:  []string{"dot-atom"},
	},
	KindCFWSFWS: {
		category: CFWS, code: 18,
		description: "Address is valid within the message but cannot be used unmodified for the envelope.",
		message:     "Address contains Folding White Space.",
		references:  []string{"local-part"},
	},

	KindDeprecLocalPart: {
		category: Deprecated, code: 33,
		description: "Address contains deprecated elements but may still be valid in restricted contexts.",
		message:     "Address contains a local part in deprecated form.",
		references:  []string{"obs-local-part"},
	},
	KindDeprecFWS: {
		category: Deprecated, code: 34,
		description: "Address contains deprecated elements but may still be valid in restricted contexts.",
		message:     "Address contains Folding White Space in deprecated form.",
		references:  []string{"obs-local-part", "obs-domain"},
	},
	KindDeprecQText: {
		category: Deprecated, code: 35,
		description: "Address contains deprecated elements but may still be valid in restricted contexts.",
		message:     "Address contains a quoted string in deprecated form.",
		references:  []string{"obs-qtext"},
	},
	KindDeprecQP: {
		category: Deprecated, code: 36,
		description: "Address contains deprecated elements but may still be valid in restricted contexts.",
		message:     "Address contains a quoted pair in deprecated form.",
		references:  []string{"obs-qp"},
	},
	KindDeprecComment: {
		category: Deprecated, code: 37,
		description: "Address contains deprecated elements but may still be valid in restricted contexts.",
		message:     "Address contains a comment in deprecated form.",
		references:  []string{"obs-local-part", "obs-domain"},
	},
	KindDeprecCText: {
		category: Deprecated, code: 38,
		description: "Address contains deprecated elements but may still be valid in restricted contexts.",
		message:     "Address contains a comment with a deprecated character.",
		references:  []string{"obs-ctext"},
	},
	KindDeprecCFWSNearAt: {
		category: Deprecated, code: 49,
		description: "Address contains deprecated elements but may still be valid in restricted contexts.",
		message:     "Address contains a comment or Folding White Space around the @ sign.",
		references:  []string{"CFWS-near-at", "SHOULD-NOT"},
	},

	KindRFC5322Domain: {
		category: RFC5322, code: 65,
		description: "Address is only valid according to the broad definition of RFC5322. It is otherwise invalid.",
		message:     "Address is RFC5322 compliant but contains domain characters that are not allowed by DNS.",
		references:  []string{"domain-RFC5322"},
	},
	KindRFC5322TooLong: {
		category: RFC5322, code: 66,
		description: "Address is only valid according to the broad definition of RFC5322. It is otherwise invalid.",
		message:     "Address is too long.",
		references:  []string{"mailbox-maximum"},
	},
	KindRFC5322LocalTooLong: {
		category: RFC5322, code: 67,
		description: "Address is only valid according to the broad definition of RFC5322. It is otherwise invalid.",
		message:     "Address contains a local part that is too long.",
		references:  []string{"local-part-maximum"},
	},
	KindRFC5322DomainTooLong: {
		category: RFC5322, code: 68,
		description: "Address is only valid according to the broad definition of RFC5322. It is otherwise invalid.",
		message:     "Address contains a domain that is too long.",
		references:  []string{"domain-maximum"},
	},
	KindRFC5322LabelTooLong: {
		category: RFC5322, code: 69,
		description: "Address is only valid according to the broad definition of RFC5322. It is otherwise invalid.",
		message:     "Address contains a domain part with an element that is too long.",
		references:  []string{"label"},
	},
	KindRFC5322DomainLiteral: {
		category: RFC5322, code: 70,
		description: "Address is only valid according to the broad definition of RFC5322. It is otherwise invalid.",
		message:     "Address contains a domain literal that is not a valid RFC5321 address literal.",
		references:  []string{"domain-literal"},
	},
	KindRFC5322DomLitObsDText: {
		category: RFC5322, code: 71,
		description: "Address is only valid according to the broad definition of RFC5322. It is otherwise invalid.",
		message:     "Address contains a domain literal that is not a valid RFC5321 address literal and contains obsolete characters.",
		references:  []string{"obs-dtext"},
	},
	KindRFC5322IPv6GrpCount: {
		category: RFC5322, code: 72,
		description: "Address is only valid according to the broad definition of RFC5322. It is otherwise invalid.",
		message:     "Address contains an IPv6 literal address with the wrong number of groups.",
		references:  []string{"address-literal-IPv6"},
	},
	KindRFC5322IPv62x2xColon: {
		category: RFC5322, code: 73,
		description: "Address is only valid according to the broad definition of RFC5322. It is otherwise invalid.",
		message:     "Address contains an IPv6 literal address with too many :: sequences.",
		references:  []string{"address-literal-IPv6"},
	},
	KindRFC5322IPv6BadChar: {
		category: RFC5322, code: 74,
		description: "Address is only valid according to the broad definition of RFC5322. It is otherwise invalid.",
		message:     "Address contains an IPv6 literal address with an illegal group of characters.",
		references:  []string{"address-literal-IPv6"},
	},
	KindRFC5322IPv6MaxGrps: {
		category: RFC5322, code: 75,
		description: "Address is only valid according to the broad definition of RFC5322. It is otherwise invalid.",
		message:     "Address contains an IPv6 literal address with too many groups.",
		references:  []string{"address-literal-IPv6"},
	},
	KindRFC5322IPv6ColonStrt: {
		category: RFC5322, code: 76,
		description: "Address is only valid according to the broad definition of RFC5322. It is otherwise invalid.",
		message:     "Address contains an IPv6 literal address that starts with a single colon.",
		references:  []string{"address-literal-IPv6"},
	},
	KindRFC5322IPv6ColonEnd: {
		category: RFC5322, code: 77,
		description: "Address is only valid according to the broad definition of RFC5322. It is otherwise invalid.",
		message:     "Address contains an IPv6 literal address that ends with a single colon.",
		references:  []string{"address-literal-IPv6"},
	},

	KindErrExpectingDText: {
		category: Err, code: 129,
		description: "Address is invalid for any purpose.",
		message:     "Address contains a character that is not allowed in a domain literal.",
		references:  []string{"dtext"},
	},
	KindErrNoLocalPart: {
		category: Err, code: 130,
		description: "Address is invalid for any purpose.",
		message:     "Address has no local part.",
		references:  []string{"local-part"},
	},
	KindErrNoDomain: {
		category: Err, code: 131,
		description: "Address is invalid for any purpose.",
		message:     "Address has no domain part.",
		references:  []string{"addr-spec", "mailbox"},
	},
	KindErrConsecutiveDots: {
		category: Err, code: 132,
		description: "Address is invalid for any purpose.",
		message:     "Address contains consecutive dots.",
		references:  []string{"local-part", "domain-RFC5322", "domain-RFC5321"},
	},
	KindErrAtextAfterCFWS: {
		category: Err, code: 133,
		description: "Address is invalid for any purpose.",
		message:     "Address contains text after a comment or Folding White Space.",
		references:  []string{"local-part", "domain-RFC5322"},
	},
	KindErrAtextAfterQS: {
		category: Err, code: 134,
		description: "Address is invalid for any purpose.",
		message:     "Address contains text after a quoted string.",
		references:  []string{"local-part"},
	},
	KindErrAtextAfterDomLit: {
		category: Err, code: 135,
		description: "Address is invalid for any purpose.",
		message:     "Address contains extra characters after the domain literal.",
		references:  []string{"domain-RFC5322"},
	},
	KindErrExpectingQPair: {
		category: Err, code: 136,
		description: "Address is invalid for any purpose.",
		message:     "Address contains a character that is not allowed in a quoted pair.",
		references:  []string{"quoted-pair"},
	},
	KindErrExpectingAtext: {
		category: Err, code: 137,
		description: "Address is invalid for any purpose.",
		message:     "Address contains a character that is not allowed.",
		references:  []string{"atext"},
	},
	KindErrExpectingQText: {
		category: Err, code: 138,
		description: "Address is invalid for any purpose.",
		message:     "Address contains a character that is not allowed in a quoted string.",
		references:  []string{"qtext"},
	},
	KindErrExpectingCText: {
		category: Err, code: 139,
		description: "Address is invalid for any purpose.",
		message:     "Address contains a character that is not allowed in a comment.",
		references:  []string{"ctext"},
	},
	KindErrBackslashEnd: {
		category: Err, code: 140,
		description: "Address is invalid for any purpose.",
		message:     "Address ends in a backslash.",
		references:  []string{"domain-RFC5322", "domain-RFC5321", "quoted-pair"},
	},
	KindErrDotStart: {
		category: Err, code: 141,
		description: "Address is invalid for any purpose.",
		message:     "Address has a local part or domain that begins with a dot.",
		references:  []string{"local-part", "domain-RFC5322", "domain-RFC5321"},
	},
	KindErrDotEnd: {
		category: Err, code: 142,
		description: "Address is invalid for any purpose.",
		message:     "Address has a local part or domain that ends with a dot.",
		references:  []string{"local-part", "domain-RFC5322", "domain-RFC5321"},
	},
	KindErrDomainHyphenStart: {
		category: Err, code: 143,
		description: "Address is invalid for any purpose.",
		message:     "Address has a local part or domain that begins with a hyphen.",
		references:  []string{"sub-domain"},
	},
	KindErrDomainHyphenEnd: {
		category: Err, code: 144,
		description: "Address is invalid for any purpose.",
		message:     "Address has a local part or domain that ends with a hyphen.",
		references:  []string{"sub-domain"},
	},
	KindErrUnclosedQuotedStr: {
		category: Err, code: 145,
		description: "Address is invalid for any purpose.",
		message:     "Address contains an unclosed quoted string.",
		references:  []string{"quoted-string"},
	},
	KindErrUnclosedComment: {
		category: Err, code: 146,
		description: "Address is invalid for any purpose.",
		message:     "Address contains an unclosed comment.",
		references:  []string{"CFWS"},
	},
	KindErrUnclosedDomLit: {
		category: Err, code: 147,
		description: "Address is invalid for any purpose.",
		message:     "Address contains a domain literal that is missing its closing bracket.",
		references:  []string{"domain-literal"},
	},
	KindErrFWSCRLFx2: {
		category: Err, code: 148,
		description: "Address is invalid for any purpose.",
		message:     "Address contains a Folding White Space that has consecutive CRLF sequences.",
		references:  []string{"CFWS"},
	},
	KindErrFWSCRLFEnd: {
		category: Err, code: 149,
		description: "Address is invalid for any purpose.",
		message:     "Address contains a Folding White Space that ends with a CRLF sequence.",
		references:  []string{"CFWS"},
	},
	KindErrCRNoLF: {
		category: Err, code: 150,
		description: "Address is invalid for any purpose.",
		message:     "Address contains a carriage return that is not followed by a line return.",
		references:  []string{"CFWS", "CRLF"},
	},
	KindErrBadParse: {
		category: Err, code: 255,
		description: "Address is invalid for any purpose.",
		message:     "The parser reached a state its own invariants say is unreachable.",
	},
}
