package isemail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nullmx/isemail/diagnosis"
)

// stubChecker is a fixed-answer dnscheck.Checker for exercising Validate's
// collaborator wiring without touching the network.
type stubChecker struct {
	result diagnosis.Diagnosis
}

func (s stubChecker) Check(ctx context.Context, domain string) diagnosis.Diagnosis {
	return s.result
}

func TestIsEmail(t *testing.T) {
	cases := []struct {
		address string
		want    bool
	}{
		{"test@example.com", true},
		{"test.test@example.com", true},
		{"", false},
		{"test@", false},
		{"@example.com", false},
		{"test@example.com.", false},
	}

	for _, tc := range cases {
		t.Run(tc.address, func(t *testing.T) {
			assert.Equal(t, tc.want, IsEmail(tc.address))
		})
	}
}

func TestValidateDefaultThresholdCollapsesRFC5321ToValid(t *testing.T) {
	got := Validate("test@[192.168.0.1]")
	assert.Equal(t, diagnosis.KindValid, got.Kind)
}

func TestValidateCustomThresholdSurfacesRFC5321(t *testing.T) {
	// A custom threshold only applies when the collaborators didn't already
	// tighten it themselves — here neither DNS nor gTLD checking is on, so
	// cfg.threshold is used as given.
	got := Validate("test@[192.168.0.1]", WithThreshold(diagnosis.DNSWarn))
	assert.Equal(t, diagnosis.KindRFC5321AddressLiteral, got.Kind)
}

func TestValidateWithoutGTLDRejectsBareTLD(t *testing.T) {
	// "com" parses as a syntactically clean domain (worst below DNSWarn), so
	// the gTLD collaborator runs, and rejecting it tightens the threshold so
	// the finding isn't smoothed back away to VALID.
	got := Validate("test@com", WithoutGTLD())
	assert.Equal(t, diagnosis.KindGTLD, got.Kind)
}

func TestValidateWithoutGTLDAllowsCleanSubdomain(t *testing.T) {
	got := Validate("test@sub.example.com", WithoutGTLD())
	assert.Equal(t, diagnosis.KindValid, got.Kind)
}

func TestIsEmailWithoutGTLDRejectsBareTLD(t *testing.T) {
	// Mirrors TestValidateWithoutGTLDRejectsBareTLD: IsEmail must judge
	// against the same tightened threshold Validate compresses against, or
	// a GTLD-band finding would wrongly pass the package's lenient default.
	assert.False(t, IsEmail("test@com", WithoutGTLD()))
}

func TestIsEmailWithDNSCheckRejectsNoRecordDomain(t *testing.T) {
	checker := stubChecker{result: diagnosis.New(diagnosis.KindDNSWarnNoRecord)}
	assert.False(t, IsEmail("test@example.com", WithDNSChecker(checker)))
}

func TestValidateUsesInjectedChecker(t *testing.T) {
	checker := stubChecker{result: diagnosis.New(diagnosis.KindDNSWarnNoRecord)}
	got := Validate("test@example.com", WithDNSChecker(checker))
	assert.Equal(t, diagnosis.KindDNSWarnNoRecord, got.Kind)
}

func TestValidateSkipsCollaboratorsOnFatalSyntaxError(t *testing.T) {
	checker := stubChecker{result: diagnosis.New(diagnosis.KindValid)}
	got := Validate("not-an-address", WithDNSChecker(checker))
	assert.NotEqual(t, diagnosis.KindValid, got.Kind)
}

func TestParseReturnsComponents(t *testing.T) {
	got := Parse("foo.bar@example.com")
	assert.Equal(t, "foo.bar", got.LocalPart)
	assert.Equal(t, "example.com", got.Domain)
}

func TestNormalizeDomain(t *testing.T) {
	ascii, err := NormalizeDomain("example.com")
	assert.NoError(t, err)
	assert.Equal(t, "example.com", ascii)

	puny, err := NormalizeDomain("straße.example")
	assert.NoError(t, err)
	assert.NotEqual(t, "straße.example", puny)
}
