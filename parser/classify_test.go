package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAtext(t *testing.T) {
	for _, b := range []byte("abcXYZ019!#$%&'*+-/=?^_`{|}~") {
		assert.Truef(t, isAtext(b), "isAtext(%q)", b)
	}
	for _, b := range []byte(`()<>[]:;@\,."`) {
		assert.Falsef(t, isAtext(b), "isAtext(%q)", b)
	}
}

func TestIsIPv4(t *testing.T) {
	valid := []string{
		"0.0.0.0", "255.255.255.255", "1.2.3.4", "192.168.0.1",
		// A leading zero on a group isn't excluded by the Snum grammar
		// (see isDecOctet), so neither is it here.
		"01.2.3.4", "1.2.3.04",
	}
	for _, s := range valid {
		assert.Truef(t, isIPv4(s), "isIPv4(%q)", s)
	}

	invalid := []string{
		"256.1.1.1",
		"1.2.3.4.5",
		"1.2.3",
		"a.b.c.d",
		"",
		"1.2.3.4 ",
	}
	for _, s := range invalid {
		assert.Falsef(t, isIPv4(s), "isIPv4(%q)", s)
	}
}

func TestIsDecOctet(t *testing.T) {
	valid := []string{
		"0", "9", "10", "99", "100", "199", "200", "249", "250", "255",
		// Leading zeros: allowed by the literal grammar (see isDecOctet).
		"00", "01", "008", "012",
	}
	for _, s := range valid {
		assert.Truef(t, isDecOctet(s), "isDecOctet(%q)", s)
	}

	invalid := []string{"256", "300", "", "1234", "abc"}
	for _, s := range invalid {
		assert.Falsef(t, isDecOctet(s), "isDecOctet(%q)", s)
	}
}
