package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullmx/isemail/diagnosis"
)

func TestAnalyzeAddressLiteral(t *testing.T) {
	cases := []struct {
		name    string
		literal string
		want    diagnosis.Kind
	}{
		{"ipv4", "192.168.0.1", diagnosis.KindRFC5321AddressLiteral},
		{"not a literal at all", "garbage", diagnosis.KindRFC5322DomainLiteral},
		{"ipv6 missing prefix", "1:2:3:4:5:6:7:8", diagnosis.KindRFC5322DomainLiteral},
		{"ipv6 full", "IPv6:1:2:3:4:5:6:7:8", diagnosis.KindRFC5321AddressLiteral},
		{"ipv6 too few groups", "IPv6:1:2:3", diagnosis.KindRFC5322IPv6GrpCount},
		{"ipv6 leading double colon", "IPv6:::1", diagnosis.KindRFC5321AddressLiteral},
		{"ipv6 double double-colon", "IPv6:1::2::3", diagnosis.KindRFC5322IPv62x2xColon},
		{"ipv6 starts with single colon", "IPv6::1:2:3:4:5:6:7:8", diagnosis.KindRFC5322IPv6ColonStrt},
		{"ipv6 bad hex group", "IPv6:1:2:3:4:5:6:7:zzzz", diagnosis.KindRFC5322IPv6BadChar},
		{"ipv6v4 mapped", "IPv6:::ffff:192.168.1.1", diagnosis.KindRFC5321AddressLiteral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kinds := analyzeAddressLiteral(tc.literal)
			set := diagnosis.NewSet()
			for _, k := range kinds {
				set.Add(diagnosis.New(k))
			}
			assert.Equal(t, tc.want, set.Worst().Kind)
		})
	}
}

func TestTrailingIPv4Index(t *testing.T) {
	idx, ok := trailingIPv4Index("192.168.0.1")
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = trailingIPv4Index("::ffff:192.168.0.1")
	require.True(t, ok)
	assert.Equal(t, 7, idx)

	_, ok = trailingIPv4Index("garbage")
	assert.False(t, ok)
}
