package gtld

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nullmx/isemail/diagnosis"
)

func TestCheck(t *testing.T) {
	cases := []struct {
		domain string
		want   diagnosis.Kind
	}{
		{"example.com", diagnosis.KindValid},
		{"sub.example.com", diagnosis.KindValid},
		{"com", diagnosis.KindGTLD},
		{"localhost", diagnosis.KindGTLD},
		{"", diagnosis.KindGTLD},
	}

	for _, tc := range cases {
		t.Run(tc.domain, func(t *testing.T) {
			assert.Equal(t, tc.want, Check(tc.domain).Kind)
		})
	}
}
