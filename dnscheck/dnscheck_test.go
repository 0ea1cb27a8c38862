package dnscheck

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullmx/isemail/diagnosis"
)

// startFakeServer runs a miekg/dns server on an ephemeral localhost UDP
// port driven by handler, and returns its "host:port" address. The server
// is torn down automatically when the test finishes.
func startFakeServer(t *testing.T, handler dns.HandlerFunc) string {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	server := &dns.Server{PacketConn: pc, Handler: handler}
	go server.ActivateAndServe()
	t.Cleanup(func() {
		server.Shutdown()
	})

	return pc.LocalAddr().String()
}

func TestCheckMXFound(t *testing.T) {
	addr := startFakeServer(t, func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(r)
		if r.Question[0].Qtype == dns.TypeMX {
			rr, _ := dns.NewRR("example.com. 3600 IN MX 10 mail.example.com.")
			m.Answer = append(m.Answer, rr)
		}
		w.WriteMsg(m)
	})

	checker := NewMiekgChecker(WithNameserver(addr), WithTimeout(time.Second))
	got := checker.Check(context.Background(), "example.com")
	assert.Equal(t, diagnosis.KindValid, got.Kind)
}

func TestCheckNullMX(t *testing.T) {
	addr := startFakeServer(t, func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(r)
		if r.Question[0].Qtype == dns.TypeMX {
			rr, _ := dns.NewRR("example.com. 3600 IN MX 0 .")
			m.Answer = append(m.Answer, rr)
		}
		w.WriteMsg(m)
	})

	checker := NewMiekgChecker(WithNameserver(addr), WithTimeout(time.Second))
	got := checker.Check(context.Background(), "example.com")
	assert.Equal(t, diagnosis.KindDNSWarnNullMX, got.Kind)
}

func TestCheckNXDomain(t *testing.T) {
	addr := startFakeServer(t, func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(r)
		m.Rcode = dns.RcodeNameError
		w.WriteMsg(m)
	})

	checker := NewMiekgChecker(WithNameserver(addr), WithTimeout(time.Second))
	got := checker.Check(context.Background(), "nonexistent.invalid")
	assert.Equal(t, diagnosis.KindDNSWarnNoRecord, got.Kind)
}

func TestCheckNXDomainSingleLabelIsTLD(t *testing.T) {
	addr := startFakeServer(t, func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(r)
		m.Rcode = dns.RcodeNameError
		w.WriteMsg(m)
	})

	checker := NewMiekgChecker(WithNameserver(addr), WithTimeout(time.Second))
	got := checker.Check(context.Background(), "localhost")
	assert.Equal(t, diagnosis.KindRFC5321TLD, got.Kind)
}

func TestCheckEmptyMXFallsBackToA(t *testing.T) {
	addr := startFakeServer(t, func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(r)
		if r.Question[0].Qtype == dns.TypeA {
			rr, _ := dns.NewRR("example.com. 3600 IN A 192.0.2.1")
			m.Answer = append(m.Answer, rr)
		}
		w.WriteMsg(m)
	})

	checker := NewMiekgChecker(WithNameserver(addr), WithTimeout(time.Second))
	got := checker.Check(context.Background(), "example.com")
	assert.Equal(t, diagnosis.KindDNSWarnNoMXRecord, got.Kind)
}

func TestCheckEmptyMXAndNoA(t *testing.T) {
	addr := startFakeServer(t, func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(r)
		w.WriteMsg(m)
	})

	checker := NewMiekgChecker(WithNameserver(addr), WithTimeout(time.Second))
	got := checker.Check(context.Background(), "example.com")
	assert.Equal(t, diagnosis.KindDNSWarnNoRecord, got.Kind)
}

func TestCheckServfailIsInfrastructureFailure(t *testing.T) {
	addr := startFakeServer(t, func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(r)
		m.Rcode = dns.RcodeServerFailure
		w.WriteMsg(m)
	})

	checker := NewMiekgChecker(WithNameserver(addr), WithTimeout(time.Second))
	got := checker.Check(context.Background(), "example.com")
	assert.Equal(t, diagnosis.KindNoNameservers, got.Kind)
}

func TestCheckUnreachableNameserverTimesOut(t *testing.T) {
	// 192.0.2.0/24 is TEST-NET-1 (RFC 5737): guaranteed non-routable, so the
	// exchange blocks until the checker's own timeout fires.
	checker := NewMiekgChecker(WithNameserver("192.0.2.1:53"), WithTimeout(50*time.Millisecond))
	got := checker.Check(context.Background(), "example.com")
	assert.Equal(t, diagnosis.KindDNSTimedOut, got.Kind)
}
