package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// TrustedNetHandler sets object structure.
type TrustedNetHandler struct {
	Resolved bool
	IPNets   []*net.IPNet
}

// NewTrustedNetHandler initializes a trusted network handler for a comma-separated list of CIDR
// subnets. Any unparsable entry leaves the handler unresolved, which rejects every request.
func NewTrustedNetHandler(subnets string, logger zerolog.Logger) *TrustedNetHandler {
	var ipnets []*net.IPNet
	for _, subnet := range strings.Split(subnets, ",") {
		_, ipnet, err := net.ParseCIDR(strings.TrimSpace(subnet))
		if err != nil {
			logger.Warn().Err(err).Str("subnet", subnets).Msg("trusted network was not initialized")
			return &TrustedNetHandler{}
		}
		ipnets = append(ipnets, ipnet)
	}
	return &TrustedNetHandler{
		Resolved: true,
		IPNets:   ipnets,
	}
}

// Contains reports whether ip lies in one of the trusted subnets.
func (tn *TrustedNetHandler) Contains(ip net.IP) bool {
	for _, ipnet := range tn.IPNets {
		if ipnet.Contains(ip) {
			return true
		}
	}
	return false
}

// TrustedNetworkHandler lets through requests whose peer address lies in a trusted subnet.
// Forwarding headers are ignored: the widget is served directly, never behind a proxy.
func (tn *TrustedNetHandler) TrustedNetworkHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !tn.Resolved {
			http.Error(w, "Trusted subnet access violation", http.StatusForbidden)
			return
		}
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		ip := net.ParseIP(host)
		if ip == nil || !tn.Contains(ip) {
			http.Error(w, "Trusted subnet access violation", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
