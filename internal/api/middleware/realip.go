package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// RealIP rewrites RemoteAddr from X-Real-IP or X-Forwarded-For, but only when
// the socket peer is one of the trusted proxies. With no trusted proxies the
// headers are ignored and RemoteAddr is left alone.
func RealIP(trusted []netip.Prefix) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(trusted) > 0 {
				if peer, ok := parseAddr(clientIP(r)); ok && isTrusted(trusted, peer) {
					if ip := forwardedFor(r, trusted); ip != "" {
						r.RemoteAddr = net.JoinHostPort(ip, "0")
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// forwardedFor prefers X-Real-IP, then walks X-Forwarded-For from the right
// and returns the first hop that is not a trusted proxy. Hops to the left of
// it are client-controlled.
func forwardedFor(r *http.Request, trusted []netip.Prefix) string {
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		if addr, ok := parseAddr(xri); ok {
			return addr.String()
		}
	}

	var hops []string
	for _, v := range r.Header.Values("X-Forwarded-For") {
		hops = append(hops, strings.Split(v, ",")...)
	}
	for i := len(hops) - 1; i >= 0; i-- {
		addr, ok := parseAddr(strings.TrimSpace(hops[i]))
		if !ok {
			return ""
		}
		if !isTrusted(trusted, addr) {
			return addr.String()
		}
	}
	return ""
}

func parseAddr(s string) (netip.Addr, bool) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

func isTrusted(trusted []netip.Prefix, addr netip.Addr) bool {
	for _, p := range trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
