package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const lookupTimeout = 2 * time.Second

// IsEmailDomainValid checks that the address domain resolves at all
// (MX first, then any A/AAAA record). DNS being slow or down must not
// block sign-up, so lookups are bounded and failures count as valid.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	var r net.Resolver

	mx, err := r.LookupMX(ctx, domain)
	if err == nil {
		return len(mx) > 0
	}
	if ctx.Err() != nil {
		return true
	}

	ips, err := r.LookupIP(ctx, "ip", domain)
	if err == nil {
		return len(ips) > 0
	}
	return ctx.Err() != nil
}
