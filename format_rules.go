package rulekit

import (
	"fmt"
	"net"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

// Format rules for addresses and identifiers. These evaluate each
// wildcard-expanded element individually.

// Email validates that a string value is a parseable address with a dotted
// domain.
func Email(fields []string, opts ...Option) Rule {
	return newRule("email", fields, true,
		func(value any, _ bool) bool {
			s, ok := value.(string)
			if !ok || strings.TrimSpace(s) == "" {
				return false
			}
			addr, err := mail.ParseAddress(s)
			if err != nil {
				return false
			}
			_, domain, found := strings.Cut(addr.Address, "@")
			if !found || !strings.Contains(domain, ".") {
				return false
			}
			return !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
		},
		func(field string) string { return field + " must be a valid email address" },
		func(field string) string { return field + " must not be a valid email address" },
		opts)
}

// IP validates that a string value is an IPv4 address.
func IP(fields []string, opts ...Option) Rule {
	return newRule("ip", fields, true,
		func(value any, _ bool) bool {
			s, ok := value.(string)
			if !ok {
				return false
			}
			parsed := net.ParseIP(s)
			return parsed != nil && parsed.To4() != nil
		},
		func(field string) string { return field + " must be a valid ipv4 address" },
		func(field string) string { return field + " must not be a valid ipv4 address" },
		opts)
}

// UUID validates standard UUID format with a cheap shape check before
// parsing.
func UUID(fields []string, opts ...Option) Rule {
	return newRule("uuid", fields, true,
		func(value any, _ bool) bool {
			s, ok := value.(string)
			if !ok || len(s) != 36 {
				return false
			}
			if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
				return false
			}
			_, err := uuid.Parse(s)
			return err == nil
		},
		func(field string) string { return field + " must be a valid UUID" },
		func(field string) string { return field + " must not be a valid UUID" },
		opts)
}

// Phone validates a string value against a digit-mask pattern such as
// "123-456-7890": digit positions must hold digits, every other position
// must match the pattern byte exactly. The failure message shows the mask
// with digits replaced by X.
func Phone(fields []string, pattern string, opts ...Option) Rule {
	mask := digitMask(pattern)
	return newRule("phone", fields, true,
		func(value any, _ bool) bool {
			s, ok := value.(string)
			if !ok || len(s) != len(pattern) {
				return false
			}
			for i := 0; i < len(pattern); i++ {
				if isDigit(pattern[i]) {
					if !isDigit(s[i]) {
						return false
					}
				} else if s[i] != pattern[i] {
					return false
				}
			}
			return true
		},
		func(field string) string {
			return fmt.Sprintf("%s must be in the format %s", field, mask)
		},
		func(field string) string {
			return fmt.Sprintf("%s must not be in the format %s", field, mask)
		},
		opts)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func digitMask(pattern string) string {
	out := []byte(pattern)
	for i, b := range out {
		if isDigit(b) {
			out[i] = 'X'
		}
	}
	return string(out)
}

// DomainLookup reports whether a bare domain name is live. It is the
// engine's only external collaborator contract: implementations may hit
// DNS, cache results, or stub the check entirely.
type DomainLookup func(domain string) bool

// ActiveDomain validates that a string value names a resolvable domain.
// URLs are reduced to their host and email addresses to the part after
// "@" before lookup. A nil lookup falls back to a DNS host lookup.
func ActiveDomain(fields []string, lookup DomainLookup, opts ...Option) Rule {
	if lookup == nil {
		lookup = dnsLookup
	}
	return newRule("active_domain", fields, true,
		func(value any, _ bool) bool {
			s, ok := value.(string)
			if !ok || s == "" {
				return false
			}
			return lookup(bareDomain(s))
		},
		func(field string) string { return field + " must be an active domain name" },
		func(field string) string { return field + " must not be an active domain name" },
		opts)
}

func dnsLookup(domain string) bool {
	addrs, err := net.LookupHost(domain)
	return err == nil && len(addrs) > 0
}

// bareDomain strips scheme, path, and mailbox so "https://www.example.com/x"
// and "admin@example.com" both resolve as host names.
func bareDomain(s string) string {
	if _, after, found := strings.Cut(s, "@"); found {
		s = after
	}
	if _, after, found := strings.Cut(s, "://"); found {
		s = after
	}
	if host, _, found := strings.Cut(s, "/"); found {
		s = host
	}
	return s
}
