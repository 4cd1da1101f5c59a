package render

import (
	"html"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/publicsuffix"
)

var plain = bluemonday.StrictPolicy()

// clean reduces user text to plain text: markup is stripped and entities
// are restored so every substrate escapes it exactly once.
func clean(s string) string {
	if !strings.ContainsAny(s, "<>&") {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(html.UnescapeString(plain.Sanitize(s)))
}

// safeHref returns a link target usable in markup, or "" for anything that
// is not http(s) or mailto.
func safeHref(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	candidate := raw
	if !strings.Contains(candidate, "://") && !strings.HasPrefix(candidate, "mailto:") {
		candidate = "https://" + candidate
	}
	u, err := url.Parse(candidate)
	if err != nil {
		return ""
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return ""
		}
		return u.String()
	case "mailto":
		return u.String()
	}
	return ""
}

// displayURL shows a profile URL without scheme, "www." or trailing slash.
func displayURL(raw string) string {
	s := clean(raw)
	for _, p := range []string{"https://", "http://"} {
		s = strings.TrimPrefix(s, p)
	}
	s = strings.TrimPrefix(s, "www.")
	return strings.TrimSuffix(s, "/")
}

// domainLabel gives a tidy registrable-domain label for a link, falling
// back to fallback when the URL has no usable host.
func domainLabel(raw, fallback string) string {
	href := safeHref(raw)
	if href == "" {
		return fallback
	}
	u, err := url.Parse(href)
	if err != nil || u.Hostname() == "" {
		return fallback
	}
	host := u.Hostname()
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}
