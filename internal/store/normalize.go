package store

import (
	"net/url"
	"sort"
	"strings"
)

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// NormalizeLocation trims a "Location:" label and drops repeated
// comma-separated parts ("Lahore, lahore, Pakistan" -> "Lahore, Pakistan").
func NormalizeLocation(loc string) string {
	loc = CleanText(loc)
	for _, label := range []string{"locations:", "location:"} {
		if len(loc) >= len(label) && strings.EqualFold(loc[:len(label)], label) {
			loc = strings.TrimSpace(loc[len(label):])
			break
		}
	}

	seen := map[string]bool{}
	var out []string
	for _, p := range strings.Split(loc, ",") {
		p = CleanText(p)
		if p == "" {
			continue
		}
		k := strings.ToLower(p)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return strings.Join(out, ", ")
}

// NormalizeCategory is used for source and role_type so the filter form,
// facets and counts all see one spelling per value.
func NormalizeCategory(s string) string {
	return strings.ToLower(CleanText(s))
}

// canonicalizeURL builds the duplicate key for apply URLs: scheme and host
// lower-cased, fragment and tracking params dropped, query sorted.
func canonicalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")

	q := u.Query()
	for k := range q {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, "utm_") ||
			lk == "gclid" || lk == "fbclid" || lk == "msclkid" ||
			lk == "mc_cid" || lk == "mc_eid" ||
			lk == "mkt_tok" || lk == "ref" {
			q.Del(k)
		}
	}

	// deterministic query
	for k := range q {
		vals := q[k]
		sort.Strings(vals)
		q[k] = vals
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func validApplyURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
