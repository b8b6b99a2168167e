package dashboard

import (
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Criteria is the per-request filter. Zero values mean "no constraint".
type Criteria struct {
	Query    string `json:"q,omitempty"`
	Source   string `json:"source,omitempty"`
	RoleType string `json:"role_type,omitempty"`
	Location string `json:"location,omitempty"`
	Days     int    `json:"days,omitempty"`
}

// maxDays caps the recency window so a huge value can't overflow date math.
const maxDays = 3650

// ParseCriteria reads q, source, role_type, location and days. Values are
// trimmed; whitespace-only or malformed input is treated as absent. source and
// role_type are lower-cased to match the stored categories.
func ParseCriteria(v url.Values) Criteria {
	c := Criteria{
		Query:    clean(v.Get("q")),
		Source:   strings.ToLower(clean(v.Get("source"))),
		RoleType: strings.ToLower(clean(v.Get("role_type"))),
		Location: clean(v.Get("location")),
	}
	if n, err := strconv.Atoi(strings.TrimSpace(v.Get("days"))); err == nil && n > 0 {
		c.Days = min(n, maxDays)
	}
	return c
}

func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// Values is the inverse of ParseCriteria, omitting empty fields.
func (c Criteria) Values() url.Values {
	v := url.Values{}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	set("q", c.Query)
	set("source", c.Source)
	set("role_type", c.RoleType)
	set("location", c.Location)
	if c.Days > 0 {
		v.Set("days", strconv.Itoa(c.Days))
	}
	return v
}

func clean(s string) string {
	if !utf8.ValidString(s) {
		return ""
	}
	return strings.TrimSpace(s)
}
