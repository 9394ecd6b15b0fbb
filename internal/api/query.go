package api

import (
	"net/url"
	"strconv"
	"strings"
)

// Query accumulates URL query parameters in insertion order. Empty string
// values are dropped at Set time so absent filters never reach the wire.
// The backend validates filter semantics (e.g. priceMin vs priceMax); no
// checks happen here.
type Query struct {
	pairs []queryPair
}

type queryPair struct {
	key   string
	value string
}

// Set appends a key/value pair unless value is empty.
func (q *Query) Set(key, value string) {
	if value == "" {
		return
	}
	q.pairs = append(q.pairs, queryPair{key: key, value: value})
}

// SetInt appends an integer parameter; nil means absent.
func (q *Query) SetInt(key string, value *int) {
	if value == nil {
		return
	}
	q.Set(key, strconv.Itoa(*value))
}

// SetFloat appends a numeric parameter; nil means absent.
func (q *Query) SetFloat(key string, value *float64) {
	if value == nil {
		return
	}
	q.Set(key, strconv.FormatFloat(*value, 'f', -1, 64))
}

// SetBool appends a boolean parameter.
func (q *Query) SetBool(key string, value bool) {
	q.Set(key, strconv.FormatBool(value))
}

// Len reports how many parameters survived Set.
func (q *Query) Len() int {
	return len(q.pairs)
}

// Encode renders the parameters as a URL-encoded string. Insertion order
// must survive, so this cannot go through url.Values, which sorts keys.
func (q *Query) Encode() string {
	if len(q.pairs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range q.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}

// Append joins the encoded parameters onto path, returning path unchanged
// when no parameters survived.
func (q *Query) Append(path string) string {
	encoded := q.Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}
