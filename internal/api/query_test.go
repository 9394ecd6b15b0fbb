package api

import (
	"net/url"
	"testing"
)

func TestQueryDropsEmptyValues(t *testing.T) {
	q := &Query{}
	q.Set("status", "pending")
	q.Set("search", "")
	q.Set("location", "Berlin")
	q.SetInt("limit", nil)
	q.SetFloat("priceMin", nil)

	encoded := q.Encode()
	if encoded != "status=pending&location=Berlin" {
		t.Fatalf("unexpected encoding: %q", encoded)
	}

	parsed, err := url.ParseQuery(encoded)
	if err != nil {
		t.Fatalf("failed to parse encoded query: %v", err)
	}
	for _, key := range []string{"search", "limit", "priceMin"} {
		if _, ok := parsed[key]; ok {
			t.Fatalf("expected %s to be dropped", key)
		}
	}
}

func TestQueryPreservesInsertionOrder(t *testing.T) {
	q := &Query{}
	q.Set("zeta", "1")
	q.Set("alpha", "2")
	q.Set("mid", "3")

	encoded := q.Encode()
	if encoded != "zeta=1&alpha=2&mid=3" {
		t.Fatalf("expected insertion order preserved, got %q", encoded)
	}
}

func TestQueryStringifiesTypedValues(t *testing.T) {
	limit := 25
	price := 149.5

	q := &Query{}
	q.SetInt("limit", &limit)
	q.SetFloat("priceMax", &price)
	q.SetBool("approved", true)
	q.SetBool("available", false)

	encoded := q.Encode()
	want := "limit=25&priceMax=149.5&approved=true&available=false"
	if encoded != want {
		t.Fatalf("expected %q, got %q", want, encoded)
	}
}

func TestQueryRoundTrip(t *testing.T) {
	offset := 10
	q := &Query{}
	q.Set("search", "jane doe")
	q.Set("location", "São Paulo")
	q.SetInt("offset", &offset)

	parsed, err := url.ParseQuery(q.Encode())
	if err != nil {
		t.Fatalf("failed to parse encoded query: %v", err)
	}

	want := map[string]string{
		"search":   "jane doe",
		"location": "São Paulo",
		"offset":   "10",
	}
	if len(parsed) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(parsed))
	}
	for key, value := range want {
		if got := parsed.Get(key); got != value {
			t.Fatalf("key %s: expected %q, got %q", key, value, got)
		}
	}
}

func TestQueryAppend(t *testing.T) {
	q := &Query{}
	if got := q.Append("/admin/models"); got != "/admin/models" {
		t.Fatalf("expected path unchanged for empty query, got %q", got)
	}

	q.Set("status", "approved")
	if got := q.Append("/admin/models"); got != "/admin/models?status=approved" {
		t.Fatalf("unexpected path: %q", got)
	}
}
