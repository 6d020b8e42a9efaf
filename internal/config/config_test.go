package config

import (
	"testing"
	"time"
)

func TestParseMethods(t *testing.T) {
	m := parseMethods("get, head ,,POST")
	for _, want := range []string{"GET", "HEAD", "POST"} {
		if !m[want] {
			t.Errorf("missing method %s", want)
		}
	}
	if len(m) != 3 {
		t.Errorf("got %d methods, want 3", len(m))
	}
}

func TestParseDurFallsBackToSecond(t *testing.T) {
	if d := parseDur("45s"); d != 45*time.Second {
		t.Errorf("parseDur(45s) = %v", d)
	}
	if d := parseDur("garbage"); d != time.Second {
		t.Errorf("parseDur(garbage) = %v, want 1s", d)
	}
}

func TestEnvBool(t *testing.T) {
	t.Setenv("X_BOOL", "yes")
	if !envBool("X_BOOL", false) {
		t.Error("yes should parse as true")
	}
	t.Setenv("X_BOOL", "off")
	if envBool("X_BOOL", true) {
		t.Error("off should parse as false")
	}
	t.Setenv("X_BOOL", "maybe")
	if !envBool("X_BOOL", true) {
		t.Error("unparseable value should keep the default")
	}
}

func TestLoadRateLimitConfigBounds(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	c := LoadRateLimitConfig()
	if c.Capacity < 1 {
		t.Errorf("capacity %d below minimum", c.Capacity)
	}
	// TTL must cover at least five refill intervals so idle buckets expire
	// after, not before, they could have refilled.
	if c.TTL < 5*c.RefillInterval {
		t.Errorf("TTL %v shorter than 5x refill interval %v", c.TTL, c.RefillInterval)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OWNER_EMAIL", "")
	t.Setenv("UPLOAD_DIR", "")
	if got := getenv("OWNER_EMAIL", "owner@hotel.com"); got != "owner@hotel.com" {
		t.Errorf("owner default = %q", got)
	}
	t.Setenv("UPLOAD_DIR", "custom/dir")
	if got := getenv("UPLOAD_DIR", "static/uploads"); got != "custom/dir" {
		t.Errorf("upload dir override = %q", got)
	}
}
