package version

import (
	"strings"
	"testing"
)

func TestUserAgent_ContainsNameAndVersion(t *testing.T) {
	ua := UserAgent()
	if !strings.HasPrefix(ua, Name+"/") {
		t.Fatalf("want prefix %q, got %q", Name+"/", ua)
	}
	if !strings.HasSuffix(ua, Version) {
		t.Fatalf("want suffix %q, got %q", Version, ua)
	}
}
