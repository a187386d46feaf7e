package settings

import (
	"testing"

	"defterm/internal/config"
)

func TestValidateAddr(t *testing.T) {
	for _, ok := range []string{"127.0.0.1:8787", ":2222", "localhost:80", " [::1]:22 "} {
		if err := ValidateAddr(ok); err != nil {
			t.Fatalf("%q: unexpected error %v", ok, err)
		}
	}
	for _, bad := range []string{"", "localhost", "127.0.0.1:", "a:b:c"} {
		if err := ValidateAddr(bad); err == nil {
			t.Fatalf("%q: expected an error", bad)
		}
	}
}

func TestRequired(t *testing.T) {
	v := required("user")
	if err := v("  "); err == nil || err.Error() != "user is required" {
		t.Fatalf("unexpected: %v", err)
	}
	if err := v("defha"); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestForm_BindsConfig(t *testing.T) {
	cfg := config.Default()
	if f := Form(&cfg); f == nil {
		t.Fatalf("expected a form")
	}
	if cfg.Profile.User != "defha" || cfg.WebAddr != config.DefaultWebAddr {
		t.Fatalf("building the form must not change the config: %+v", cfg)
	}
}
