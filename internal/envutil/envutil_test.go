// Package envutil tests.
package envutil

import "testing"

func TestHostEnvKeyDefaultPrefix(t *testing.T) {
	t.Setenv("ENV_PREFIX", "")
	if got := HostEnvKey("WORKSPACE"); got != "RDL_WORKSPACE" {
		t.Fatalf("expected RDL_WORKSPACE, got %s", got)
	}
}

func TestHostEnvKeyCustomPrefix(t *testing.T) {
	t.Setenv("ENV_PREFIX", "ACME")
	if got := HostEnvKey("WORKSPACE"); got != "ACME_WORKSPACE" {
		t.Fatalf("expected ACME_WORKSPACE, got %s", got)
	}
}

func TestGetAndSetHostEnv(t *testing.T) {
	t.Setenv("ENV_PREFIX", "")
	t.Setenv("RDL_LAUNCHER", "")

	SetHostEnv("LAUNCHER", "remote-debug")
	if got := GetHostEnv("LAUNCHER"); got != "remote-debug" {
		t.Fatalf("expected remote-debug, got %s", got)
	}
}
