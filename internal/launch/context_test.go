// Where: cli/internal/launch/context_test.go
// What: Tests for context construction and portable path derivation.
// Why: Portable forms must match what bash-side tooling expects.
package launch

import "testing"

func TestPortablePath(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "windows drive path", in: `C:\Users\me\proj`, want: "/C/Users/me/proj"},
		{name: "lowercase drive", in: `d:\work`, want: "/d/work"},
		{name: "unix path unchanged", in: "/home/me/proj", want: "/home/me/proj"},
		{name: "backslashes without drive", in: `srv\share\proj`, want: "srv/share/proj"},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PortablePath(tc.in); got != tc.want {
				t.Fatalf("PortablePath(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewContextDerivesPortableForms(t *testing.T) {
	ctx := NewContext(`C:\work`, `C:\work\app`, "App1")

	if ctx.WorkspaceRoot != `C:\work` {
		t.Fatalf("unexpected workspace root: %s", ctx.WorkspaceRoot)
	}
	if ctx.ProjectRoot != `C:\work\app` {
		t.Fatalf("unexpected project root: %s", ctx.ProjectRoot)
	}
	if ctx.WorkspaceRootPortable != "/C/work" {
		t.Fatalf("unexpected portable workspace root: %s", ctx.WorkspaceRootPortable)
	}
	if ctx.ProjectRootPortable != "/C/work/app" {
		t.Fatalf("unexpected portable project root: %s", ctx.ProjectRootPortable)
	}
	if ctx.ProjectName != "App1" {
		t.Fatalf("unexpected project name: %s", ctx.ProjectName)
	}
}
