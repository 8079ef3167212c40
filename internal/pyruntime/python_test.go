package pyruntime

import (
	"context"
	"os"
	"strings"
	"testing"
)

// mockCommander implements commander.Commander for testing
type mockCommander struct {
	lookPathFunc func(string) (string, error)
	runFunc      func(context.Context, string, []string, string) (string, error)
}

func (m *mockCommander) LookPath(name string) (string, error) {
	if m.lookPathFunc != nil {
		return m.lookPathFunc(name)
	}
	return "", os.ErrNotExist
}

func (m *mockCommander) Run(ctx context.Context, name string, args []string, dir string) (string, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, name, args, dir)
	}
	return "", nil
}

func pythonAt(version string) *mockCommander {
	return &mockCommander{
		lookPathFunc: func(name string) (string, error) {
			if name == "python3" {
				return "/usr/bin/python3", nil
			}
			return "", os.ErrNotExist
		},
		runFunc: func(ctx context.Context, name string, args []string, dir string) (string, error) {
			if name == "python3" && len(args) == 1 && args[0] == "--version" {
				return "Python " + version + "\n", nil
			}
			return "", nil
		},
	}
}

func TestVersionGate(t *testing.T) {
	tests := []struct {
		version Version
		want    bool
	}{
		{Version{3, 8}, false},
		{Version{3, 9}, true},
		{Version{3, 12}, true},
		{Version{2, 7}, false},
		{Version{4, 0}, true},
	}
	for _, tt := range tests {
		if got := tt.version.Supported(); got != tt.want {
			t.Errorf("Version %s Supported() = %v, want %v", tt.version, got, tt.want)
		}
	}
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name        string
		cmdr        *mockCommander
		wantCommand string
		wantErr     string
	}{
		{
			name:        "python3 with supported version",
			cmdr:        pythonAt("3.11.2"),
			wantCommand: "python3",
		},
		{
			name:    "python3 below minimum is fatal",
			cmdr:    pythonAt("3.8.10"),
			wantErr: "3.9 or newer is required",
		},
		{
			name:    "python 2 is fatal",
			cmdr:    pythonAt("2.7.18"),
			wantErr: "required",
		},
		{
			name:    "no interpreter at all",
			cmdr:    &mockCommander{},
			wantErr: "no usable Python interpreter",
		},
		{
			name: "falls back to python when python3 missing",
			cmdr: &mockCommander{
				lookPathFunc: func(name string) (string, error) {
					if name == "python" {
						return "/usr/bin/python", nil
					}
					return "", os.ErrNotExist
				},
				runFunc: func(ctx context.Context, name string, args []string, dir string) (string, error) {
					return "Python 3.10.6", nil
				},
			},
			wantCommand: "python",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := Locate(context.Background(), tt.cmdr)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got none", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q should contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rt.Command != tt.wantCommand {
				t.Errorf("Command = %q, want %q", rt.Command, tt.wantCommand)
			}
		})
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		out     string
		want    Version
		wantErr bool
	}{
		{out: "Python 3.11.2\n", want: Version{3, 11}},
		{out: "Python 3.9", want: Version{3, 9}},
		{out: "Python 2.7.18", want: Version{2, 7}},
		{out: "not a version", wantErr: true},
		{out: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseVersion(tt.out)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseVersion(%q) expected error", tt.out)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseVersion(%q) unexpected error: %v", tt.out, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseVersion(%q) = %v, want %v", tt.out, got, tt.want)
		}
	}
}
