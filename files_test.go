package hostid

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// machineIDFiles returns a primary and fallback path inside a temp dir.
// A nil content leaves the file missing.
func machineIDFiles(t *testing.T, primary, fallback *string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	primaryPath := filepath.Join(dir, "dbus-machine-id")
	fallbackPath := filepath.Join(dir, "etc-machine-id")

	if primary != nil {
		require.NoError(t, os.WriteFile(primaryPath, []byte(*primary), 0o644))
	}
	if fallback != nil {
		require.NoError(t, os.WriteFile(fallbackPath, []byte(*fallback), 0o644))
	}

	return primaryPath, fallbackPath
}

func ptr(s string) *string {
	return &s
}

func TestFileResolver(t *testing.T) {
	tests := []struct {
		name     string
		primary  *string
		fallback *string
		want     Outcome
	}{
		{
			name:     "primary wins and is trimmed",
			primary:  ptr("  abc123\n"),
			fallback: ptr("zzz"),
			want:     Found("abc123"),
		},
		{
			name:     "missing primary uses fallback",
			primary:  nil,
			fallback: ptr("  fallback-id  "),
			want:     Found("fallback-id"),
		},
		{
			name:     "empty primary uses fallback",
			primary:  ptr(""),
			fallback: ptr("  fallback-id  "),
			want:     Found("fallback-id"),
		},
		{
			name:     "empty first line of primary uses fallback",
			primary:  ptr("\nsecond-line"),
			fallback: ptr("fallback-id\n"),
			want:     Found("fallback-id"),
		},
		{
			name:     "both missing",
			primary:  nil,
			fallback: nil,
			want:     Absent,
		},
		{
			name:     "both empty",
			primary:  ptr(""),
			fallback: ptr(""),
			want:     Absent,
		},
		{
			name:     "whitespace-only primary does not trigger fallback",
			primary:  ptr("   \n"),
			fallback: ptr("fallback-id"),
			want:     Absent,
		},
		{
			name:     "only first line is read",
			primary:  ptr("first\nsecond\n"),
			fallback: nil,
			want:     Found("first"),
		},
		{
			name:     "CRLF and tabs are trimmed",
			primary:  ptr("\tb08dfa6083e7567a1921a715000001fb\r\n"),
			fallback: nil,
			want:     Found("b08dfa6083e7567a1921a715000001fb"),
		},
		{
			name:     "no trailing newline",
			primary:  ptr("b08dfa6083e7567a1921a715000001fb"),
			fallback: nil,
			want:     Found("b08dfa6083e7567a1921a715000001fb"),
		},
		{
			name:     "casing is preserved",
			primary:  ptr("B08DFA60-83E7-567A-1921-A715000001FB\n"),
			fallback: nil,
			want:     Found("B08DFA60-83E7-567A-1921-A715000001FB"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary, fallback := machineIDFiles(t, tt.primary, tt.fallback)
			r := &fileResolver{primary: primary, fallback: fallback}

			assert.Equal(t, tt.want, r.Resolve())
		})
	}
}

func TestFileResolverUnreadablePrimaryFallsBack(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("file permissions do not prevent reading here")
	}

	primary, fallback := machineIDFiles(t, ptr("secret\n"), ptr("fallback-id\n"))
	require.NoError(t, os.Chmod(primary, 0o000))

	r := &fileResolver{primary: primary, fallback: fallback}
	assert.Equal(t, Found("fallback-id"), r.Resolve())
}

func TestFileResolverDirectoryAsPrimary(t *testing.T) {
	_, fallback := machineIDFiles(t, nil, ptr("fallback-id"))

	r := &fileResolver{primary: t.TempDir(), fallback: fallback}
	assert.Equal(t, Found("fallback-id"), r.Resolve())
}

func TestFileResolverIdempotent(t *testing.T) {
	primary, fallback := machineIDFiles(t, ptr("abc123\n"), nil)
	r := &fileResolver{primary: primary, fallback: fallback}

	first := r.Resolve()
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, r.Resolve())
	}
}

// TestFileResolverDoesNotLeakHandles resolves more times than a default
// per-process descriptor limit allows open files.
func TestFileResolverDoesNotLeakHandles(t *testing.T) {
	primary, fallback := machineIDFiles(t, ptr(""), ptr("fallback-id"))
	r := &fileResolver{primary: primary, fallback: fallback}

	for i := 0; i < 5000; i++ {
		require.Equal(t, Found("fallback-id"), r.Resolve())
	}
}

func TestFileResolverLogsAbsence(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	primary, fallback := machineIDFiles(t, nil, nil)
	r := &fileResolver{logger: logger, primary: primary, fallback: fallback}

	assert.Equal(t, Absent, r.Resolve())
	assert.Contains(t, buf.String(), "cannot open machine ID file")
	assert.Contains(t, buf.String(), "machine ID unavailable")
}

func TestNewFileResolverPaths(t *testing.T) {
	r := newFileResolver(nil)

	assert.Equal(t, "/var/lib/dbus/machine-id", r.primary)
	assert.Equal(t, "/etc/machine-id", r.fallback)
}
