package profiling

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"snowfall/config"
)

func testConfig(t *testing.T) config.ProfileConfig {
	return config.ProfileConfig{
		Enabled:      true,
		Dir:          filepath.Join(t.TempDir(), "profiles"),
		FPSThreshold: 45,
		Duration:     20 * time.Millisecond,
		Cooldown:     time.Hour,
	}
}

func profileFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*"))
	require.NoError(t, err)
	return matches
}

func TestDisabledProfilerIgnoresDrops(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := testConfig(t)
	cfg.Enabled = false
	p, err := NewProfiler(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.False(t, p.Observe(5, 600))
	p.Close()
	_, err = os.Stat(cfg.Dir)
	assert.True(t, os.IsNotExist(err), "disabled profiler creates nothing")
}

func TestObserveCapturesOncePerCooldown(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := testConfig(t)
	p, err := NewProfiler(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.False(t, p.Observe(60, 600), "healthy frame rate")
	assert.True(t, p.Observe(20, 600))
	assert.False(t, p.Observe(20, 600), "cooldown blocks a second capture")
	p.Close()

	assert.False(t, p.IsProfiling())
	assert.Len(t, profileFiles(t, cfg.Dir), 2, "cpu profile and trace")
}

func TestObserveRespectsGracePeriod(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := testConfig(t)
	cfg.Grace = time.Minute
	p, err := NewProfiler(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.False(t, p.Observe(10, 600))

	p.now = func() time.Time { return p.startTime.Add(2 * time.Minute) }
	assert.True(t, p.Observe(10, 600))
	p.Close()
}

func TestCaptureProfileSync(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := testConfig(t)
	p, err := NewProfiler(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	require.NoError(t, p.CaptureProfileSync("manual", 10*time.Millisecond))
	assert.False(t, p.IsProfiling())

	files := profileFiles(t, cfg.Dir)
	require.Len(t, files, 2)
	for _, f := range files {
		assert.Contains(t, filepath.Base(f), "manual")
	}
}
