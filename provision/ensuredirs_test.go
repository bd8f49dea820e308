package provision

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FringeDweller/dots/report"
)

func TestEnsureDirsIdempotent(t *testing.T) {
	s := newSandbox(t)
	p := s.defaultProvisioner(t)

	first := report.New()
	p.ensureDirs(first)
	assert.Equal(t, 3, first.Count(report.Succeeded))

	second := report.New()
	p.ensureDirs(second)
	assert.Equal(t, 3, second.Count(report.Skipped))
	assert.False(t, second.HasFailures())

	for _, dir := range []string{"Downloads", "Pictures", "Pictures/wallpapers"} {
		info, err := os.Stat(s.path(dir))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestEnsureDirsFileInTheWay(t *testing.T) {
	s := newSandbox(t)
	s.write(t, "not a dir", "Downloads")

	p := s.defaultProvisioner(t)
	r := report.New()
	p.ensureDirs(r)

	results := r.Step(StepDirs)
	require.Len(t, results, 3)
	assert.Equal(t, report.Failed, results[0].Outcome)
	assert.Equal(t, report.Succeeded, results[1].Outcome)
	assert.Equal(t, report.Succeeded, results[2].Outcome)
}
