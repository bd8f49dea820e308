package provision

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FringeDweller/dots/report"
)

func TestMakeExecutable(t *testing.T) {
	s := newSandbox(t)
	script := s.write(t, "#!/bin/sh\npicom &\n", ".config", "qtile", "autostart.sh")

	p := s.defaultProvisioner(t)
	r := report.New()
	p.makeExecutable(r)

	info, err := os.Stat(script)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	results := r.Step(StepExecutables)
	require.Len(t, results, 1)
	assert.Equal(t, report.Succeeded, results[0].Outcome)
	assert.Equal(t, "mode set to 0755", results[0].Message)
}

func TestMakeExecutableDanglingSymlink(t *testing.T) {
	s := newSandbox(t)
	s.mkdir(t, ".config", "qtile")
	require.NoError(t, os.Symlink(s.path("dots", "qtile", "autostart.sh"), s.path(".config", "qtile", "autostart.sh")))

	p := s.defaultProvisioner(t)
	r := report.New()
	p.makeExecutable(r)

	results := r.Step(StepExecutables)
	require.Len(t, results, 1)
	assert.Equal(t, report.Skipped, results[0].Outcome)
	assert.False(t, r.HasFailures())
}

func TestMakeExecutableMissing(t *testing.T) {
	s := newSandbox(t)

	p := s.defaultProvisioner(t)
	r := report.New()
	require.NotPanics(t, func() { p.makeExecutable(r) })

	results := r.Step(StepExecutables)
	require.Len(t, results, 1)
	assert.Equal(t, report.Skipped, results[0].Outcome)
	assert.Equal(t, "not found", results[0].Message)
}
