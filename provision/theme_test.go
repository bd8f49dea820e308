package provision

import (
	"os"
	"path/filepath"
	"testing"

	marecmd "github.com/femnad/mare/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FringeDweller/dots/entity"
	"github.com/FringeDweller/dots/precheck/unless"
	"github.com/FringeDweller/dots/report"
)

const setupScript = "#!/usr/bin/env bash\n\necho 'Installing fonts...'\ncp -r fonts ~/.local/share/fonts\n"

func TestInstallTheme(t *testing.T) {
	s := newSandbox(t)
	s.cloner.files = map[string]string{"setup.sh": setupScript, "files/launchers/type-1/launcher.sh": "#!/bin/sh\n"}

	cloneDir := s.path("clones", "rofi")
	var modeAtRun os.FileMode
	s.recorder.OnRun = func(input marecmd.Input) {
		info, err := os.Stat(filepath.Join(cloneDir, "setup.sh"))
		if err == nil {
			modeAtRun = info.Mode().Perm()
		}
	}

	p := s.defaultProvisioner(t)
	r := report.New()
	p.installThemes(r)

	require.Len(t, s.cloner.calls, 1)
	assert.Equal(t, cloneCall{url: "https://github.com/adi1090x/rofi.git", dir: cloneDir, depth: 1}, s.cloner.calls[0])

	script := filepath.Join(cloneDir, "setup.sh")
	input, ok := s.recorder.Input(script)
	require.True(t, ok)
	assert.Equal(t, cloneDir, input.Pwd)
	assert.Equal(t, os.FileMode(0o755), modeAtRun)

	assert.False(t, exists(cloneDir), "clone is removed after setup")
	assert.Equal(t, 1, r.Count(report.Succeeded))
}

func TestInstallThemeScriptFailsStillCleansUp(t *testing.T) {
	s := newSandbox(t)
	s.cloner.files = map[string]string{"setup.sh": setupScript}
	cloneDir := s.path("clones", "rofi")
	s.recorder.Exit(filepath.Join(cloneDir, "setup.sh"), 1)

	p := s.defaultProvisioner(t)
	r := report.New()
	p.installThemes(r)

	assert.False(t, exists(cloneDir))
	results := r.Step(StepThemes)
	require.Len(t, results, 1)
	assert.Equal(t, report.Failed, results[0].Outcome)
}

func TestInstallThemeReplacesStaleClone(t *testing.T) {
	s := newSandbox(t)
	stale := s.write(t, "old", "clones", "rofi", "stale.txt")
	s.cloner.files = map[string]string{"setup.sh": setupScript}

	var staleAtRun bool
	s.recorder.OnRun = func(marecmd.Input) {
		staleAtRun = exists(stale)
	}

	p := s.defaultProvisioner(t)
	p.installThemes(report.New())

	assert.False(t, staleAtRun)
}

func TestInstallThemeRejectsBinaryScript(t *testing.T) {
	s := newSandbox(t)
	s.cloner.files = map[string]string{"setup.sh": "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01"}

	p := s.defaultProvisioner(t)
	r := report.New()
	p.installThemes(r)

	assert.Empty(t, s.recorder.Commands())
	results := r.Step(StepThemes)
	require.Len(t, results, 1)
	assert.Equal(t, report.Failed, results[0].Outcome)
	assert.ErrorContains(t, results[0].Err, "refusing to run setup script")
	assert.False(t, exists(s.path("clones", "rofi")))
}

func TestInstallThemeCloneFails(t *testing.T) {
	s := newSandbox(t)
	s.cloner.err = errCloneFailed

	p := s.defaultProvisioner(t)
	r := report.New()
	p.installThemes(r)

	assert.Empty(t, s.recorder.Commands())
	assert.Equal(t, 1, r.Count(report.Failed))
}

func TestInstallThemeCloneFailsRemovesPartialClone(t *testing.T) {
	s := newSandbox(t)
	s.cloner.err = errCloneFailed
	s.cloner.partial = true

	p := s.defaultProvisioner(t)
	r := report.New()
	p.installThemes(r)

	require.Len(t, s.cloner.calls, 1)
	assert.False(t, exists(s.cloner.calls[0].dir))
	assert.Equal(t, 1, r.Count(report.Failed))
}

func TestInstallThemeMissingScript(t *testing.T) {
	s := newSandbox(t)
	s.cloner.files = map[string]string{"README.md": "# rofi"}

	p := s.defaultProvisioner(t)
	r := report.New()
	p.installThemes(r)

	assert.Equal(t, 1, r.Count(report.Failed))
	assert.False(t, exists(s.path("clones", "rofi")))
}

func TestInstallThemeUnless(t *testing.T) {
	s := newSandbox(t)
	marker := s.write(t, "", ".config", "rofi", "config.rasi")

	p := s.provisioner(entity.Config{Themes: []entity.Theme{{
		Name:   "rofi",
		Repo:   "https://github.com/adi1090x/rofi.git",
		Unless: unless.Unless{Stat: marker},
	}}})
	r := report.New()
	p.installThemes(r)

	assert.Empty(t, s.cloner.calls)
	assert.Equal(t, 1, r.Count(report.Skipped))
}

func Test_scriptPath(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		want    string
		wantErr bool
	}{
		{name: "Plain", script: "setup.sh", want: "/tmp/rofi/setup.sh"},
		{name: "Nested", script: "bin/setup.sh", want: "/tmp/rofi/bin/setup.sh"},
		{name: "Escapes clone", script: "../setup.sh", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scriptPath("/tmp/rofi", tt.script)
			if (err != nil) != tt.wantErr {
				t.Errorf("scriptPath() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("scriptPath() got = %v, want %v", got, tt.want)
			}
		})
	}
}
