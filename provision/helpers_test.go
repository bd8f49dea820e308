package provision

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/FringeDweller/dots/entity"
	"github.com/FringeDweller/dots/run"
	"github.com/FringeDweller/dots/settings"
)

var testNow = time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local)

type cloneCall struct {
	url   string
	dir   string
	depth int
}

type fakeCloner struct {
	calls   []cloneCall
	err     error
	// files are written relative to the clone directory.
	files   map[string]string
	modes   map[string]os.FileMode
	// partial leaves the clone directory behind when err is set.
	partial bool
}

func (f *fakeCloner) Clone(repoUrl, dir string, depth int) error {
	f.calls = append(f.calls, cloneCall{url: repoUrl, dir: dir, depth: depth})
	if f.err != nil {
		if f.partial {
			if err := os.MkdirAll(filepath.Join(dir, ".git"), 0o755); err != nil {
				return err
			}
		}
		return f.err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, content := range f.files {
		mode, ok := f.modes[name]
		if !ok {
			mode = 0o644
		}
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(p, []byte(content), mode); err != nil {
			return err
		}
	}

	return nil
}

var errCloneFailed = errors.New("remote hung up unexpectedly")

// sandbox is a fake home directory with a provisioner pointed at it.
type sandbox struct {
	home     string
	recorder *run.Recorder
	cloner   *fakeCloner
}

func newSandbox(t *testing.T) *sandbox {
	t.Helper()
	return &sandbox{
		home:     t.TempDir(),
		recorder: run.NewRecorder(),
		cloner:   &fakeCloner{},
	}
}

func (s *sandbox) path(parts ...string) string {
	return filepath.Join(append([]string{s.home}, parts...)...)
}

func (s *sandbox) write(t *testing.T, content string, parts ...string) string {
	t.Helper()
	p := s.path(parts...)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func (s *sandbox) mkdir(t *testing.T, parts ...string) string {
	t.Helper()
	p := s.path(parts...)
	require.NoError(t, os.MkdirAll(p, 0o755))
	return p
}

func (s *sandbox) settings() settings.Settings {
	return settings.Settings{
		Home:     s.home,
		CloneDir: s.path("clones"),
	}
}

func (s *sandbox) provisioner(cfg entity.Config) Provisioner {
	cfg.Settings = s.settings()
	return Provisioner{
		Cloner: s.cloner,
		Config: cfg.Expand(),
		Now:    func() time.Time { return testNow },
		Runner: s.recorder,
	}
}

func (s *sandbox) defaultProvisioner(t *testing.T) Provisioner {
	t.Helper()
	cfg, err := entity.DefaultConfig()
	require.NoError(t, err)
	return s.provisioner(cfg)
}

func exists(p string) bool {
	_, err := os.Lstat(p)
	return err == nil
}
