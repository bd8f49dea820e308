package settings

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

const (
	cloneDirKey  = "clone_dir"
	configDirKey = "config_dir"
	dotsDirKey   = "dots_dir"
	homeKey      = "home"

	defaultCloneDir  = "/tmp"
	defaultConfigDir = "~/.config"
	defaultDotsDir   = "~/dots"
)

type Settings struct {
	CloneDir  string `yaml:"clone_dir,omitempty"`
	ConfigDir string `yaml:"config_dir,omitempty"`
	DotsDir   string `yaml:"dots_dir,omitempty"`
	// Home overrides $HOME for every expanded path.
	Home string `yaml:"home,omitempty"`
}

func (s Settings) HomeDir() string {
	if s.Home != "" {
		return s.Home
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return os.Getenv("HOME")
	}
	return home
}

func (s Settings) GetCloneDir() string {
	if s.CloneDir != "" {
		return s.expandUser(s.CloneDir)
	}
	return defaultCloneDir
}

func (s Settings) GetConfigDir() string {
	if s.ConfigDir != "" {
		return s.expandUser(s.ConfigDir)
	}
	return s.expandUser(defaultConfigDir)
}

func (s Settings) GetDotsDir() string {
	if s.DotsDir != "" {
		return s.expandUser(s.DotsDir)
	}
	return s.expandUser(defaultDotsDir)
}

func (s Settings) expandUser(p string) string {
	if p == "~" {
		return s.HomeDir()
	}
	if strings.HasPrefix(p, "~/") {
		return s.HomeDir() + p[1:]
	}
	return p
}

// Expand replaces ${key} references with values from lookup, falling back to the environment.
// Unresolved references are left intact and `\$` escapes a dollar sign.
func Expand(s string, lookup map[string]string) string {
	var cur bytes.Buffer
	var out bytes.Buffer
	var backspace bool
	var consuming bool
	var dollar bool

	for _, c := range s {
		if backspace {
			if c != '$' {
				out.WriteRune('\\')
			}
		} else if c == '$' {
			backspace = false
			dollar = true
			continue
		}

		backspace = c == '\\'
		if backspace {
			continue
		}

		if dollar {
			if c == '{' {
				dollar = false
				consuming = true
				continue
			} else {
				out.WriteRune('$')
				dollar = false
			}
		}

		if c == '}' && consuming {
			consuming = false
			curStr := cur.String()
			val, ok := lookup[curStr]
			envLookup := os.Getenv(curStr)
			if ok {
				out.WriteString(val)
			} else if envLookup != "" {
				out.WriteString(envLookup)
			} else {
				orig := fmt.Sprintf("${%s}", curStr)
				out.WriteString(orig)
			}
			cur.Reset()
			continue
		}

		if consuming {
			cur.WriteRune(c)
		} else {
			out.WriteRune(c)
		}
	}

	if backspace {
		out.WriteRune('\\')
	}
	if dollar {
		out.WriteRune('$')
	}
	if consuming {
		out.WriteString("${")
		out.Write(cur.Bytes())
	}

	return out.String()
}

func (s Settings) lookup() map[string]string {
	return map[string]string{
		cloneDirKey:  s.GetCloneDir(),
		configDirKey: s.GetConfigDir(),
		dotsDirKey:   s.GetDotsDir(),
		homeKey:      s.HomeDir(),
	}
}

func ExpandStringWithLookup(settings Settings, s string, lookup map[string]string) string {
	merged := settings.lookup()
	for k, v := range lookup {
		merged[k] = v
	}

	expanded := Expand(s, merged)
	return settings.expandUser(expanded)
}

func ExpandString(settings Settings, s string) string {
	return ExpandStringWithLookup(settings, s, map[string]string{})
}

// UnderHome reports whether p is the home directory or below it.
func (s Settings) UnderHome(p string) bool {
	home := strings.TrimSuffix(s.HomeDir(), "/")
	return p == home || strings.HasPrefix(p, home+"/")
}
