package entity

import (
	"github.com/femnad/mare"

	"github.com/FringeDweller/dots/settings"
)

func ExpandSettings(stg settings.Settings, s string) string {
	return settings.ExpandStringWithLookup(stg, s, map[string]string{})
}

func expandAll(stg settings.Settings, items []string) []string {
	if len(items) == 0 {
		return items
	}

	return mare.MapToString(items, func(s string) string {
		return ExpandSettings(stg, s)
	})
}

func expandCopies(stg settings.Settings, copies []Copy) []Copy {
	var out []Copy
	for _, c := range copies {
		c.Src = ExpandSettings(stg, c.Src)
		c.Dest = ExpandSettings(stg, c.Dest)
		out = append(out, c)
	}
	return out
}

func expandService(stg settings.Settings, s Service) Service {
	s.Unless.Stat = ExpandSettings(stg, s.Unless.Stat)
	return s
}

// Expand resolves ${key} references and home prefixes in every path of the config.
func (c Config) Expand() Config {
	stg := c.Settings

	c.Backup.Dir = ExpandSettings(stg, c.Backup.Dir)
	c.Backup.Paths = expandAll(stg, c.Backup.Paths)
	c.Dirs = expandAll(stg, c.Dirs)
	c.Files = expandCopies(stg, c.Files)
	c.Trees = expandCopies(stg, c.Trees)

	c.AurHelper.BuildDir = ExpandSettings(stg, c.AurHelper.BuildDir)
	c.AurHelper.Unless.Stat = ExpandSettings(stg, c.AurHelper.Unless.Stat)

	c.SSH = expandService(stg, c.SSH)
	c.RemoteDesktop = expandService(stg, c.RemoteDesktop)

	var themes []Theme
	for _, t := range c.Themes {
		t.Unless.Stat = ExpandSettings(stg, t.Unless.Stat)
		themes = append(themes, t)
	}
	c.Themes = themes

	var executables []Executable
	for _, e := range c.Executables {
		e.Path = ExpandSettings(stg, e.Path)
		executables = append(executables, e)
	}
	c.Executables = executables

	return c
}
