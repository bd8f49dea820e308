package precheck

import (
	"os"
	"os/exec"
	"text/template"

	"github.com/femnad/mare"

	"github.com/FringeDweller/dots/internal"
)

func isArch() bool {
	arch, err := IsArchLike()
	if err != nil {
		internal.Log.Debugf("Error determining OS: %v", err)
		return false
	}
	return arch
}

func osId() string {
	id, err := GetOSId()
	if err != nil {
		internal.Log.Debugf("Error determining OS ID: %v", err)
		return ""
	}
	return id
}

func exists(p string) bool {
	_, err := os.Stat(mare.ExpandUser(p))
	return err == nil
}

func which(exe string) bool {
	_, err := exec.LookPath(exe)
	return err == nil
}

var FactFns = template.FuncMap{
	"exists": exists,
	"isArch": isArch,
	"osId":   osId,
	"which":  which,
}
