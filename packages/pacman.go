package packages

type Pacman struct {
}

func (Pacman) PkgExec() string {
	return "pacman"
}

func (Pacman) InstallArgs() []string {
	return []string{"-S", "--noconfirm"}
}

func (Pacman) NeedsSudo() bool {
	return true
}

// AurHelper builds packages as the invoking user and escalates on its own.
type AurHelper struct {
	Name string
}

func (a AurHelper) PkgExec() string {
	return a.Name
}

func (AurHelper) InstallArgs() []string {
	return []string{"-S", "--noconfirm"}
}

func (AurHelper) NeedsSudo() bool {
	return false
}
