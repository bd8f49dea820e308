package run

import (
	marecmd "github.com/femnad/mare/cmd"
)

// Recorder is a Runner that records inputs and replays canned results keyed by command.
// Commands without a canned result exit with DefaultCode.
type Recorder struct {
	DefaultCode int
	Errs        map[string]error
	Inputs      []marecmd.Input
	Outputs     map[string]marecmd.Output
	// OnRun, if set, is called for every command before the canned result is returned.
	OnRun func(input marecmd.Input)
}

func NewRecorder() *Recorder {
	return &Recorder{
		Errs:    map[string]error{},
		Outputs: map[string]marecmd.Output{},
	}
}

func (r *Recorder) Run(input marecmd.Input) (marecmd.Output, error) {
	r.Inputs = append(r.Inputs, input)
	if r.OnRun != nil {
		r.OnRun(input)
	}

	out, ok := r.Outputs[input.Command]
	if !ok {
		out = marecmd.Output{Code: r.DefaultCode}
	}

	return out, r.Errs[input.Command]
}

// Exit sets the exit code returned for command.
func (r *Recorder) Exit(command string, code int) *Recorder {
	r.Outputs[command] = marecmd.Output{Code: code}
	return r
}

func (r *Recorder) Commands() []string {
	var cmds []string
	for _, input := range r.Inputs {
		cmds = append(cmds, input.Command)
	}
	return cmds
}

// Input returns the first recorded input for command.
func (r *Recorder) Input(command string) (marecmd.Input, bool) {
	for _, input := range r.Inputs {
		if input.Command == command {
			return input, true
		}
	}
	return marecmd.Input{}, false
}

func (r *Recorder) Count(command string) int {
	var n int
	for _, input := range r.Inputs {
		if input.Command == command {
			n++
		}
	}
	return n
}
