package main

import (
	"log"
	"os"

	"github.com/alexflint/go-arg"
	"gopkg.in/yaml.v3"

	"github.com/FringeDweller/dots/base"
	"github.com/FringeDweller/dots/cmd/verify"
	"github.com/FringeDweller/dots/internal"
	"github.com/FringeDweller/dots/provision"
	"github.com/FringeDweller/dots/run"
)

type args struct {
	File     string   `arg:"-f,--file" default:"~/.config/dots/dots.yml" help:"Config file path, the built-in config is used when it does not exist"`
	Init     bool     `arg:"--init" help:"Write the built-in config to the config file path and exit"`
	LogLevel int      `arg:"-l,--loglevel" default:"4"`
	Only     []string `arg:"--only" help:"Run only these steps"`
	Print    bool     `arg:"-p,--print" help:"Print the expanded config and exit"`
	Skip     []string `arg:"--skip" help:"Skip these steps"`
	Strict   bool     `arg:"--strict" help:"Exit with non-zero status if any item failed"`
	Verify   bool     `arg:"--verify" help:"Check that the provisioned state is in place without changing anything"`
}

func (args) Version() string {
	return "dots 0.1.0"
}

func (args) Description() string {
	return "Provisions an Arch Linux desktop from a dotfiles checkout"
}

func main() {
	var parsed args
	arg.MustParse(&parsed)
	internal.InitLogging(parsed.LogLevel)

	if parsed.Init {
		if err := base.WriteDefault(parsed.File); err != nil {
			log.Fatalf("Error writing config: %v\n", err)
		}
		return
	}

	config, err := base.ReadConfig(parsed.File)
	if err != nil {
		log.Fatalf("%v\n", err)
	}

	if parsed.Print {
		encoder := yaml.NewEncoder(os.Stdout)
		if err = encoder.Encode(config.Expand()); err != nil {
			log.Fatalf("Error printing config: %v\n", err)
		}
		return
	}

	if parsed.Verify {
		if err = verify.Verify(run.Mare{}, config.Expand()); err != nil {
			log.Fatalf("Verification failed:\n%v\n", err)
		}
		internal.Log.Info("Provisioned state is in place")
		return
	}

	selected, err := provision.SelectSteps(parsed.Only, parsed.Skip)
	if err != nil {
		log.Fatalf("%v\n", err)
	}

	p, err := provision.NewProvisioner(config, selected)
	if err != nil {
		log.Fatalf("%v\n", err)
	}

	r := p.Apply()
	r.Print(os.Stdout)

	if parsed.Strict && r.HasFailures() {
		os.Exit(1)
	}
}
