package internal

import (
	"os"

	"github.com/op/go-logging"
)

const (
	logFormat = `%{color}%{level:.4s}%{color:reset} %{message}`
	module    = "dots"
)

var Log = logging.MustGetLogger(module)

func InitLogging(level int) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(logFormat)
	formatted := logging.NewBackendFormatter(backend, formatter)

	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), module)
	logging.SetBackend(leveled)
}
