// Command rum runs a Universal Machine program.
//
// Usage: rum [-v] <program-file>
//
// Exactly one positional argument is accepted: the path to a program
// file, a raw big-endian 32-bit-word binary (spec.md section 6). There
// are no flags that change the program's input/output contract; -v
// only turns on instruction tracing to stderr.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	getopt "github.com/pborman/getopt/v2"
	"golang.org/x/term"

	"github.com/jrb411/rum/pkg/loader"
	"github.com/jrb411/rum/pkg/vm"
	"github.com/jrb411/rum/util/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	verbose := getopt.BoolLong("verbose", 'v', "trace every executed instruction to stderr")
	help := getopt.BoolLong("help", 'h', "show this help message")
	getopt.Parse()

	if *help {
		getopt.Usage()
		return 0
	}

	args := getopt.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: rum [-v] <program-file>")
		return 1
	}
	programPath := args[0]

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(logger.New(os.Stderr, level))

	program, err := loadProgram(programPath)
	if err != nil {
		log.Error(err.Error())
		return 1
	}

	restore := makeStdinRaw(log)
	defer restore()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		restore()
		os.Exit(1)
	}()

	machine := vm.New(program, vm.NewByteSource(os.Stdin), vm.NewByteSink(os.Stdout))

	if err := runMachine(machine, log, *verbose); err != nil {
		if errors.Is(err, vm.ErrHalted) {
			return 0
		}
		log.Error("program failed", "error", err.Error())
		return 1
	}
	return 0
}

func loadProgram(path string) ([]uint32, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rum: %w", err)
	}
	defer fp.Close()
	program, err := loader.Load(fp)
	if err != nil {
		return nil, fmt.Errorf("rum: %w", err)
	}
	return program, nil
}

// runMachine drives the machine one instruction at a time when
// tracing is enabled (so each step can be logged before its effects
// are applied), or via Run otherwise.
func runMachine(m *vm.Machine, log *slog.Logger, verbose bool) error {
	if !verbose {
		return m.Run()
	}
	for {
		word, err := m.Mem.Read(0, m.PC)
		if err != nil {
			return err
		}
		log.Debug("step", "pc", m.PC, "instr", vm.Disassemble(word))
		if err := m.Step(); err != nil {
			return err
		}
	}
}

// makeStdinRaw puts a TTY stdin into raw mode so Input observes one
// byte per keystroke instead of waiting for a newline, matching the
// byte-at-a-time host contract in spec.md section 6. Piped stdin is
// left untouched. The returned function restores the original state
// and is safe to call more than once.
func makeStdinRaw(log *slog.Logger) func() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		log.Debug("could not enable raw terminal mode", "error", err.Error())
		return func() {}
	}
	restored := false
	return func() {
		if restored {
			return
		}
		restored = true
		_ = term.Restore(fd, state)
	}
}
