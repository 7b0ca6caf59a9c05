// Command um runs a Universal Machine program binary.
//
// Usage: um [input binary]
//
// Any other argument count prints the usage line to stderr and exits 1.
package main

import (
	"fmt"
	"os"

	"github.com/KTStephano/um/vm"
)

func usage(progName string) {
	fmt.Fprintf(os.Stderr, "Usage: %s [input binary]\n", progName)
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stdin))
}

// run is factored out of main so it can be exercised directly by tests
// without touching the process's real argv/exit status.
func run(args []string, stdout, stdin *os.File) int {
	progName := args[0]

	if len(args) != 2 {
		usage(progName)
		return 1
	}

	raw, err := os.ReadFile(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", progName, err)
		return 1
	}

	words, fault := vm.LoadProgramWords(raw)
	if fault != nil {
		fmt.Fprintln(os.Stderr, fault)
		return 1
	}

	m := vm.NewMachine(words, stdout, stdin)
	if fault := m.Run(); fault != nil {
		fmt.Fprintln(os.Stderr, fault)
		return 1
	}

	return 0
}
