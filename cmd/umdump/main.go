// Command umdump is an offline disassembler for Universal Machine
// program binaries: it runs the same Loader and Decoder the emulator
// uses and prints one line per decoded instruction. It is not an
// attached, interactive debugger — it never touches a running Machine,
// only a static word stream.
package main

import (
	"fmt"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/KTStephano/um/vm"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	set := getopt.New()
	hexAddrs := set.BoolLong("hex", 'x', "print instruction addresses in hex instead of decimal")
	limit := set.IntLong("limit", 'n', 0, "stop after N instructions (0 means no limit)")
	help := set.BoolLong("help", 'h', "print this help message")

	// Getopt treats its first element as the program name, and args has
	// already had it stripped.
	if err := set.Getopt(append([]string{"umdump"}, args...), nil); err != nil {
		fmt.Fprintln(stderr, err)
		set.PrintUsage(stderr)
		return 1
	}

	if *help {
		set.PrintUsage(stdout)
		return 0
	}

	rest := set.Args()
	if len(rest) != 1 {
		fmt.Fprintln(stderr, "usage: umdump [options] <input binary>")
		set.PrintUsage(stderr)
		return 1
	}

	raw, err := os.ReadFile(rest[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	words, fault := vm.LoadProgramWords(raw)
	if fault != nil {
		fmt.Fprintln(stderr, fault)
		return 1
	}

	n := len(words)
	if *limit > 0 && *limit < n {
		n = *limit
	}

	for addr := 0; addr < n; addr++ {
		d := vm.Decode(words[addr])
		if *hexAddrs {
			fmt.Fprintf(stdout, "%#06x: %s\n", addr, formatDecoded(d))
		} else {
			fmt.Fprintf(stdout, "%6d: %s\n", addr, formatDecoded(d))
		}
	}

	return 0
}

func formatDecoded(d vm.Decoded) string {
	if d.Op == vm.OpLoadImm {
		return fmt.Sprintf("%-11s r%d, %d", d.Op, d.A, d.Imm)
	}
	return fmt.Sprintf("%-11s r%d, r%d, r%d", d.Op, d.A, d.B, d.C)
}
