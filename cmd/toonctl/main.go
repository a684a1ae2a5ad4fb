// Command toonctl is the CLI surface named in spec §6: subcommands encode,
// decode, and stats over the toon codec, wired to the optional YAML config
// (filter presets; the config's default window is not used by any
// subcommand) and debug pretty-printing.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/toon-truth/util"
)

func main() {
	util.InitSlog()
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

const usage = `usage: toonctl <command> [options]

commands:
  encode   convert JSON (stdin) to TOON (stdout)
  decode   convert TOON (stdin) to JSON (stdout)
  stats    print JSON/TOON size comparison for stdin
`

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
		fmt.Fprint(stdout, usage)
		return 0
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "encode":
		return runEncode(rest, stdin, stdout, stderr)
	case "decode":
		return runDecode(rest, stdin, stdout, stderr)
	case "stats":
		return runStats(rest, stdin, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "toonctl: unknown command %q\n\n", cmd)
		fmt.Fprint(stderr, usage)
		return 1
	}
}
