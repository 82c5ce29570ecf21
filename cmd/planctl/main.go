// Command planctl runs the plan normalizer and duration parser offline.
//
//	planctl normalize -in plan.yaml -start 2025-01-01 -end 2025-01-10 [-max 3] [-strict] [-tz UTC]
//	planctl duration "25-35 minutes"
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "planctl:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "normalize":
		return runNormalize(args[1:], stdin, stdout)
	case "duration":
		return runDuration(args[1:], stdout)
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}
}
