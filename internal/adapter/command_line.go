package adapter

import (
	"fmt"

	"github.com/google/shlex"
)

// splitCommandLine turns a configured command string such as
// "ssh -o BatchMode=yes" into argv using shell word rules.
func splitCommandLine(commandLine string) ([]string, error) {
	argv, err := shlex.Split(commandLine)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command line %q: %w", commandLine, err)
	}

	if len(argv) == 0 {
		return nil, fmt.Errorf("empty command line")
	}

	return argv, nil
}
