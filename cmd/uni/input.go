package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const stdinName = "<stdin>"

// readInput reads the named file, or stdin when name is empty.
func readInput(cmd *cobra.Command, name string) ([]byte, string, error) {
	if name == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, stdinName, fmt.Errorf("read stdin: %w", err)
		}
		return data, stdinName, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, name, fmt.Errorf("read file: %w", err)
	}
	log.Debugf("read %d bytes from %s", len(data), name)
	return data, name, nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
