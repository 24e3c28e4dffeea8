// Package main is the entry point for the sshbatch CLI.
package main

import "sshbatch.dev/pkg/sshbatch/cmd"

func main() {
	cmd.Execute()
}
