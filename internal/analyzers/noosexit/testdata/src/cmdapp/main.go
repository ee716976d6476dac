package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(); err != nil {
		exit(err)
	}
	os.Exit(0) // want `do not call os.Exit inside main.main`
}

func run() error { return nil }

func exit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
