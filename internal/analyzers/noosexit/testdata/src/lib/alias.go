package lib

import sys "os"

func Aliased() {
	sys.Exit(3) // want `os.Exit is only allowed in package main`
}
