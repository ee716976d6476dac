package lib

import "os"

func Fail() {
	os.Exit(2) // want `os.Exit is only allowed in package main`
}

type exiter struct{}

func (exiter) Exit(int) {}

func Shadowed() {
	var os exiter
	os.Exit(1)
}

func Deferred() {
	defer func() {
		os.Exit(4) // want `os.Exit is only allowed in package main`
	}()
}
