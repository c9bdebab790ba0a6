//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Run mg.Namespace

// Runs the sandbox with spritebox.toml.
func (Run) Sandbox() error {
	return sh.RunV("go", "run", "./cmd/spritebox", "-config", "spritebox.toml")
}

// Runs the batching benchmark for ten seconds.
func (Run) Bench() error {
	return sh.RunV("go", "run", "./cmd/spritebench", "-n", "20000", "-for", "10s")
}
