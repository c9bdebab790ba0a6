//go:build mage

package main

import (
	"github.com/magefile/mage/sh"
)

// Runs vet and the unit tests.
func Test() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "test", "./...")
}
