//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Build mg.Namespace

var binaries = []string{"spritebox", "spritebench"}

// Downloads modules and builds every binary into bin/.
func (Build) All() error {
	mg.Deps(Build.Deps)
	for _, bin := range binaries {
		fmt.Println("Building", bin)
		if err := sh.RunV("go", "build", "-o", "bin/"+bin, "./cmd/"+bin); err != nil {
			return err
		}
	}
	return nil
}

// Runs go mod download.
func (Build) Deps() error {
	return sh.RunV("go", "mod", "download")
}

// Removes bin/.
func (Build) Clean() error {
	return sh.Rm("bin")
}
