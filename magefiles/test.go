//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test groups test targets (all, unit, cover).
type Test mg.Namespace

const coverProfile = "coverage.out"

// All runs every test in the module.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Unit runs only the library tests under pkg/.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "-v", "./pkg/...")
}

// Cover runs all tests and writes a coverage profile to bin/.
func (Test) Cover() error {
	mg.Deps(Build)
	profile := filepath.Join(binaryDir, coverProfile)
	if err := sh.RunV(binGo, "test", "-coverprofile="+profile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func="+profile)
}
