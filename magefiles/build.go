//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the audiograms project using Mage.
//
// Usage:
//
//	mage build       Compile audiogram-admin to bin/
//	mage test:all    Run all tests
//	mage test:race   Run all tests with the race detector
//	mage test:cover  Write a coverage profile to bin/
//	mage lint        Run golangci-lint
//	mage clean       Remove build artifacts
//	mage install     Install audiogram-admin to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "audiogram-admin"
	binaryDir  = "bin"
	cmdDir     = "./cmd/audiogram-admin"
)

// Build compiles the audiogram-admin binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
