//go:build mage

// Package main contains Mage build targets for pandoc-minted developer tooling.
package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "pandoc-minted"
	cmdPkg  = "./cmd/pandoc-minted"

	demoInput = "testdata/demo.md"
)

// Build compiles the filter binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Demo renders testdata/demo.md as latex and beamer through the filter into
// bin/. Requires pandoc on PATH.
func Demo() error {
	mg.Deps(Build)

	filter := filepath.Join(binDir, binName)
	for _, format := range []string{"latex", "beamer"} {
		out := filepath.Join(binDir, "demo-"+format+".tex")
		if err := sh.RunV("pandoc", "--standalone", "--filter", filter, "-t", format, "-o", out, demoInput); err != nil {
			return fmt.Errorf("pandoc %s: %w", format, err)
		}
		fmt.Println("  ", out)
	}
	return nil
}

// Stats prints Go production and test line counts.
func Stats() error {
	var prod, test int
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), "_") || d.Name() == binDir {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		n := countNonBlank(data)
		if strings.HasSuffix(path, "_test.go") {
			test += n
		} else {
			prod += n
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prod)
	fmt.Printf("Lines of code (Go, tests):      %d\n", test)
	return nil
}

// countNonBlank counts lines in data that contain something other than
// whitespace.
func countNonBlank(data []byte) int {
	n := 0
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	return n
}
