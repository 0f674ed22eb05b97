package preflight

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckDirectory verifies the target exists, is a directory, and is listable.
func CheckDirectory(path string) Result {
	const name = "target directory"

	info, err := os.Stat(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("not accessible (%v)", err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: "not a directory"}
	}

	file, err := os.Open(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("not readable (%v)", err)}
	}
	defer file.Close()
	if _, err := file.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return Result{Name: name, Detail: fmt.Sprintf("not listable (%v)", err)}
	}

	detail := "readable"
	if free, ok := freeSpace(path); ok {
		detail = fmt.Sprintf("readable, %d MiB free", free/(1<<20))
	}
	return Result{Name: name, Passed: true, Detail: detail}
}
