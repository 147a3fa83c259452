//go:build !unix

package preflight

import "os"

// Without access(2), probe by attempting the operation.

func readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

func writable(path string) bool {
	f, err := os.CreateTemp(path, ".mcpgen-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
