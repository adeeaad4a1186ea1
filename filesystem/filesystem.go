// Package filesystem routes every file access through a swappable afero backend.
//
// Production code runs against the OS; tests switch to an in-memory backend
// so preference files never touch the real disk.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs installs a fresh volatile in-memory backend.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// IsOs reports whether the backend is the real operating system filesystem.
// File watching only makes sense there.
func IsOs() bool {
	_, ok := backend.Fs.(*afero.OsFs)
	return ok
}
