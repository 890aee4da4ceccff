package filesystem

import (
	"io/fs"
	"os"
)

// FileSystem lists and reads the audited source and voices trees.
type FileSystem interface {
	ReadDir(path string) ([]fs.DirEntry, error)
	ReadFile(path string) ([]byte, error)
	Open(path string) (fs.File, error)
	Stat(path string) (fs.FileInfo, error)
	Lstat(path string) (fs.FileInfo, error)
}

// OSFileSystem implements FileSystem using the operating system primitives.
type OSFileSystem struct{}

// ReadDir lists directory entries sorted by name.
func (OSFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// ReadFile reads file contents.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Open opens a file for reading.
func (OSFileSystem) Open(path string) (fs.File, error) {
	return os.Open(path)
}

// Stat retrieves file metadata, following symbolic links.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Lstat retrieves file metadata without following symbolic links.
func (OSFileSystem) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}

// Resolve returns the provided file system or the operating system one when nil.
func Resolve(fileSystem FileSystem) FileSystem {
	if fileSystem == nil {
		return OSFileSystem{}
	}
	return fileSystem
}

// IsDirectory reports whether the path exists and is a directory, following links.
func IsDirectory(fileSystem FileSystem, path string) bool {
	info, statError := Resolve(fileSystem).Stat(path)
	if statError != nil {
		return false
	}
	return info.IsDir()
}
