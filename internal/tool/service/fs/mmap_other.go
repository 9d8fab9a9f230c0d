//go:build !unix

package fs

import "os"

// MapFile reads path fully on platforms without mmap support.
func (fs *OSFileSystem) MapFile(path string) (*MappedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &MappedFile{data: data}, nil
}
