package templating

import "io/fs"

// SetFileHooks replaces the filesystem calls of fsrc.
func SetFileHooks(
	fsrc *FileSource,
	stat func(name string) (fs.FileInfo, error),
	readFile func(name string) ([]byte, error),
) {
	if stat != nil {
		fsrc.stat = stat
	}

	if readFile != nil {
		fsrc.readFile = readFile
	}
}
