// Package fileutil finds sheet files on disk.
//
// ScanDirectory returns the absolute, sorted paths of the files in a directory
// whose extension is accepted. Hidden files and directories are ignored:
//
//	paths, err := fileutil.ScanDirectory(dir, fileutil.ScanOptions{
//	    Extensions: []string{".rs", ".txt"},
//	})
package fileutil
