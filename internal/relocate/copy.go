package relocate

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// OSFileCopier copies plugin files and directory trees using OS file operations.
type OSFileCopier struct {
	walkFn      func(root string, fn filepath.WalkFunc) error
	relFn       func(basepath, targpath string) (string, error)
	mkdirAllFn  func(path string, perm os.FileMode) error
	openSrcFile func(name string) (*os.File, error)
	openDstFile func(name string, flag int, perm os.FileMode) (*os.File, error)
	copyFn      func(dst io.Writer, src io.Reader) (int64, error)
	readlinkFn  func(name string) (string, error)
	symlinkFn   func(oldname, newname string) error
}

// NewOSFileCopier creates an OSFileCopier with default OS implementations.
func NewOSFileCopier() *OSFileCopier {
	return &OSFileCopier{
		walkFn:      filepath.Walk,
		relFn:       filepath.Rel,
		mkdirAllFn:  os.MkdirAll,
		openSrcFile: os.Open,
		openDstFile: os.OpenFile,
		copyFn:      io.Copy,
		readlinkFn:  os.Readlink,
		symlinkFn:   os.Symlink,
	}
}

// CopyTree copies src to dst. A file src is copied to the path dst; a
// directory src is recreated at dst with all of its contents. Existing files
// at the destination are overwritten.
//
// It returns the number of files copied (symlinks included, directories not).
// On failure the count covers the files copied so far.
func (c *OSFileCopier) CopyTree(src, dst string) (int, error) {
	count := 0
	err := c.walkFn(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("walk error at %q: %w", path, err)
		}

		rel, err := c.relFn(src, path)
		if err != nil {
			return fmt.Errorf("failed to compute relative path from %q to %q: %w", src, path, err)
		}
		target := filepath.Join(dst, rel)

		switch {
		case info.IsDir():
			// Owner write is added so children can be created in read-only trees.
			if err := c.mkdirAllFn(target, info.Mode().Perm()|0o700); err != nil {
				return classifyFileCopyError(err, path, target, "create")
			}
			return nil
		case info.Mode()&os.ModeSymlink != 0:
			if err := c.copySymlink(path, target); err != nil {
				return err
			}
		default:
			if err := c.CopyFile(path, target, info.Mode().Perm()); err != nil {
				return err
			}
		}
		count++
		return nil
	})
	return count, err
}

// CopyFile copies a single file from src to dst with given permissions.
// Returns context-aware errors for common failure scenarios.
func (c *OSFileCopier) CopyFile(src, dst string, perm os.FileMode) error {
	in, err := c.openSrcFile(src)
	if err != nil {
		return classifyFileCopyError(err, src, dst, "open")
	}
	defer in.Close()

	out, err := c.openDstFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return classifyFileCopyError(err, src, dst, "create")
	}

	if _, err := c.copyFn(out, in); err != nil {
		_ = out.Close()
		return classifyFileCopyError(err, src, dst, "copy")
	}
	if err := out.Close(); err != nil {
		return classifyFileCopyError(err, src, dst, "copy")
	}
	return nil
}

// copySymlink recreates the link itself rather than its target.
func (c *OSFileCopier) copySymlink(src, dst string) error {
	link, err := c.readlinkFn(src)
	if err != nil {
		return classifyFileCopyError(err, src, dst, "open")
	}
	if _, err := os.Lstat(dst); err == nil {
		if err := os.Remove(dst); err != nil {
			return classifyFileCopyError(err, src, dst, "symlink")
		}
	}
	if err := c.symlinkFn(link, dst); err != nil {
		return classifyFileCopyError(err, src, dst, "symlink")
	}
	return nil
}

// classifyFileCopyError analyzes file system errors and provides context.
func classifyFileCopyError(err error, src, dst, operation string) error {
	if err == nil {
		return nil
	}

	if os.IsPermission(err) {
		return &FilePermissionError{
			Src: src,
			Dst: dst,
			Op:  operation,
			Err: err,
		}
	}

	if os.IsNotExist(err) {
		return fmt.Errorf("source path not found: %q: %w", src, err)
	}

	if errors.Is(err, syscall.ENOSPC) {
		return &DiskFullError{Path: dst, Err: err}
	}
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "no space left on device") || strings.Contains(errMsg, "disk full") {
		return &DiskFullError{Path: dst, Err: err}
	}

	return fmt.Errorf("failed to %s from %q to %q: %w", operation, src, dst, err)
}
