package io

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"demoplay/internal/logger"
	"demoplay/internal/utils"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Folder is the sidebar listing of one directory.
type Folder struct {
	Files   []string
	Folders []string
}

// ListChildren lists dirPath without recursing. Blacklisted names, entries ignored by the
// directory's .gitignore and any entry that is a path prefix of exclude are left out.
// An unreadable directory lists as empty.
func ListChildren(dirPath string, exclude string, blacklist []string) Folder {
	folder := Folder{Files: []string{}, Folders: []string{}}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		logger.Log.Warn("failed to list directory", "dir", dirPath, "err", err)
		return folder
	}

	matcher := readGitignore(dirPath)

	for _, entry := range entries {
		name := entry.Name()
		childPath := filepath.Join(dirPath, name)

		if exclude != "" && utils.HasPathPrefix(exclude, childPath) {
			continue
		}
		if utils.IsIgnored(name, blacklist) {
			continue
		}
		if matcher != nil && matcher.Match([]string{name}, entry.IsDir()) {
			continue
		}

		if entry.IsDir() {
			folder.Folders = append(folder.Folders, name)
		} else if entry.Type().IsRegular() {
			folder.Files = append(folder.Files, name)
		}
	}

	slices.Sort(folder.Files)
	slices.Sort(folder.Folders)
	return folder
}

// readGitignore loads the .gitignore files of dirPath, nil when there are none.
func readGitignore(dirPath string) gitignore.Matcher {
	patterns, err := gitignore.ReadPatterns(osfs.New(dirPath), nil)
	if err != nil {
		logger.Log.Warn("failed to read gitignore", "dir", dirPath, "err", err)
		return nil
	}
	if len(patterns) == 0 {
		return nil
	}
	return gitignore.NewMatcher(patterns)
}

// Breadcrumb lists the components of focused below root, indented two spaces per level.
// The last element is the file name itself. Paths outside root give an empty breadcrumb.
func Breadcrumb(root string, focused string) []string {
	rel, err := filepath.Rel(root, focused)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return []string{}
	}

	parts := strings.Split(rel, string(filepath.Separator))
	list := make([]string, 0, len(parts))
	for index, section := range parts {
		list = append(list, strings.Repeat(" ", index*2)+section)
	}
	return list
}

// CopyFile copies src over dst, creating dst when needed.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to copy from %s to %s: %w", src, dst, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to copy from %s to %s: %w", src, dst, err)
	}
	if info.IsDir() {
		return fmt.Errorf("failed to copy from %s to %s: source is a directory", src, dst)
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return nil
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to copy from %s to %s: %w", src, dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy from %s to %s: %w", src, dst, err)
	}
	return out.Close()
}
