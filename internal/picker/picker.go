// Package picker validates an input location against a resource kind's
// document shape and allowed extensions.
package picker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/sgenkit/sgen/internal/errors"
	"github.com/sgenkit/sgen/internal/kinds"
)

// errFound stops a directory walk early.
var errFound = errors.New("found")

// Select checks that path is an acceptable input for the kind described by
// info and returns it as an absolute path. A leading ~ is expanded.
//
// File kinds need a regular file with an allowed extension. Directory kinds
// need a directory that either has an allowed extension itself (an
// .xcassets catalog) or contains at least one file with an allowed
// extension (a fonts folder).
func Select(info kinds.Info, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", oerrors.NewValidationError("no input location given", "", "", fmt.Sprintf("pass a %s for %s", info.Shape, info.Name))
	}

	abs, err := absPath(path)
	if err != nil {
		return "", err
	}

	st, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", oerrors.NewNotFoundError("input does not exist", abs, "")
	case errors.Is(err, fs.ErrPermission):
		return "", oerrors.NewPermissionError("cannot read input", map[string]string{"Path": abs}, "")
	case err != nil:
		return "", fmt.Errorf("inspecting %s: %w", abs, err)
	}

	switch info.Shape {
	case kinds.ShapeFile:
		if st.IsDir() {
			return "", shapeError(info, abs, "expected a file, got a directory")
		}
		if !info.AcceptsExtension(filepath.Ext(abs)) {
			return "", shapeError(info, abs, fmt.Sprintf("extension %q is not accepted", filepath.Ext(abs)))
		}
	case kinds.ShapeDirectory:
		if !st.IsDir() {
			return "", shapeError(info, abs, "expected a directory, got a file")
		}
		if !info.AcceptsExtension(filepath.Ext(abs)) && !containsAccepted(info, abs) {
			return "", shapeError(info, abs, "directory contains no accepted files")
		}
	default:
		return "", fmt.Errorf("unknown document shape %q", info.Shape)
	}
	return abs, nil
}

func absPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding ~: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	return abs, nil
}

// containsAccepted reports whether any file below dir has an accepted
// extension. Unreadable subdirectories are skipped.
func containsAccepted(info kinds.Info, dir string) bool {
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && p != dir {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && info.AcceptsExtension(filepath.Ext(p)) {
			return errFound
		}
		return nil
	})
	return errors.Is(err, errFound)
}

func shapeError(info kinds.Info, path, msg string) error {
	return oerrors.NewValidationError(
		msg,
		path,
		"",
		fmt.Sprintf("%s expects a %s with extension %s", info.Name, info.Shape, strings.Join(info.Extensions, ", ")),
	)
}
