package colorscan

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
)

// sourceFile is one file read during a scan.
type sourceFile struct {
	Path  string
	Lines []string

	content string
}

// walker finds and filters the files under a root folder.
type walker struct {
	config    Config
	gitignore *ignore.GitIgnore
}

func newWalker(config Config) *walker {
	w := &walker{config: config}
	if config.RespectGitignore {
		w.gitignore = loadGitIgnore(config.Root)
	}
	return w
}

// loadGitIgnore compiles <root>/.gitignore. A missing or unreadable file
// disables the check.
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// Walk lists every non-directory entry under root, depth-first in lexical
// order, with paths joined onto root.
func (w *walker) Walk() ([]string, error) {
	var files []string
	err := filepath.WalkDir(w.config.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != w.config.Root && w.ignored(path) {
				return filepath.SkipDir
			}
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", w.config.Root, err)
	}
	return files, nil
}

// Excluded reports whether path is dropped regardless of extension: it ends
// with an excluded suffix, matches an exclude glob, or is gitignored.
func (w *walker) Excluded(path string) bool {
	for _, suffix := range w.config.ExcludeSuffixes {
		if suffix != "" && strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return w.ignored(path)
}

func (w *walker) ignored(path string) bool {
	slashed := filepath.ToSlash(path)
	for _, pattern := range w.config.Exclude {
		if ok, _ := doublestar.Match(pattern, slashed); ok {
			return true
		}
	}
	if w.gitignore != nil {
		rel, err := filepath.Rel(w.config.Root, path)
		if err == nil && w.gitignore.MatchesPath(filepath.ToSlash(rel)) {
			return true
		}
	}
	return false
}

// UsageEligible reports whether path takes part in the usage pass.
func (w *walker) UsageEligible(path string) bool {
	return hasExtension(path, w.config.Extensions) && !w.Excluded(path)
}

// VariableEligible reports whether path takes part in variable resolution.
func (w *walker) VariableEligible(path string) bool {
	return hasExtension(path, w.config.VariableExtensions) && !w.Excluded(path)
}

func hasExtension(path string, exts []string) bool {
	ext := Extname(path)
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}

// Extname returns the extension of the last path element, dot included.
// Dotfiles without a further dot (".scss") have no extension.
func Extname(path string) string {
	base := filepath.Base(path)
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 {
		return ""
	}
	return base[idx:]
}

// ReadAll reads paths concurrently and returns them in input order. The first
// failure cancels the remaining reads unless SkipUnreadable is set, in which
// case failed files are dropped and reported as warnings.
func (w *walker) ReadAll(ctx context.Context, paths []string) ([]sourceFile, []string, error) {
	files := make([]sourceFile, len(paths))
	failed := make([]error, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(w.config.Concurrency, 1))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// #nosec G304 - path comes from walking the configured root
			data, err := os.ReadFile(path)
			if err != nil {
				err = fmt.Errorf("read %s: %w", path, err)
				if w.config.SkipUnreadable {
					failed[i] = err
					return nil
				}
				return err
			}
			content := string(data)
			files[i] = sourceFile{
				Path:    path,
				Lines:   strings.Split(content, "\n"),
				content: content,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var warnings []string
	out := files[:0]
	for i, f := range files {
		if failed[i] != nil {
			slog.Warn("skipping unreadable file", "path", paths[i], "error", failed[i])
			warnings = append(warnings, failed[i].Error())
			continue
		}
		out = append(out, f)
	}
	return out, warnings, nil
}
