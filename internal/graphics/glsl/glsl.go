// Package glsl assembles shader sources from an fs.FS. It resolves
// `#include "path"` lines (paths are relative to the FS root) and injects
// `#define` lines right after the `#version` directive.
package glsl

import (
	"bufio"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

const maxIncludeDepth = 8

// Load reads path from fsys and returns the expanded source
func Load(fsys fs.FS, path string, defines map[string]string) (string, error) {
	var b strings.Builder
	if err := expand(fsys, path, &b, 0, map[string]bool{}); err != nil {
		return "", err
	}
	return inject(b.String(), defines), nil
}

func expand(fsys fs.FS, path string, out *strings.Builder, depth int, active map[string]bool) error {
	if depth > maxIncludeDepth {
		return fmt.Errorf("include depth exceeded at %s", path)
	}
	if active[path] {
		return fmt.Errorf("include cycle at %s", path)
	}
	active[path] = true
	defer delete(active, path)

	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("could not read shader %s: %w", path, err)
	}

	sc := bufio.NewScanner(strings.NewReader(string(data)))
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		target, ok := includeTarget(text)
		if !ok {
			out.WriteString(text)
			out.WriteByte('\n')
			continue
		}
		if target == "" {
			return fmt.Errorf("%s:%d: malformed include", path, line)
		}
		if err := expand(fsys, target, out, depth+1, active); err != nil {
			return err
		}
	}
	return sc.Err()
}

// includeTarget returns the quoted path of an include line. ok is false for
// ordinary lines; an include line with a bad argument returns "", true.
func includeTarget(line string) (string, bool) {
	t := strings.TrimSpace(line)
	if !strings.HasPrefix(t, "#include") {
		return "", false
	}
	arg := strings.TrimSpace(strings.TrimPrefix(t, "#include"))
	if len(arg) < 2 || arg[0] != '"' || arg[len(arg)-1] != '"' {
		return "", true
	}
	return arg[1 : len(arg)-1], true
}

func inject(src string, defines map[string]string) string {
	if len(defines) == 0 {
		return src
	}
	keys := make([]string, 0, len(defines))
	for k := range defines {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var d strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&d, "#define %s %s\n", k, defines[k])
	}

	// #version must stay the first directive
	if strings.HasPrefix(strings.TrimSpace(src), "#version") {
		i := strings.Index(src, "\n")
		if i < 0 {
			return src + "\n" + d.String()
		}
		return src[:i+1] + d.String() + src[i+1:]
	}
	return d.String() + src
}
