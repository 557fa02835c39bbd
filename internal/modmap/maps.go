package modmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// MapsProvider reads the process's loaded-module list from a Linux-style
// memory map. Path is /proc/self/maps in production; tests point it at a
// fixture. Only executable mappings with a backing path are modules.
type MapsProvider struct {
	Path string
}

// Modules implements Provider.
func (p *MapsProvider) Modules() ([]Module, error) {
	path := p.Path
	if path == "" {
		path = "/proc/self/maps"
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ParseMaps(f)
}

// ParseMaps parses /proc/self/maps-format text. Lines look like:
//
//	7f3c8e000000-7f3c8e021000 r-xp 00000000 08:01 131 /usr/lib/libfoo.so
//
// Non-executable mappings and anonymous mappings are skipped.
func ParseMaps(r io.Reader) ([]Module, error) {
	var mods []Module
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		fields := strings.Fields(line)
		if len(fields) < 6 {
			continue
		}
		perms := fields[1]
		if len(perms) < 3 || perms[2] != 'x' {
			continue
		}
		path := fields[5]
		if !strings.HasPrefix(path, "/") {
			continue
		}
		lo, hi, ok := parseRange(fields[0])
		if !ok {
			continue
		}
		mods = append(mods, Module{Start: lo, End: hi, Path: path})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan maps: %w", err)
	}
	return mods, nil
}

func parseRange(s string) (lo, hi uint64, ok bool) {
	dash := strings.IndexByte(s, '-')
	if dash < 0 {
		return 0, 0, false
	}
	lo, err := strconv.ParseUint(s[:dash], 16, 64)
	if err != nil {
		return 0, 0, false
	}
	hi, err = strconv.ParseUint(s[dash+1:], 16, 64)
	if err != nil || hi <= lo {
		return 0, 0, false
	}
	return lo, hi, true
}
