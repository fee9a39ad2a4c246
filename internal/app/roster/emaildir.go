// internal/app/roster/emaildir.go
package roster

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/VivekChaurasia03/attendance-app/internal/app/system/normalize"
)

// Directory maps a normalized name key to an email address. It is built once
// per run and read-only afterward.
type Directory map[string]string

// Collision records a directory row whose name key was already present with a
// different email. The later row wins (last-write-wins), but collisions are
// returned to the caller so the shadowing is visible in logs.
type Collision struct {
	Line     int
	Key      string
	Replaced string
	Kept     string
}

// ParseEmailDirectory reads the unheadered name,email CSV into a Directory.
// Rows with fewer than two columns are skipped without comment: the source
// has no trusted header, so a short row is indistinguishable from filler.
// Rows whose name normalizes to the empty key are skipped too; an empty key
// is not an identity.
func ParseEmailDirectory(r io.Reader) (Directory, []Collision, error) {
	dir := Directory{}
	var collisions []Collision

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		rec, err := splitLine(sc.Text())
		if err != nil {
			return nil, nil, fmt.Errorf("email directory line %d: %w", line, err)
		}
		if len(rec) < 2 {
			continue
		}
		key := normalize.NameKey(rec[0])
		if key == "" {
			continue
		}
		email := strings.TrimSpace(rec[1])
		if old, seen := dir[key]; seen && old != email {
			collisions = append(collisions, Collision{Line: line, Key: key, Replaced: old, Kept: email})
		}
		dir[key] = email
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading email directory: %w", err)
	}
	return dir, collisions, nil
}
