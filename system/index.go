package system

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// IndexLoadError reports a level index that could not be opened or read.
type IndexLoadError struct {
	Path string
	Err  error
}

func (e *IndexLoadError) Error() string {
	return fmt.Sprintf("level index %s: %v", e.Path, e.Err)
}

func (e *IndexLoadError) Unwrap() error { return e.Err }

// ReadIndex returns the level identifiers listed in the index file at path,
// one per line, in play order. Blank lines are skipped.
func ReadIndex(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IndexLoadError{Path: path, Err: err}
	}
	defer f.Close()

	var ids []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		id := strings.TrimSpace(sc.Text())
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	if err := sc.Err(); err != nil {
		return nil, &IndexLoadError{Path: path, Err: err}
	}
	return ids, nil
}
