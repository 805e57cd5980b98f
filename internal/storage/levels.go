package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/skovand/dragon-cave/pkg/level"
)

const levelSubdir = "levels"

// loadLevelDir reads every *.json level under dataDir/levels, sorted by
// filename so authors control campaign order with numeric prefixes.
// When the directory is missing or holds no levels, the built-in
// campaign is returned instead.
func loadLevelDir(dataDir string) ([]level.Level, error) {
	dir := filepath.Join(dataDir, levelSubdir)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return level.Builtin(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read level directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return level.Builtin(), nil
	}
	sort.Strings(names)

	levels := make([]level.Level, 0, len(names))
	for _, name := range names {
		lvl, err := loadLevelFile(dataDir, name)
		if err != nil {
			return nil, err
		}
		levels = append(levels, *lvl)
	}
	return levels, nil
}

// loadLevelFile reads and validates one level file from dataDir/levels.
func loadLevelFile(dataDir, filename string) (*level.Level, error) {
	path := filepath.Join(dataDir, levelSubdir, filepath.Base(filename))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", filename, err)
	}

	var lvl level.Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("failed to parse level file %s: %w", filename, err)
	}
	lvl.FileName = filepath.Base(filename)

	if errs := lvl.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("level file %s is invalid: %v", filename, errs[0])
	}
	return &lvl, nil
}
