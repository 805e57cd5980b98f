package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/skovand/dragon-cave/pkg/level"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <level.json> [level.json ...]\n", os.Args[0])
		os.Exit(1)
	}

	validator := &LevelValidator{}
	failed := false

	for _, filename := range os.Args[1:] {
		if err := validator.validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
			continue
		}
		fmt.Printf("%s is valid!\n", filepath.Base(filename))
	}

	if failed {
		os.Exit(1)
	}
}

type LevelValidator struct {
	errors []string
}

func (v *LevelValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	// Validate filename format
	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("level file must have .json extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ".json")
	if !isValidLevelFilename(nameWithoutExt) {
		return fmt.Errorf("level filename '%s' must be lowercase snake_case with an optional numeric prefix (e.g., 01_first_steps.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var lvl level.Level
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&lvl); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	v.validateLevel(&lvl)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	return nil
}

func (v *LevelValidator) validateLevel(lvl *level.Level) {
	for _, err := range lvl.Validate() {
		v.addError(err.Error())
	}

	// Structural checks beyond the basics: the level must be playable.
	v.validateReachability(lvl)
}

// validateReachability flags layouts that can't be completed even when
// structurally well formed.
func (v *LevelValidator) validateReachability(lvl *level.Level) {
	// The caver drops in near the left edge and needs ground to land on.
	const startX = 200
	hasStart := false
	for _, p := range lvl.Platforms {
		if p.Y >= level.GroundY && p.X <= startX && p.X+p.W >= startX {
			hasStart = true
			break
		}
	}
	if !hasStart {
		v.addError(fmt.Sprintf("no ground platform under the caver's start at x=%d", startX))
	}

	for i, d := range lvl.DragonStarts {
		if d.X < lvl.Width*0.25 {
			v.addError(fmt.Sprintf("dragon start %d at x=%v is inside the caver's starting quarter", i, d.X))
		}
	}

	if lvl.Exit.X < lvl.Width*0.5 {
		v.addError(fmt.Sprintf("exit at x=%v sits in the first half of the level", lvl.Exit.X))
	}
}

func (v *LevelValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validFilenameRegex = regexp.MustCompile(`^([0-9]+_)?[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidLevelFilename(name string) bool {
	return validFilenameRegex.MatchString(name)
}
