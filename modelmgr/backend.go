package modelmgr

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// ErrModelConstNotFound is returned when the backend file has no MODEL constant
var ErrModelConstNotFound = errors.New("could not find MODEL constant")

var modelConstPattern = regexp.MustCompile(`const MODEL = '[^']*';`)

// UpdateBackendModel rewrites every `const MODEL = '...';` line in path to name model
// The file is left untouched when no such line exists
func UpdateBackendModel(path, model string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("backend file: %w", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !modelConstPattern.Match(content) {
		return fmt.Errorf("%s: %w", path, ErrModelConstNotFound)
	}

	replacement := []byte(fmt.Sprintf("const MODEL = '%s';", model))
	updated := modelConstPattern.ReplaceAllLiteral(content, replacement)
	return os.WriteFile(path, updated, info.Mode().Perm())
}
