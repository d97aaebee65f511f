package app

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docfusion/docfusion-tui/model"
)

// updateInput forwards a message to the input widget and restores the
// concrete type.
func updateInput(in model.InputModel, teaMsg tea.Msg) (model.InputModel, tea.Cmd) {
	updated, cmd := in.Update(teaMsg)
	return updated.(model.InputModel), cmd
}

// expandHome resolves a leading ~/ so /upload ~/paper.pdf works.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func baseName(path string) string {
	return filepath.Base(path)
}

// parseIndex reads a 1-based panel position; 0 means unparseable and never
// matches an entry.
func parseIndex(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// removeToken deletes the persisted bearer token on logout.
func removeToken(path string) {
	if path == "" {
		return
	}
	os.Remove(path)
}
