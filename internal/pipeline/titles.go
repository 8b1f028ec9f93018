package pipeline

import (
	"bufio"
	"os"
	"strings"

	"go.uber.org/zap"
)

// defaultTitles is the job-title allowlist used when no titles file exists.
var defaultTitles = []string{"SEO Manager", "Editor in Chief", "Marketing Manager"}

// LoadTitles reads the target job-title list, one title per line, skipping
// blanks. A missing, unreadable, or empty file falls back to the defaults.
func LoadTitles(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		zap.L().Info("titles: file not available, using defaults", zap.String("path", path))
		return append([]string(nil), defaultTitles...)
	}
	defer f.Close()

	var titles []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			titles = append(titles, line)
		}
	}
	if err := scanner.Err(); err != nil || len(titles) == 0 {
		zap.L().Warn("titles: file empty or unreadable, using defaults",
			zap.String("path", path), zap.Error(err))
		return append([]string(nil), defaultTitles...)
	}
	return titles
}
