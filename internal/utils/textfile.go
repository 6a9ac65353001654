package utils

import (
	"bufio"
	"os"
	"strings"
)

// ReadNonEmptyLines reads a text file and returns all non-empty, trimmed lines.
// Lines consisting only of whitespace or starting with # (comments) are ignored,
// as is a leading UTF-8 byte order mark.
func ReadNonEmptyLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	s := bufio.NewScanner(f)
	first := true
	for s.Scan() {
		line := s.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
