// Package wordlist loads playground content from files.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultWords is used when no user word list exists.
var DefaultWords = []string{
	"scroll", "wrapper", "content", "momentum", "bounce", "swipe", "flick",
	"boundary", "elastic", "offset", "axis", "pointer", "release", "settle",
	"velocity", "distance", "duration", "ease", "spring", "frame", "edge",
	"overscroll", "drag", "glide", "inertia", "friction", "viewport", "cell",
	"terminal", "gesture", "wheel", "page", "line", "column", "rubber", "band",
	"直線", "スクロール", "émoji", "naïve",
}

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// LoadWordsOrDefault reads the word list at path, falling back to
// DefaultWords when the file does not exist.
func LoadWordsOrDefault(path string) ([]string, error) {
	words, err := LoadWords(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultWords, nil
		}
		return nil, err
	}
	return words, nil
}

// LoadLines reads a text file for display, keeping blank lines and
// sanitizing each line.
func LoadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only content.
			_ = cerr
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, SanitizeLine(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("content file is empty")
	}
	return lines, nil
}
