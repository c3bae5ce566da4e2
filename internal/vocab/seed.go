package vocab

import (
	"bufio"
	"os"
	"strings"
)

// DefaultSeedWords is the vocabulary a fresh session starts with when
// no seed file is configured.
var DefaultSeedWords = []string{
	"cat", "dog", "fish", "bird", "horse",
	"apple", "banana", "bread", "cheese", "water",
	"house", "car", "road", "city", "tree",
	"happy", "sad", "angry", "calm",
	"run", "walk", "swim", "fly",
}

// LoadWordList reads a seed vocabulary file: one word per line, in
// order, with blank lines and #-comments skipped.
func LoadWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
