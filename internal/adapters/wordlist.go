package adapters

import (
	"bufio"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pip-doctor/internal/ports"
)

// DefaultWordListPath is the system dictionary most distributions ship.
const DefaultWordListPath = "/usr/share/dict/words"

// WordListAdapter loads line-oriented dictionary files.
type WordListAdapter struct{}

func NewWordListAdapter() WordListAdapter {
	return WordListAdapter{}
}

func (a WordListAdapter) Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("word list not found: " + path).
			WithCause(err)
	}
	defer file.Close()
	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read word list").
			WithCause(err)
	}
	return words, nil
}

var _ ports.WordListPort = WordListAdapter{}
