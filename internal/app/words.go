package app

import (
	"context"
	"regexp"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pip-doctor/internal/adapters"
	"pip-doctor/internal/core"
)

// Words compares dictionary words against cached package names:
// how many of each match the pattern, and which matching words are
// still free as package names.
func (s Service) Words(ctx context.Context, req WordsRequest) (WordsResult, error) {
	dictionary := req.Dictionary
	if dictionary == "" {
		dictionary = adapters.DefaultWordListPath
	}
	wordList, err := s.WordLists.Load(dictionary)
	if err != nil {
		return WordsResult{}, err
	}
	nameList, err := s.loadNames(ctx)
	if err != nil {
		return WordsResult{}, err
	}

	var re *regexp.Regexp
	if req.Pattern != "" {
		re, err = regexp.Compile(req.Pattern)
		if err != nil {
			return WordsResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid pattern: " + req.Pattern).
				WithCause(err)
		}
	}

	words := core.NewWordSet(wordList)
	names := core.NewWordSet(nameList)
	result := WordsResult{Stats: core.CompareWords(words, names, re)}

	matchingWords := wordList
	if re != nil {
		matchingWords = words.Matching(re)
	}
	result.FreeWords = core.NewWordSet(matchingWords).Subtract(names)
	if req.ListMatches && re != nil {
		result.Matches = words.Matching(re)
	}
	return result, nil
}
