/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: storage.go
Description: Embedded dictionary storage for the lexical checker. Corpora are
compiled into the binary, parsed once on first access, and shared read-only
across all checkers and workers.
*/

package storage

import (
	"bufio"
	"bytes"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"embed"

	"github.com/pkg/errors"
)

//go:embed dictionaries/*.txt
var dictionaryFS embed.FS

var (
	loadOnce sync.Once
	corpora  map[string]map[string]struct{}
)

// load parses every embedded corpus exactly once. A corpus that fails to
// parse is a build defect, not a runtime condition, so load panics instead
// of returning an error.
func load() {
	loadOnce.Do(func() {
		corpora = make(map[string]map[string]struct{})

		entries, err := dictionaryFS.ReadDir("dictionaries")
		if err != nil {
			panic(errors.Wrap(err, "failed to read embedded dictionaries"))
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			name := strings.TrimSuffix(entry.Name(), ".txt")
			data, err := dictionaryFS.ReadFile("dictionaries/" + entry.Name())
			if err != nil {
				panic(errors.Wrapf(err, "failed to read embedded dictionary %s", name))
			}

			words, err := parseCorpus(name, data)
			if err != nil {
				panic(err)
			}

			corpora[name] = words
		}
	})
}

// parseCorpus converts raw corpus bytes into a word set. One word per line,
// lowercased, with blank lines and #-prefixed comments skipped. The corpus
// must be valid UTF-8 and must yield at least one word.
func parseCorpus(name string, data []byte) (map[string]struct{}, error) {
	if !utf8.Valid(data) {
		return nil, errors.Errorf("dictionary %s is not valid UTF-8", name)
	}

	words := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words[strings.ToLower(word)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan dictionary %s", name)
	}
	if len(words) == 0 {
		return nil, errors.Errorf("dictionary %s contains no words", name)
	}

	return words, nil
}

// Dictionaries returns the sorted names of all embedded corpora.
func Dictionaries() []string {
	load()

	names := make([]string, 0, len(corpora))
	for name := range corpora {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dictionary returns the word set with the given name. The returned map is
// shared and must be treated as read-only.
func Dictionary(name string) (map[string]struct{}, bool) {
	load()

	words, ok := corpora[name]
	return words, ok
}

// MustDictionary returns the word set with the given name and panics when no
// such corpus is embedded. Used at construction time where a missing corpus
// means a broken build.
func MustDictionary(name string) map[string]struct{} {
	words, ok := Dictionary(name)
	if !ok {
		panic(errors.Errorf("no embedded dictionary named %s", name))
	}
	return words
}
