// Package mascot looks up animal records in an external JSON data file.
// The file is read on every request so edits are visible immediately;
// an optional validated cache keeps that property while skipping
// redundant parses.
package mascot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"hue/internal/errors"
)

// Animal is a single record from the data file. Field names follow the
// file contract; absent fields stay empty rather than failing decode.
type Animal struct {
	Variant  string `json:"variant"`
	Name     string `json:"animalName"`
	ImageURL string `json:"urlImage"`
}

// Stats summarizes the contents of the data file
type Stats struct {
	Entries  int      `json:"entries"`
	Skipped  int      `json:"skipped"`
	Variants []string `json:"variants,omitempty"`
}

// Source reads animal records from a JSON array file
type Source struct {
	path  string
	cache *fileCache // nil when caching is disabled
}

// NewSource creates a source that re-reads the file on every lookup
func NewSource(path string) *Source {
	return &Source{path: path}
}

// NewCachedSource creates a source that reuses the decoded records while
// the file's modification time and size are unchanged
func NewCachedSource(path string) *Source {
	return &Source{path: path, cache: &fileCache{}}
}

// Path returns the data file path
func (s *Source) Path() string {
	return s.path
}

// Find scans the file in order for a case-insensitive variant match.
// The first match wins. A blank variant never matches.
func (s *Source) Find(variant string) (Animal, error) {
	animals, _, err := s.load()
	if err != nil {
		return Animal{}, err
	}

	variant = strings.TrimSpace(variant)
	if variant != "" {
		for _, a := range animals {
			if strings.EqualFold(strings.TrimSpace(a.Variant), variant) {
				return a, nil
			}
		}
	}

	return Animal{}, errors.New(errors.AnimalNotFound,
		fmt.Sprintf("no animal matches variant %q", variant))
}

// All returns every well-formed record in file order
func (s *Source) All() ([]Animal, error) {
	animals, _, err := s.load()
	if err != nil {
		return nil, err
	}
	return append([]Animal(nil), animals...), nil
}

// Stats reads the file and reports how many records decoded cleanly
func (s *Source) Stats() (Stats, error) {
	animals, skipped, err := s.load()
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Entries: len(animals),
		Skipped: skipped,
	}
	for _, a := range animals {
		stats.Variants = append(stats.Variants, a.Variant)
	}
	return stats, nil
}

// load reads and decodes the data file, consulting the cache when enabled
func (s *Source) load() ([]Animal, int, error) {
	if s.cache == nil {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return nil, 0, errors.Wrap(errors.SourceUnreadable, "cannot read animal data", err)
		}
		return decode(data)
	}
	return s.cache.load(s.path)
}

// decode parses the file body as a JSON array of records. Elements that
// fail to decode are skipped, not fatal. A body that is valid JSON but
// not an array yields an empty record set, so lookups miss rather than
// error.
func decode(data []byte) ([]Animal, int, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		if _, ok := err.(*json.UnmarshalTypeError); ok {
			return nil, 0, nil
		}
		return nil, 0, errors.Wrap(errors.SourceInvalid, "animal data is not valid JSON", err)
	}

	animals := make([]Animal, 0, len(raw))
	skipped := 0
	for _, elem := range raw {
		var a Animal
		if err := json.Unmarshal(elem, &a); err != nil {
			skipped++
			continue
		}
		animals = append(animals, a)
	}
	return animals, skipped, nil
}
