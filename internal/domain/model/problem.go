package model

import (
	"fmt"
	"time"
)

// Difficulty is the LeetCode difficulty tier of a problem.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ProblemRecord is the catalog entry for a single problem.
type ProblemRecord struct {
	Slug       string
	NumericID  string
	Difficulty Difficulty
}

// Catalog maps problem slugs to their records. A nil Catalog is empty.
type Catalog map[string]ProblemRecord

// Lookup returns the record for slug, if known.
func (c Catalog) Lookup(slug string) (ProblemRecord, bool) {
	if c == nil {
		return ProblemRecord{}, false
	}
	rec, ok := c[slug]
	return rec, ok
}

// Submission is an accepted submission as reported by LeetCode.
type Submission struct {
	Title     string
	Slug      string
	Timestamp int64
}

// Time returns the submission instant.
func (s Submission) Time() time.Time {
	return time.Unix(s.Timestamp, 0)
}

// RenderLabel renders the label stored in reminder descriptions.
// Unknown slugs fall back to the bare title.
func RenderLabel(catalog Catalog, sub Submission) string {
	rec, ok := catalog.Lookup(sub.Slug)
	if !ok {
		return sub.Title
	}
	return fmt.Sprintf("%s. %s (%s)", rec.NumericID, sub.Title, rec.Difficulty)
}
