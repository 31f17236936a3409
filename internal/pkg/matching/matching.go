// Package matching implements the skills-based match scorer.
//
// The score between a subject and a candidate is the share of the subject's
// skills that appear somewhere in the candidate's skills, using
// case-insensitive substring containment: subject skill "Java" matches
// candidate skill "JavaScript". The denominator is the larger of the two
// skill counts so that candidates with long skill lists are not rewarded for
// incidental overlap.
package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/alumlink/alumlink/internal/app/models"
)

// Match pairs a candidate profile with its percentage score.
type Match struct {
	User  models.User
	Score int
}

// NormalizeSkills trims skills and drops empty entries.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Score computes a percentage match score in [0,100] for every candidate and
// returns them sorted by score descending. The sort is stable: candidates
// with equal scores keep their encounter order. Candidate skills are compared
// as stored; only the subject's skills are normalized.
func Score(subjectSkills []string, candidates []models.User) []Match {
	base := NormalizeSkills(subjectSkills)

	matches := make([]Match, 0, len(candidates))
	for _, candidate := range candidates {
		common := 0
		for _, skill := range base {
			if containsSkill(candidate.Skills, skill) {
				common++
			}
		}

		denom := len(candidate.Skills)
		if denom == 0 {
			denom = 1
		}
		if len(base) > denom {
			denom = len(base)
		}

		matches = append(matches, Match{
			User:  candidate,
			Score: int(math.Round(float64(common) / float64(denom) * 100)),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// containsSkill reports whether any candidate skill contains skill as a
// case-insensitive substring.
func containsSkill(candidateSkills []string, skill string) bool {
	needle := strings.ToLower(skill)
	for _, s := range candidateSkills {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

// Top filters matches by a minimum score and caps the result length.
// keepEqual controls whether a score exactly at min is kept.
func Top(matches []Match, min int, keepEqual bool, cap int) []Match {
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		if m.Score > min || (keepEqual && m.Score == min) {
			out = append(out, m)
		}
		if len(out) == cap {
			break
		}
	}
	return out
}
