package repositories

import (
	"strings"
	"time"

	"github.com/alumlink/alumlink/internal/app/models"
	"github.com/alumlink/alumlink/internal/app/models/dto"
)

// Filter predicates shared by the in-memory store and the repository tests.
// The Postgres store translates the same semantics to SQL.

// MatchJob reports whether an open job matches the filter. Location is a
// case-insensitive substring match, type is exact, and skill is exact set
// membership of a single skill string.
func MatchJob(j *models.Job, f dto.JobFilter) bool {
	if j.Status != models.JobStatusOpen {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Type != "" && string(j.Type) != f.Type {
		return false
	}
	if f.Skill != "" && !containsString(j.Skills, f.Skill) {
		return false
	}
	return true
}

// MatchEvent reports whether an event dated now or later matches the filter.
func MatchEvent(e *models.Event, f dto.EventFilter, now time.Time) bool {
	if e.Date.Before(now) {
		return false
	}
	if f.Type != "" && string(e.Type) != f.Type {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(e.Location), strings.ToLower(f.Location)) {
		return false
	}
	return true
}

// MatchPost reports whether a post matches the filter. Category is exact,
// search is a case-insensitive substring match on the content.
func MatchPost(p *models.Post, f dto.PostFilter) bool {
	if f.Category != "" && string(p.Category) != f.Category {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Content), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// MatchMentor reports whether an active alumni user matches the mentor
// directory filter. The skills filter is a comma-separated list and matches
// when ANY requested skill is an exact member of the mentor's skills. This is
// deliberately plain set membership, not the matcher's substring containment.
func MatchMentor(u *models.User, f dto.MentorFilter) bool {
	if u.Role != models.RoleAlumni || !u.IsActive {
		return false
	}
	if f.Skills != "" {
		wanted := SplitSkills(f.Skills)
		if len(wanted) > 0 {
			any := false
			for _, w := range wanted {
				if containsString(u.Skills, w) {
					any = true
					break
				}
			}
			if !any {
				return false
			}
		}
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(u.Location), strings.ToLower(f.Location)) {
		return false
	}
	return true
}

// SplitSkills splits a comma-separated skills parameter, trimming entries and
// dropping empties.
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
