package matching_test

import (
	"testing"

	"github.com/alumlink/alumlink/internal/app/models"
	"github.com/alumlink/alumlink/internal/pkg/matching"
)

func candidate(name string, skills ...string) models.User {
	return models.User{Name: name, Skills: skills}
}

func TestNormalizeSkills(t *testing.T) {
	got := matching.NormalizeSkills([]string{"  Go ", "", "React", "   "})
	want := []string{"Go", "React"}
	if len(got) != len(want) {
		t.Fatalf("NormalizeSkills returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NormalizeSkills[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScore_FullOverlap(t *testing.T) {
	matches := matching.Score([]string{"Go", "React"}, []models.User{
		candidate("a", "Go", "React"),
	})
	if matches[0].Score != 100 {
		t.Errorf("full overlap score = %d, want 100", matches[0].Score)
	}
}

func TestScore_SubstringContainment(t *testing.T) {
	// "Java" is contained in "JavaScript", so it counts as common.
	matches := matching.Score([]string{"Java"}, []models.User{
		candidate("a", "JavaScript"),
	})
	if matches[0].Score != 100 {
		t.Errorf("substring containment score = %d, want 100", matches[0].Score)
	}

	// The reverse does not hold: "JavaScript" is not inside "Java".
	matches = matching.Score([]string{"JavaScript"}, []models.User{
		candidate("a", "Java"),
	})
	if matches[0].Score != 0 {
		t.Errorf("reverse containment score = %d, want 0", matches[0].Score)
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	matches := matching.Score([]string{"react"}, []models.User{
		candidate("a", "React"),
	})
	if matches[0].Score != 100 {
		t.Errorf("case-insensitive score = %d, want 100", matches[0].Score)
	}
}

func TestScore_DenominatorIsLargerList(t *testing.T) {
	// 1 common skill out of max(1, 3) = 3 candidate skills.
	matches := matching.Score([]string{"Go"}, []models.User{
		candidate("a", "Go", "React", "SQL"),
	})
	if matches[0].Score != 33 {
		t.Errorf("score = %d, want 33", matches[0].Score)
	}

	// 1 common out of max(3, 1) = 3 subject skills.
	matches = matching.Score([]string{"Go", "React", "SQL"}, []models.User{
		candidate("a", "Go"),
	})
	if matches[0].Score != 33 {
		t.Errorf("score = %d, want 33", matches[0].Score)
	}
}

func TestScore_EmptyCandidateSkills(t *testing.T) {
	// Candidate with no skills divides by 1, not 0, and scores 0.
	matches := matching.Score([]string{"Go"}, []models.User{
		candidate("a"),
	})
	if matches[0].Score != 0 {
		t.Errorf("empty candidate score = %d, want 0", matches[0].Score)
	}
}

func TestScore_EmptySubjectSkills(t *testing.T) {
	matches := matching.Score(nil, []models.User{
		candidate("a", "Go", "React"),
	})
	if matches[0].Score != 0 {
		t.Errorf("empty subject score = %d, want 0", matches[0].Score)
	}
}

func TestScore_Rounding(t *testing.T) {
	// 2 common out of 3 = 66.67, rounds to 67.
	matches := matching.Score([]string{"Go", "React", "SQL"}, []models.User{
		candidate("a", "Go", "React"),
	})
	if matches[0].Score != 67 {
		t.Errorf("score = %d, want 67", matches[0].Score)
	}
}

func TestScore_SortsDescendingStable(t *testing.T) {
	matches := matching.Score([]string{"Go", "React"}, []models.User{
		candidate("low", "SQL"),
		candidate("first-full", "Go", "React"),
		candidate("second-full", "Go", "React"),
	})

	if matches[0].User.Name != "first-full" || matches[1].User.Name != "second-full" {
		t.Errorf("tie order = [%s, %s], want encounter order preserved",
			matches[0].User.Name, matches[1].User.Name)
	}
	if matches[2].User.Name != "low" {
		t.Errorf("lowest score should sort last, got %s", matches[2].User.Name)
	}
}

func TestTop_StrictFloor(t *testing.T) {
	matches := []matching.Match{
		{User: candidate("a"), Score: 50},
		{User: candidate("b"), Score: 30},
		{User: candidate("c"), Score: 20},
	}

	got := matching.Top(matches, 30, false, 20)
	if len(got) != 1 || got[0].User.Name != "a" {
		t.Errorf("Top(>30) kept %d matches, want only the 50", len(got))
	}
}

func TestTop_InclusiveFloor(t *testing.T) {
	matches := []matching.Match{
		{User: candidate("a"), Score: 50},
		{User: candidate("b"), Score: 20},
		{User: candidate("c"), Score: 19},
	}

	got := matching.Top(matches, 20, true, 20)
	if len(got) != 2 {
		t.Errorf("Top(>=20) kept %d matches, want 2", len(got))
	}
}

func TestTop_Cap(t *testing.T) {
	var matches []matching.Match
	for i := 0; i < 30; i++ {
		matches = append(matches, matching.Match{User: candidate("x"), Score: 90})
	}

	got := matching.Top(matches, 30, false, 20)
	if len(got) != 20 {
		t.Errorf("Top capped at %d, want 20", len(got))
	}
}
