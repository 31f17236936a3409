package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alumlink/alumlink/internal/app/models"
	"github.com/alumlink/alumlink/internal/app/models/dto"
	"github.com/alumlink/alumlink/internal/app/repositories"
	"github.com/alumlink/alumlink/internal/app/repositories/memory"
	"github.com/alumlink/alumlink/internal/pkg/apperrors"
)

func newStore() *repositories.Store {
	return memory.New()
}

func mustCreateUser(t *testing.T, store *repositories.Store, name, email string, role models.Role, skills ...string) *models.User {
	t.Helper()
	u := &models.User{
		Name: name, Email: email, Password: "x", Role: role,
		Skills: skills, IsActive: true, Joined: time.Now(),
	}
	if err := store.Users.Create(context.Background(), u); err != nil {
		t.Fatalf("Create(%s) failed: %v", email, err)
	}
	return u
}

// --- users ---

func TestUserCreate_DuplicateEmail(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	mustCreateUser(t, store, "a", "dup@example.com", models.RoleStudent)

	err := store.Users.Create(ctx, &models.User{Name: "b", Email: "DUP@Example.com "})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("duplicate email error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestUserGetByEmail_Normalizes(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	created := mustCreateUser(t, store, "a", "Mixed@Example.COM", models.RoleStudent)

	got, err := store.Users.GetByEmail(ctx, "  mixed@example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("GetByEmail returned id %d, want %d", got.ID, created.ID)
	}
}

func TestAddConnection_DirectedAndIdempotent(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	from := mustCreateUser(t, store, "from", "from@example.com", models.RoleStudent)
	to := mustCreateUser(t, store, "to", "to@example.com", models.RoleAlumni)

	for i := 0; i < 2; i++ {
		if err := store.Users.AddConnection(ctx, from.ID, to.ID); err != nil {
			t.Fatalf("AddConnection failed: %v", err)
		}
	}

	gotFrom, _ := store.Users.GetByID(ctx, from.ID)
	if len(gotFrom.Connections) != 1 || gotFrom.Connections[0] != to.ID {
		t.Errorf("from.Connections = %v, want [%d]", gotFrom.Connections, to.ID)
	}

	// No reciprocal edge.
	gotTo, _ := store.Users.GetByID(ctx, to.ID)
	if len(gotTo.Connections) != 0 {
		t.Errorf("to.Connections = %v, want empty", gotTo.Connections)
	}
}

func TestAddConnection_MissingEndpointIsNoOp(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	from := mustCreateUser(t, store, "from", "from@example.com", models.RoleStudent)

	if err := store.Users.AddConnection(ctx, from.ID, 9999); err != nil {
		t.Errorf("AddConnection to missing user returned %v, want nil", err)
	}

	got, _ := store.Users.GetByID(ctx, from.ID)
	if len(got.Connections) != 0 {
		t.Errorf("Connections = %v, want empty", got.Connections)
	}
}

func TestListMentors_ExactSkillMembership(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	mustCreateUser(t, store, "js", "js@example.com", models.RoleAlumni, "JavaScript")
	java := mustCreateUser(t, store, "java", "java@example.com", models.RoleAlumni, "Java")
	mustCreateUser(t, store, "student", "s@example.com", models.RoleStudent, "Java")

	// Directory filtering is exact membership: "Java" does not match the
	// mentor whose skill is "JavaScript".
	mentors, err := store.Users.ListMentors(ctx, dto.MentorFilter{Skills: "Java"})
	if err != nil {
		t.Fatalf("ListMentors failed: %v", err)
	}
	if len(mentors) != 1 || mentors[0].ID != java.ID {
		t.Errorf("ListMentors(Java) = %d results, want only the exact Java mentor", len(mentors))
	}
}

func TestListMentors_ExcludesInactive(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	inactive := &models.User{
		Name: "gone", Email: "gone@example.com", Role: models.RoleAlumni,
		IsActive: false, Joined: time.Now(),
	}
	if err := store.Users.Create(ctx, inactive); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	mentors, err := store.Users.ListMentors(ctx, dto.MentorFilter{})
	if err != nil {
		t.Fatalf("ListMentors failed: %v", err)
	}
	if len(mentors) != 0 {
		t.Errorf("ListMentors returned %d mentors, want 0", len(mentors))
	}
}

// --- jobs ---

func TestJobApply_IdempotentAndGuarded(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	poster := mustCreateUser(t, store, "p", "p@example.com", models.RoleAlumni)
	applicant := mustCreateUser(t, store, "a", "a@example.com", models.RoleStudent)

	job := &models.Job{
		Title: "SDE", Company: "Acme", PostedBy: poster.ID,
		Status: models.JobStatusOpen, PostedAt: time.Now(),
	}
	if err := store.Jobs.Create(ctx, job); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := store.Jobs.AddApplication(ctx, job.ID, applicant.ID); err != nil {
			t.Fatalf("AddApplication failed: %v", err)
		}
	}

	got, _ := store.Jobs.GetByID(ctx, job.ID)
	if len(got.Applications) != 1 {
		t.Errorf("Applications = %v, want exactly one entry", got.Applications)
	}
}

func TestJobApply_ClosedJob(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	poster := mustCreateUser(t, store, "p", "p@example.com", models.RoleAlumni)
	job := &models.Job{
		Title: "Old", Company: "Acme", PostedBy: poster.ID,
		Status: models.JobStatusClosed, PostedAt: time.Now(),
	}
	if err := store.Jobs.Create(ctx, job); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err := store.Jobs.AddApplication(ctx, job.ID, poster.ID)
	if !errors.Is(err, apperrors.ErrJobNotFoundOrClosed) {
		t.Errorf("apply to closed job error = %v, want ErrJobNotFoundOrClosed", err)
	}

	err = store.Jobs.AddApplication(ctx, 9999, poster.ID)
	if !errors.Is(err, apperrors.ErrJobNotFoundOrClosed) {
		t.Errorf("apply to missing job error = %v, want ErrJobNotFoundOrClosed", err)
	}
}

func TestJobList_FiltersAndPaginates(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	poster := mustCreateUser(t, store, "p", "p@example.com", models.RoleAlumni)

	base := time.Now()
	for i := 0; i < 15; i++ {
		job := &models.Job{
			Title: "Job", Company: "Acme", Location: "Bangalore",
			Type: models.JobTypeInternship, Skills: []string{"Go"},
			PostedBy: poster.ID, Status: models.JobStatusOpen,
			PostedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.Jobs.Create(ctx, job); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	closed := &models.Job{
		Title: "Closed", Company: "Acme", PostedBy: poster.ID,
		Status: models.JobStatusClosed, PostedAt: base,
	}
	if err := store.Jobs.Create(ctx, closed); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	jobs, total, err := store.Jobs.List(ctx, dto.JobFilter{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 15 {
		t.Errorf("total = %d, want 15 (closed jobs excluded)", total)
	}
	if len(jobs) != 5 {
		t.Errorf("page 2 size = %d, want 5", len(jobs))
	}

	// Newest first.
	first, _, err := store.Jobs.List(ctx, dto.JobFilter{Page: 1, Limit: 1})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if !first[0].PostedAt.After(jobs[0].PostedAt) {
		t.Errorf("first page should hold the newest job")
	}

	// Location filter is a case-insensitive substring.
	byLoc, total, err := store.Jobs.List(ctx, dto.JobFilter{Location: "bang", Page: 1, Limit: 50})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 15 || len(byLoc) != 15 {
		t.Errorf("location filter matched %d, want 15", total)
	}

	// Skill filter is exact membership.
	_, total, err = store.Jobs.List(ctx, dto.JobFilter{Skill: "G", Page: 1, Limit: 50})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 0 {
		t.Errorf("partial skill matched %d jobs, want 0", total)
	}
}

// --- events ---

func TestEventRSVP_CapacityAndIdempotence(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	organizer := mustCreateUser(t, store, "o", "o@example.com", models.RoleAlumni)
	a := mustCreateUser(t, store, "a", "a@example.com", models.RoleStudent)
	b := mustCreateUser(t, store, "b", "b@example.com", models.RoleStudent)
	c := mustCreateUser(t, store, "c", "c@example.com", models.RoleStudent)

	spots := 2
	event := &models.Event{
		Title: "Meetup", Date: time.Now().Add(24 * time.Hour),
		Organizer: organizer.ID, MaxSpots: &spots,
		Status: models.EventStatusUpcoming,
	}
	if err := store.Events.Create(ctx, event); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := store.Events.AddRSVP(ctx, event.ID, a.ID)
	if err != nil {
		t.Fatalf("first RSVP failed: %v", err)
	}
	if left := updated.SpotsLeft(); left == nil || *left != 1 {
		t.Errorf("SpotsLeft after first RSVP = %v, want 1", left)
	}

	// Repeat RSVP succeeds without consuming a spot.
	updated, err = store.Events.AddRSVP(ctx, event.ID, a.ID)
	if err != nil {
		t.Fatalf("repeat RSVP failed: %v", err)
	}
	if left := updated.SpotsLeft(); left == nil || *left != 1 {
		t.Errorf("SpotsLeft after repeat RSVP = %v, want 1", left)
	}

	if _, err := store.Events.AddRSVP(ctx, event.ID, b.ID); err != nil {
		t.Fatalf("second RSVP failed: %v", err)
	}

	_, err = store.Events.AddRSVP(ctx, event.ID, c.ID)
	if !errors.Is(err, apperrors.ErrEventFull) {
		t.Errorf("RSVP past capacity error = %v, want ErrEventFull", err)
	}
}

func TestEventRSVP_UncappedSpotsLeftNil(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	organizer := mustCreateUser(t, store, "o", "o@example.com", models.RoleAlumni)
	event := &models.Event{
		Title: "Open house", Date: time.Now().Add(24 * time.Hour),
		Organizer: organizer.ID, Status: models.EventStatusUpcoming,
	}
	if err := store.Events.Create(ctx, event); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := store.Events.AddRSVP(ctx, event.ID, organizer.ID)
	if err != nil {
		t.Fatalf("RSVP failed: %v", err)
	}
	if updated.SpotsLeft() != nil {
		t.Errorf("SpotsLeft = %v, want nil for uncapped event", updated.SpotsLeft())
	}
}

func TestEventRSVP_CompletedOrMissing(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	organizer := mustCreateUser(t, store, "o", "o@example.com", models.RoleAlumni)
	event := &models.Event{
		Title: "Past", Date: time.Now().Add(-24 * time.Hour),
		Organizer: organizer.ID, Status: models.EventStatusCompleted,
	}
	if err := store.Events.Create(ctx, event); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err := store.Events.AddRSVP(ctx, event.ID, organizer.ID)
	if !errors.Is(err, apperrors.ErrEventNotFoundOrCompleted) {
		t.Errorf("RSVP on completed event error = %v, want ErrEventNotFoundOrCompleted", err)
	}

	_, err = store.Events.AddRSVP(ctx, 9999, organizer.ID)
	if !errors.Is(err, apperrors.ErrEventNotFoundOrCompleted) {
		t.Errorf("RSVP on missing event error = %v, want ErrEventNotFoundOrCompleted", err)
	}
}

func TestEventList_OnlyFutureSortedAscending(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	organizer := mustCreateUser(t, store, "o", "o@example.com", models.RoleAlumni)
	now := time.Now()

	for _, offset := range []time.Duration{-48 * time.Hour, 72 * time.Hour, 24 * time.Hour} {
		e := &models.Event{
			Title: "E", Date: now.Add(offset), Organizer: organizer.ID,
			Status: models.EventStatusUpcoming,
		}
		if err := store.Events.Create(ctx, e); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	events, total, err := store.Events.List(ctx, dto.EventFilter{Page: 1, Limit: 10}, now)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2 (past event excluded)", total)
	}
	if len(events) == 2 && events[0].Date.After(events[1].Date) {
		t.Errorf("events should sort soonest first")
	}
}

// --- posts ---

func TestPostToggleLike_RoundTrip(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	author := mustCreateUser(t, store, "a", "a@example.com", models.RoleStudent)
	post := &models.Post{Content: "hi", Category: models.PostCategoryGeneral,
		Author: author.ID, CreatedAt: time.Now()}
	if err := store.Posts.Create(ctx, post); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	liked, err := store.Posts.ToggleLike(ctx, post.ID, author.ID)
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if len(liked.Likes) != 1 {
		t.Errorf("Likes after first toggle = %v, want one entry", liked.Likes)
	}

	unliked, err := store.Posts.ToggleLike(ctx, post.ID, author.ID)
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if len(unliked.Likes) != 0 {
		t.Errorf("Likes after second toggle = %v, want empty", unliked.Likes)
	}
}

func TestPostAddComment(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	author := mustCreateUser(t, store, "a", "a@example.com", models.RoleStudent)
	post := &models.Post{Content: "hi", Category: models.PostCategoryGeneral,
		Author: author.ID, CreatedAt: time.Now()}
	if err := store.Posts.Create(ctx, post); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := store.Posts.AddComment(ctx, post.ID, author.ID, "  nice post  ")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if len(updated.Comments) != 1 {
		t.Fatalf("Comments = %d, want 1", len(updated.Comments))
	}
	if updated.Comments[0].Content != "nice post" {
		t.Errorf("comment content = %q, want trimmed %q", updated.Comments[0].Content, "nice post")
	}

	_, err = store.Posts.AddComment(ctx, 9999, author.ID, "x")
	if !errors.Is(err, apperrors.ErrPostNotFound) {
		t.Errorf("comment on missing post error = %v, want ErrPostNotFound", err)
	}
}

func TestPostList_SearchAndCategory(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	author := mustCreateUser(t, store, "a", "a@example.com", models.RoleStudent)
	posts := []*models.Post{
		{Content: "Looking for referrals", Category: models.PostCategoryJob, Author: author.ID, CreatedAt: time.Now()},
		{Content: "Interview advice thread", Category: models.PostCategoryAdvice, Author: author.ID, CreatedAt: time.Now()},
	}
	for _, p := range posts {
		if err := store.Posts.Create(ctx, p); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	_, total, err := store.Posts.List(ctx, dto.PostFilter{Category: "job", Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 {
		t.Errorf("category filter total = %d, want 1", total)
	}

	_, total, err = store.Posts.List(ctx, dto.PostFilter{Search: "ADVICE", Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 {
		t.Errorf("search filter total = %d, want 1", total)
	}
}

// --- bookings ---

func TestBookingUpdateStatus(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	student := mustCreateUser(t, store, "s", "s@example.com", models.RoleStudent)
	mentor := mustCreateUser(t, store, "m", "m@example.com", models.RoleAlumni)

	booking := &models.Booking{
		Student: student.ID, Mentor: mentor.ID,
		Date: time.Now().Add(48 * time.Hour), Status: models.BookingStatusPending,
		CreatedAt: time.Now(),
	}
	if err := store.Bookings.Create(ctx, booking); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := store.Bookings.UpdateStatus(ctx, booking.ID, models.BookingStatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != models.BookingStatusConfirmed {
		t.Errorf("status = %s, want confirmed", updated.Status)
	}

	_, err = store.Bookings.UpdateStatus(ctx, 9999, models.BookingStatusConfirmed)
	if !errors.Is(err, apperrors.ErrBookingNotFound) {
		t.Errorf("missing booking error = %v, want ErrBookingNotFound", err)
	}
}

func TestBookingList_SortedByDate(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	student := mustCreateUser(t, store, "s", "s@example.com", models.RoleStudent)
	mentor := mustCreateUser(t, store, "m", "m@example.com", models.RoleAlumni)

	later := &models.Booking{Student: student.ID, Mentor: mentor.ID,
		Date: time.Now().Add(96 * time.Hour), Status: models.BookingStatusPending, CreatedAt: time.Now()}
	sooner := &models.Booking{Student: student.ID, Mentor: mentor.ID,
		Date: time.Now().Add(24 * time.Hour), Status: models.BookingStatusPending, CreatedAt: time.Now()}
	for _, b := range []*models.Booking{later, sooner} {
		if err := store.Bookings.Create(ctx, b); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	got, err := store.Bookings.ListForStudent(ctx, student.ID)
	if err != nil {
		t.Fatalf("ListForStudent failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != sooner.ID {
		t.Errorf("bookings should sort soonest first, got %v first", got[0].ID)
	}

	asMentor, err := store.Bookings.ListForMentor(ctx, mentor.ID)
	if err != nil {
		t.Fatalf("ListForMentor failed: %v", err)
	}
	if len(asMentor) != 2 {
		t.Errorf("mentor sees %d bookings, want 2", len(asMentor))
	}
}
