// Package repositories defines the storage contract shared by the durable
// Postgres store and the in-memory demo store. Both implementations satisfy
// the same interfaces; the backend is chosen once at startup, so no handler
// ever branches on store kind.
package repositories

import (
	"context"
	"time"

	"github.com/alumlink/alumlink/internal/app/models"
	"github.com/alumlink/alumlink/internal/app/models/dto"
)

// UserRepository handles user persistence and the connection graph.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)

	// ListExcept returns every user except excludeID (0 excludes nobody).
	// This is the matcher's candidate pool.
	ListExcept(ctx context.Context, excludeID int64) ([]models.User, error)

	// ListMentors returns active alumni matching the mentor directory filter.
	ListMentors(ctx context.Context, filter dto.MentorFilter) ([]models.User, error)

	// AddConnection records a directed edge from one user to another.
	// Inserting an existing edge is a no-op. No reciprocal edge is created.
	AddConnection(ctx context.Context, fromID, toID int64) error

	Count(ctx context.Context) (int, error)
	CountMentors(ctx context.Context) (int, error)
	CountJoinedSince(ctx context.Context, since time.Time) (int, error)
	ListAll(ctx context.Context) ([]models.User, error)
}

// JobRepository handles job postings and applications.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id int64) (*models.Job, error)

	// List returns one page of open jobs matching the filter, newest first,
	// along with the total match count.
	List(ctx context.Context, filter dto.JobFilter) ([]models.Job, int, error)

	ListByPoster(ctx context.Context, userID int64) ([]models.Job, error)
	ListApplied(ctx context.Context, userID int64) ([]models.Job, error)

	// AddApplication inserts the applicant into the job's application set.
	// Re-applying is a no-op. Returns ErrJobNotFoundOrClosed when the job is
	// missing or closed.
	AddApplication(ctx context.Context, jobID, userID int64) error

	Count(ctx context.Context) (int, error)
	CountPostedSince(ctx context.Context, since time.Time) (int, error)
	ListAll(ctx context.Context) ([]models.Job, error)
}

// EventRepository handles events and RSVPs.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id int64) (*models.Event, error)

	// List returns one page of events dated now or later, soonest first,
	// along with the total match count.
	List(ctx context.Context, filter dto.EventFilter, now time.Time) ([]models.Event, int, error)

	// ListForUser returns events the user organizes or has RSVP'd to.
	ListForUser(ctx context.Context, userID int64) ([]models.Event, error)

	// AddRSVP inserts the user into the event's RSVP set and returns the
	// updated event. Repeat RSVPs are no-op successes. Returns
	// ErrEventNotFoundOrCompleted or ErrEventFull on precondition failure.
	AddRSVP(ctx context.Context, eventID, userID int64) (*models.Event, error)

	Count(ctx context.Context) (int, error)
	CountUpcoming(ctx context.Context, now time.Time) (int, error)
	ListAll(ctx context.Context) ([]models.Event, error)
}

// PostRepository handles forum posts, likes and comments.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id int64) (*models.Post, error)

	// List returns one page of posts matching the filter, newest first,
	// along with the total match count.
	List(ctx context.Context, filter dto.PostFilter) ([]models.Post, int, error)

	ListByAuthor(ctx context.Context, userID int64) ([]models.Post, error)

	// ToggleLike adds the user to the like set, or removes them when already
	// present, and returns the updated post.
	ToggleLike(ctx context.Context, postID, userID int64) (*models.Post, error)

	// AddComment appends a comment and returns the updated post.
	AddComment(ctx context.Context, postID, userID int64, content string) (*models.Post, error)

	Count(ctx context.Context) (int, error)
	ListAll(ctx context.Context) ([]models.Post, error)
}

// BookingRepository handles mentorship bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id int64) (*models.Booking, error)
	ListForStudent(ctx context.Context, userID int64) ([]models.Booking, error)
	ListForMentor(ctx context.Context, userID int64) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status models.BookingStatus) (*models.Booking, error)

	Count(ctx context.Context) (int, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
}

// Store bundles the repositories backed by one storage engine.
type Store struct {
	Users    UserRepository
	Jobs     JobRepository
	Events   EventRepository
	Posts    PostRepository
	Bookings BookingRepository

	driver string
	closer func()
}

// NewStore assembles a Store. closer may be nil.
func NewStore(driver string, users UserRepository, jobs JobRepository, events EventRepository, posts PostRepository, bookings BookingRepository, closer func()) *Store {
	return &Store{
		Users:    users,
		Jobs:     jobs,
		Events:   events,
		Posts:    posts,
		Bookings: bookings,
		driver:   driver,
		closer:   closer,
	}
}

// Driver names the backing storage engine ("postgres" or "memory").
func (s *Store) Driver() string {
	return s.driver
}

// Close releases backend resources.
func (s *Store) Close() {
	if s.closer != nil {
		s.closer()
	}
}
