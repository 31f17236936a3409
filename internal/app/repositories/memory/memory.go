// Package memory implements the repository contract on mutex-guarded slices.
// It backs demo mode, where no database is configured. State lives for the
// process lifetime only.
package memory

import (
	"sync"

	"github.com/alumlink/alumlink/internal/app/models"
	"github.com/alumlink/alumlink/internal/app/repositories"
)

// Store holds all demo-mode state behind one lock. The per-entity repository
// types share it.
type Store struct {
	mu sync.RWMutex

	users    []models.User
	jobs     []models.Job
	events   []models.Event
	posts    []models.Post
	bookings []models.Booking

	nextID int64
}

type userRepo struct{ s *Store }
type jobRepo struct{ s *Store }
type eventRepo struct{ s *Store }
type postRepo struct{ s *Store }
type bookingRepo struct{ s *Store }

// New creates an empty in-memory store wrapped in the repository container.
func New() *repositories.Store {
	s := &Store{nextID: 1}
	return repositories.NewStore("memory",
		&userRepo{s}, &jobRepo{s}, &eventRepo{s}, &postRepo{s}, &bookingRepo{s}, nil)
}

// id allocates the next identifier. Callers must hold mu.
func (s *Store) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func cloneUser(u models.User) models.User {
	u.Skills = append([]string(nil), u.Skills...)
	u.Connections = append([]int64(nil), u.Connections...)
	return u
}

func cloneJob(j models.Job) models.Job {
	j.Skills = append([]string(nil), j.Skills...)
	j.Applications = append([]int64(nil), j.Applications...)
	return j
}

func cloneEvent(e models.Event) models.Event {
	e.RSVPs = append([]int64(nil), e.RSVPs...)
	if e.MaxSpots != nil {
		v := *e.MaxSpots
		e.MaxSpots = &v
	}
	return e
}

func clonePost(p models.Post) models.Post {
	p.Likes = append([]int64(nil), p.Likes...)
	p.Comments = append([]models.Comment(nil), p.Comments...)
	return p
}
