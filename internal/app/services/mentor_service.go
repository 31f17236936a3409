package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alumlink/alumlink/internal/app/models"
	"github.com/alumlink/alumlink/internal/app/models/dto"
	"github.com/alumlink/alumlink/internal/app/repositories"
	"github.com/alumlink/alumlink/internal/pkg/apperrors"
)

// MentorService handles the mentor directory and mentorship bookings.
type MentorService interface {
	// ListMentors returns the public directory of active alumni.
	ListMentors(ctx context.Context, filter dto.MentorFilter) ([]dto.Mentor, error)

	// Book creates a pending session with an active alumni mentor.
	Book(ctx context.Context, studentID int64, req dto.BookRequest) (*models.Booking, error)

	// ListBookings returns sessions where the user is the student plus
	// sessions where they are the mentor, both soonest first.
	ListBookings(ctx context.Context, userID int64) (asStudent, asMentor []models.Booking, err error)

	// UpdateBookingStatus transitions a booking. Only the booked mentor or
	// an admin may do this.
	UpdateBookingStatus(ctx context.Context, bookingID, callerID int64, callerRole models.Role, status models.BookingStatus) (*models.Booking, error)
}

type mentorServiceImpl struct {
	userRepo    repositories.UserRepository
	bookingRepo repositories.BookingRepository
	logger      zerolog.Logger
}

// NewMentorService creates a new mentor service instance
func NewMentorService(userRepo repositories.UserRepository, bookingRepo repositories.BookingRepository, logger zerolog.Logger) MentorService {
	return &mentorServiceImpl{userRepo: userRepo, bookingRepo: bookingRepo, logger: logger}
}

func (s *mentorServiceImpl) ListMentors(ctx context.Context, filter dto.MentorFilter) ([]dto.Mentor, error) {
	users, err := s.userRepo.ListMentors(ctx, filter)
	if err != nil {
		return nil, err
	}

	mentors := make([]dto.Mentor, 0, len(users))
	for _, u := range users {
		mentors = append(mentors, dto.Mentor{
			ID:         u.ID,
			Name:       u.Name,
			Skills:     u.Skills,
			Industry:   u.Industry,
			Location:   u.Location,
			ProfilePic: u.ProfilePic,
		})
	}
	return mentors, nil
}

func (s *mentorServiceImpl) Book(ctx context.Context, studentID int64, req dto.BookRequest) (*models.Booking, error) {
	mentor, err := s.userRepo.GetByID(ctx, req.MentorID)
	if err != nil || mentor.Role != models.RoleAlumni || !mentor.IsActive {
		return nil, apperrors.ErrInvalidMentor
	}

	booking := &models.Booking{
		Student:   studentID,
		Mentor:    req.MentorID,
		Date:      req.Date,
		Time:      req.Time,
		Topic:     strings.TrimSpace(req.Topic),
		Status:    models.BookingStatusPending,
		CreatedAt: time.Now(),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("bookingId", booking.ID).Int64("student", studentID).
		Int64("mentor", req.MentorID).Msg("Session booked")

	booking.MentorRef = &models.UserRef{ID: mentor.ID, Name: mentor.Name, Role: mentor.Role}
	if student, err := s.userRepo.GetByID(ctx, studentID); err == nil {
		booking.StudentRef = &models.UserRef{ID: student.ID, Name: student.Name, Role: student.Role}
	}
	return booking, nil
}

func (s *mentorServiceImpl) ListBookings(ctx context.Context, userID int64) ([]models.Booking, []models.Booking, error) {
	asStudent, err := s.bookingRepo.ListForStudent(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	asMentor, err := s.bookingRepo.ListForMentor(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if asStudent == nil {
		asStudent = []models.Booking{}
	}
	if asMentor == nil {
		asMentor = []models.Booking{}
	}

	s.attachRefs(ctx, asStudent)
	s.attachRefs(ctx, asMentor)
	return asStudent, asMentor, nil
}

func (s *mentorServiceImpl) UpdateBookingStatus(ctx context.Context, bookingID, callerID int64, callerRole models.Role, status models.BookingStatus) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Mentor != callerID && callerRole != models.RoleAdmin {
		return nil, apperrors.NewForbiddenError("only the mentor can update this booking")
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("bookingId", bookingID).Str("status", string(status)).Msg("Booking status updated")
	return updated, nil
}

func (s *mentorServiceImpl) attachRefs(ctx context.Context, bookings []models.Booking) {
	cache := map[int64]*models.UserRef{}
	ref := func(id int64) *models.UserRef {
		if r, ok := cache[id]; ok {
			return r
		}
		var r *models.UserRef
		if user, err := s.userRepo.GetByID(ctx, id); err == nil {
			r = &models.UserRef{ID: user.ID, Name: user.Name, Role: user.Role}
		}
		cache[id] = r
		return r
	}
	for i := range bookings {
		bookings[i].StudentRef = ref(bookings[i].Student)
		bookings[i].MentorRef = ref(bookings[i].Mentor)
	}
}
