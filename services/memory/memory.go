package memory

import (
	"context"
	"fmt"
	"strings"

	memoryRepo "konoba/database/repository/memory"
	"konoba/models"
)

const defaultRecallLimit = 5

// Recaller fetches remembered guest facts relevant to a query.
type Recaller interface {
	Recall(ctx context.Context, userID, query string) ([]string, error)
}

// Service is the full guest-memory surface: record at booking time, recall
// during conversation.
type Service interface {
	Recaller
	RememberReservation(ctx context.Context, reservation models.Reservation) error
	GetGuestProfile(ctx context.Context, userID string) (*models.GuestProfile, error)
	Forget(ctx context.Context, userID string) error
}

// DefaultMemoryService stores guest facts in the memory repository.
type DefaultMemoryService struct {
	Repo memoryRepo.MemoryRepository
}

// RememberReservation stores a durable summary of a finalized booking.
func (s *DefaultMemoryService) RememberReservation(ctx context.Context, reservation models.Reservation) error {
	content := fmt.Sprintf("Reserved a table for %d on %s under the name %s",
		reservation.NumberOfGuests,
		reservation.DateTime.Format("2006-01-02 15:04"),
		reservation.UserName,
	)
	if reservation.SpecialRequests != "" {
		content += fmt.Sprintf(" (special request: %s)", reservation.SpecialRequests)
	}

	_, err := s.Repo.Add(ctx, models.MemoryEntry{
		UserID:   reservation.UserID,
		Content:  content,
		Category: "reservation",
	})
	return err
}

// Recall returns the guest's most recent facts. When the query contains a
// keyword that matches some entries, those are preferred; otherwise the most
// recent entries are returned as-is.
func (s *DefaultMemoryService) Recall(ctx context.Context, userID, query string) ([]string, error) {
	entries, err := s.Repo.GetByUserID(ctx, userID, defaultRecallLimit*4)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	var matched, rest []string
	q := strings.ToLower(query)
	for _, e := range entries {
		if q != "" && strings.Contains(strings.ToLower(e.Content), q) {
			matched = append(matched, e.Content)
		} else {
			rest = append(rest, e.Content)
		}
	}

	results := append(matched, rest...)
	if len(results) > defaultRecallLimit {
		results = results[:defaultRecallLimit]
	}
	return results, nil
}

// GetGuestProfile summarizes what is known about a guest.
func (s *DefaultMemoryService) GetGuestProfile(ctx context.Context, userID string) (*models.GuestProfile, error) {
	entries, err := s.Repo.GetByUserID(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	profile := &models.GuestProfile{UserID: userID}
	for _, e := range entries {
		switch e.Category {
		case "reservation":
			profile.PastReservations++
			if profile.LastReservationAt == "" {
				profile.LastReservationAt = e.CreatedAt.Format("2006-01-02")
			}
		case "preference":
			profile.Preferences = append(profile.Preferences, e.Content)
		}
	}
	return profile, nil
}

// Forget removes everything remembered about a guest.
func (s *DefaultMemoryService) Forget(ctx context.Context, userID string) error {
	return s.Repo.DeleteByUserID(ctx, userID)
}
