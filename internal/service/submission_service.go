package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salgadostudio/booking-site/internal/models"
	"github.com/salgadostudio/booking-site/internal/repository"
)

// ErrValidation is returned when a required intake field is missing. Its
// text is the user-facing message.
var ErrValidation = errors.New("First name, last name, and email are required.")

type SubmissionService struct {
	subs *repository.SubmissionRepo
}

func NewSubmissionService(subs *repository.SubmissionRepo) *SubmissionService {
	return &SubmissionService{subs: subs}
}

// Submit normalizes a raw public intake payload, validates the required
// fields, and persists the new submission. Validation runs before any store
// interaction, so a rejected payload never touches the file.
func (s *SubmissionService) Submit(raw map[string]string) (*models.Submission, error) {
	sub := normalizeSubmission(raw)
	if sub.FirstName == "" || sub.LastName == "" || sub.Email == "" {
		return nil, ErrValidation
	}
	sub.ID = newSubmissionID()
	sub.SubmittedAt = time.Now().UTC().Format(time.RFC3339)
	sub.LookedAt = false
	if err := s.subs.Insert(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// List returns the stored collection verbatim, newest first.
func (s *SubmissionService) List() ([]models.Submission, error) {
	return s.subs.List()
}

// SetLookedAt flips the admin seen-flag on one submission.
func (s *SubmissionService) SetLookedAt(id string, lookedAt bool) (*models.Submission, error) {
	return s.subs.Update(id, func(sub *models.Submission) {
		sub.LookedAt = lookedAt
	})
}

// Delete removes one submission.
func (s *SubmissionService) Delete(id string) error {
	return s.subs.Delete(id)
}

func normalizeSubmission(raw map[string]string) *models.Submission {
	field := func(name string) string {
		return strings.TrimSpace(raw[name])
	}
	return &models.Submission{
		FirstName:                field("firstName"),
		LastName:                 field("lastName"),
		Email:                    field("email"),
		BirthPlace:               field("birthPlace"),
		BirthDate:                field("birthDate"),
		BirthTime:                field("birthTime"),
		PersonalPower:            field("personalPower"),
		FragmentedAreas:          field("fragmentedAreas"),
		FullyYourselfMoment:      field("fullyYourselfMoment"),
		AlignmentInvestment:      field("alignmentInvestment"),
		AlignedSeenSupported:     field("alignedSeenSupported"),
		WitnessedTrueSelf:        field("witnessedTrueSelf"),
		FirstCallPreference:      field("firstCallPreference"),
		FirstCallPreferenceOther: field("firstCallPreferenceOther"),
	}
}

// newSubmissionID keeps the timestamp prefix of the original ids but appends
// a random fragment so two submissions in the same millisecond cannot
// collide.
func newSubmissionID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
