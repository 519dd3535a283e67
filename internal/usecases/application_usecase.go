package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"team-showcase.backend/internal/domain/entities"
	domainerrors "team-showcase.backend/internal/domain/errors"
	"team-showcase.backend/internal/domain/repositories"
)

const msgApplicationNotFound = "application not found"

// ApplicationUsecase handles join applications
type ApplicationUsecase struct {
	applicationRepo repositories.ApplicationRepository
	now             func() time.Time
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(applicationRepo repositories.ApplicationRepository) *ApplicationUsecase {
	return &ApplicationUsecase{
		applicationRepo: applicationRepo,
		now:             time.Now,
	}
}

// ParseStatusFilter turns the ?status= query value into a filter. Blank means no filter.
func ParseStatusFilter(raw string) (entities.ApplicationFilter, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return entities.ApplicationFilter{}, nil
	}
	status, ok := entities.ParseApplicationStatus(raw)
	if !ok {
		return entities.ApplicationFilter{}, invalidStatus()
	}
	return entities.ApplicationFilter{Status: &status}, nil
}

func invalidStatus() error {
	allowed := make([]string, 0, len(entities.ApplicationStatuses))
	for _, s := range entities.ApplicationStatuses {
		allowed = append(allowed, string(s))
	}
	return domainerrors.BadRequest("invalid status").WithDetails("allowed: " + strings.Join(allowed, ", "))
}

func (u *ApplicationUsecase) ListApplications(ctx context.Context, filter entities.ApplicationFilter) ([]*entities.Application, error) {
	apps, err := u.applicationRepo.List(ctx, filter)
	if err != nil {
		return nil, storeError(err, msgApplicationNotFound, "failed to list applications")
	}
	return apps, nil
}

func (u *ApplicationUsecase) GetApplication(ctx context.Context, id uuid.UUID) (*entities.Application, error) {
	app, err := u.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, msgApplicationNotFound, "failed to get application")
	}
	return app, nil
}

// Submit stores a new pending application.
func (u *ApplicationUsecase) Submit(ctx context.Context, input *entities.SubmitApplicationInput) (*entities.Application, error) {
	if err := requireFields([]string{"name", "email", "skills"}, &input.Name, &input.Email, &input.Skills); err != nil {
		return nil, err
	}
	if !ValidEmail(input.Email) {
		return nil, domainerrors.BadRequest("invalid email format")
	}

	app := &entities.Application{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       strings.TrimSpace(input.Phone),
		Skills:      input.Skills,
		Message:     input.Message,
		Status:      entities.ApplicationStatusPending,
		SubmittedAt: u.now(),
	}
	if err := u.applicationRepo.Create(ctx, app); err != nil {
		return nil, storeError(err, msgApplicationNotFound, "failed to submit application")
	}
	return app, nil
}

// Review sets the status of an application and stamps reviewedAt. Any status may follow any other.
func (u *ApplicationUsecase) Review(ctx context.Context, id uuid.UUID, input *entities.ReviewApplicationInput) (*entities.Application, error) {
	raw := strings.TrimSpace(input.Status)
	if raw == "" {
		return nil, domainerrors.BadRequest("status is required")
	}
	status, ok := entities.ParseApplicationStatus(raw)
	if !ok {
		return nil, invalidStatus()
	}

	app, err := u.applicationRepo.Review(ctx, id, entities.ApplicationReview{
		Status:      status,
		ReviewNotes: input.ReviewNotes,
		ReviewedAt:  u.now(),
	})
	if err != nil {
		return nil, storeError(err, msgApplicationNotFound, "failed to update application")
	}
	return app, nil
}

func (u *ApplicationUsecase) DeleteApplication(ctx context.Context, id uuid.UUID) (*entities.Application, error) {
	app, err := u.applicationRepo.Delete(ctx, id)
	if err != nil {
		return nil, storeError(err, msgApplicationNotFound, "failed to delete application")
	}
	return app, nil
}
