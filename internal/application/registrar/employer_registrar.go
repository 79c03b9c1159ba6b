package registrar

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jobsboard/integration-bridge/internal/domain/integration"
)

// EmployerRegistrar orchestrates employer registration against MN. Whether an
// employer is registered is derived solely from the presence of its external-ID
// mapping; there is no separate status field. The registrar never retries —
// queue redelivery is the retry boundary.
type EmployerRegistrar struct {
	mappings  integration.EmployerExternalIDRepository
	mn        integration.MNGateway
	converter *EmployerConverter
	logger    *zap.Logger
}

// NewEmployerRegistrar creates a new EmployerRegistrar.
func NewEmployerRegistrar(
	mappings integration.EmployerExternalIDRepository,
	mn integration.MNGateway,
	converter *EmployerConverter,
	logger *zap.Logger,
) *EmployerRegistrar {
	return &EmployerRegistrar{
		mappings:  mappings,
		mn:        mn,
		converter: converter,
		logger:    logger,
	}
}

// RegisterCreation registers a newly created employer with MN. If a mapping
// already exists the call is an idempotent no-op; this is the primary defense
// against duplicate delivery of creation events.
func (r *EmployerRegistrar) RegisterCreation(ctx context.Context, employer *integration.Employer) error {
	exists, err := r.mappings.ExistsByID(ctx, employer.ID)
	if err != nil {
		return r.wrapCreationError(employer, err)
	}
	if exists {
		r.logger.Info("employer already registered, skipping creation",
			zap.String("employer_id", employer.ID),
			zap.String("employer_name", employer.Name),
		)
		return nil
	}

	if err := r.registerCreation(ctx, employer); err != nil {
		return r.wrapCreationError(employer, err)
	}

	r.logger.Info("employer registered",
		zap.String("employer_id", employer.ID),
		zap.String("employer_name", employer.Name),
	)
	return nil
}

func (r *EmployerRegistrar) registerCreation(ctx context.Context, employer *integration.Employer) error {
	request, err := r.converter.Convert(ctx, employer, nil)
	if err != nil {
		return err
	}

	created, err := r.mn.CreateEmployer(ctx, request)
	if err != nil {
		return err
	}
	if created == nil || created.ID == nil {
		return errors.New("MN Employer ID is missing!")
	}

	mapping, err := integration.NewEmployerExternalID(employer.ID, *created.ID)
	if err != nil {
		return err
	}
	// A duplicate here means another consumer created the same mapping between
	// the existence check and this insert; surface it, never swallow it.
	return r.mappings.Save(ctx, mapping)
}

// RegisterUpdate pushes the current employer state to MN. Updates require a
// prior creation; there is no create-on-update fallback.
func (r *EmployerRegistrar) RegisterUpdate(ctx context.Context, employer *integration.Employer) error {
	if err := r.registerUpdate(ctx, employer); err != nil {
		return r.wrapUpdateError(employer, err)
	}

	r.logger.Info("employer update registered",
		zap.String("employer_id", employer.ID),
		zap.String("employer_name", employer.Name),
	)
	return nil
}

func (r *EmployerRegistrar) registerUpdate(ctx context.Context, employer *integration.Employer) error {
	mapping, err := r.mappings.FindByID(ctx, employer.ID)
	if err != nil {
		if errors.Is(err, integration.ErrMappingNotFound) {
			return fmt.Errorf("Employer with id=%s not found (ID mapping missing): %w", employer.ID, err)
		}
		return err
	}

	request, err := r.converter.Convert(ctx, employer, &mapping.ExternalID)
	if err != nil {
		return err
	}

	updated, err := r.mn.UpdateEmployer(ctx, request)
	if err != nil {
		return err
	}
	if updated == nil || updated.ID == nil || *updated.ID != mapping.ExternalID {
		// A changed ID would silently orphan the mapping.
		return errors.New("MN Employer ID has changed!")
	}
	return nil
}

func (r *EmployerRegistrar) wrapCreationError(employer *integration.Employer, err error) error {
	return fmt.Errorf("Fail to register employer-creation; id=%s, name=%s: %w", employer.ID, employer.Name, err)
}

func (r *EmployerRegistrar) wrapUpdateError(employer *integration.Employer, err error) error {
	return fmt.Errorf("Fail to register employer-update; id=%s, name=%s: %w", employer.ID, employer.Name, err)
}
