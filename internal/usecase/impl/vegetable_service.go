package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "greengrocer/internal/delivery/context"
	"greengrocer/internal/domain/entity"
	domainerrors "greengrocer/internal/domain/errors"
	"greengrocer/internal/domain/repository"
	"greengrocer/internal/errors"
	"greengrocer/internal/usecase"

	"github.com/google/uuid"
)

type vegetableService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewVegetableService is the constructor for vegetableService.
func NewVegetableService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.VegetableUsecase {
	return &vegetableService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *vegetableService) ListVegetables(ctx context.Context, page entity.Pagination) (*entity.Page[entity.Vegetable], error) {
	if err := validatePagination(page); err != nil {
		return nil, err
	}

	var (
		vegetables []*entity.Vegetable
		total      int64
	)

	err := srv.txManager.ExecuteReadOnly(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		vegetables, total, err = repoFactory.VegetableRepo().List(ctx, page)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vegetables")
	}

	return entity.NewPage(vegetables, total, page), nil
}

func (srv *vegetableService) GetVegetable(ctx context.Context, id uuid.UUID) (*entity.Vegetable, error) {
	var vegetable *entity.Vegetable

	err := srv.txManager.ExecuteReadOnly(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.VegetableRepo().FindByID(ctx, id)
		if err != nil {
			return vegetableKind.translate(err, id, "failed to find vegetable")
		}
		vegetable = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return vegetable, nil
}

func (srv *vegetableService) CreateVegetable(ctx context.Context, input *usecase.VegetableInput) (*entity.Vegetable, error) {
	if err := validateVegetableInput(input); err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	vegetable := &entity.Vegetable{ID: id}
	applyVegetableInput(vegetable, input)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.VegetableRepo().Create(ctx, vegetable)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create vegetable")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Vegetable created",
		slog.String("vegetableID", id.String()),
		slog.String("title", vegetable.Title),
	)

	return vegetable, nil
}

func (srv *vegetableService) UpdateVegetable(ctx context.Context, id uuid.UUID, input *usecase.VegetableInput) (*entity.Vegetable, error) {
	if err := validateVegetableInput(input); err != nil {
		return nil, err
	}

	var vegetable *entity.Vegetable

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		vegetableRepo := repoFactory.VegetableRepo()

		found, err := vegetableRepo.FindByID(ctx, id)
		if err != nil {
			return vegetableKind.translate(err, id, "failed to find vegetable")
		}

		applyVegetableInput(found, input)
		if err := vegetableRepo.Update(ctx, found); err != nil {
			return vegetableKind.translate(err, id, "failed to update vegetable")
		}
		vegetable = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return vegetable, nil
}

func (srv *vegetableService) DeleteVegetable(ctx context.Context, id uuid.UUID) (*entity.Vegetable, error) {
	var vegetable *entity.Vegetable

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		vegetableRepo := repoFactory.VegetableRepo()

		found, err := vegetableRepo.FindByID(ctx, id)
		if err != nil {
			return vegetableKind.translate(err, id, "failed to find vegetable")
		}

		if err := vegetableRepo.Delete(ctx, id); err != nil {
			return vegetableKind.translate(err, id, "failed to delete vegetable")
		}
		vegetable = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Vegetable deleted", slog.String("vegetableID", id.String()))

	return vegetable, nil
}

func validateVegetableInput(input *usecase.VegetableInput) error {
	if input == nil || strings.TrimSpace(input.Title) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	return nil
}

// applyVegetableInput overwrites every mutable field, zero values included.
func applyVegetableInput(vegetable *entity.Vegetable, input *usecase.VegetableInput) {
	vegetable.Title = input.Title
	vegetable.Weight = input.Weight
	vegetable.Price = input.Price
	vegetable.Length = input.Length
}
