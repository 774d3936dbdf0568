package usecases

import (
	"context"
	"errors"

	"github.com/localshop/storefront/internal/domain/catalog"
	"github.com/localshop/storefront/internal/shared/db"
	apperrors "github.com/localshop/storefront/internal/shared/errors"
	"github.com/localshop/storefront/internal/shared/logger"
)

type ListCategoriesUseCase struct {
	categoryRepo catalog.CategoryRepository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo catalog.CategoryRepository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, activeOnly bool) ([]*catalog.Category, error) {
	categories, err := uc.categoryRepo.List(ctx, activeOnly)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, apperrors.NewInternalError("failed to list categories").WithCause(err)
	}
	return categories, nil
}

type CreateCategoryCommand struct {
	Name         string
	Slug         string
	Description  string
	DisplayOrder int
}

type CreateCategoryUseCase struct {
	categoryRepo catalog.CategoryRepository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo catalog.CategoryRepository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*catalog.Category, error) {
	category, err := catalog.NewCategory(cmd.Name, cmd.Slug, cmd.Description, cmd.DisplayOrder)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid category", err.Error())
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("category slug already exists", category.Slug())
		}
		uc.logger.Errorw("failed to create category", "error", err)
		return nil, apperrors.NewInternalError("failed to create category").WithCause(err)
	}

	uc.logger.Infow("category created", "category_id", category.ID(), "slug", category.Slug())
	return category, nil
}

type ReorderCategoriesUseCase struct {
	categoryRepo catalog.CategoryRepository
	txManager    db.Transactor
	logger       logger.Interface
}

func NewReorderCategoriesUseCase(categoryRepo catalog.CategoryRepository, txManager db.Transactor, logger logger.Interface) *ReorderCategoriesUseCase {
	return &ReorderCategoriesUseCase{
		categoryRepo: categoryRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute applies every position change in one transaction and returns the
// categories in their new order.
func (uc *ReorderCategoriesUseCase) Execute(ctx context.Context, updates []catalog.DisplayOrderUpdate) ([]*catalog.Category, error) {
	if err := catalog.ValidateReorder(updates); err != nil {
		return nil, apperrors.NewValidationError("invalid reorder request", err.Error())
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, u := range updates {
			if err := uc.categoryRepo.UpdateDisplayOrder(txCtx, u.CategoryID, u.DisplayOrder); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			return nil, apperrors.NewNotFoundError("category not found", err.Error())
		}
		uc.logger.Errorw("failed to reorder categories", "error", err)
		return nil, apperrors.NewInternalError("failed to reorder categories").WithCause(err)
	}

	uc.logger.Infow("categories reordered", "count", len(updates))

	return uc.categoryRepo.List(ctx, false)
}
