// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"log/slog"
)

// Service exposes the tag vocabulary.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListTags(ctx context.Context) ([]Tag, error) {
	return service.repo.List(ctx)
}

func (service *Service) GetTag(ctx context.Context, id int) (*Tag, error) {
	return service.repo.FindByID(ctx, id)
}
