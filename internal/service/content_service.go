package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sandeshm27/postline/internal/models"
	"github.com/sandeshm27/postline/internal/repository"
	"github.com/sandeshm27/postline/internal/transfer"
)

type ContentService interface {
	Create(ctx context.Context, name string) (*models.Content, error)
	Get(ctx context.Context, id string) (*transfer.ContentDetail, error)
	Rename(ctx context.Context, id, name string) (*models.Content, error)
	Remove(ctx context.Context, id string) (*models.Content, error)
}

type contentService struct {
	cr repository.ContentRepository
	mr repository.MediaRepository
}

func NewContentService(cr repository.ContentRepository, mr repository.MediaRepository) ContentService {
	return &contentService{cr: cr, mr: mr}
}

func (s *contentService) Create(ctx context.Context, name string) (*models.Content, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: content name is required", ErrInvalidInput)
	}

	content, err := s.cr.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}

	return content, nil
}

// Get returns the content together with its media list.
func (s *contentService) Get(ctx context.Context, id string) (*transfer.ContentDetail, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: content id is required", ErrInvalidInput)
	}

	content, err := s.cr.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}
	if content == nil {
		slog.Info("content not found", "content_id", id)
		return nil, fmt.Errorf("%w: content", ErrNotFound)
	}

	medias, err := s.mr.ListByContentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}

	media := make([]transfer.ContentMedia, 0, len(medias))
	for _, m := range medias {
		media = append(media, transfer.ContentMedia{
			ID:        m.ID,
			MediaType: m.MediaType,
			MediaURL:  m.MediaURL,
		})
	}

	return &transfer.ContentDetail{
		ID:          content.ID,
		ContentName: content.ContentName,
		Media:       media,
		CreatedAt:   content.CreatedAt,
	}, nil
}

func (s *contentService) Rename(ctx context.Context, id, name string) (*models.Content, error) {
	if id == "" || name == "" {
		return nil, fmt.Errorf("%w: content id and name are required", ErrInvalidInput)
	}

	content, err := s.cr.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("rename content: %w", err)
	}
	if content == nil {
		slog.Info("content not found", "content_id", id)
		return nil, fmt.Errorf("%w: content", ErrNotFound)
	}

	if err := s.cr.UpdateName(ctx, id, name); err != nil {
		return nil, fmt.Errorf("rename content: %w", err)
	}

	content.ContentName = name
	return content, nil
}

func (s *contentService) Remove(ctx context.Context, id string) (*models.Content, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: content id is required", ErrInvalidInput)
	}

	content, err := s.cr.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("remove content: %w", err)
	}
	if content == nil {
		return nil, fmt.Errorf("%w: content", ErrNotFound)
	}

	if err := s.cr.Remove(ctx, id); err != nil {
		return nil, fmt.Errorf("remove content: %w", err)
	}

	return content, nil
}
