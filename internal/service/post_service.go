package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/sandeshm27/postline/internal/models"
	"github.com/sandeshm27/postline/internal/repository"
	"github.com/sandeshm27/postline/internal/transfer"
)

type PostService interface {
	Generate(ctx context.Context, channelID string, accountID, requestIP *string) (*transfer.GeneratedPost, error)
	UpdateStatus(ctx context.Context, postID string, status bool, failReason, accountID, requestIP *string) (*models.Post, error)
	History(ctx context.Context, f *transfer.PostHistoryFilter) ([]*transfer.PostHistoryItem, error)
}

type postService struct {
	db *sql.DB
	cr repository.ContentRepository
	mr repository.MediaRepository
	pr repository.PostRepository
	lr repository.PostLogRepository
}

func NewPostService(
	db *sql.DB,
	cr repository.ContentRepository,
	mr repository.MediaRepository,
	pr repository.PostRepository,
	lr repository.PostLogRepository) PostService {
	return &postService{
		db: db,
		cr: cr,
		mr: mr,
		pr: pr,
		lr: lr,
	}
}

// Generate picks the content assigned to the channel, creates an unconfirmed
// post for it and writes the first log row. Post and log land in one
// transaction: a post without its generation log row must never exist.
func (s *postService) Generate(ctx context.Context, channelID string, accountID, requestIP *string) (*transfer.GeneratedPost, error) {
	if channelID == "" {
		return nil, fmt.Errorf("%w: channel id is required", ErrInvalidInput)
	}

	content, err := s.cr.GetFirstByChannelID(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("generate post: %w", err)
	}
	if content == nil {
		slog.Info("no content assigned to channel", "channel_id", channelID)
		return nil, fmt.Errorf("%w: no content for target", ErrNotFound)
	}

	medias, err := s.mr.ListByContentID(ctx, content.ID)
	if err != nil {
		return nil, fmt.Errorf("generate post: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("generate post: failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	post := models.Post{
		ContentID: content.ID,
		ChannelID: channelID,
		AccountID: accountID,
		Status:    false,
	}

	postID, err := s.pr.Create(ctx, tx, &post)
	if err != nil {
		return nil, fmt.Errorf("generate post: %w", err)
	}

	log := models.PostLog{
		PostID:    postID,
		AccountID: accountID,
		RequestIP: requestIP,
	}
	if _, err = s.lr.Create(ctx, tx, &log); err != nil {
		return nil, fmt.Errorf("generate post: logging: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("generate post: failed to commit transaction: %w", err)
	}

	return &transfer.GeneratedPost{
		PostID:  postID,
		Content: content.ContentName,
		Media:   mediaItems(medias),
	}, nil
}

// UpdateStatus overwrites the post's status and fail reason, then appends a
// log row for the transition. There is no guard against flipping an already
// confirmed post back; each flip just adds another log entry.
func (s *postService) UpdateStatus(ctx context.Context, postID string, status bool, failReason, accountID, requestIP *string) (*models.Post, error) {
	if postID == "" {
		return nil, fmt.Errorf("%w: post id is required", ErrInvalidInput)
	}

	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("update post status: %w", err)
	}
	if post == nil {
		slog.Info("post not found", "post_id", postID)
		return nil, fmt.Errorf("%w: post", ErrNotFound)
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("update post status: failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	if err = s.pr.UpdateStatus(ctx, tx, postID, status, failReason); err != nil {
		return nil, fmt.Errorf("update post status: %w", err)
	}

	log := models.PostLog{
		PostID:    postID,
		AccountID: accountID,
		RequestIP: requestIP,
	}
	if _, err = s.lr.Create(ctx, tx, &log); err != nil {
		return nil, fmt.Errorf("update post status: logging: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("update post status: failed to commit transaction: %w", err)
	}

	post.Status = status
	post.FailReason = failReason
	return post, nil
}

// History returns one item per log row matching the filter, not one per post.
// The media list is resolved once since the filter pins a single content.
func (s *postService) History(ctx context.Context, f *transfer.PostHistoryFilter) ([]*transfer.PostHistoryItem, error) {
	if f == nil || f.ContentID == "" || f.AccountID == "" || f.From.IsZero() || f.To.IsZero() {
		return nil, fmt.Errorf("%w: content id, account id and date range are required", ErrInvalidInput)
	}

	logs, err := s.lr.Filter(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("get post history: %w", err)
	}

	items := make([]*transfer.PostHistoryItem, 0, len(logs))
	if len(logs) == 0 {
		return items, nil
	}

	medias, err := s.mr.ListByContentID(ctx, f.ContentID)
	if err != nil {
		return nil, fmt.Errorf("get post history: %w", err)
	}

	media := mediaItems(medias)
	for _, log := range logs {
		items = append(items, &transfer.PostHistoryItem{
			PostID:    log.PostID,
			ContentID: f.ContentID,
			Media:     media,
			RequestIP: log.RequestIP,
			AccountID: log.AccountID,
			CreatedAt: log.CreatedAt,
		})
	}

	return items, nil
}

func mediaItems(medias []*models.Media) []transfer.MediaItem {
	items := make([]transfer.MediaItem, 0, len(medias))
	for _, m := range medias {
		items = append(items, transfer.MediaItem{
			MediaType: m.MediaType,
			MediaURL:  m.MediaURL,
		})
	}
	return items
}
