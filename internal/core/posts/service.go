package posts

import (
	"context"
	"errors"
	"fmt"
	"log"
	"unicode/utf8"

	"Agora/internal/core/threads"
	"Agora/internal/core/users"
)

type postService struct {
	repo          Repository
	threadService threads.Service
}

// NewPostService creates a new post service
func NewPostService(repo Repository, threadService threads.Service) Service {
	return &postService{
		repo:          repo,
		threadService: threadService,
	}
}

// ListOwnPosts returns the actor's posts, newest first
func (s *postService) ListOwnPosts(ctx context.Context, actor *users.User) ([]*Post, error) {
	return s.repo.ListByAuthor(ctx, actor.ID)
}

// CreatePost creates a post in a thread
// Flow:
// 1. Validate text
// 2. Force author to the authenticated actor (prevents impersonation)
// 3. Insert; the store's foreign key surfaces a missing thread
func (s *postService) CreatePost(ctx context.Context, actor *users.User, req CreatePostRequest) (*Post, error) {
	if err := validateText(req.Text); err != nil {
		return nil, err
	}

	if req.AuthorID != 0 && req.AuthorID != actor.ID {
		log.Printf("[POST-CREATE] ignoring caller-supplied author %d, forcing actor %d", req.AuthorID, actor.ID)
	}

	post := &Post{
		AuthorID: actor.ID, // always the actor, whatever the request said
		ThreadID: req.ThreadID,
		Text:     req.Text,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		if errors.Is(err, ErrThreadNotFound) {
			return nil, ErrThreadNotFound
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return created, nil
}

// UpdatePost replaces a post's text after checking the three-tier policy.
// An actor who isn't allowed to touch the post gets the same ErrPostNotFound
// as for a post that doesn't exist.
func (s *postService) UpdatePost(ctx context.Context, actor *users.User, postID int64, text string) (*Post, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}

	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to load post %d: %w", postID, err)
	}

	thread, err := s.threadService.GetThread(ctx, post.ThreadID)
	if err != nil {
		// The post's thread reference is required and immutable; failing to
		// load it is an infrastructure problem, not a client outcome.
		return nil, fmt.Errorf("failed to load thread %d for post %d: %w", post.ThreadID, postID, err)
	}

	isAuthor := post.AuthorID == actor.ID
	moderatesThread := thread.ModeratorID != nil && *thread.ModeratorID == actor.ID

	if !canUpdate(actor.Role, isAuthor, moderatesThread) {
		return nil, ErrPostNotFound
	}

	updated, err := s.repo.UpdateText(ctx, postID, text)
	if err != nil {
		return nil, fmt.Errorf("failed to update post %d: %w", postID, err)
	}

	return updated, nil
}

// validateText enforces the post text bounds shared by create and update
func validateText(text string) error {
	if text == "" {
		return NewValidationError("text", "text is required")
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return NewValidationError("text",
			fmt.Sprintf("text too long (max %d characters)", MaxTextLength))
	}
	return nil
}
