// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"reviewpress/internal/layout"
	"reviewpress/internal/models"
)

// ErrUnauthorized is returned when a write is attempted without a
// signed-in user.
var ErrUnauthorized = errors.New("editor: not signed in")

// ContentRepository reads and writes content rows.
type ContentRepository interface {
	FindExpanded(ctx context.Context, id uuid.UUID) (*models.ExpandedContent, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Content, error)
	Upsert(ctx context.Context, c *models.Content) (*models.Content, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.ContentStatus, publishedAt *time.Time) (*models.Content, error)
}

// ReviewRepository writes review details and criteria.
type ReviewRepository interface {
	UpsertDetails(ctx context.Context, d *models.ReviewDetails) (*models.ReviewDetails, error)
	SyncCriteria(ctx context.Context, reviewID uuid.UUID, desired []models.RatingCriterion) ([]models.RatingCriterion, error)
}

// PageRepository finds and creates the landing pages content links to.
type PageRepository interface {
	FindByMenuItem(ctx context.Context, itemID uuid.UUID) (*models.Page, error)
	FindCategoryPage(ctx context.Context, categoryID uuid.UUID) (*models.Page, error)
	Create(ctx context.Context, p *models.Page) (*models.Page, error)
}

// MenuRepository looks up navigation entries when a page has to be created.
type MenuRepository interface {
	FindCategory(ctx context.Context, id uuid.UUID) (*models.MenuCategory, error)
	FindItem(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
}

// Invalidator purges rendered pages after a write.
type Invalidator interface {
	InvalidateContent(ctx context.Context, id uuid.UUID)
}

// Service loads and saves content through the admin form.
type Service struct {
	contents ContentRepository
	reviews  ReviewRepository
	pages    PageRepository
	menus    MenuRepository
	cache    Invalidator
	now      func() time.Time
}

// NewService creates an editor service. cache may be nil.
func NewService(contents ContentRepository, reviews ReviewRepository, pages PageRepository, menus MenuRepository, cache Invalidator) *Service {
	return &Service{
		contents: contents,
		reviews:  reviews,
		pages:    pages,
		menus:    menus,
		cache:    cache,
		now:      time.Now,
	}
}

// Load returns the form data of a content item. Returns nil if not found.
func (s *Service) Load(ctx context.Context, id uuid.UUID) (*FormData, error) {
	ec, err := s.contents.FindExpanded(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return Flatten(ec), nil
}

// Save validates the form and writes the content row, its page link and,
// for reviews, the review details and criteria.
//
// The writes are not wrapped in one transaction. When the review write
// fails the content row is already stored: the returned content is non-nil
// alongside the error so the caller can keep editing it.
func (s *Service) Save(ctx context.Context, form *FormData, user *models.User) (*models.Content, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}

	f := *form
	f.Title = strings.TrimSpace(f.Title)
	if f.BodyFormat == "" {
		f.BodyFormat = models.BodyFormatHTML
	}
	if verr := Validate(&f); verr != nil {
		return nil, verr
	}

	f.LayoutTemplate = string(layout.Resolve(f.LayoutTemplate, f.Type))

	switch f.Status {
	case models.ContentStatusPublished:
		if f.PublishedAt == nil {
			now := s.now()
			f.PublishedAt = &now
		}
	default:
		f.PublishedAt = nil
	}

	if f.IsNew() {
		f.AuthorID = user.ID
	}

	pageID, err := s.resolvePage(ctx, &f)
	if err != nil {
		return nil, err
	}
	f.PageID = pageID

	row, err := f.Content()
	if err != nil {
		return nil, fmt.Errorf("encode layout settings: %w", err)
	}
	saved, err := s.contents.Upsert(ctx, row)
	if err != nil {
		return nil, fmt.Errorf("save content: %w", err)
	}

	if f.Type == models.ContentTypeReview {
		if err := s.saveReview(ctx, &f, saved.ID); err != nil {
			slog.Error("review details not saved, content row kept",
				"content_id", saved.ID, "error", err)
			s.invalidate(ctx, saved.ID)
			return saved, err
		}
	}

	s.invalidate(ctx, saved.ID)
	slog.Info("content saved", "content_id", saved.ID, "type", saved.Type,
		"status", saved.Status, "layout", saved.LayoutTemplate, "user_id", user.ID)
	return saved, nil
}

func (s *Service) saveReview(ctx context.Context, f *FormData, contentID uuid.UUID) error {
	rd, err := s.reviews.UpsertDetails(ctx, f.ReviewDetails(contentID))
	if err != nil {
		return fmt.Errorf("save review details: %w", err)
	}

	criteria := make([]models.RatingCriterion, len(f.Criteria))
	for i, rc := range f.Criteria {
		rc.Name = strings.TrimSpace(rc.Name)
		rc.ReviewID = rd.ID
		criteria[i] = rc
	}
	if _, err := s.reviews.SyncCriteria(ctx, rd.ID, criteria); err != nil {
		return fmt.Errorf("save rating criteria: %w", err)
	}
	return nil
}

// resolvePage returns the page the content should link to. A chosen menu
// item wins over a chosen category; the matching page is created when it
// does not exist yet. With neither chosen the content is unlinked.
func (s *Service) resolvePage(ctx context.Context, f *FormData) (*uuid.UUID, error) {
	switch {
	case f.MenuItemID != nil:
		page, err := s.pages.FindByMenuItem(ctx, *f.MenuItemID)
		if err != nil {
			return nil, fmt.Errorf("find subcategory page: %w", err)
		}
		if page == nil {
			item, err := s.menus.FindItem(ctx, *f.MenuItemID)
			if err != nil {
				return nil, fmt.Errorf("find menu item: %w", err)
			}
			if item == nil {
				return nil, invalid("menu_item_id", "Subcategory no longer exists.")
			}
			if item.CategoryID != *f.CategoryID {
				return nil, invalid("menu_item_id", "Subcategory does not belong to the chosen category.")
			}
			categoryID := item.CategoryID
			itemID := item.ID
			page, err = s.pages.Create(ctx, &models.Page{
				Title:       item.Name,
				Slug:        item.Slug,
				Description: item.Description,
				CategoryID:  &categoryID,
				MenuItemID:  &itemID,
			})
			if err != nil {
				return nil, fmt.Errorf("create subcategory page: %w", err)
			}
			slog.Info("subcategory page created", "page_id", page.ID, "menu_item_id", item.ID)
		}
		return &page.ID, nil

	case f.CategoryID != nil:
		page, err := s.pages.FindCategoryPage(ctx, *f.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("find category page: %w", err)
		}
		if page == nil {
			cat, err := s.menus.FindCategory(ctx, *f.CategoryID)
			if err != nil {
				return nil, fmt.Errorf("find menu category: %w", err)
			}
			if cat == nil {
				return nil, invalid("category_id", "Category no longer exists.")
			}
			categoryID := cat.ID
			page, err = s.pages.Create(ctx, &models.Page{
				Title:      cat.Name,
				Slug:       cat.Slug,
				CategoryID: &categoryID,
			})
			if err != nil {
				return nil, fmt.Errorf("create category page: %w", err)
			}
			slog.Info("category page created", "page_id", page.ID, "category_id", cat.ID)
		}
		return &page.ID, nil
	}
	return nil, nil
}

// ToggleStatus flips a content item between draft and published. Returns
// nil if the item does not exist.
func (s *Service) ToggleStatus(ctx context.Context, id uuid.UUID, user *models.User) (*models.Content, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}

	c, err := s.contents.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("toggle status: %w", err)
	}
	if c == nil {
		return nil, nil
	}

	if c.IsPublished() {
		c.Unpublish()
	} else {
		c.Publish(s.now())
	}

	updated, err := s.contents.SetStatus(ctx, id, c.Status, c.PublishedAt)
	if err != nil {
		return nil, fmt.Errorf("toggle status: %w", err)
	}
	if updated != nil {
		s.invalidate(ctx, id)
		slog.Info("content status toggled", "content_id", id, "status", updated.Status, "user_id", user.ID)
	}
	return updated, nil
}

func (s *Service) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache != nil {
		s.cache.InvalidateContent(ctx, id)
	}
}
