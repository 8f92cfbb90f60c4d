package editor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"reviewpress/internal/models"
)

// memStore is an in-memory implementation of every repository the
// service uses.
type memStore struct {
	contents  map[uuid.UUID]*models.Content
	details   map[uuid.UUID]*models.ReviewDetails // by content id
	criteria  map[uuid.UUID][]models.RatingCriterion
	pages     []*models.Page
	cats      map[uuid.UUID]*models.MenuCategory
	items     map[uuid.UUID]*models.MenuItem
	reviewErr error

	invalidated []uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		contents: map[uuid.UUID]*models.Content{},
		details:  map[uuid.UUID]*models.ReviewDetails{},
		criteria: map[uuid.UUID][]models.RatingCriterion{},
		cats:     map[uuid.UUID]*models.MenuCategory{},
		items:    map[uuid.UUID]*models.MenuItem{},
	}
}

func (m *memStore) service(now time.Time) *Service {
	s := NewService(m, m, m, m, m)
	s.now = func() time.Time { return now }
	return s
}

func (m *memStore) FindByID(_ context.Context, id uuid.UUID) (*models.Content, error) {
	c, ok := m.contents[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memStore) FindExpanded(_ context.Context, id uuid.UUID) (*models.ExpandedContent, error) {
	c, ok := m.contents[id]
	if !ok {
		return nil, nil
	}
	ec := &models.ExpandedContent{Content: *c, ReviewDetails: []models.ReviewDetails{}, Pages: []models.Page{}}
	if rd, ok := m.details[id]; ok {
		cp := *rd
		cp.Criteria = m.criteria[rd.ID]
		ec.ReviewDetails = append(ec.ReviewDetails, cp)
	}
	if c.PageID != nil {
		for _, p := range m.pages {
			if p.ID == *c.PageID {
				ec.Pages = append(ec.Pages, *p)
			}
		}
	}
	return ec, nil
}

func (m *memStore) Upsert(_ context.Context, c *models.Content) (*models.Content, error) {
	cp := *c
	if cp.ID == uuid.Nil {
		cp.ID = uuid.New()
		cp.CreatedAt = time.Now()
	} else {
		prev, ok := m.contents[cp.ID]
		if !ok {
			return nil, errors.New("not found")
		}
		cp.AuthorID = prev.AuthorID
	}
	m.contents[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memStore) SetStatus(_ context.Context, id uuid.UUID, status models.ContentStatus, publishedAt *time.Time) (*models.Content, error) {
	c, ok := m.contents[id]
	if !ok {
		return nil, nil
	}
	c.Status = status
	c.PublishedAt = publishedAt
	cp := *c
	return &cp, nil
}

func (m *memStore) UpsertDetails(_ context.Context, d *models.ReviewDetails) (*models.ReviewDetails, error) {
	if m.reviewErr != nil {
		return nil, m.reviewErr
	}
	cp := *d
	if prev, ok := m.details[d.ContentID]; ok {
		cp.ID = prev.ID
	} else {
		cp.ID = uuid.New()
	}
	m.details[d.ContentID] = &cp
	out := cp
	return &out, nil
}

func (m *memStore) SyncCriteria(_ context.Context, reviewID uuid.UUID, desired []models.RatingCriterion) ([]models.RatingCriterion, error) {
	out := make([]models.RatingCriterion, len(desired))
	for i, rc := range desired {
		if rc.ID == uuid.Nil {
			rc.ID = uuid.New()
		}
		rc.ReviewID = reviewID
		rc.SortOrder = i
		out[i] = rc
	}
	m.criteria[reviewID] = out
	return out, nil
}

func (m *memStore) FindByMenuItem(_ context.Context, itemID uuid.UUID) (*models.Page, error) {
	for _, p := range m.pages {
		if p.MenuItemID != nil && *p.MenuItemID == itemID {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindCategoryPage(_ context.Context, categoryID uuid.UUID) (*models.Page, error) {
	for _, p := range m.pages {
		if p.MenuItemID == nil && p.CategoryID != nil && *p.CategoryID == categoryID {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memStore) Create(_ context.Context, p *models.Page) (*models.Page, error) {
	cp := *p
	cp.ID = uuid.New()
	m.pages = append(m.pages, &cp)
	return &cp, nil
}

func (m *memStore) FindCategory(_ context.Context, id uuid.UUID) (*models.MenuCategory, error) {
	return m.cats[id], nil
}

func (m *memStore) FindItem(_ context.Context, id uuid.UUID) (*models.MenuItem, error) {
	return m.items[id], nil
}

func (m *memStore) InvalidateContent(_ context.Context, id uuid.UUID) {
	m.invalidated = append(m.invalidated, id)
}
