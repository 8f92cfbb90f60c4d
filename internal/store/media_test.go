package store

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"reviewpress/internal/models"
)

func TestMediaStoreLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewMediaStore(db)
	ctx := context.Background()
	uploader := testUser(t, db)

	s3Key := "uploads/test/" + uuid.NewString() + ".jpg"
	thumb := "uploads/test/thumb-" + uuid.NewString() + ".jpg"

	created, err := s.Create(ctx, &models.Media{
		Filename:     "test.jpg",
		OriginalName: "original.jpg",
		ContentType:  "image/jpeg",
		SizeBytes:    1024,
		S3Key:        s3Key,
		ThumbS3Key:   &thumb,
		UploaderID:   uploader.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil || created.SizeBytes != 1024 {
		t.Errorf("created = %+v", created)
	}

	found, err := s.FindByID(ctx, created.ID)
	if err != nil || found == nil {
		t.Fatalf("FindByID: %v, %v", found, err)
	}
	if found.S3Key != s3Key || found.ThumbS3Key == nil || *found.ThumbS3Key != thumb {
		t.Errorf("found = %+v", found)
	}

	list, err := s.List(ctx, 50, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) == 0 {
		t.Error("expected at least one media item")
	}

	count, err := s.Count(ctx)
	if err != nil || count < 1 {
		t.Errorf("Count = %d, %v", count, err)
	}

	deleted, err := s.Delete(ctx, created.ID)
	if err != nil || deleted == nil || deleted.S3Key != s3Key {
		t.Fatalf("Delete = %v, %v", deleted, err)
	}
	if again, _ := s.Delete(ctx, created.ID); again != nil {
		t.Error("second delete should return nil")
	}
}

func TestStatsStoreRecordView(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	author := testUser(t, db)

	c, err := NewContentStore(db).Upsert(ctx, &models.Content{
		Title: "Counted", Type: models.ContentTypeArticle,
		Status: models.ContentStatusDraft, AuthorID: author.ID, LayoutTemplate: "classic",
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	s := NewStatsStore(db)
	if n, err := s.Views(ctx, c.ID); err != nil || n != 0 {
		t.Fatalf("Views before = %d, %v", n, err)
	}
	for range 3 {
		if err := s.RecordView(ctx, c.ID); err != nil {
			t.Fatalf("RecordView: %v", err)
		}
	}
	if n, err := s.Views(ctx, c.ID); err != nil || n != 3 {
		t.Errorf("Views after = %d, %v", n, err)
	}

	top, err := s.TopViewed(ctx, 100)
	if err != nil {
		t.Fatalf("TopViewed: %v", err)
	}
	found := false
	for _, st := range top {
		if st.ContentID == c.ID {
			found = true
			if st.Title != "Counted" || st.LastViewedAt == nil {
				t.Errorf("stat = %+v", st)
			}
		}
	}
	if !found {
		t.Error("expected content in TopViewed")
	}
}
