package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"promptshq/internal/fixtures"
	"promptshq/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when an id does not match any record.
var ErrNotFound = errors.New("record not found")

// Store is the catalog repository. It is built once at startup and handed
// to every service that reads or writes catalog state.
type Store interface {
	// Content items, in collection order.
	ListContent(ctx context.Context) ([]models.ContentItem, error)
	GetContent(ctx context.Context, id string) (*models.ContentItem, error)

	// Submissions, newest first.
	ListSubmissions(ctx context.Context) ([]models.Submission, error)
	CreateSubmission(ctx context.Context, s *models.Submission) error

	// Drafts, most recently edited first.
	ListDrafts(ctx context.Context) ([]models.Draft, error)
	CreateDraft(ctx context.Context, d *models.Draft) error

	// Favorites set.
	ListFavoriteIDs(ctx context.Context) ([]string, error)
	AddFavorite(ctx context.Context, contentID string) error
	RemoveFavorite(ctx context.Context, contentID string) error

	SaveRating(ctx context.Context, r *models.Rating) error
	GetRating(ctx context.Context, contentID string) (*models.Rating, error)

	ListAIModels(ctx context.Context) ([]models.AIModel, error)
	GetAIModelByName(ctx context.Context, name string) (*models.AIModel, error)
}

// GormStore implements Store on top of GORM.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Seed loads the fixtures in one transaction. A database that already
// holds content is left as it is, so a file DSN survives a restart.
func (s *GormStore) Seed(ctx context.Context, fx *fixtures.Fixtures) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.ContentItem{}).Count(&existing).Error; err != nil {
			return fmt.Errorf("count content: %w", err)
		}
		if existing > 0 {
			return nil
		}
		if len(fx.Content) > 0 {
			if err := tx.Create(&fx.Content).Error; err != nil {
				return fmt.Errorf("seed content: %w", err)
			}
		}
		if len(fx.Submissions) > 0 {
			if err := tx.Create(&fx.Submissions).Error; err != nil {
				return fmt.Errorf("seed submissions: %w", err)
			}
		}
		if len(fx.Drafts) > 0 {
			if err := tx.Create(&fx.Drafts).Error; err != nil {
				return fmt.Errorf("seed drafts: %w", err)
			}
		}
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		for i, id := range fx.Favorites {
			fav := models.Favorite{ContentID: id, CreatedAt: base.Add(time.Duration(i) * time.Second)}
			if err := tx.Create(&fav).Error; err != nil {
				return fmt.Errorf("seed favorite %s: %w", id, err)
			}
		}
		if len(fx.AIModels) > 0 {
			if err := tx.Create(&fx.AIModels).Error; err != nil {
				return fmt.Errorf("seed ai models: %w", err)
			}
		}
		return nil
	})
}

func (s *GormStore) ListContent(ctx context.Context) ([]models.ContentItem, error) {
	var items []models.ContentItem
	if err := s.db.WithContext(ctx).Order("position asc, id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) GetContent(ctx context.Context, id string) (*models.ContentItem, error) {
	var item models.ContentItem
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (s *GormStore) ListSubmissions(ctx context.Context) ([]models.Submission, error) {
	var subs []models.Submission
	if err := s.db.WithContext(ctx).Order("submitted_date desc, id asc").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *GormStore) CreateSubmission(ctx context.Context, sub *models.Submission) error {
	return s.db.WithContext(ctx).Create(sub).Error
}

func (s *GormStore) ListDrafts(ctx context.Context) ([]models.Draft, error) {
	var drafts []models.Draft
	if err := s.db.WithContext(ctx).Order("last_edited desc, id asc").Find(&drafts).Error; err != nil {
		return nil, err
	}
	return drafts, nil
}

func (s *GormStore) CreateDraft(ctx context.Context, d *models.Draft) error {
	return s.db.WithContext(ctx).Create(d).Error
}

func (s *GormStore) ListFavoriteIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).Model(&models.Favorite{}).
		Order("created_at asc, content_id asc").
		Pluck("content_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *GormStore) AddFavorite(ctx context.Context, contentID string) error {
	if err := s.ensureContent(ctx, contentID); err != nil {
		return err
	}
	fav := models.Favorite{ContentID: contentID, CreatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error
}

func (s *GormStore) RemoveFavorite(ctx context.Context, contentID string) error {
	if err := s.ensureContent(ctx, contentID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Where("content_id = ?", contentID).Delete(&models.Favorite{}).Error
}

func (s *GormStore) SaveRating(ctx context.Context, r *models.Rating) error {
	if err := s.ensureContent(ctx, r.ContentID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(r).Error
}

func (s *GormStore) GetRating(ctx context.Context, contentID string) (*models.Rating, error) {
	var r models.Rating
	if err := s.db.WithContext(ctx).Where("content_id = ?", contentID).First(&r).Error; err != nil {
		return nil, translate(err)
	}
	return &r, nil
}

func (s *GormStore) ListAIModels(ctx context.Context) ([]models.AIModel, error) {
	var list []models.AIModel
	if err := s.db.WithContext(ctx).Order("position asc, id asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (s *GormStore) GetAIModelByName(ctx context.Context, name string) (*models.AIModel, error) {
	var m models.AIModel
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (s *GormStore) ensureContent(ctx context.Context, id string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.ContentItem{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
