// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"raptor/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumRapts    int
	ShouldClean bool
}

// Seeder populates the database with realistic demo data.
type Seeder struct {
	db   *gorm.DB
	rng  *rand.Rand
	opts Options
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		opts: opts,
	}
}

// ClearAll removes all seeded rows. Order matters: dependents first.
func (s *Seeder) ClearAll() error {
	log.Println("Cleaning database...")
	for _, model := range []interface{}{
		&models.Like{}, &models.Ripple{}, &models.Follow{}, &models.Rapt{}, &models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}
	}
	return nil
}

// SeedUsers creates n users. All users share the password "password123".
func (s *Seeder) SeedUsers(n int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Name:     gofakeit.Name(),
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:    gofakeit.Email(),
			Password: string(hashed),
			Verified: s.rng.Intn(4) == 0,
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("create user %d: %w", i, err)
		}
		users = append(users, user)
	}
	log.Printf("Created %d users", len(users))
	return users, nil
}

// SeedRapts creates n rapts spread across the given users with a realistic
// created_at spread over the last 90 days.
func (s *Seeder) SeedRapts(users []*models.User, n int) ([]*models.Rapt, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to attach rapts to")
	}

	rapts := make([]*models.Rapt, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rng.Intn(len(users))]
		rapt := &models.Rapt{
			UserID:  author.ID,
			Title:   gofakeit.Sentence(s.rng.Intn(5) + 3),
			Content: gofakeit.Paragraph(1, 3, 8, "\n"),
		}
		rapt.CreatedAt = time.Now().
			Add(-time.Duration(s.rng.Intn(90)) * 24 * time.Hour).
			Add(-time.Duration(s.rng.Intn(24)) * time.Hour)
		if err := s.db.Create(rapt).Error; err != nil {
			return nil, fmt.Errorf("create rapt %d: %w", i, err)
		}
		rapts = append(rapts, rapt)
	}
	log.Printf("Created %d rapts", len(rapts))
	return rapts, nil
}

// SeedEngagement adds ripples, likes and follows between the seeded users
// and rapts. Like rows and the per-rapt likes counter are written together
// so the denormalized count stays consistent.
func (s *Seeder) SeedEngagement(users []*models.User, rapts []*models.Rapt) error {
	rippleCount := 0
	for _, rapt := range rapts {
		for i := 0; i < s.rng.Intn(4); i++ {
			ripple := &models.Ripple{
				UserID:  users[s.rng.Intn(len(users))].ID,
				RaptID:  rapt.ID,
				Content: gofakeit.Sentence(s.rng.Intn(10) + 2),
			}
			if err := s.db.Create(ripple).Error; err != nil {
				return fmt.Errorf("create ripple: %w", err)
			}
			rippleCount++
		}
	}
	log.Printf("Created %d ripples", rippleCount)

	likeCount := 0
	for _, rapt := range rapts {
		liked := map[uint]bool{}
		for i := 0; i < s.rng.Intn(len(users)+1); i++ {
			liker := users[s.rng.Intn(len(users))]
			if liked[liker.ID] {
				continue
			}
			liked[liker.ID] = true

			err := s.db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&models.Like{UserID: liker.ID, RaptID: rapt.ID}).Error; err != nil {
					return err
				}
				return tx.Model(&models.Rapt{}).Where("id = ?", rapt.ID).
					Update("likes", gorm.Expr("likes + 1")).Error
			})
			if err != nil {
				return fmt.Errorf("create like: %w", err)
			}
			likeCount++
		}
	}
	log.Printf("Created %d likes", likeCount)

	followCount := 0
	for _, follower := range users {
		followed := map[uint]bool{}
		for i := 0; i < s.rng.Intn(8); i++ {
			target := users[s.rng.Intn(len(users))]
			if target.ID == follower.ID || followed[target.ID] {
				continue
			}
			followed[target.ID] = true
			follow := &models.Follow{UserID: follower.ID, FollowingID: target.ID}
			if err := s.db.Create(follow).Error; err != nil {
				return fmt.Errorf("create follow: %w", err)
			}
			followCount++
		}
	}
	log.Printf("Created %d follows", followCount)

	return nil
}

// Run executes the full seed pass according to the Seeder options.
func (s *Seeder) Run() error {
	if s.opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	users, err := s.SeedUsers(s.opts.NumUsers)
	if err != nil {
		return err
	}
	rapts, err := s.SeedRapts(users, s.opts.NumRapts)
	if err != nil {
		return err
	}
	return s.SeedEngagement(users, rapts)
}
