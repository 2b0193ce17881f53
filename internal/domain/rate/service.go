// internal/domain/rate/service.go
package rate

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/retailpos-backend/internal/config"
	"gorm.io/gorm"
)

const cacheKey = "exchange_rate:current"

// ExchangeRate is one historical VES-per-USD rate entry. The most recent
// entry is the active rate.
type ExchangeRate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Rate      float64   `gorm:"not null" json:"rate"` // VES per USD
	Source    string    `gorm:"size:50;default:'manual'" json:"source"`
	CreatedBy uint      `gorm:"index" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name
func (ExchangeRate) TableName() string {
	return "exchange_rates"
}

// Service handles the exchange rate used for VES conversion
type Service struct {
	db          *gorm.DB
	redisClient *redis.Client
	config      *config.Config
}

// NewService creates a new rate service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		db:          db,
		redisClient: redisClient,
		config:      cfg,
	}
}

// Current returns the active VES-per-USD rate: Redis cache first, then the
// latest database entry, then the configured fallback
func (s *Service) Current(ctx context.Context) (float64, error) {
	if cached, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		if rate, err := strconv.ParseFloat(cached, 64); err == nil && rate > 0 {
			return rate, nil
		}
	}

	var latest ExchangeRate
	err := s.db.Order("created_at desc").First(&latest).Error
	if err == nil {
		s.cache(ctx, latest.Rate)
		return latest.Rate, nil
	}
	if err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("failed to load exchange rate: %w", err)
	}

	return s.config.Business.DefaultExchangeRate, nil
}

// Set stores a new rate entry and refreshes the cache
func (s *Service) Set(ctx context.Context, rate float64, source string, createdBy uint) (*ExchangeRate, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("exchange rate must be positive")
	}
	if source == "" {
		source = "manual"
	}

	entry := ExchangeRate{
		Rate:      rate,
		Source:    source,
		CreatedBy: createdBy,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to store exchange rate: %w", err)
	}

	s.cache(ctx, rate)
	return &entry, nil
}

// History lists the most recent rate entries
func (s *Service) History(limit int) ([]ExchangeRate, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var entries []ExchangeRate
	if err := s.db.Order("created_at desc").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to load rate history: %w", err)
	}
	return entries, nil
}

func (s *Service) cache(ctx context.Context, rate float64) {
	// Cache failures are harmless; the next read falls through to the DB
	s.redisClient.Set(ctx, cacheKey, strconv.FormatFloat(rate, 'f', -1, 64), s.config.Business.RateCacheTTL)
}
