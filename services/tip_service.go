package services

import (
	"context"
	"sync"
	"time"

	"BabyNest/aggregation"
	"BabyNest/repositories"

	"go.uber.org/zap"
)

// TipService serves tip-of-the-day text from the tips table, cached in memory.
type TipService struct {
	repo  repositories.TipRepository
	log   *zap.Logger
	cache map[int][]string
	ttl   time.Duration
	at    time.Time
	mutex sync.RWMutex
}

func NewTipService(repo repositories.TipRepository, log *zap.Logger) *TipService {
	return &TipService{repo: repo, log: log, ttl: time.Hour}
}

func (s *TipService) Tips(ctx context.Context) map[int][]string {
	s.mutex.RLock()
	if s.cache != nil && time.Since(s.at) < s.ttl {
		cached := s.cache
		s.mutex.RUnlock()
		return cached
	}
	s.mutex.RUnlock()

	tips, err := s.repo.ListTips(ctx)
	if err != nil {
		s.log.Warn("load tips", zap.Error(err))
		tips = nil
	}
	if len(tips) == 0 {
		tips = defaultTips
	}

	s.mutex.Lock()
	s.cache = tips
	s.at = time.Now()
	s.mutex.Unlock()
	return tips
}

// Invalidate drops the cache so the next read reloads from the database.
func (s *TipService) Invalidate() {
	s.mutex.Lock()
	s.cache = nil
	s.mutex.Unlock()
}

func (s *TipService) TipFor(ctx context.Context, ageInDays int, now time.Time) string {
	return aggregation.TipOfTheDay(s.Tips(ctx), ageInDays, now)
}

var defaultTips = map[int][]string{
	0: {
		"Skin-to-skin contact helps your newborn stay warm and calm.",
		"Feed on demand; most newborns eat every two to three hours.",
	},
	1:   {"Keep the umbilical stump clean and dry until it falls off."},
	2:   {"Count wet diapers: six or more a day means your baby is feeding well."},
	3:   {"Always lay your baby on their back to sleep."},
	7:   {"Short tummy-time sessions while awake build neck strength."},
	14:  {"A growth spurt around two weeks can make your baby extra hungry."},
	30:  {"Talk and sing to your baby; they are learning your voice."},
	60:  {"Your baby may start smiling back at you this month."},
	90:  {"Offer toys to reach for; grasping is developing fast."},
	120: {"A consistent bedtime routine helps longer night sleep."},
	180: {"Ask your pediatrician about starting solid foods."},
	270: {"Baby-proof low cabinets before your baby starts crawling."},
	365: {"Happy first birthday! Celebrate every small milestone."},
}
