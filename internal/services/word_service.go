package services

import (
	"context"
	"strings"

	"github.com/yuvaraja22/wordle-bot/internal/errors"
	"github.com/yuvaraja22/wordle-bot/internal/logger"
	"github.com/yuvaraja22/wordle-bot/internal/puzzle"
	"github.com/yuvaraja22/wordle-bot/internal/repository"
)

// WordService manages the word-of-the-day pool
type WordService interface {
	// DrawForToday picks a random unused word, marks it used and records
	// it as today's sent word.
	DrawForToday(ctx context.Context) (string, error)
	// AddWord normalizes (trim + lowercase) and inserts one word.
	AddWord(ctx context.Context, word string) (string, error)
	WordForDate(ctx context.Context, date string) (string, error)
	// LoadWords bulk-inserts normalized words, skipping duplicates.
	LoadWords(ctx context.Context, words []string) (added, skipped int, err error)
	ClearWords(ctx context.Context) (int64, error)
	UnusedCount(ctx context.Context) (int, error)
}

type wordService struct {
	wordRepo repository.WordRepository
}

// NewWordService creates a new WordService
func NewWordService(wordRepo repository.WordRepository) WordService {
	return &wordService{wordRepo: wordRepo}
}

// normalize applies the pool's canonical form: trimmed, lowercase.
func normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

func (s *wordService) DrawForToday(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	word, err := s.wordRepo.DrawAndMark(ctx)
	if err != nil {
		if errors.Is(err, errors.ErrNoWordsAvailable) {
			log.Warn("word pool exhausted")
			return "", err
		}
		log.Error("failed to draw word: %v", err)
		return "", errors.NewInternalError(err)
	}

	today := puzzle.TodayKey()
	if err := s.wordRepo.RecordSent(ctx, today, word); err != nil {
		log.Error("failed to record sent word: %v", err)
		return "", errors.NewInternalError(err)
	}
	log.Info("word of the day for %s: %s", today, word)
	return word, nil
}

func (s *wordService) AddWord(ctx context.Context, word string) (string, error) {
	log := logger.FromContext(ctx)

	normalized := normalize(word)
	if normalized == "" {
		return "", errors.NewValidationError("word", "cannot be empty")
	}

	if err := s.wordRepo.Add(ctx, normalized); err != nil {
		if errors.Is(err, errors.ErrDuplicateWord) {
			return "", err
		}
		log.Error("failed to add word: %v", err)
		return "", errors.NewInternalError(err)
	}
	log.Info("word added to pool: %s", normalized)
	return normalized, nil
}

func (s *wordService) WordForDate(ctx context.Context, date string) (string, error) {
	word, err := s.wordRepo.WordForDate(ctx, date)
	if err != nil {
		return "", errors.NewInternalError(err)
	}
	return word, nil
}

func (s *wordService) LoadWords(ctx context.Context, words []string) (int, int, error) {
	normalized := make([]string, 0, len(words))
	for _, w := range words {
		if n := normalize(w); n != "" {
			normalized = append(normalized, n)
		}
	}
	return s.wordRepo.InsertBatch(ctx, normalized)
}

func (s *wordService) ClearWords(ctx context.Context) (int64, error) {
	return s.wordRepo.ClearAll(ctx)
}

func (s *wordService) UnusedCount(ctx context.Context) (int, error) {
	return s.wordRepo.CountUnused(ctx)
}
