package sqlite

import (
	"context"
	"database/sql"
	"errors"

	apperrors "github.com/yuvaraja22/wordle-bot/internal/errors"
	"github.com/yuvaraja22/wordle-bot/internal/logger"
	"github.com/yuvaraja22/wordle-bot/internal/repository"
)

type wordRepository struct {
	db *sql.DB
}

// NewWordRepository creates a new WordRepository implementation
func NewWordRepository(db *sql.DB) repository.WordRepository {
	return &wordRepository{db: db}
}

func (r *wordRepository) Add(ctx context.Context, word string) error {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("adding word: %s", word)

	_, err := r.db.ExecContext(ctx, `INSERT INTO daily_words (word) VALUES (?)`, word)
	if isUniqueViolation(err) {
		log.Debug("word already in pool: %s", word)
		return apperrors.ErrDuplicateWord
	}
	if err != nil {
		log.Error("failed to add word: %v", err)
	}
	return err
}

// DrawAndMark selects one unused word uniformly at random and flips it to
// used inside a single transaction, so two concurrent draws can never
// return the same word.
func (r *wordRepository) DrawAndMark(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("drawing random unused word")

	var word string
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		var id int64
		err := tx.QueryRowContext(ctx, `
SELECT id, word FROM daily_words
WHERE used = 0
ORDER BY RANDOM()
LIMIT 1
`).Scan(&id, &word)
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrNoWordsAvailable
		}
		if err != nil {
			log.Error("failed to select unused word: %v", err)
			return err
		}

		res, err := tx.ExecContext(ctx, `UPDATE daily_words SET used = 1 WHERE id = ? AND used = 0`, id)
		if err != nil {
			log.Error("failed to mark word used: %v", err)
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n != 1 {
			// The row was claimed between select and update.
			return apperrors.ErrNoWordsAvailable
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	log.Info("drew word: %s", word)
	return word, nil
}

func (r *wordRepository) CountUnused(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM daily_words WHERE used = 0`).Scan(&count)
	if err != nil {
		log.Error("failed to count unused words: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *wordRepository) RecordSent(ctx context.Context, date, word string) error {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("recording sent word: date=%s, word=%s", date, word)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO sent_words (sent_date, word)
VALUES (?, ?)
ON CONFLICT(sent_date) DO UPDATE SET word = excluded.word
`, date, word)
	if err != nil {
		log.Error("failed to record sent word: %v", err)
	}
	return err
}

func (r *wordRepository) WordForDate(ctx context.Context, date string) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("looking up sent word: date=%s", date)

	var word string
	err := r.db.QueryRowContext(ctx, `SELECT word FROM sent_words WHERE sent_date = ?`, date).Scan(&word)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		log.Error("failed to look up sent word: %v", err)
		return "", err
	}
	return word, nil
}

// InsertBatch loads words in one transaction, skipping entries already in
// the pool. Mirrors the bulk-load script's added/skipped accounting.
func (r *wordRepository) InsertBatch(ctx context.Context, words []string) (int, int, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("bulk inserting %d words", len(words))

	if len(words) == 0 {
		return 0, 0, nil
	}

	var added, skipped int
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO daily_words (word) VALUES (?) ON CONFLICT(word) DO NOTHING`)
		if err != nil {
			log.Error("failed to prepare bulk insert: %v", err)
			return err
		}
		defer stmt.Close()

		for _, w := range words {
			res, err := stmt.ExecContext(ctx, w)
			if err != nil {
				log.Error("failed to insert word %q: %v", w, err)
				return err
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			if n == 1 {
				added++
			} else {
				skipped++
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	log.Info("bulk load complete: added=%d, skipped=%d", added, skipped)
	return added, skipped, nil
}

func (r *wordRepository) ClearAll(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("clearing word pool")

	var deleted int64
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM daily_words`)
		if err != nil {
			log.Error("failed to clear words: %v", err)
			return err
		}
		deleted, err = res.RowsAffected()
		if err != nil {
			return err
		}
		if deleted == 0 {
			// Nothing was ever inserted; sqlite_sequence may not exist yet.
			return nil
		}
		// Reset the autoincrement counter so reloads start from id 1.
		_, err = tx.ExecContext(ctx, `DELETE FROM sqlite_sequence WHERE name = 'daily_words'`)
		return err
	})
	if err != nil {
		return 0, err
	}
	log.Info("cleared %d words", deleted)
	return deleted, nil
}
