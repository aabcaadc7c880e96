package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	apperrors "github.com/yuvaraja22/wordle-bot/internal/errors"
	"github.com/yuvaraja22/wordle-bot/internal/logger"
	"github.com/yuvaraja22/wordle-bot/internal/models"
	"github.com/yuvaraja22/wordle-bot/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type scoreRepository struct {
	db *sql.DB
}

// NewScoreRepository creates a new ScoreRepository implementation
func NewScoreRepository(db *sql.DB) repository.ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) Insert(ctx context.Context, e models.ScoreEntry) error {
	log := logger.FromContext(ctx).WithPrefix("score_repo")
	log.Debug("inserting score: group=%s, player=%s, date=%s, score=%d", e.GroupID, e.PlayerName, e.ScoreDate, e.Score)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO scores (group_id, player_name, score_date, score)
VALUES (?, ?, ?, ?)
`, e.GroupID, e.PlayerName, e.ScoreDate, e.Score)
	if isUniqueViolation(err) {
		log.Debug("duplicate submission: group=%s, player=%s, date=%s", e.GroupID, e.PlayerName, e.ScoreDate)
		return apperrors.ErrDuplicateSubmission
	}
	if err != nil {
		log.Error("failed to insert score: %v", err)
	}
	return err
}

func (r *scoreRepository) List(ctx context.Context, filter repository.ScoreFilter) ([]models.ScoreEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("score_repo")
	log.Debug("listing scores: group=%s, player=%s, date=%s", filter.GroupID, filter.PlayerName, filter.ScoreDate)

	query := sqlBuilder.Select("group_id", "player_name", "score_date", "score", "created_at").
		From("scores").
		OrderBy("score_date ASC", "player_name ASC")
	query = applyScoreFilter(query, filter)
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list scores: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []models.ScoreEntry
	for rows.Next() {
		var e models.ScoreEntry
		if err := rows.Scan(&e.GroupID, &e.PlayerName, &e.ScoreDate, &e.Score, &e.CreatedAt); err != nil {
			log.Error("failed to scan score row: %v", err)
			return nil, err
		}
		entries = append(entries, e)
	}
	log.Debug("found %d scores", len(entries))
	return entries, rows.Err()
}

func (r *scoreRepository) Count(ctx context.Context, filter repository.ScoreFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("score_repo")

	query := applyScoreFilter(sqlBuilder.Select("COUNT(*)").From("scores"), filter)
	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build count query: %v", err)
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		log.Error("failed to count scores: %v", err)
		return 0, err
	}
	return count, nil
}

func applyScoreFilter(query squirrel.SelectBuilder, filter repository.ScoreFilter) squirrel.SelectBuilder {
	if filter.GroupID != "" {
		query = query.Where(squirrel.Eq{"group_id": filter.GroupID})
	}
	if filter.PlayerName != "" {
		query = query.Where(squirrel.Eq{"player_name": filter.PlayerName})
	}
	if filter.ScoreDate != "" {
		query = query.Where(squirrel.Eq{"score_date": filter.ScoreDate})
	}
	return query
}

func (r *scoreRepository) DailyBoard(ctx context.Context, groupID, date string) ([]models.BoardRow, error) {
	log := logger.FromContext(ctx).WithPrefix("score_repo")
	log.Debug("building daily board: group=%s, date=%s", groupID, date)

	return r.board(ctx, sqlBuilder.
		Select("player_name", "SUM(score) AS total").
		From("scores").
		Where(squirrel.Eq{"group_id": groupID, "score_date": date}).
		GroupBy("player_name").
		OrderBy("total DESC", "player_name ASC"))
}

func (r *scoreRepository) AllTimeBoard(ctx context.Context, groupID string) ([]models.BoardRow, error) {
	log := logger.FromContext(ctx).WithPrefix("score_repo")
	log.Debug("building all-time board: group=%s", groupID)

	return r.board(ctx, sqlBuilder.
		Select("player_name", "SUM(score) AS total").
		From("scores").
		Where(squirrel.Eq{"group_id": groupID}).
		GroupBy("player_name").
		OrderBy("total DESC", "player_name ASC"))
}

func (r *scoreRepository) board(ctx context.Context, query squirrel.SelectBuilder) ([]models.BoardRow, error) {
	log := logger.FromContext(ctx).WithPrefix("score_repo")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build board query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query board: %v", err)
		return nil, err
	}
	defer rows.Close()

	var board []models.BoardRow
	for rows.Next() {
		var row models.BoardRow
		if err := rows.Scan(&row.Player, &row.Score); err != nil {
			log.Error("failed to scan board row: %v", err)
			return nil, err
		}
		row.Rank = len(board) + 1
		board = append(board, row)
	}
	log.Debug("board has %d rows", len(board))
	return board, rows.Err()
}

func (r *scoreRepository) Players(ctx context.Context, groupID string) ([]string, error) {
	return r.playerNames(ctx, `
SELECT DISTINCT player_name FROM scores
WHERE group_id = ?
ORDER BY player_name ASC
`, groupID)
}

func (r *scoreRepository) PlayersForDate(ctx context.Context, groupID, date string) ([]string, error) {
	return r.playerNames(ctx, `
SELECT DISTINCT player_name FROM scores
WHERE group_id = ? AND score_date = ?
ORDER BY player_name ASC
`, groupID, date)
}

func (r *scoreRepository) playerNames(ctx context.Context, query string, args ...any) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("score_repo")

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query players: %v", err)
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			log.Error("failed to scan player name: %v", err)
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ArchiveAndReset copies the group's live entries into scores_archive and
// deletes them, all in one transaction so a racing Insert can neither be
// lost nor double-counted.
func (r *scoreRepository) ArchiveAndReset(ctx context.Context, groupID string) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("score_repo")
	log.Debug("archiving and resetting group: %s", groupID)

	var moved int
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
INSERT INTO scores_archive (group_id, player_name, score_date, score, created_at)
SELECT group_id, player_name, score_date, score, created_at
FROM scores
WHERE group_id = ?
`, groupID)
		if err != nil {
			log.Error("failed to copy scores to archive: %v", err)
			return err
		}
		copied, err := res.RowsAffected()
		if err != nil {
			return err
		}

		res, err = tx.ExecContext(ctx, `DELETE FROM scores WHERE group_id = ?`, groupID)
		if err != nil {
			log.Error("failed to clear live scores: %v", err)
			return err
		}
		deleted, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if copied != deleted {
			return fmt.Errorf("archive mismatch: copied %d rows but deleted %d", copied, deleted)
		}
		moved = int(copied)
		return nil
	})
	if err != nil {
		return 0, err
	}
	log.Info("archived %d scores for group %s", moved, groupID)
	return moved, nil
}

func (r *scoreRepository) CountArchived(ctx context.Context, groupID string) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("score_repo")

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scores_archive WHERE group_id = ?`, groupID).Scan(&count)
	if err != nil {
		log.Error("failed to count archived scores: %v", err)
		return 0, err
	}
	return count, nil
}
