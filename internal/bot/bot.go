package bot

import (
	"context"
	"fmt"

	"github.com/yuvaraja22/wordle-bot/internal/errors"
	"github.com/yuvaraja22/wordle-bot/internal/logger"
	"github.com/yuvaraja22/wordle-bot/internal/models"
	"github.com/yuvaraja22/wordle-bot/internal/puzzle"
	"github.com/yuvaraja22/wordle-bot/internal/services"
)

// Transport delivers outbound text to a chat. The WhatsApp bridge client
// implements it; tests use a mock.
type Transport interface {
	SendMessage(ctx context.Context, chatID, text string) error
}

// JobKind names the scheduled jobs the bot runs.
type JobKind string

const (
	JobStatsBroadcast  JobKind = "stats_broadcast"
	JobDailyWord       JobKind = "daily_word"
	JobPendingReminder JobKind = "pending_reminder"
)

// Bot is the service object tying the classifier, ledger, stats bridge and
// word pool together. It holds no ambient globals: everything it touches is
// passed in at construction.
type Bot struct {
	scores    services.ScoreService
	stats     services.StatsService
	words     services.WordService
	transport Transport

	leetCodeUser string // default user for /minu and the stats broadcast
	statsGroupID string
	wordGroupID  string
}

func New(scores services.ScoreService, stats services.StatsService, words services.WordService, transport Transport, leetCodeUser, statsGroupID, wordGroupID string) *Bot {
	return &Bot{
		scores:       scores,
		stats:        stats,
		words:        words,
		transport:    transport,
		leetCodeUser: leetCodeUser,
		statsGroupID: statsGroupID,
		wordGroupID:  wordGroupID,
	}
}

// HandleMessage classifies one inbound message and returns the reply text,
// or "" when the bot has nothing to say. Failures degrade to a text reply;
// they never propagate as a crash.
func (b *Bot) HandleMessage(ctx context.Context, msg models.InboundMessage) string {
	log := logger.FromContext(ctx).WithField("chat", msg.Chat.ID)

	parsed := puzzle.Classify(msg.Text)
	switch parsed.Kind {
	case puzzle.GameResult:
		if !msg.Chat.IsGroup {
			log.Debug("game result outside a group chat, ignoring")
			return ""
		}
		return b.handleResult(ctx, msg, parsed)
	case puzzle.Command:
		return b.handleCommand(ctx, msg, parsed)
	default:
		return ""
	}
}

func (b *Bot) handleResult(ctx context.Context, msg models.InboundMessage, parsed puzzle.Parsed) string {
	log := logger.FromContext(ctx)
	player := msg.Sender.DisplayName()

	entry, err := b.scores.SubmitResult(ctx, msg.Chat.ID, player, parsed)
	if err != nil {
		if errors.Is(err, errors.ErrDuplicateSubmission) {
			return fmt.Sprintf("%s, you already submitted Wordle %d. 🙅", player, parsed.PuzzleNumber)
		}
		log.Error("failed to record result: %v", err)
		return "Could not save your score right now, please try again. 🛠️"
	}
	if parsed.Failed {
		return fmt.Sprintf("Recorded Wordle %d for %s: better luck tomorrow! (0 points)", parsed.PuzzleNumber, player)
	}
	return fmt.Sprintf("Recorded Wordle %d for %s: %d/6 → %d points ✅", parsed.PuzzleNumber, player, parsed.Attempts, entry.Score)
}

func (b *Bot) handleCommand(ctx context.Context, msg models.InboundMessage, parsed puzzle.Parsed) string {
	log := logger.FromContext(ctx).WithField("command", parsed.Command)
	log.Info("handling command")

	groupID := msg.Chat.ID
	today := puzzle.TodayKey()

	switch parsed.Command {
	case "/current":
		board, err := b.scores.DailyBoard(ctx, groupID, today)
		if err != nil {
			log.Error("daily board failed: %v", err)
			return replyInternal
		}
		return FormatBoard("Today's Board", board)

	case "/total":
		board, err := b.scores.AllTimeBoard(ctx, groupID)
		if err != nil {
			log.Error("all-time board failed: %v", err)
			return replyInternal
		}
		return FormatBoard("All-Time Board", board)

	case "/all":
		rows, err := b.scores.CombinedBoard(ctx, groupID, today)
		if err != nil {
			log.Error("combined board failed: %v", err)
			return replyInternal
		}
		return FormatCombined(rows)

	case "/pending":
		pending, err := b.scores.PendingPlayers(ctx, groupID, today)
		if err != nil {
			log.Error("pending lookup failed: %v", err)
			return replyInternal
		}
		return FormatPending(pending)

	case "/resetConfirmed":
		moved, err := b.scores.ArchiveAndReset(ctx, groupID)
		if err != nil {
			log.Error("reset failed: %v", err)
			return replyInternal
		}
		return fmt.Sprintf("Board reset. %d scores moved to the archive. 🗄️", moved)

	case "/addword":
		if parsed.Arg == "" {
			return "Usage: /addword <word>"
		}
		added, err := b.words.AddWord(ctx, parsed.Arg)
		if err != nil {
			if errors.Is(err, errors.ErrDuplicateWord) {
				return "That word is already in the pool. 📚"
			}
			log.Error("addword failed: %v", err)
			return replyInternal
		}
		return fmt.Sprintf("Added *%s* to the word pool. ✅", added)

	case "/word":
		word, err := b.words.WordForDate(ctx, today)
		if err != nil {
			log.Error("word lookup failed: %v", err)
			return replyInternal
		}
		if word == "" {
			return "No word has been sent today yet. 🌙"
		}
		return fmt.Sprintf("🌟 *Word of the Day* 🌟\n\n%s", word)

	case "/status":
		if parsed.Arg == "" {
			return "Usage: /status <leetcode-username>"
		}
		return b.statusReply(ctx, parsed.Arg)

	case "/minu":
		if b.leetCodeUser == "" {
			return "No default LeetCode user is configured."
		}
		return b.statusReply(ctx, b.leetCodeUser)

	default:
		// Classify only emits known commands; nothing to do here.
		return ""
	}
}

func (b *Bot) statusReply(ctx context.Context, username string) string {
	log := logger.FromContext(ctx)

	delta, latest, err := b.stats.ProgressSinceBaseline(ctx, username)
	if err != nil {
		if errors.Is(err, errors.ErrRemoteUnavailable) {
			return fmt.Sprintf("Could not reach LeetCode for %s right now. 📡", username)
		}
		log.Error("status lookup failed: %v", err)
		return replyInternal
	}
	return FormatProgress(username, delta, latest)
}

// RunScheduledJob executes one of the fixed-time jobs. It shares the same
// services and atomicity guarantees as interactive commands and may run
// concurrently with them.
func (b *Bot) RunScheduledJob(ctx context.Context, kind JobKind) error {
	log := logger.FromContext(ctx).WithField("job", string(kind))

	switch kind {
	case JobStatsBroadcast:
		if b.leetCodeUser == "" || b.statsGroupID == "" {
			log.Warn("stats broadcast skipped: user or group not configured")
			return nil
		}
		delta, latest, err := b.stats.DailyDelta(ctx, b.leetCodeUser)
		if err != nil {
			if errors.Is(err, errors.ErrRemoteUnavailable) {
				log.Warn("stats broadcast skipped: %v", err)
				return b.transport.SendMessage(ctx, b.statsGroupID, fmt.Sprintf("Could not reach LeetCode for %s today. 📡", b.leetCodeUser))
			}
			return err
		}
		return b.transport.SendMessage(ctx, b.statsGroupID, FormatDailyStats(b.leetCodeUser, delta, latest))

	case JobDailyWord:
		if b.wordGroupID == "" {
			log.Warn("daily word skipped: group not configured")
			return nil
		}
		word, err := b.words.DrawForToday(ctx)
		if err != nil {
			if errors.Is(err, errors.ErrNoWordsAvailable) {
				log.Warn("no unused words available")
				return nil
			}
			return err
		}
		return b.transport.SendMessage(ctx, b.wordGroupID, fmt.Sprintf("🌟 *Word of the Day* 🌟\n\n%s", word))

	case JobPendingReminder:
		if b.wordGroupID == "" {
			log.Warn("reminder skipped: group not configured")
			return nil
		}
		pending, err := b.scores.PendingPlayers(ctx, b.wordGroupID, puzzle.TodayKey())
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			log.Debug("everyone has submitted, skipping reminder")
			return nil
		}
		return b.transport.SendMessage(ctx, b.wordGroupID, FormatReminder(pending))

	default:
		return fmt.Errorf("unknown job kind %q", kind)
	}
}
