package bot

import (
	"fmt"
	"strings"

	"github.com/yuvaraja22/wordle-bot/internal/models"
)

// Reply rendering. WhatsApp renders *text* as bold and respects plain
// newlines, so all boards are simple line-per-row text.

const replyInternal = "Something went wrong, please try again later. 🛠️"

// FormatBoard renders a ranked board, or an explicit "no scores yet" line
// for an empty ledger.
func FormatBoard(title string, rows []models.BoardRow) string {
	if len(rows) == 0 {
		return fmt.Sprintf("*%s*\n\nNo scores yet. 📭", title)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "*%s*\n\n", title)
	for _, row := range rows {
		fmt.Fprintf(&sb, "%d. %s — %d\n", row.Rank, row.Player, row.Score)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatCombined renders the all-time and daily boards side by side, with
// blank cells where one list is shorter.
func FormatCombined(rows []models.CombinedRow) string {
	if len(rows) == 0 {
		return "*All-Time | Today*\n\nNo scores yet. 📭"
	}

	var sb strings.Builder
	sb.WriteString("*All-Time | Today*\n\n")
	for _, row := range rows {
		sb.WriteString(combinedCell(row.AllTime))
		sb.WriteString(" | ")
		sb.WriteString(combinedCell(row.Today))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func combinedCell(row *models.BoardRow) string {
	if row == nil {
		return "—"
	}
	return fmt.Sprintf("%d. %s (%d)", row.Rank, row.Player, row.Score)
}

// FormatPending lists players yet to submit today.
func FormatPending(players []string) string {
	if len(players) == 0 {
		return "Everyone has submitted today. 🎉"
	}

	var sb strings.Builder
	sb.WriteString("*Still pending today:*\n\n")
	for _, name := range players {
		fmt.Fprintf(&sb, "• %s\n", name)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatReminder is the late-evening nudge naming stragglers.
func FormatReminder(players []string) string {
	return fmt.Sprintf("⏰ Wordle Reminder! Still waiting on: %s", strings.Join(players, ", "))
}

// FormatDailyStats renders the evening LeetCode broadcast.
func FormatDailyStats(username string, delta models.StatsDelta, latest models.StatsSnapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*LeetCode update for %s* 📊\n\n", username)
	fmt.Fprintf(&sb, "Solved today: %d (E:%d M:%d H:%d)\n", delta.Total, delta.Easy, delta.Medium, delta.Hard)
	fmt.Fprintf(&sb, "Total solved: %d (E:%d M:%d H:%d)", latest.Total, latest.Easy, latest.Medium, latest.Hard)
	return sb.String()
}

// FormatProgress renders the since-baseline status reply.
func FormatProgress(username string, delta models.StatsDelta, latest models.StatsSnapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*LeetCode progress for %s* 📈\n\n", username)
	fmt.Fprintf(&sb, "Since tracking began: +%d (E:+%d M:+%d H:+%d)\n", delta.Total, delta.Easy, delta.Medium, delta.Hard)
	fmt.Fprintf(&sb, "Total solved: %d (E:%d M:%d H:%d)", latest.Total, latest.Easy, latest.Medium, latest.Hard)
	return sb.String()
}
