package models

import "time"

// Dates are stored and passed around as "YYYY-MM-DD" keys in the bot's
// timezone; see the puzzle package for how keys are derived.

// ScoreEntry is one player's score for one puzzle date in one group.
type ScoreEntry struct {
	GroupID    string    `json:"group_id"`
	PlayerName string    `json:"player_name"`
	ScoreDate  string    `json:"score_date"`
	Score      int       `json:"score"`
	CreatedAt  time.Time `json:"created_at"`
}

// StatsSnapshot is a dated record of a user's cumulative LeetCode counters.
type StatsSnapshot struct {
	StatDate string `json:"stat_date"`
	Username string `json:"username"`
	Total    int    `json:"total"`
	Easy     int    `json:"easy"`
	Medium   int    `json:"medium"`
	Hard     int    `json:"hard"`
}

// StatsDelta is the per-tier difference between two snapshots, clamped
// non-negative.
type StatsDelta struct {
	Total  int `json:"total"`
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// WordEntry is one word in the daily-word pool.
type WordEntry struct {
	ID   int64  `json:"id"`
	Word string `json:"word"`
	Used bool   `json:"used"`
}

// SentWordRecord records which word went out on which day.
type SentWordRecord struct {
	SentDate string `json:"sent_date"`
	Word     string `json:"word"`
}

// BoardRow is one ranked line of a leaderboard.
type BoardRow struct {
	Rank   int    `json:"rank"`
	Player string `json:"player"`
	Score  int    `json:"score"`
}

// CombinedRow pairs an all-time row with a daily row; either side may be
// nil when one board is shorter than the other.
type CombinedRow struct {
	AllTime *BoardRow `json:"all_time"`
	Today   *BoardRow `json:"today"`
}

// Sender identifies who posted an inbound message. The bridge fills in
// whatever it knows; any field except ID may be empty.
type Sender struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Pushname string `json:"pushname"`
	Number   string `json:"number"`
}

// DisplayName resolves a human-readable name with a fixed fallback order:
// contact name, then pushname, then phone number, then the raw ID.
func (s Sender) DisplayName() string {
	switch {
	case s.Name != "":
		return s.Name
	case s.Pushname != "":
		return s.Pushname
	case s.Number != "":
		return s.Number
	default:
		return s.ID
	}
}

// Chat identifies the conversation an inbound message arrived in.
type Chat struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsGroup bool   `json:"is_group"`
}

// InboundMessage is the webhook payload delivered by the WhatsApp bridge.
type InboundMessage struct {
	Text   string `json:"text"`
	Sender Sender `json:"sender"`
	Chat   Chat   `json:"chat"`
}
