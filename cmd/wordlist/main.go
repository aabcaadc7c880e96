// Command wordlist curates the word-of-the-day pool from the shell: bulk
// loading word files, filtering raw lists down to playable words, and
// resetting the pool.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/yuvaraja22/wordle-bot/internal/config"
	"github.com/yuvaraja22/wordle-bot/internal/db"
	"github.com/yuvaraja22/wordle-bot/internal/logger"
	"github.com/yuvaraja22/wordle-bot/internal/repository/sqlite"
	"github.com/yuvaraja22/wordle-bot/internal/services"
)

const wordLength = 5

func usage() {
	fmt.Fprintln(os.Stderr, `Usage:
  wordlist load <file>          insert words from a file (one per line)
  wordlist filter <in> <out>    keep unique 5-letter words from a raw list
  wordlist count                show how many unused words remain
  wordlist clear                delete every word from the pool`)
	os.Exit(2)
}

func main() {
	cfg := config.Load()
	log := logger.New(logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	logger.SetDefault(log)

	if len(os.Args) < 2 {
		usage()
	}

	// filter is pure file-to-file and needs no database.
	if os.Args[1] == "filter" {
		if len(os.Args) != 4 {
			usage()
		}
		if err := filterFile(os.Args[2], os.Args[3]); err != nil {
			log.Error("filter failed: %v", err)
			os.Exit(1)
		}
		return
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer database.Close()

	words := services.NewWordService(sqlite.NewWordRepository(database.DB))
	ctx := context.Background()

	switch os.Args[1] {
	case "load":
		if len(os.Args) != 3 {
			usage()
		}
		lines, err := readLines(os.Args[2])
		if err != nil {
			log.Error("failed to read %s: %v", os.Args[2], err)
			os.Exit(1)
		}
		added, skipped, err := words.LoadWords(ctx, lines)
		if err != nil {
			log.Error("load failed: %v", err)
			os.Exit(1)
		}
		fmt.Printf("loaded %d words (%d duplicates skipped)\n", added, skipped)

	case "count":
		n, err := words.UnusedCount(ctx)
		if err != nil {
			log.Error("count failed: %v", err)
			os.Exit(1)
		}
		fmt.Printf("%d unused words in the pool\n", n)

	case "clear":
		deleted, err := words.ClearWords(ctx)
		if err != nil {
			log.Error("clear failed: %v", err)
			os.Exit(1)
		}
		fmt.Printf("word pool cleared (%d words deleted)\n", deleted)

	default:
		usage()
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// filterFile keeps the 5-letter alphabetic words from a raw list, lowercased
// and deduplicated, sorted for stable diffs.
func filterFile(in, out string) error {
	lines, err := readLines(in)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	var kept []string
	for _, line := range lines {
		word := strings.ToLower(strings.TrimSpace(line))
		if len(word) != wordLength || !alphabetic(word) || seen[word] {
			continue
		}
		seen[word] = true
		kept = append(kept, word)
	}
	sort.Strings(kept)

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, word := range kept {
		fmt.Fprintln(w, word)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("kept %d of %d words\n", len(kept), len(lines))
	return nil
}

func alphabetic(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
