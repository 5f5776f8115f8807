// cmd/practice/main.go
//
// Terminal exercise runner. Fetches one article from the API with freshly
// shuffled options, then drives the exercise session locally: select an
// option for every blank, submit, review the score and error notes, reveal
// the solution, and optionally reset for another attempt. After the initial
// fetch everything runs in memory.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"go_french_gapfill/internal/exercise"
	"go_french_gapfill/internal/model"
)

func main() {
	apiBase := flag.String("api", "http://localhost:8080", "API base URL")
	slug := flag.String("slug", "", "article slug (defaults to the first published article)")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	doc, err := fetchExercise(client, *apiBase, *slug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	in := bufio.NewScanner(os.Stdin)
	for {
		run(in, doc)
		if !askYesNo(in, "Play again with a fresh shuffle? [y/N] ") {
			return
		}
		doc, err = fetchExercise(client, *apiBase, *slug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func fetchExercise(client *http.Client, apiBase, slug string) (*model.ArticleDocument, error) {
	if slug == "" {
		summaries, err := fetchSummaries(client, apiBase)
		if err != nil {
			return nil, err
		}
		if len(summaries) == 0 {
			return nil, fmt.Errorf("no published articles available")
		}
		var doc model.ArticleDocument
		url := fmt.Sprintf("%s/articles/%s/exercise", apiBase, summaries[0].ID)
		if err := getJSON(client, url, &doc); err != nil {
			return nil, err
		}
		return &doc, nil
	}

	var doc model.ArticleDocument
	url := fmt.Sprintf("%s/articles/slug/%s/exercise", apiBase, slug)
	if err := getJSON(client, url, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func fetchSummaries(client *http.Client, apiBase string) ([]model.ArticleSummary, error) {
	var summaries []model.ArticleSummary
	if err := getJSON(client, apiBase+"/articles", &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func getJSON(client *http.Client, url string, dst interface{}) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("not found: %s", url)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

// run walks the document once: selection, submission, results, reveal.
func run(in *bufio.Scanner, doc *model.ArticleDocument) {
	blanks := doc.Blanks()
	session := exercise.NewSession(blanks)

	fmt.Printf("\n=== %s ===\n\n", doc.Title)
	fmt.Printf("Question: %s\n\n", doc.Prompt)

	if len(doc.Expressions) > 0 {
		fmt.Println("Key expressions:")
		for _, expr := range doc.Expressions {
			fmt.Printf("  %s - %s\n", expr.French, expr.English)
		}
		fmt.Println()
	}

	fmt.Println(renderBody(doc))
	fmt.Println()

	for i, blank := range blanks {
		choice := askOption(in, i+1, blank.Options)
		if err := session.Select(blank.ID, choice); err != nil {
			fmt.Fprintf(os.Stderr, "selection failed: %v\n", err)
		}
		fmt.Printf("(%d/%d completed)\n\n", session.Completed(), session.Total())
	}

	if !session.CanSubmit() {
		fmt.Println("Not every blank has an answer; nothing to submit.")
		return
	}

	results, err := session.Submit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "submit failed: %v\n", err)
		return
	}

	fmt.Printf("Score: %d/%d\n\n", results.Score, results.Total)
	for i, blank := range blanks {
		selected, _ := session.Selection(blank.ID)
		if correct, _ := session.Result(blank.ID); correct {
			fmt.Printf("  [%d] correct: %s\n", i+1, selected)
			continue
		}
		fmt.Printf("  [%d] wrong:   %s\n", i+1, selected)
		if opt, ok := exercise.CorrectOption(&blank); ok {
			fmt.Printf("      answer:  %s\n", opt.Text)
		}
		for _, opt := range blank.Options {
			if opt.Text == selected && opt.Error != "" {
				fmt.Printf("      note:    %s\n", opt.Error)
			}
		}
	}

	if askYesNo(in, "\nShow the full solution? [y/N] ") {
		fmt.Printf("\n%s\n", exercise.SolutionText(doc))
	}
}

// renderBody prints the article with numbered placeholders for blanks.
func renderBody(doc *model.ArticleDocument) string {
	var b strings.Builder
	blankNum := 0
	for _, seg := range doc.Segments {
		switch seg.Type {
		case model.SegmentText:
			b.WriteString(seg.Text)
		case model.SegmentBlank:
			blankNum++
			fmt.Fprintf(&b, "____(%d)", blankNum)
		}
	}
	return b.String()
}

func askOption(in *bufio.Scanner, num int, options []model.OptionView) string {
	fmt.Printf("Blank %d:\n", num)
	for i, opt := range options {
		fmt.Printf("  %d) %s\n", i+1, opt.Text)
	}
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return ""
		}
		choice, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err == nil && choice >= 1 && choice <= len(options) {
			return options[choice-1].Text
		}
		fmt.Printf("Enter a number between 1 and %d.\n", len(options))
	}
}

func askYesNo(in *bufio.Scanner, prompt string) bool {
	fmt.Print(prompt)
	if !in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(in.Text()))
	return answer == "y" || answer == "yes"
}
