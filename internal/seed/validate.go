package seed

import (
	"fmt"

	"go_french_gapfill/internal/model"
)

// ValidateArticle is the authoring-time content lint. It checks the
// invariants the schema cannot express and the serve path deliberately
// never checks: contiguous 0-based segment order, TEXT/BLANK shape, one
// blank per BLANK segment, at least two options per blank with exactly one
// correct, no duplicate option text within a blank, and error notes only on
// incorrect options. The article must be loaded with its segments, blanks,
// and options.
func ValidateArticle(article *model.Article) error {
	if article.Title == "" {
		return fmt.Errorf("article %s: empty title", article.ArticleID)
	}

	seenOrders := make(map[int]bool, len(article.Segments))
	for _, seg := range article.Segments {
		if seenOrders[seg.Order] {
			return fmt.Errorf("article %s: duplicate segment order %d", article.ArticleID, seg.Order)
		}
		seenOrders[seg.Order] = true
	}
	for i := 0; i < len(article.Segments); i++ {
		if !seenOrders[i] {
			return fmt.Errorf("article %s: segment order gap at %d", article.ArticleID, i)
		}
	}

	for _, seg := range article.Segments {
		switch seg.Type {
		case model.SegmentText:
			if seg.Content == nil {
				return fmt.Errorf("segment %s (order %d): TEXT segment without content", seg.SegmentID, seg.Order)
			}
			if seg.Blank != nil {
				return fmt.Errorf("segment %s (order %d): TEXT segment owns a blank", seg.SegmentID, seg.Order)
			}
		case model.SegmentBlank:
			if seg.Content != nil {
				return fmt.Errorf("segment %s (order %d): BLANK segment carries inline content", seg.SegmentID, seg.Order)
			}
			if seg.Blank == nil {
				return fmt.Errorf("segment %s (order %d): BLANK segment without a blank", seg.SegmentID, seg.Order)
			}
			if err := validateBlank(seg.Blank); err != nil {
				return fmt.Errorf("segment %s (order %d): %w", seg.SegmentID, seg.Order, err)
			}
		default:
			return fmt.Errorf("segment %s (order %d): unknown type %q", seg.SegmentID, seg.Order, seg.Type)
		}
	}

	return nil
}

func validateBlank(blank *model.Blank) error {
	if len(blank.Options) < 2 {
		return fmt.Errorf("blank %s: needs at least 2 options, has %d", blank.BlankID, len(blank.Options))
	}

	correctCount := 0
	seenText := make(map[string]bool, len(blank.Options))
	for _, opt := range blank.Options {
		if opt.Text == "" {
			return fmt.Errorf("blank %s: option %s has empty text", blank.BlankID, opt.OptionID)
		}
		if seenText[opt.Text] {
			// Selection is matched by text equality, so duplicates are
			// indistinguishable to the learner.
			return fmt.Errorf("blank %s: duplicate option text %q", blank.BlankID, opt.Text)
		}
		seenText[opt.Text] = true

		if opt.Correct {
			correctCount++
			if opt.Error != nil {
				return fmt.Errorf("blank %s: correct option %s carries an error note", blank.BlankID, opt.OptionID)
			}
		}
	}
	if correctCount != 1 {
		return fmt.Errorf("blank %s: expected exactly 1 correct option, found %d", blank.BlankID, correctCount)
	}

	return nil
}
