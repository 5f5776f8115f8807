package exercise

import (
	"strings"

	"go_french_gapfill/internal/model"
)

// CorrectOption returns the option flagged correct for a blank.
func CorrectOption(blank *model.BlankView) (model.OptionView, bool) {
	if blank == nil {
		return model.OptionView{}, false
	}
	for _, opt := range blank.Options {
		if opt.Correct {
			return opt, true
		}
	}
	return model.OptionView{}, false
}

// Solution projects the document into its solved reading: every TEXT
// segment contributes its literal text, every BLANK segment the text of its
// correct option. A blank without a correct option contributes nothing;
// that is a content-authoring defect this layer does not detect or repair.
// The result is identical whether the document was shuffled or not.
func Solution(doc *model.ArticleDocument) []string {
	if doc == nil {
		return nil
	}
	parts := make([]string, 0, len(doc.Segments))
	for _, seg := range doc.Segments {
		switch seg.Type {
		case model.SegmentText:
			parts = append(parts, seg.Text)
		case model.SegmentBlank:
			if opt, ok := CorrectOption(seg.Blank); ok {
				parts = append(parts, opt.Text)
			}
		}
	}
	return parts
}

// SolutionText reconstructs the full intended article text by concatenating
// the solution parts in segment order.
func SolutionText(doc *model.ArticleDocument) string {
	return strings.Join(Solution(doc), "")
}
