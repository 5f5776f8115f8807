// Package exercise implements the interactive side of a gap-fill article:
// per-render option shuffling, the selection/submission session, and the
// solution projection. It operates entirely on an assembled ArticleDocument
// and performs no I/O.
package exercise

import (
	"math/rand/v2"

	"go_french_gapfill/internal/model"
)

// ShuffleDocument returns a copy of the document in which every blank's
// option list has been independently permuted with an unbiased Fisher-Yates
// shuffle. The input document is never mutated; option records keep their
// text, correctness flag, and error note. Call once per served render so
// every page load presents a fresh order.
func ShuffleDocument(doc *model.ArticleDocument) *model.ArticleDocument {
	if doc == nil {
		return nil
	}

	out := *doc
	out.Segments = make([]model.SegmentView, len(doc.Segments))
	for i, seg := range doc.Segments {
		out.Segments[i] = seg
		if seg.Type == model.SegmentBlank && seg.Blank != nil {
			shuffled := model.BlankView{
				ID:      seg.Blank.ID,
				Options: ShuffleOptions(seg.Blank.Options),
			}
			out.Segments[i].Blank = &shuffled
		}
	}
	return &out
}

// ShuffleOptions returns a uniformly shuffled copy of the options slice.
// The process-global rand/v2 source is used; it must never be reseeded per
// request, so independent invocations stay independent.
func ShuffleOptions(options []model.OptionView) []model.OptionView {
	shuffled := make([]model.OptionView, len(options))
	copy(shuffled, options)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
