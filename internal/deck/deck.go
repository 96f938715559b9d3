// Package deck owns the active-presentation slot and every forwarding
// operation onto the GoPPT object model. Tool inputs and outputs use inches;
// conversion to GoPPT's EMU coordinates happens here and nowhere else.
package deck

import (
	"errors"
	"strings"
	"sync"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/slidesmith/slidesmith/internal/security"
)

const emuPerInch = 914400

var (
	ErrNoActivePresentation = errors.New("no active presentation: open or create a presentation first")
	ErrSlideOutOfRange      = errors.New("slide index out of range")
	ErrShapeOutOfRange      = errors.New("shape index out of range")
	ErrNotTextShape         = errors.New("shape does not contain editable text")
	ErrNotTable             = errors.New("shape is not a table")
	ErrCellOutOfRange       = errors.New("table cell out of range")
	ErrNestedGroups         = errors.New("slide contains nested groups; ungroup skipped")
	ErrSavePathRequired     = errors.New("save path must be specified for new presentations")
)

// Service holds the single active presentation. MCP over HTTP can see
// concurrent tool calls, so every operation takes the mutex.
type Service struct {
	mu    sync.Mutex
	pres  *ppt.Presentation
	path  string
	id    string
	paths *security.PathValidator
}

func NewService(paths *security.PathValidator) *Service {
	return &Service{paths: paths}
}

func emu(in float64) int64 {
	return int64(in * emuPerInch)
}

func inches(e int64) float64 {
	return float64(e) / emuPerInch
}

// slide returns the slide at index. Caller holds s.mu.
func (s *Service) slide(index int) (*ppt.Slide, error) {
	if s.pres == nil {
		return nil, ErrNoActivePresentation
	}
	slides := s.pres.GetAllSlides()
	if index < 0 || index >= len(slides) {
		return nil, ErrSlideOutOfRange
	}
	return slides[index], nil
}

// textShape extracts the rich-text view of a shape, unwrapping placeholders.
func textShape(sh ppt.Shape) (*ppt.RichTextShape, bool) {
	switch t := sh.(type) {
	case *ppt.RichTextShape:
		return t, true
	case *ppt.PlaceholderShape:
		return &t.RichTextShape, true
	}
	return nil, false
}

// shapeText flattens all paragraphs of a text shape into one string,
// paragraphs separated by newlines.
func shapeText(rts *ppt.RichTextShape) string {
	return paragraphsText(rts.GetParagraphs())
}

// paragraphsText mirrors GoPPT's own text extraction: empty paragraphs are
// skipped rather than rendered as blank lines.
func paragraphsText(paras []*ppt.Paragraph) string {
	var parts []string
	for _, para := range paras {
		var b strings.Builder
		for _, elem := range para.GetElements() {
			if run, ok := elem.(*ppt.TextRun); ok {
				b.WriteString(run.GetText())
			}
		}
		if b.Len() > 0 {
			parts = append(parts, b.String())
		}
	}
	return strings.Join(parts, "\n")
}

// isTitlePlaceholder reports whether a shape is the slide's title placeholder.
func isTitlePlaceholder(sh ppt.Shape) (*ppt.PlaceholderShape, bool) {
	ps, ok := sh.(*ppt.PlaceholderShape)
	if !ok {
		return nil, false
	}
	return ps, ps.GetPlaceholderType() == ppt.PlaceholderTitle
}
