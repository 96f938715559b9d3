package deck

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/rs/zerolog/log"
)

// TextFormat carries optional formatting for UpdateText. Zero values mean
// "leave alone"; Bold and Italic are pointers so false can be set explicitly.
type TextFormat struct {
	FontName string
	FontSize int
	Color    string // RRGGBB or AARRGGBB
	Bold     *bool
	Italic   *bool
}

// ShapeUpdate carries the optional fields of UpdateShape. Nil means "leave
// alone". Geometry is in inches.
type ShapeUpdate struct {
	Text   *string
	Left   *float64
	Top    *float64
	Width  *float64
	Height *float64
}

// AddTextBox inserts a textbox at the given position (inches) and returns
// its shape index on the slide.
func (s *Service) AddTextBox(slideIndex int, text string, left, top, width, height float64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, err := s.slide(slideIndex)
	if err != nil {
		return 0, err
	}

	rts := sl.CreateRichTextShape()
	rts.SetOffsetX(emu(left)).SetOffsetY(emu(top)).SetWidth(emu(width)).SetHeight(emu(height))
	rts.CreateTextRun(text)

	index := len(sl.GetShapes()) - 1
	log.Debug().Int("slide_index", slideIndex).Int("shape_index", index).Msg("textbox added")
	return index, nil
}

// AddImage places an image file on a slide. Width and height are optional:
// a missing dimension is derived from the image's aspect ratio, and when
// both are missing the native pixel size is used at 96 DPI.
func (s *Service) AddImage(ctx context.Context, slideIndex int, imagePath string, left, top float64, width, height *float64) (int, error) {
	if err := s.paths.ValidateRead(imagePath); err != nil {
		return 0, err
	}
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return 0, fmt.Errorf("failed to read image: %w", err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("unsupported image format: %w", err)
	}

	w, h := resolveImageSize(cfg, width, height)

	s.mu.Lock()
	defer s.mu.Unlock()
	sl, err := s.slide(slideIndex)
	if err != nil {
		return 0, err
	}

	drawing := sl.CreateDrawingShape()
	drawing.SetName(filepath.Base(imagePath))
	drawing.SetImageData(data, imageMIME(imagePath))
	drawing.SetOffsetX(emu(left)).SetOffsetY(emu(top)).SetWidth(emu(w)).SetHeight(emu(h))

	index := len(sl.GetShapes()) - 1
	log.Debug().Int("slide_index", slideIndex).Str("image", imagePath).Msg("image added")
	return index, nil
}

// UpdateText replaces the text of a shape. With preserve true the first
// existing run's font carries over to the new text; explicit formatting in
// format wins over the preserved values either way.
func (s *Service) UpdateText(slideIndex, shapeIndex int, text string, format TextFormat, preserve bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, err := s.slide(slideIndex)
	if err != nil {
		return err
	}
	shapes := sl.GetShapes()
	if shapeIndex < 0 || shapeIndex >= len(shapes) {
		return ErrShapeOutOfRange
	}
	rts, ok := textShape(shapes[shapeIndex])
	if !ok {
		return ErrNotTextShape
	}

	run := resetText(rts, text)
	if !preserve {
		run.SetFont(ppt.NewFont())
	}
	applyFormat(run.GetFont(), format)
	return nil
}

// UpdateShape edits the text and geometry of one shape, addressed by its
// name or positional identifier. It returns the list of properties changed.
func (s *Service) UpdateShape(slideIndex int, shapeID string, upd ShapeUpdate) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, err := s.slide(slideIndex)
	if err != nil {
		return nil, err
	}

	if upd.Text == nil && upd.Left == nil && upd.Top == nil && upd.Width == nil && upd.Height == nil {
		return nil, fmt.Errorf("no updates specified")
	}

	var target ppt.Shape
	for i, sh := range sl.GetShapes() {
		if shapeKey(sh, i) == shapeID || sh.GetName() == shapeID {
			target = sh
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("%w: no shape %q on slide %d", ErrShapeOutOfRange, shapeID, slideIndex)
	}

	var updated []string
	if upd.Text != nil {
		rts, ok := textShape(target)
		if !ok {
			return nil, ErrNotTextShape
		}
		resetText(rts, *upd.Text)
		updated = append(updated, "text")
	}
	// The Shape interface only exposes geometry getters; the setters live
	// on the embedded BaseShape of each concrete shape.
	base := baseOf(target)
	if base == nil && (upd.Left != nil || upd.Top != nil || upd.Width != nil || upd.Height != nil) {
		return nil, fmt.Errorf("shape %q does not support geometry updates", shapeID)
	}
	if upd.Left != nil {
		base.SetOffsetX(emu(*upd.Left))
		updated = append(updated, "left")
	}
	if upd.Top != nil {
		base.SetOffsetY(emu(*upd.Top))
		updated = append(updated, "top")
	}
	if upd.Width != nil {
		base.SetWidth(emu(*upd.Width))
		updated = append(updated, "width")
	}
	if upd.Height != nil {
		base.SetHeight(emu(*upd.Height))
		updated = append(updated, "height")
	}
	return updated, nil
}

// Ungroup flattens text-bearing top-level groups on a slide, promoting the
// grouped shapes to the slide itself so they become directly addressable.
// Groups without any text are left intact. A slide containing nested groups
// is rejected whole.
func (s *Service) Ungroup(slideIndex int) (groups, extracted int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, err := s.slide(slideIndex)
	if err != nil {
		return 0, 0, err
	}

	for _, sh := range sl.GetShapes() {
		grp, ok := sh.(*ppt.GroupShape)
		if !ok {
			continue
		}
		for _, member := range grp.GetShapes() {
			if _, nested := member.(*ppt.GroupShape); nested {
				return 0, 0, ErrNestedGroups
			}
		}
	}

	// Collect first: AddShape and RemoveShape both mutate the slide's
	// shape slice, so nothing may change while ranging over it.
	var groupIndexes []int
	var promoted []ppt.Shape
	for i, sh := range sl.GetShapes() {
		grp, ok := sh.(*ppt.GroupShape)
		if !ok || !groupHasText(grp) {
			continue
		}
		groupIndexes = append(groupIndexes, i)
		// Children of a simple group keep slide-space coordinates (the
		// group's child offset equals its own), so promotion needs no
		// geometry rewrite.
		promoted = append(promoted, grp.GetShapes()...)
	}

	// Remove highest index first so the remaining indexes stay valid.
	for i := len(groupIndexes) - 1; i >= 0; i-- {
		if err := sl.RemoveShape(groupIndexes[i]); err != nil {
			return 0, 0, fmt.Errorf("failed to remove group: %w", err)
		}
	}
	for _, member := range promoted {
		sl.AddShape(member)
	}
	groups = len(groupIndexes)
	extracted = len(promoted)

	log.Debug().Int("slide_index", slideIndex).Int("groups", groups).Int("shapes", extracted).Msg("groups flattened")
	return groups, extracted, nil
}

func groupHasText(grp *ppt.GroupShape) bool {
	for _, member := range grp.GetShapes() {
		if rts, ok := textShape(member); ok && shapeText(rts) != "" {
			return true
		}
	}
	return false
}

// resetText replaces a shape's visible text with a single run. The first
// existing run is reused so its font survives; every other run is blanked.
// Paragraph structure is left in place because GoPPT exposes no way to drop
// paragraphs from a RichTextShape.
func resetText(rts *ppt.RichTextShape, text string) *ppt.TextRun {
	var first *ppt.TextRun
	for _, para := range rts.GetParagraphs() {
		for _, elem := range para.GetElements() {
			run, ok := elem.(*ppt.TextRun)
			if !ok {
				continue
			}
			if first == nil {
				first = run
				run.SetText(text)
			} else {
				run.SetText("")
			}
		}
	}
	if first == nil {
		first = rts.CreateTextRun(text)
	}
	return first
}

// baseOf unwraps a shape to its embedded BaseShape, which carries the
// geometry setters.
func baseOf(sh ppt.Shape) *ppt.BaseShape {
	switch t := sh.(type) {
	case *ppt.RichTextShape:
		return &t.BaseShape
	case *ppt.PlaceholderShape:
		return &t.BaseShape
	case *ppt.DrawingShape:
		return &t.BaseShape
	case *ppt.TableShape:
		return &t.BaseShape
	case *ppt.ChartShape:
		return &t.BaseShape
	case *ppt.AutoShape:
		return &t.BaseShape
	case *ppt.LineShape:
		return &t.BaseShape
	case *ppt.GroupShape:
		return &t.BaseShape
	}
	return nil
}

func applyFormat(font *ppt.Font, format TextFormat) {
	if format.FontName != "" {
		font.SetName(format.FontName)
	}
	if format.FontSize > 0 {
		font.SetSize(format.FontSize)
	}
	if format.Bold != nil {
		font.SetBold(*format.Bold)
	}
	if format.Italic != nil {
		font.SetItalic(*format.Italic)
	}
	if format.Color != "" {
		font.SetColor(ppt.NewColor(normalizeColor(format.Color)))
	}
}

// normalizeColor accepts RRGGBB or AARRGGBB, with or without a leading #,
// and returns the AARRGGBB form GoPPT colors use.
func normalizeColor(c string) string {
	c = strings.ToUpper(strings.TrimPrefix(c, "#"))
	if len(c) == 6 {
		return "FF" + c
	}
	return c
}

func resolveImageSize(cfg image.Config, width, height *float64) (w, h float64) {
	const dpi = 96
	nativeW := float64(cfg.Width) / dpi
	nativeH := float64(cfg.Height) / dpi
	switch {
	case width != nil && height != nil:
		return *width, *height
	case width != nil:
		return *width, *width * nativeH / nativeW
	case height != nil:
		return *height * nativeW / nativeH, *height
	}
	return nativeW, nativeH
}

func imageMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	}
	return "image/png"
}
