package deck

import (
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/rs/zerolog/log"

	"github.com/slidesmith/slidesmith/internal/models"
)

// Slides lists every slide of the active presentation in order.
func (s *Service) Slides() ([]models.SlideInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pres == nil {
		return nil, ErrNoActivePresentation
	}

	slides := s.pres.GetAllSlides()
	infos := make([]models.SlideInfo, 0, len(slides))
	for i, sl := range slides {
		title := slideTitle(sl)
		if title == "" {
			title = "Untitled Slide"
		}
		infos = append(infos, models.SlideInfo{
			ID:         fmt.Sprintf("slide-%d", i),
			Index:      i,
			Title:      title,
			ShapeCount: len(sl.GetShapes()),
		})
	}
	return infos, nil
}

// AddSlide appends a blank slide and returns its descriptor.
func (s *Service) AddSlide() (*models.SlideInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pres == nil {
		return nil, ErrNoActivePresentation
	}

	s.pres.CreateSlide()
	index := len(s.pres.GetAllSlides()) - 1
	log.Debug().Int("slide_index", index).Msg("slide added")
	return &models.SlideInfo{
		ID:    fmt.Sprintf("slide-%d", index),
		Index: index,
	}, nil
}

// DeleteSlide removes the slide at index and returns the remaining count.
func (s *Service) DeleteSlide(index int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pres == nil {
		return 0, ErrNoActivePresentation
	}
	if index < 0 || index >= len(s.pres.GetAllSlides()) {
		return 0, ErrSlideOutOfRange
	}

	if err := s.pres.RemoveSlideByIndex(index); err != nil {
		return 0, fmt.Errorf("failed to delete slide: %w", err)
	}
	remaining := len(s.pres.GetAllSlides())
	log.Debug().Int("slide_index", index).Int("remaining", remaining).Msg("slide deleted")
	return remaining, nil
}

// SlideText collects the text of every text-bearing shape on a slide, keyed
// by a stable shape identifier. Grouped shapes are flagged but not descended.
func (s *Service) SlideText(index int) (*models.SlideText, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, err := s.slide(index)
	if err != nil {
		return nil, err
	}

	shapes := sl.GetShapes()
	out := &models.SlideText{
		SlideIndex: index,
		SlideCount: len(s.pres.GetAllSlides()),
		ShapeCount: len(shapes),
		Content:    map[string]models.ShapeText{},
	}
	for i, sh := range shapes {
		if _, ok := sh.(*ppt.GroupShape); ok {
			out.HasGroupedShapes = true
			continue
		}
		rts, ok := textShape(sh)
		if !ok {
			continue
		}
		text := shapeText(rts)
		if text == "" {
			continue
		}
		out.Content[shapeKey(sh, i)] = models.ShapeText{
			ShapeName: sh.GetName(),
			Text:      text,
		}
	}
	return out, nil
}

// SlideShapes describes every shape on a slide with geometry in inches.
func (s *Service) SlideShapes(index int) (*models.SlideShapes, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, err := s.slide(index)
	if err != nil {
		return nil, err
	}

	shapes := sl.GetShapes()
	out := &models.SlideShapes{
		SlideIndex: index,
		SlideCount: len(s.pres.GetAllSlides()),
		ShapeCount: len(shapes),
		Shapes:     map[string]models.ShapeInfo{},
	}
	for i, sh := range shapes {
		key := shapeKey(sh, i)
		info := models.ShapeInfo{
			ID:     key,
			Name:   sh.GetName(),
			Type:   shapeType(sh),
			Left:   inches(sh.GetOffsetX()),
			Top:    inches(sh.GetOffsetY()),
			Width:  inches(sh.GetWidth()),
			Height: inches(sh.GetHeight()),
		}
		if rts, ok := textShape(sh); ok {
			info.Text = shapeText(rts)
		}
		out.Shapes[key] = info
	}
	return out, nil
}

// SetSlideTitle writes the title of a slide. When the slide has no title
// placeholder, a bold 44pt textbox across the top stands in for one.
func (s *Service) SetSlideTitle(index int, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, err := s.slide(index)
	if err != nil {
		return err
	}

	for _, sh := range sl.GetShapes() {
		if ps, ok := isTitlePlaceholder(sh); ok {
			ps.SetText(title)
			return nil
		}
	}

	// No title placeholder on this slide layout.
	rts := sl.CreateRichTextShape()
	rts.SetName("Title")
	rts.SetOffsetX(emu(1)).SetOffsetY(emu(0.5)).SetWidth(emu(8)).SetHeight(emu(1))
	run := rts.CreateTextRun(title)
	run.GetFont().SetSize(44)
	run.GetFont().SetBold(true)
	return nil
}

// Layout reports the slide dimensions of the active presentation.
func (s *Service) Layout() (*models.DocumentLayout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pres == nil {
		return nil, ErrNoActivePresentation
	}

	layout := s.pres.GetLayout()
	return &models.DocumentLayout{
		WidthEMU:     layout.CX,
		HeightEMU:    layout.CY,
		WidthInches:  inches(layout.CX),
		HeightInches: inches(layout.CY),
	}, nil
}

func slideTitle(sl *ppt.Slide) string {
	for _, sh := range sl.GetShapes() {
		if ps, ok := isTitlePlaceholder(sh); ok {
			return shapeText(&ps.RichTextShape)
		}
	}
	return ""
}

func shapeKey(sh ppt.Shape, index int) string {
	if name := sh.GetName(); name != "" {
		return fmt.Sprintf("%s-%d", name, index)
	}
	return fmt.Sprintf("shape-%d", index)
}

func shapeType(sh ppt.Shape) string {
	switch sh.(type) {
	case *ppt.PlaceholderShape:
		return "placeholder"
	case *ppt.RichTextShape:
		return "textbox"
	case *ppt.TableShape:
		return "table"
	case *ppt.ChartShape:
		return "chart"
	case *ppt.DrawingShape:
		return "picture"
	case *ppt.AutoShape:
		return "autoshape"
	case *ppt.LineShape:
		return "line"
	case *ppt.GroupShape:
		return "group"
	}
	return "unknown"
}
