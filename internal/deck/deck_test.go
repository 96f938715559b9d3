package deck

import (
	"context"
	"errors"
	"image"
	"path/filepath"
	"testing"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/slidesmith/slidesmith/internal/security"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(security.NewPathValidator(nil, []string{".pptx"}))
}

// ─── Unit Conversion ──────────────────────────────────────────────────────────

func TestEMUConversion(t *testing.T) {
	if got := emu(1); got != 914400 {
		t.Errorf("emu(1) = %d, want 914400", got)
	}
	if got := emu(0.5); got != 457200 {
		t.Errorf("emu(0.5) = %d, want 457200", got)
	}
	if got := inches(914400); got != 1 {
		t.Errorf("inches(914400) = %f, want 1", got)
	}
}

// ─── Active Presentation Bookkeeping ──────────────────────────────────────────

func TestOperationsWithoutPresentation(t *testing.T) {
	s := newTestService(t)

	if _, err := s.Info(); !errors.Is(err, ErrNoActivePresentation) {
		t.Errorf("Info: got %v, want ErrNoActivePresentation", err)
	}
	if _, err := s.Slides(); !errors.Is(err, ErrNoActivePresentation) {
		t.Errorf("Slides: got %v, want ErrNoActivePresentation", err)
	}
	if _, err := s.AddSlide(); !errors.Is(err, ErrNoActivePresentation) {
		t.Errorf("AddSlide: got %v, want ErrNoActivePresentation", err)
	}
	if _, err := s.Layout(); !errors.Is(err, ErrNoActivePresentation) {
		t.Errorf("Layout: got %v, want ErrNoActivePresentation", err)
	}
	if err := s.Close(); !errors.Is(err, ErrNoActivePresentation) {
		t.Errorf("Close: got %v, want ErrNoActivePresentation", err)
	}
}

func TestCreateAndClose(t *testing.T) {
	s := newTestService(t)

	info, err := s.Create(context.Background(), "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if info.ID == "" {
		t.Error("presentation id should be assigned")
	}
	if info.Path != "" {
		t.Errorf("new presentation should have no path, got %q", info.Path)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := s.Info(); !errors.Is(err, ErrNoActivePresentation) {
		t.Error("presentation should be gone after Close")
	}
}

func TestCreateReplacesActive(t *testing.T) {
	s := newTestService(t)

	first, err := s.Create(context.Background(), "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := s.Create(context.Background(), "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID == second.ID {
		t.Error("replacing the active presentation should assign a new id")
	}
}

func TestSaveWithoutPathOnNewPresentation(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Create(context.Background(), ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Save(context.Background(), ""); !errors.Is(err, ErrSavePathRequired) {
		t.Errorf("Save: got %v, want ErrSavePathRequired", err)
	}
}

func TestSaveAndReopen(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Create(context.Background(), ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.AddTextBox(0, "persisted", 1, 1, 4, 1); err != nil {
		t.Fatalf("AddTextBox: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.pptx")
	saved, err := s.Save(context.Background(), path)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved != path {
		t.Errorf("saved path = %q, want %q", saved, path)
	}

	if _, err := s.Open(context.Background(), path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	text, err := s.SlideText(0)
	if err != nil {
		t.Fatalf("SlideText: %v", err)
	}
	found := false
	for _, st := range text.Content {
		if st.Text == "persisted" {
			found = true
		}
	}
	if !found {
		t.Error("saved textbox missing after reopen")
	}
}

// ─── Slide Operations ─────────────────────────────────────────────────────────

func TestAddAndDeleteSlide(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Create(context.Background(), ""); err != nil {
		t.Fatalf("Create: %v", err)
	}

	before, _ := s.Slides()
	added, err := s.AddSlide()
	if err != nil {
		t.Fatalf("AddSlide: %v", err)
	}
	if added.Index != len(before) {
		t.Errorf("new slide index = %d, want %d", added.Index, len(before))
	}

	remaining, err := s.DeleteSlide(added.Index)
	if err != nil {
		t.Fatalf("DeleteSlide: %v", err)
	}
	if remaining != len(before) {
		t.Errorf("remaining = %d, want %d", remaining, len(before))
	}
}

func TestDeleteSlideOutOfRange(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Create(context.Background(), ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.DeleteSlide(99); !errors.Is(err, ErrSlideOutOfRange) {
		t.Errorf("got %v, want ErrSlideOutOfRange", err)
	}
	if _, err := s.DeleteSlide(-1); !errors.Is(err, ErrSlideOutOfRange) {
		t.Errorf("got %v, want ErrSlideOutOfRange", err)
	}
}

// ─── Shape Operations ─────────────────────────────────────────────────────────

func TestAddTextBoxAndReadBack(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Create(context.Background(), ""); err != nil {
		t.Fatalf("Create: %v", err)
	}

	idx, err := s.AddTextBox(0, "hello world", 1, 2, 4, 2)
	if err != nil {
		t.Fatalf("AddTextBox: %v", err)
	}

	shapes, err := s.SlideShapes(0)
	if err != nil {
		t.Fatalf("SlideShapes: %v", err)
	}
	var found bool
	for _, info := range shapes.Shapes {
		if info.Text == "hello world" {
			found = true
			if info.Left != 1 || info.Top != 2 {
				t.Errorf("geometry = (%f,%f), want (1,2)", info.Left, info.Top)
			}
		}
	}
	if !found {
		t.Errorf("textbox (shape %d) not found in slide shapes", idx)
	}

	text, err := s.SlideText(0)
	if err != nil {
		t.Fatalf("SlideText: %v", err)
	}
	var textFound bool
	for _, st := range text.Content {
		if st.Text == "hello world" {
			textFound = true
		}
	}
	if !textFound {
		t.Error("textbox content missing from slide text")
	}
}

func TestUpdateTextOutOfRange(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Create(context.Background(), ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := s.UpdateText(0, 99, "x", TextFormat{}, true)
	if !errors.Is(err, ErrShapeOutOfRange) {
		t.Errorf("got %v, want ErrShapeOutOfRange", err)
	}
}

func TestUpdateShapeUnknownID(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Create(context.Background(), ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	text := "x"
	_, err := s.UpdateShape(0, "no-such-shape", ShapeUpdate{Text: &text})
	if !errors.Is(err, ErrShapeOutOfRange) {
		t.Errorf("got %v, want ErrShapeOutOfRange", err)
	}
}

func TestUpdateShapeGeometryAndText(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Create(context.Background(), ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.AddTextBox(0, "before", 1, 1, 4, 1); err != nil {
		t.Fatalf("AddTextBox: %v", err)
	}

	text := "after"
	left, width := 2.5, 6.0
	updated, err := s.UpdateShape(0, "shape-0", ShapeUpdate{Text: &text, Left: &left, Width: &width})
	if err != nil {
		t.Fatalf("UpdateShape: %v", err)
	}
	if len(updated) != 3 {
		t.Errorf("updated = %v, want text/left/width", updated)
	}

	shapes, err := s.SlideShapes(0)
	if err != nil {
		t.Fatalf("SlideShapes: %v", err)
	}
	info, ok := shapes.Shapes["shape-0"]
	if !ok {
		t.Fatal("shape-0 missing")
	}
	if info.Text != "after" {
		t.Errorf("text = %q, want %q", info.Text, "after")
	}
	if info.Left != 2.5 || info.Width != 6 {
		t.Errorf("geometry = (%f,%f), want (2.5,6)", info.Left, info.Width)
	}
	if info.Top != 1 {
		t.Errorf("top = %f, should be untouched", info.Top)
	}
}

func TestUpdateShapeRequiresSomeUpdate(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Create(context.Background(), ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.UpdateShape(0, "anything", ShapeUpdate{}); err == nil {
		t.Error("empty update should be rejected")
	}
}

func TestUngroupWithoutGroups(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Create(context.Background(), ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	groups, extracted, err := s.Ungroup(0)
	if err != nil {
		t.Fatalf("Ungroup: %v", err)
	}
	if groups != 0 || extracted != 0 {
		t.Errorf("got (%d,%d), want (0,0)", groups, extracted)
	}
}

// groupWithText builds a group of textboxes on the slide, one per text.
func groupWithText(sl *ppt.Slide, texts ...string) *ppt.GroupShape {
	grp := sl.CreateGroupShape()
	for _, text := range texts {
		child := ppt.NewRichTextShape()
		child.CreateTextRun(text)
		grp.AddShape(child)
	}
	return grp
}

func TestUngroupPromotesTextGroups(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Create(context.Background(), ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	sl := s.pres.GetAllSlides()[0]

	groupWithText(sl, "first", "second")
	if _, err := s.AddTextBox(0, "ungrouped", 1, 1, 4, 1); err != nil {
		t.Fatalf("AddTextBox: %v", err)
	}
	groupWithText(sl, "third")

	// A group without any text stays intact.
	empty := sl.CreateGroupShape()
	empty.AddShape(ppt.NewLineShape())

	groups, extracted, err := s.Ungroup(0)
	if err != nil {
		t.Fatalf("Ungroup: %v", err)
	}
	if groups != 2 {
		t.Errorf("groups = %d, want 2", groups)
	}
	if extracted != 3 {
		t.Errorf("extracted = %d, want 3", extracted)
	}

	remaining := 0
	for _, sh := range sl.GetShapes() {
		if _, ok := sh.(*ppt.GroupShape); ok {
			remaining++
		}
	}
	if remaining != 1 {
		t.Errorf("remaining groups = %d, want 1 (the textless one)", remaining)
	}

	text, err := s.SlideText(0)
	if err != nil {
		t.Fatalf("SlideText: %v", err)
	}
	for _, want := range []string{"first", "second", "third", "ungrouped"} {
		found := false
		for _, st := range text.Content {
			if st.Text == want {
				found = true
			}
		}
		if !found {
			t.Errorf("text %q missing after ungroup", want)
		}
	}
}

func TestUngroupRejectsNestedGroups(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Create(context.Background(), ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	sl := s.pres.GetAllSlides()[0]

	outer := groupWithText(sl, "outer text")
	inner := ppt.NewGroupShape()
	child := ppt.NewRichTextShape()
	child.CreateTextRun("inner text")
	inner.AddShape(child)
	outer.AddShape(inner)

	before := len(sl.GetShapes())
	if _, _, err := s.Ungroup(0); !errors.Is(err, ErrNestedGroups) {
		t.Fatalf("got %v, want ErrNestedGroups", err)
	}
	if len(sl.GetShapes()) != before {
		t.Error("slide should be untouched when ungroup is rejected")
	}
}

// ─── Tables ───────────────────────────────────────────────────────────────────

func TestTableRoundTrip(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Create(context.Background(), ""); err != nil {
		t.Fatalf("Create: %v", err)
	}

	idx, err := s.AddTable(0, 2, 3, 1, 1, 8, 4)
	if err != nil {
		t.Fatalf("AddTable: %v", err)
	}
	if err := s.UpdateTableCell(0, idx, 0, 0, "header"); err != nil {
		t.Fatalf("UpdateTableCell: %v", err)
	}
	if err := s.UpdateTableCell(0, idx, 1, 2, "value"); err != nil {
		t.Fatalf("UpdateTableCell: %v", err)
	}

	content, err := s.TableContent(0, idx)
	if err != nil {
		t.Fatalf("TableContent: %v", err)
	}
	if content.Rows != 2 || content.Columns != 3 {
		t.Errorf("dimensions = %dx%d, want 2x3", content.Rows, content.Columns)
	}
	if content.Data[0][0] != "header" {
		t.Errorf("cell (0,0) = %q, want %q", content.Data[0][0], "header")
	}
	if content.Data[1][2] != "value" {
		t.Errorf("cell (1,2) = %q, want %q", content.Data[1][2], "value")
	}
}

func TestTableCellOutOfRange(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Create(context.Background(), ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	idx, err := s.AddTable(0, 2, 2, 1, 1, 8, 4)
	if err != nil {
		t.Fatalf("AddTable: %v", err)
	}
	if err := s.UpdateTableCell(0, idx, 5, 0, "x"); !errors.Is(err, ErrCellOutOfRange) {
		t.Errorf("got %v, want ErrCellOutOfRange", err)
	}
	if err := s.UpdateTableCell(0, idx, 0, 5, "x"); !errors.Is(err, ErrCellOutOfRange) {
		t.Errorf("got %v, want ErrCellOutOfRange", err)
	}
}

func TestTableContentOnNonTable(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Create(context.Background(), ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	idx, err := s.AddTextBox(0, "not a table", 1, 1, 4, 2)
	if err != nil {
		t.Fatalf("AddTextBox: %v", err)
	}
	if _, err := s.TableContent(0, idx); !errors.Is(err, ErrNotTable) {
		t.Errorf("got %v, want ErrNotTable", err)
	}
}

// ─── Charts ───────────────────────────────────────────────────────────────────

func TestAddChartValidation(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Create(context.Background(), ""); err != nil {
		t.Fatalf("Create: %v", err)
	}

	spec := ChartSpec{
		Type:       "COLUMN",
		Categories: []string{"Q1", "Q2"},
		Series: []ChartSeriesSpec{
			{Name: "Revenue", Values: []float64{10, 20}},
		},
		Left: 1, Top: 1, Width: 8, Height: 4,
	}
	if _, err := s.AddChart(0, spec); err != nil {
		t.Fatalf("AddChart: %v", err)
	}

	bad := spec
	bad.Series = []ChartSeriesSpec{{Name: "Short", Values: []float64{10}}}
	if _, err := s.AddChart(0, bad); err == nil {
		t.Error("mismatched series length should be rejected")
	}

	// Unknown types fall back to a column chart rather than failing.
	fallback := spec
	fallback.Type = "SCATTER"
	if _, err := s.AddChart(0, fallback); err != nil {
		t.Errorf("unknown chart type should fall back to column: %v", err)
	}

	empty := spec
	empty.Categories = nil
	if _, err := s.AddChart(0, empty); err == nil {
		t.Error("empty categories should be rejected")
	}
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

func TestNormalizeColor(t *testing.T) {
	cases := map[string]string{
		"FF0000":    "FFFF0000",
		"#00ff00":   "FF00FF00",
		"80FF0000":  "80FF0000",
		"#80ff0000": "80FF0000",
	}
	for in, want := range cases {
		if got := normalizeColor(in); got != want {
			t.Errorf("normalizeColor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolveImageSize(t *testing.T) {
	cfg := image.Config{Width: 192, Height: 96} // 2x1 inches at 96 DPI
	four := 4.0
	two := 2.0

	w, h := resolveImageSize(cfg, &four, &two)
	if w != 4 || h != 2 {
		t.Errorf("explicit size = (%f,%f), want (4,2)", w, h)
	}

	w, h = resolveImageSize(cfg, &four, nil)
	if w != 4 || h != 2 {
		t.Errorf("width-only = (%f,%f), want (4,2)", w, h)
	}

	w, h = resolveImageSize(cfg, nil, &two)
	if w != 4 || h != 2 {
		t.Errorf("height-only = (%f,%f), want (4,2)", w, h)
	}

	w, h = resolveImageSize(cfg, nil, nil)
	if w != 2 || h != 1 {
		t.Errorf("native size = (%f,%f), want (2,1)", w, h)
	}
}

func TestImageMIME(t *testing.T) {
	cases := map[string]string{
		"chart.png":  "image/png",
		"photo.JPG":  "image/jpeg",
		"photo.jpeg": "image/jpeg",
		"anim.gif":   "image/gif",
	}
	for path, want := range cases {
		if got := imageMIME(path); got != want {
			t.Errorf("imageMIME(%q) = %q, want %q", path, got, want)
		}
	}
}
