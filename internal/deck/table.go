package deck

import (
	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/rs/zerolog/log"

	"github.com/slidesmith/slidesmith/internal/models"
)

// AddTable inserts an empty rows x cols table at the given position (inches)
// and returns its shape index.
func (s *Service) AddTable(slideIndex, rows, cols int, left, top, width, height float64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, err := s.slide(slideIndex)
	if err != nil {
		return 0, err
	}

	table := sl.CreateTableShape(rows, cols)
	table.SetWidth(emu(width)).SetHeight(emu(height))
	table.SetOffsetX(emu(left)).SetOffsetY(emu(top))

	index := len(sl.GetShapes()) - 1
	log.Debug().Int("slide_index", slideIndex).Int("rows", rows).Int("cols", cols).Msg("table added")
	return index, nil
}

// UpdateTableCell writes text into one cell of a table shape.
func (s *Service) UpdateTableCell(slideIndex, shapeIndex, row, col int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	table, err := s.tableAt(slideIndex, shapeIndex)
	if err != nil {
		return err
	}

	if row < 0 || row >= table.GetNumRows() || col < 0 || col >= table.GetNumCols() {
		return ErrCellOutOfRange
	}
	table.GetCell(row, col).SetText(text)
	return nil
}

// TableContent reads the full text grid of a table shape.
func (s *Service) TableContent(slideIndex, shapeIndex int) (*models.TableContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	table, err := s.tableAt(slideIndex, shapeIndex)
	if err != nil {
		return nil, err
	}

	out := &models.TableContent{
		Rows:    table.GetNumRows(),
		Columns: table.GetNumCols(),
	}
	for _, row := range table.GetRows() {
		texts := make([]string, 0, len(row))
		for _, cell := range row {
			texts = append(texts, paragraphsText(cell.GetParagraphs()))
		}
		out.Data = append(out.Data, texts)
	}
	return out, nil
}

// tableAt resolves a shape index to a table shape. Caller holds s.mu.
func (s *Service) tableAt(slideIndex, shapeIndex int) (*ppt.TableShape, error) {
	sl, err := s.slide(slideIndex)
	if err != nil {
		return nil, err
	}
	shapes := sl.GetShapes()
	if shapeIndex < 0 || shapeIndex >= len(shapes) {
		return nil, ErrShapeOutOfRange
	}
	table, ok := shapes[shapeIndex].(*ppt.TableShape)
	if !ok {
		return nil, ErrNotTable
	}
	return table, nil
}
