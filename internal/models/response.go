package models

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// PresentationInfo describes the currently active presentation
type PresentationInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Path       string `json:"path"`
	SlideCount int    `json:"slide_count"`
}

// SlideInfo summarizes a single slide
type SlideInfo struct {
	ID         string `json:"id"`
	Index      int    `json:"index"`
	Title      string `json:"title"`
	ShapeCount int    `json:"shape_count"`
}

// ShapeInfo describes one shape on a slide. Geometry is in inches.
type ShapeInfo struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Text   string  `json:"text,omitempty"`
}

// SlideShapes is returned by get_slide_shapes
type SlideShapes struct {
	SlideIndex int                  `json:"slide_index"`
	SlideCount int                  `json:"slide_count"`
	ShapeCount int                  `json:"shape_count"`
	Shapes     map[string]ShapeInfo `json:"shapes"`
}

// ShapeText is one text-bearing shape's content
type ShapeText struct {
	ShapeName string `json:"shape_name"`
	Text      string `json:"text"`
}

// SlideText is returned by get_slide_text
type SlideText struct {
	SlideIndex       int                  `json:"slide_index"`
	SlideCount       int                  `json:"slide_count"`
	ShapeCount       int                  `json:"shape_count"`
	HasGroupedShapes bool                 `json:"has_grouped_shapes"`
	Content          map[string]ShapeText `json:"content"`
}

// TableContent is returned by get_table_content
type TableContent struct {
	Rows    int        `json:"rows"`
	Columns int        `json:"columns"`
	Data    [][]string `json:"data"`
}

// DocumentLayout reports the slide dimensions of the active presentation
type DocumentLayout struct {
	WidthEMU     int64   `json:"width_emu"`
	HeightEMU    int64   `json:"height_emu"`
	WidthInches  float64 `json:"width_inches"`
	HeightInches float64 `json:"height_inches"`
}

// ShapeResult reports an operation that created or touched a shape
type ShapeResult struct {
	Success    bool   `json:"success"`
	SlideIndex int    `json:"slide_index"`
	ShapeIndex int    `json:"shape_index"`
	Message    string `json:"message"`
}

// OperationResult is the generic success envelope for mutating operations
type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Path    string `json:"path,omitempty"`
}

// DeleteSlideResult is returned by delete_slide
type DeleteSlideResult struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	RemainingSlides int    `json:"remaining_slides"`
}

// UngroupResult is returned by ungroup_shapes
type UngroupResult struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	GroupsRemoved   int    `json:"groups_removed"`
	ShapesExtracted int    `json:"shapes_extracted"`
}
