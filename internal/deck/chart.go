package deck

import (
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/rs/zerolog/log"
)

// ChartSpec describes a chart to insert. Each entry of Series must carry one
// value per category. Geometry is in inches.
type ChartSpec struct {
	Type       string // column, bar, line, pie
	Categories []string
	Series     []ChartSeriesSpec
	Left       float64
	Top        float64
	Width      float64
	Height     float64
	Title      string
	ShowLegend bool
}

type ChartSeriesSpec struct {
	Name   string
	Values []float64
}

// AddChart inserts a chart shape built from spec and returns its shape index.
func (s *Service) AddChart(slideIndex int, spec ChartSpec) (int, error) {
	if len(spec.Categories) == 0 {
		return 0, fmt.Errorf("chart requires at least one category")
	}
	if len(spec.Series) == 0 {
		return 0, fmt.Errorf("chart requires at least one series")
	}
	for _, ser := range spec.Series {
		if len(ser.Values) != len(spec.Categories) {
			return 0, fmt.Errorf("series %q has %d values for %d categories", ser.Name, len(ser.Values), len(spec.Categories))
		}
	}

	series := make([]*ppt.ChartSeries, 0, len(spec.Series))
	for _, ser := range spec.Series {
		series = append(series, ppt.NewChartSeriesOrdered(ser.Name, spec.Categories, ser.Values))
	}

	ct := chartType(spec.Type, series)

	s.mu.Lock()
	defer s.mu.Unlock()
	sl, err := s.slide(slideIndex)
	if err != nil {
		return 0, err
	}

	chart := sl.CreateChartShape()
	chart.SetName(spec.Title)
	chart.SetOffsetX(emu(spec.Left)).SetOffsetY(emu(spec.Top)).SetWidth(emu(spec.Width)).SetHeight(emu(spec.Height))
	chart.GetPlotArea().SetType(ct)
	chart.GetLegend().Visible = spec.ShowLegend

	index := len(sl.GetShapes()) - 1
	log.Debug().Int("slide_index", slideIndex).Str("chart_type", spec.Type).Int("series", len(series)).Msg("chart added")
	return index, nil
}

// chartType maps a requested type name onto the GoPPT chart model.
// Unknown names fall back to a column chart.
func chartType(name string, series []*ppt.ChartSeries) ppt.ChartType {
	switch strings.ToLower(name) {
	case "line":
		c := ppt.NewLineChart()
		for _, s := range series {
			c.AddSeries(s)
		}
		return c
	case "pie":
		c := ppt.NewPieChart()
		for _, s := range series {
			c.AddSeries(s)
		}
		return c
	case "bar":
		c := ppt.NewBarChart()
		c.BarDirection = ppt.BarDirectionHorizontal
		for _, s := range series {
			c.AddSeries(s)
		}
		return c
	case "column":
		c := ppt.NewBarChart()
		for _, s := range series {
			c.AddSeries(s)
		}
		return c
	default:
		log.Warn().Str("chart_type", name).Msg("unknown chart type, defaulting to column")
		c := ppt.NewBarChart()
		for _, s := range series {
			c.AddSeries(s)
		}
		return c
	}
}
