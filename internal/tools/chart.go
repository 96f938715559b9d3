package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/slidesmith/slidesmith/internal/deck"
	"github.com/slidesmith/slidesmith/internal/models"
)

// AddChartTool inserts a chart built from categories and series data
func AddChartTool(d *deck.Service) Tool {
	return Tool{
		Name:        "add_chart",
		Description: "Add a chart to a slide. Each series must carry exactly one value per category.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"slide_index": map[string]interface{}{
					"type":        "integer",
					"description": "0-based index of the slide",
				},
				"chart_type": map[string]interface{}{
					"type":        "string",
					"description": "Chart type: COLUMN, BAR, LINE or PIE",
				},
				"categories": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Category names along the axis",
				},
				"series_names": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "One name per data series",
				},
				"series_values": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type":  "array",
						"items": map[string]interface{}{"type": "number"},
					},
					"description": "One value array per series, each with one value per category",
				},
				"left": map[string]interface{}{
					"type":        "number",
					"description": "Left edge in inches (default 1)",
				},
				"top": map[string]interface{}{
					"type":        "number",
					"description": "Top edge in inches (default 1)",
				},
				"width": map[string]interface{}{
					"type":        "number",
					"description": "Width in inches (default 8)",
				},
				"height": map[string]interface{}{
					"type":        "number",
					"description": "Height in inches (default 4)",
				},
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Optional chart title",
				},
				"has_legend": map[string]interface{}{
					"type":        "boolean",
					"description": "Show the legend (default true)",
				},
			},
			"required": []string{"slide_index", "chart_type", "categories", "series_names", "series_values"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			categories, err := strSliceArg(input, "categories")
			if err != nil {
				return "", err
			}
			names, err := strSliceArg(input, "series_names")
			if err != nil {
				return "", err
			}
			rawValues, ok := input["series_values"].([]interface{})
			if !ok {
				return "", fmt.Errorf("series_values must be an array of number arrays")
			}
			if len(names) != len(rawValues) {
				return "", fmt.Errorf("series_names has %d entries but series_values has %d", len(names), len(rawValues))
			}

			series := make([]deck.ChartSeriesSpec, 0, len(names))
			for i, raw := range rawValues {
				inner, ok := raw.([]interface{})
				if !ok {
					return "", fmt.Errorf("series_values must be an array of number arrays")
				}
				values, err := floatSliceArg(inner, "series_values")
				if err != nil {
					return "", err
				}
				series = append(series, deck.ChartSeriesSpec{Name: names[i], Values: values})
			}

			slideIndex := intArg(input, "slide_index", -1)
			shapeIndex, err := d.AddChart(slideIndex, deck.ChartSpec{
				Type:       strArg(input, "chart_type"),
				Categories: categories,
				Series:     series,
				Left:       floatArg(input, "left", 1),
				Top:        floatArg(input, "top", 1),
				Width:      floatArg(input, "width", 8),
				Height:     floatArg(input, "height", 4),
				Title:      strArg(input, "title"),
				ShowLegend: boolArg(input, "has_legend", true),
			})
			if err != nil {
				return "", err
			}
			b, _ := json.Marshal(models.ShapeResult{
				Success:    true,
				SlideIndex: slideIndex,
				ShapeIndex: shapeIndex,
				Message:    "Chart added",
			})
			return string(b), nil
		},
	}
}
