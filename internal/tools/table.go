package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/slidesmith/slidesmith/internal/deck"
	"github.com/slidesmith/slidesmith/internal/models"
)

// AddTableTool inserts an empty table on a slide
func AddTableTool(d *deck.Service) Tool {
	return Tool{
		Name:        "add_table",
		Description: "Add an empty table with the given number of rows and columns to a slide. Fill cells with update_table_cell.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"slide_index": map[string]interface{}{
					"type":        "integer",
					"description": "0-based index of the slide",
				},
				"rows": map[string]interface{}{
					"type":        "integer",
					"description": "Number of rows",
				},
				"cols": map[string]interface{}{
					"type":        "integer",
					"description": "Number of columns",
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
			},
			"required": []string{"slide_index", "rows", "cols"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			rows := intArg(input, "rows", 0)
			cols := intArg(input, "cols", 0)
			if rows < 1 || cols < 1 {
				return "", fmt.Errorf("rows and cols must be at least 1")
			}
			slideIndex := intArg(input, "slide_index", -1)
			shapeIndex, err := d.AddTable(slideIndex, rows, cols,
				floatArg(input, "left", 1),
				floatArg(input, "top", 1),
				floatArg(input, "width", 8),
				floatArg(input, "height", 4),
			)
			if err != nil {
				return "", err
			}
			b, _ := json.Marshal(models.ShapeResult{
				Success:    true,
				SlideIndex: slideIndex,
				ShapeIndex: shapeIndex,
				Message:    fmt.Sprintf("Added %dx%d table", rows, cols),
			})
			return string(b), nil
		},
	}
}

// UpdateTableCellTool writes text into one table cell
func UpdateTableCellTool(d *deck.Service) Tool {
	return Tool{
		Name:        "update_table_cell",
		Description: "Write text into one cell of a table shape. Row and column are 0-based.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"slide_index": map[string]interface{}{
					"type":        "integer",
					"description": "0-based index of the slide",
				},
				"shape_index": map[string]interface{}{
					"type":        "integer",
					"description": "0-based index of the table shape on the slide",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "0-based row",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "0-based column",
				},
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Cell text",
				},
			},
			"required": []string{"slide_index", "shape_index", "row", "col", "text"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			row := intArg(input, "row", -1)
			col := intArg(input, "col", -1)
			err := d.UpdateTableCell(
				intArg(input, "slide_index", -1),
				intArg(input, "shape_index", -1),
				row, col,
				strArg(input, "text"),
			)
			if err != nil {
				return "", err
			}
			b, _ := json.Marshal(models.OperationResult{
				Success: true,
				Message: fmt.Sprintf("Cell (%d,%d) updated", row, col),
			})
			return string(b), nil
		},
	}
}

// GetTableContentTool reads the full text grid of a table
func GetTableContentTool(d *deck.Service) Tool {
	return Tool{
		Name:        "get_table_content",
		Description: "Read the full text content of a table shape as a grid of rows and columns.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"slide_index": map[string]interface{}{
					"type":        "integer",
					"description": "0-based index of the slide",
				},
				"shape_index": map[string]interface{}{
					"type":        "integer",
					"description": "0-based index of the table shape on the slide",
				},
			},
			"required": []string{"slide_index", "shape_index"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			content, err := d.TableContent(
				intArg(input, "slide_index", -1),
				intArg(input, "shape_index", -1),
			)
			if err != nil {
				return "", err
			}
			b, _ := json.Marshal(content)
			return string(b), nil
		},
	}
}
