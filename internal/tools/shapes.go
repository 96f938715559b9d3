package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/slidesmith/slidesmith/internal/deck"
	"github.com/slidesmith/slidesmith/internal/models"
)

// AddTextboxTool inserts a textbox on a slide
func AddTextboxTool(d *deck.Service) Tool {
	return Tool{
		Name:        "add_textbox",
		Description: "Add a text box to a slide at the given position. Position and size are in inches.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"slide_index": map[string]interface{}{
					"type":        "integer",
					"description": "0-based index of the slide",
				},
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Text content of the box",
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
					"description": "Width in inches (default 4)",
				},
				"height": map[string]interface{}{
					"type":        "number",
					"description": "Height in inches (default 2)",
				},
			},
			"required": []string{"slide_index", "text"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			slideIndex := intArg(input, "slide_index", -1)
			shapeIndex, err := d.AddTextBox(
				slideIndex,
				strArg(input, "text"),
				floatArg(input, "left", 1),
				floatArg(input, "top", 1),
				floatArg(input, "width", 4),
				floatArg(input, "height", 2),
			)
			if err != nil {
				return "", err
			}
			b, _ := json.Marshal(models.ShapeResult{
				Success:    true,
				SlideIndex: slideIndex,
				ShapeIndex: shapeIndex,
				Message:    "Text box added",
			})
			return string(b), nil
		},
	}
}

// AddImageTool places an image file on a slide
func AddImageTool(d *deck.Service) Tool {
	return Tool{
		Name:        "add_image",
		Description: "Add an image (PNG, JPEG or GIF) to a slide. When only one of width/height is given, the other is derived from the image's aspect ratio.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"slide_index": map[string]interface{}{
					"type":        "integer",
					"description": "0-based index of the slide",
				},
				"image_path": map[string]interface{}{
					"type":        "string",
					"description": "Path to the image file",
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
					"description": "Optional width in inches",
				},
				"height": map[string]interface{}{
					"type":        "number",
					"description": "Optional height in inches",
				},
			},
			"required": []string{"slide_index", "image_path"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			path := strArg(input, "image_path")
			if path == "" {
				return "", fmt.Errorf("image_path is required")
			}
			slideIndex := intArg(input, "slide_index", -1)
			shapeIndex, err := d.AddImage(ctx, slideIndex, path,
				floatArg(input, "left", 1),
				floatArg(input, "top", 1),
				optFloatArg(input, "width"),
				optFloatArg(input, "height"),
			)
			if err != nil {
				return "", err
			}
			b, _ := json.Marshal(models.ShapeResult{
				Success:    true,
				SlideIndex: slideIndex,
				ShapeIndex: shapeIndex,
				Message:    "Image added",
			})
			return string(b), nil
		},
	}
}

// UpdateTextTool rewrites the text of a shape
func UpdateTextTool(d *deck.Service) Tool {
	return Tool{
		Name:        "update_text",
		Description: "Replace the text of a shape. By default the existing font of the shape carries over; explicit formatting arguments override it.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"slide_index": map[string]interface{}{
					"type":        "integer",
					"description": "0-based index of the slide",
				},
				"shape_index": map[string]interface{}{
					"type":        "integer",
					"description": "0-based index of the shape on the slide",
				},
				"text": map[string]interface{}{
					"type":        "string",
					"description": "New text content",
				},
				"font_name": map[string]interface{}{
					"type":        "string",
					"description": "Optional font name, e.g. Arial",
				},
				"font_size": map[string]interface{}{
					"type":        "integer",
					"description": "Optional font size in points",
				},
				"font_color": map[string]interface{}{
					"type":        "string",
					"description": "Optional font color as RRGGBB or AARRGGBB hex",
				},
				"bold": map[string]interface{}{
					"type":        "boolean",
					"description": "Optional bold flag",
				},
				"italic": map[string]interface{}{
					"type":        "boolean",
					"description": "Optional italic flag",
				},
				"preserve_existing": map[string]interface{}{
					"type":        "boolean",
					"description": "Carry over the existing font where no explicit formatting is given (default true)",
				},
			},
			"required": []string{"slide_index", "shape_index", "text"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			slideIndex := intArg(input, "slide_index", -1)
			shapeIndex := intArg(input, "shape_index", -1)
			format := deck.TextFormat{
				FontName: strArg(input, "font_name"),
				FontSize: intArg(input, "font_size", 0),
				Color:    strArg(input, "font_color"),
				Bold:     optBoolArg(input, "bold"),
				Italic:   optBoolArg(input, "italic"),
			}
			err := d.UpdateText(slideIndex, shapeIndex, strArg(input, "text"), format, boolArg(input, "preserve_existing", true))
			if err != nil {
				return "", err
			}
			b, _ := json.Marshal(models.ShapeResult{
				Success:    true,
				SlideIndex: slideIndex,
				ShapeIndex: shapeIndex,
				Message:    "Text updated",
			})
			return string(b), nil
		},
	}
}

// UpdateShapeByIDTool edits text and geometry of a shape addressed by identifier
func UpdateShapeByIDTool(d *deck.Service) Tool {
	return Tool{
		Name:        "update_shape_by_id",
		Description: "Update the text, position or size of a shape addressed by its name or identifier from get_slide_shapes. Only the given properties change.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"slide_index": map[string]interface{}{
					"type":        "integer",
					"description": "0-based index of the slide",
				},
				"shape_id": map[string]interface{}{
					"type":        "string",
					"description": "Shape name or identifier from get_slide_shapes",
				},
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Optional new text content",
				},
				"left": map[string]interface{}{
					"type":        "number",
					"description": "Optional new left edge in inches",
				},
				"top": map[string]interface{}{
					"type":        "number",
					"description": "Optional new top edge in inches",
				},
				"width": map[string]interface{}{
					"type":        "number",
					"description": "Optional new width in inches",
				},
				"height": map[string]interface{}{
					"type":        "number",
					"description": "Optional new height in inches",
				},
			},
			"required": []string{"slide_index", "shape_id"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			upd := deck.ShapeUpdate{
				Left:   optFloatArg(input, "left"),
				Top:    optFloatArg(input, "top"),
				Width:  optFloatArg(input, "width"),
				Height: optFloatArg(input, "height"),
			}
			if text, ok := input["text"].(string); ok {
				upd.Text = &text
			}
			updated, err := d.UpdateShape(intArg(input, "slide_index", -1), strArg(input, "shape_id"), upd)
			if err != nil {
				return "", err
			}
			out := map[string]interface{}{
				"success": true,
				"updated": updated,
				"message": fmt.Sprintf("Updated %d properties", len(updated)),
			}
			b, _ := json.Marshal(out)
			return string(b), nil
		},
	}
}

// UngroupShapesTool flattens grouped shapes on a slide
func UngroupShapesTool(d *deck.Service) Tool {
	return Tool{
		Name:        "ungroup_shapes",
		Description: "Flatten text-bearing top-level groups on a slide so the grouped shapes become directly addressable. Slides with nested groups are rejected.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"slide_index": map[string]interface{}{
					"type":        "integer",
					"description": "0-based index of the slide",
				},
			},
			"required": []string{"slide_index"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			groups, extracted, err := d.Ungroup(intArg(input, "slide_index", -1))
			if err != nil {
				return "", err
			}
			b, _ := json.Marshal(models.UngroupResult{
				Success:         true,
				Message:         fmt.Sprintf("Flattened %d groups into %d shapes", groups, extracted),
				GroupsRemoved:   groups,
				ShapesExtracted: extracted,
			})
			return string(b), nil
		},
	}
}
