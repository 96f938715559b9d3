package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/slidesmith/slidesmith/internal/deck"
	"github.com/slidesmith/slidesmith/internal/models"
)

// GetSlidesTool lists the slides of the active presentation
func GetSlidesTool(d *deck.Service) Tool {
	return Tool{
		Name:        "get_slides",
		Description: "List all slides of the active presentation with their index, title and shape count.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			slides, err := d.Slides()
			if err != nil {
				return "", err
			}
			b, _ := json.Marshal(slides)
			return string(b), nil
		},
	}
}

// AddSlideTool appends a blank slide
func AddSlideTool(d *deck.Service) Tool {
	return Tool{
		Name:        "add_slide",
		Description: "Append a blank slide to the active presentation and return its index.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			info, err := d.AddSlide()
			if err != nil {
				return "", err
			}
			b, _ := json.Marshal(info)
			return string(b), nil
		},
	}
}

// DeleteSlideTool removes a slide by index
func DeleteSlideTool(d *deck.Service) Tool {
	return Tool{
		Name:        "delete_slide",
		Description: "Delete the slide at the given 0-based index. Later slides shift down by one.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"slide_index": map[string]interface{}{
					"type":        "integer",
					"description": "0-based index of the slide to delete",
				},
			},
			"required": []string{"slide_index"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			index := intArg(input, "slide_index", -1)
			remaining, err := d.DeleteSlide(index)
			if err != nil {
				return "", err
			}
			b, _ := json.Marshal(models.DeleteSlideResult{
				Success:         true,
				Message:         fmt.Sprintf("Slide %d deleted", index),
				RemainingSlides: remaining,
			})
			return string(b), nil
		},
	}
}

// GetSlideTextTool extracts all text from a slide
func GetSlideTextTool(d *deck.Service) Tool {
	return Tool{
		Name:        "get_slide_text",
		Description: "Extract the text of every text-bearing shape on a slide, keyed by shape identifier. Grouped shapes are flagged but not descended into.",
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
			text, err := d.SlideText(intArg(input, "slide_index", -1))
			if err != nil {
				return "", err
			}
			b, _ := json.Marshal(text)
			return string(b), nil
		},
	}
}

// GetSlideShapesTool describes every shape on a slide
func GetSlideShapesTool(d *deck.Service) Tool {
	return Tool{
		Name:        "get_slide_shapes",
		Description: "List every shape on a slide with its type, name, text and geometry in inches.",
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
			shapes, err := d.SlideShapes(intArg(input, "slide_index", -1))
			if err != nil {
				return "", err
			}
			b, _ := json.Marshal(shapes)
			return string(b), nil
		},
	}
}

// SetSlideTitleTool writes a slide's title
func SetSlideTitleTool(d *deck.Service) Tool {
	return Tool{
		Name:        "set_slide_title",
		Description: "Set the title of a slide. Slides without a title placeholder get a bold textbox across the top instead.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"slide_index": map[string]interface{}{
					"type":        "integer",
					"description": "0-based index of the slide",
				},
				"title": map[string]interface{}{
					"type":        "string",
					"description": "The title text",
				},
			},
			"required": []string{"slide_index", "title"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			index := intArg(input, "slide_index", -1)
			if err := d.SetSlideTitle(index, strArg(input, "title")); err != nil {
				return "", err
			}
			b, _ := json.Marshal(models.OperationResult{
				Success: true,
				Message: fmt.Sprintf("Title set on slide %d", index),
			})
			return string(b), nil
		},
	}
}

// GetDocumentLayoutTool reports the slide dimensions
func GetDocumentLayoutTool(d *deck.Service) Tool {
	return Tool{
		Name:        "get_document_layout",
		Description: "Get the slide dimensions of the active presentation in EMU and inches.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			layout, err := d.Layout()
			if err != nil {
				return "", err
			}
			b, _ := json.Marshal(layout)
			return string(b), nil
		},
	}
}
