package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/slidesmith/slidesmith/internal/deck"
	"github.com/slidesmith/slidesmith/internal/models"
)

// OpenPresentationTool opens a .pptx file and makes it the active presentation
func OpenPresentationTool(d *deck.Service) Tool {
	return Tool{
		Name:        "open_presentation",
		Description: "Open a PowerPoint (.pptx) file and make it the active presentation. Any previously open presentation is replaced.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"file_path": map[string]interface{}{
					"type":        "string",
					"description": "Path to the .pptx file to open",
				},
			},
			"required": []string{"file_path"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			path := strArg(input, "file_path")
			if path == "" {
				return "", fmt.Errorf("file_path is required")
			}
			info, err := d.Open(ctx, path)
			if err != nil {
				return "", err
			}
			b, _ := json.Marshal(info)
			return string(b), nil
		},
	}
}

// CreatePresentationTool starts a new presentation, optionally from a template
func CreatePresentationTool(d *deck.Service) Tool {
	return Tool{
		Name:        "create_presentation",
		Description: "Create a new presentation, optionally based on an existing .pptx file used as a template. The new presentation becomes the active one.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"template": map[string]interface{}{
					"type":        "string",
					"description": "Optional path to a .pptx file to use as a template",
				},
			},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			info, err := d.Create(ctx, strArg(input, "template"))
			if err != nil {
				return "", err
			}
			b, _ := json.Marshal(info)
			return string(b), nil
		},
	}
}

// SavePresentationTool writes the active presentation to disk
func SavePresentationTool(d *deck.Service) Tool {
	return Tool{
		Name:        "save_presentation",
		Description: "Save the active presentation. Without a path, saves back to the file it was opened from; presentations created from scratch require a path.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Optional destination path for the .pptx file",
				},
			},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			saved, err := d.Save(ctx, strArg(input, "path"))
			if err != nil {
				return "", err
			}
			b, _ := json.Marshal(models.OperationResult{
				Success: true,
				Message: fmt.Sprintf("Presentation saved to %s", saved),
				Path:    saved,
			})
			return string(b), nil
		},
	}
}

// ClosePresentationTool discards the active presentation without saving
func ClosePresentationTool(d *deck.Service) Tool {
	return Tool{
		Name:        "close_presentation",
		Description: "Close the active presentation without saving. Unsaved changes are lost.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			if err := d.Close(); err != nil {
				return "", err
			}
			b, _ := json.Marshal(models.OperationResult{
				Success: true,
				Message: "Presentation closed",
			})
			return string(b), nil
		},
	}
}

// GetPresentationTool reports the active presentation
func GetPresentationTool(d *deck.Service) Tool {
	return Tool{
		Name:        "get_presentation",
		Description: "Get name, path and slide count of the active presentation.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			info, err := d.Info()
			if err != nil {
				return "", err
			}
			b, _ := json.Marshal(info)
			return string(b), nil
		},
	}
}
