package deck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/slidesmith/slidesmith/internal/models"
)

// Open reads a .pptx file from disk and makes it the active presentation,
// replacing any previous one.
func (s *Service) Open(ctx context.Context, path string) (*models.PresentationInfo, error) {
	if err := s.paths.ValidateRead(path); err != nil {
		return nil, err
	}

	pres, err := ppt.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open presentation: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pres = pres
	s.path = path
	s.id = uuid.NewString()

	log.Info().Str("path", path).Str("presentation_id", s.id).Msg("presentation opened")
	return s.infoLocked(), nil
}

// Create starts a new presentation, optionally seeded from a template file.
// The new presentation has no backing path until the first Save.
func (s *Service) Create(ctx context.Context, templatePath string) (*models.PresentationInfo, error) {
	var pres *ppt.Presentation
	if templatePath != "" {
		if err := s.paths.ValidateRead(templatePath); err != nil {
			return nil, err
		}
		p, err := ppt.Open(templatePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open template: %w", err)
		}
		pres = p
	} else {
		pres = ppt.New()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pres = pres
	s.path = ""
	s.id = uuid.NewString()

	log.Info().Str("template", templatePath).Str("presentation_id", s.id).Msg("presentation created")
	return s.infoLocked(), nil
}

// Save writes the active presentation to disk. An empty path saves back to
// the file the presentation was opened from; presentations created from
// scratch must be given a path.
func (s *Service) Save(ctx context.Context, path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pres == nil {
		return "", ErrNoActivePresentation
	}

	if path == "" {
		path = s.path
	}
	if path == "" {
		return "", ErrSavePathRequired
	}
	if err := s.paths.ValidateWrite(path); err != nil {
		return "", err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := s.pres.Save(path); err != nil {
		return "", fmt.Errorf("failed to write presentation: %w", err)
	}

	s.path = path
	log.Info().Str("path", path).Str("presentation_id", s.id).Msg("presentation saved")
	return path, nil
}

// Close drops the active presentation without saving.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pres == nil {
		return ErrNoActivePresentation
	}
	log.Info().Str("presentation_id", s.id).Msg("presentation closed")
	s.pres = nil
	s.path = ""
	s.id = ""
	return nil
}

// Info describes the active presentation, or ErrNoActivePresentation.
func (s *Service) Info() (*models.PresentationInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pres == nil {
		return nil, ErrNoActivePresentation
	}
	return s.infoLocked(), nil
}

func (s *Service) infoLocked() *models.PresentationInfo {
	name := "untitled"
	if s.path != "" {
		name = filepath.Base(s.path)
	} else if title := s.pres.GetDocumentProperties().Title; title != "" {
		name = title
	}
	return &models.PresentationInfo{
		ID:         s.id,
		Name:       name,
		Path:       s.path,
		SlideCount: len(s.pres.GetAllSlides()),
	}
}
