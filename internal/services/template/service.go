// Package template manages named column-set templates used when creating
// boards. Built-ins cover the common workflows; user templates are YAML
// files in the templates directory next to the config file.
package template

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tuckertucker/taskboard/internal/models"
	boardservice "github.com/tuckertucker/taskboard/internal/services/board"
)

// Template is a named set of columns for new boards
type Template struct {
	Name    string   `yaml:"name"`
	Columns []string `yaml:"columns"`
}

// Built-in templates always available regardless of the templates directory
var builtins = []Template{
	{Name: "kanban", Columns: []string{"To Do", "In Progress", "Done"}},
	{Name: "scrum", Columns: []string{"Backlog", "To Do", "In Progress", "Review", "Done"}},
	{Name: "simple", Columns: []string{"Todo", "Done"}},
}

// Service defines template operations
type Service interface {
	List(ctx context.Context) ([]Template, error)
	Get(ctx context.Context, name string) (*Template, error)

	// CreateBoard instantiates a board from the named template
	CreateBoard(ctx context.Context, templateName, boardName string) (*models.Board, error)

	// SaveTemplate writes a user template to the templates directory
	SaveTemplate(ctx context.Context, tpl Template) error

	// DeleteTemplate removes a user template; built-ins cannot be deleted
	DeleteTemplate(ctx context.Context, name string) error
}

// service implements Service
type service struct {
	dir    string
	boards boardservice.Service
}

// NewService creates a template service reading user templates from dir
func NewService(dir string, boards boardservice.Service) Service {
	return &service{dir: dir, boards: boards}
}

// List returns built-ins followed by user templates, sorted by name.
// A user template shadows a built-in with the same name.
func (s *service) List(ctx context.Context) ([]Template, error) {
	byName := map[string]Template{}
	for _, tpl := range builtins {
		byName[tpl.Name] = tpl
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read templates directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		tpl, err := s.read(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		byName[tpl.Name] = *tpl
	}

	templates := make([]Template, 0, len(byName))
	for _, tpl := range byName {
		templates = append(templates, tpl)
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i].Name < templates[j].Name })
	return templates, nil
}

// Get returns the template with the given name
func (s *service) Get(ctx context.Context, name string) (*Template, error) {
	templates, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, tpl := range templates {
		if tpl.Name == name {
			t := tpl
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
}

// CreateBoard instantiates a board from the named template
func (s *service) CreateBoard(ctx context.Context, templateName, boardName string) (*models.Board, error) {
	tpl, err := s.Get(ctx, templateName)
	if err != nil {
		return nil, err
	}
	return s.boards.CreateBoard(ctx, boardName, tpl.Columns)
}

// SaveTemplate validates and writes a user template
func (s *service) SaveTemplate(ctx context.Context, tpl Template) error {
	if strings.TrimSpace(tpl.Name) == "" {
		return ErrEmptyName
	}
	if len(tpl.Columns) == 0 {
		return ErrNoColumns
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create templates directory: %w", err)
	}
	data, err := yaml.Marshal(tpl)
	if err != nil {
		return fmt.Errorf("failed to encode template %s: %w", tpl.Name, err)
	}
	path := filepath.Join(s.dir, tpl.Name+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write template %s: %w", tpl.Name, err)
	}
	return nil
}

// DeleteTemplate removes a user template file
func (s *service) DeleteTemplate(ctx context.Context, name string) error {
	path := filepath.Join(s.dir, name+".yaml")
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}
		return fmt.Errorf("failed to delete template %s: %w", name, err)
	}
	return nil
}

func (s *service) read(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}
	var tpl Template
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", path, err)
	}
	if tpl.Name == "" {
		tpl.Name = strings.TrimSuffix(filepath.Base(path), ".yaml")
	}
	return &tpl, nil
}
