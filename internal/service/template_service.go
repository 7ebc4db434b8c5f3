package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	app_errors "multi-ai/backend/internal/errors"
	"multi-ai/backend/internal/model"
	"multi-ai/backend/internal/repository"
)

// CategoryAll lists templates of every category.
const CategoryAll = "all"

// placeholderPattern matches {name} spans; the name is non-empty and has no '}'.
var placeholderPattern = regexp.MustCompile(`\{([^}]+)\}`)

// ExtractVariables returns the distinct placeholder names of content in the
// order they first appear.
func ExtractVariables(content string) []string {
	vars := []string{}
	seen := map[string]bool{}
	for _, m := range placeholderPattern.FindAllStringSubmatch(content, -1) {
		name := m[1]
		if !seen[name] {
			seen[name] = true
			vars = append(vars, name)
		}
	}
	return vars
}

// TemplateService stores reusable prompts with {name} placeholders.
type TemplateService struct {
	ws *Workspace
}

func NewTemplateService(ws *Workspace) *TemplateService {
	return &TemplateService{ws: ws}
}

// Save creates the template when its id is empty and replaces it otherwise.
// Variables are always recomputed from the content.
func (s *TemplateService) Save(ctx context.Context, t *model.Template) (*model.Template, error) {
	if strings.TrimSpace(t.Title) == "" || strings.TrimSpace(t.Content) == "" {
		return nil, fmt.Errorf("%w: template title and content are required", app_errors.ErrValidation)
	}

	s.ws.mu.Lock()
	defer s.ws.mu.Unlock()

	saved := *t
	if saved.Category == "" {
		saved.Category = model.DefaultTemplateCategory
	}
	saved.Variables = ExtractVariables(saved.Content)

	err := s.ws.repo.Update(ctx, func(tx repository.Tx) error {
		if saved.ID == "" {
			saved.ID = newID(prefixTemplate)
			saved.CreatedAt = s.ws.timestamp()
			saved.UpdatedAt = saved.CreatedAt
		} else {
			existing, err := repository.GetJSON[model.Template](ctx, tx, repository.Templates, saved.ID)
			if err != nil {
				return notFound(err, "template", saved.ID)
			}
			saved.CreatedAt = existing.CreatedAt
			saved.UpdatedAt = s.ws.touch(existing.UpdatedAt)
		}
		return repository.PutJSON(ctx, tx, repository.Templates, saved.ID, &saved)
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *TemplateService) Get(ctx context.Context, id string) (*model.Template, error) {
	var t *model.Template
	err := s.ws.repo.View(ctx, func(tx repository.Tx) error {
		var err error
		t, err = repository.GetJSON[model.Template](ctx, tx, repository.Templates, id)
		if err != nil {
			return notFound(err, "template", id)
		}
		return nil
	})
	return t, err
}

// List returns the templates of category, most recently updated first. An
// empty category or CategoryAll returns every template.
func (s *TemplateService) List(ctx context.Context, category string) ([]*model.Template, error) {
	var out []*model.Template
	err := s.ws.repo.View(ctx, func(tx repository.Tx) error {
		all, err := repository.ListJSON[model.Template](ctx, tx, repository.Templates)
		if err != nil {
			return err
		}
		out = make([]*model.Template, 0, len(all))
		for _, t := range all {
			if category == "" || category == CategoryAll || t.Category == category {
				out = append(out, t)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not list templates: %w", err)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *TemplateService) Delete(ctx context.Context, id string) error {
	s.ws.mu.Lock()
	defer s.ws.mu.Unlock()

	return s.ws.repo.Update(ctx, func(tx repository.Tx) error {
		if err := tx.Delete(ctx, repository.Templates, id); err != nil {
			return notFound(err, "template", id)
		}
		return nil
	})
}

// Instantiate fills the template's placeholders with values. Placeholders
// without a value stay in the output as written.
func (s *TemplateService) Instantiate(ctx context.Context, id string, values map[string]string) (string, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return Fill(t.Content, values), nil
}

// Fill replaces every {name} in content whose name has a value.
func Fill(content string, values map[string]string) string {
	if len(values) == 0 {
		return content
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, 2*len(names))
	for _, name := range names {
		pairs = append(pairs, "{"+name+"}", values[name])
	}
	return strings.NewReplacer(pairs...).Replace(content)
}
