package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "multi-ai/backend/internal/errors"
	"multi-ai/backend/internal/model"
	"multi-ai/backend/internal/service"
)

func TestExtractVariables(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"Ordered", "Hello {name}, from {city}", []string{"name", "city"}},
		{"Distinct", "{a} {b} {a} {c} {b}", []string{"a", "b", "c"}},
		{"Empty braces ignored", "{} and {x}", []string{"x"}},
		{"None", "plain text", []string{}},
		{"Spaces allowed", "{first name}", []string{"first name"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.ExtractVariables(tt.content))
		})
	}
}

func TestTemplateService_SaveAndInstantiate(t *testing.T) {
	ctx := context.Background()
	ws, _ := setupWorkspace(t, frozenClock())
	templates := service.NewTemplateService(ws)

	saved, err := templates.Save(ctx, &model.Template{Title: "Greeting", Content: "Hello {name}, from {city}"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(saved.ID, "tmpl_"))
	assert.Equal(t, model.DefaultTemplateCategory, saved.Category)
	assert.Equal(t, []string{"name", "city"}, saved.Variables)

	t.Run("Unsupplied placeholders stay literal", func(t *testing.T) {
		out, err := templates.Instantiate(ctx, saved.ID, map[string]string{"name": "Sam"})
		require.NoError(t, err)
		assert.Equal(t, "Hello Sam, from {city}", out)
	})

	t.Run("Every occurrence is replaced once", func(t *testing.T) {
		assert.Equal(t, "x={b} y={b}", service.Fill("x={a} y={a}", map[string]string{"a": "{b}"}))
	})

	t.Run("Update recomputes variables and keeps created_at", func(t *testing.T) {
		saved.Content = "Dear {title} {name}"
		updated, err := templates.Save(ctx, saved)
		require.NoError(t, err)

		assert.Equal(t, saved.ID, updated.ID)
		assert.Equal(t, []string{"title", "name"}, updated.Variables)
		assert.Equal(t, saved.CreatedAt, updated.CreatedAt)
		assert.True(t, updated.UpdatedAt.After(saved.UpdatedAt))
	})

	t.Run("Failure - missing content", func(t *testing.T) {
		_, err := templates.Save(ctx, &model.Template{Title: "Empty"})
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})

	t.Run("Failure - unknown id", func(t *testing.T) {
		_, err := templates.Save(ctx, &model.Template{ID: "tmpl_missing", Title: "x", Content: "y"})
		assert.ErrorIs(t, err, app_errors.ErrNotFound)

		_, err = templates.Instantiate(ctx, "tmpl_missing", nil)
		assert.ErrorIs(t, err, app_errors.ErrNotFound)
	})
}

func TestTemplateService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	ws, _ := setupWorkspace(t, nil)
	templates := service.NewTemplateService(ws)

	code, err := templates.Save(ctx, &model.Template{Title: "Review", Category: "coding", Content: "Review {file}"})
	require.NoError(t, err)
	_, err = templates.Save(ctx, &model.Template{Title: "Mail", Content: "Write to {who}"})
	require.NoError(t, err)

	all, err := templates.List(ctx, service.CategoryAll)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := templates.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, none, 2)

	coding, err := templates.List(ctx, "coding")
	require.NoError(t, err)
	require.Len(t, coding, 1)
	assert.Equal(t, code.ID, coding[0].ID)

	require.NoError(t, templates.Delete(ctx, code.ID))
	_, err = templates.Get(ctx, code.ID)
	assert.ErrorIs(t, err, app_errors.ErrNotFound)
	assert.ErrorIs(t, templates.Delete(ctx, code.ID), app_errors.ErrNotFound)
}
