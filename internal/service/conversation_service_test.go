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

func setupConversationService(t *testing.T, validateMoves bool) (*service.ConversationService, *service.FolderService, *recorder) {
	ws, rec := setupWorkspace(t, frozenClock())
	return service.NewConversationService(ws, validateMoves), service.NewFolderService(ws), rec
}

func TestConversationService_Create(t *testing.T) {
	ctx := context.Background()
	convs, _, rec := setupConversationService(t, false)

	conv, err := convs.Create(ctx)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(conv.ID, "conv_"))
	assert.Equal(t, model.DefaultConversationTitle, conv.Title)
	assert.Nil(t, conv.FolderID)
	assert.False(t, conv.IsFavorite)
	assert.Empty(t, conv.Messages)

	active, err := convs.Active(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, conv.ID, active.ID)

	require.NotNil(t, rec.lastChanged())
	assert.Equal(t, conv.ID, rec.lastChanged().ID)
	assert.Equal(t, &conv.ID, rec.activeID)
}

func TestConversationService_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - message is last and updated_at strictly increases", func(t *testing.T) {
		convs, _, _ := setupConversationService(t, false)
		conv, err := convs.Create(ctx)
		require.NoError(t, err)

		prev := conv.UpdatedAt
		for i, role := range []string{model.RoleUser, model.RoleAssistant, model.RoleUser} {
			updated, err := convs.Append(ctx, conv.ID, model.Message{Role: role, Provider: "claude", Content: "m"})
			require.NoError(t, err)

			require.Len(t, updated.Messages, i+1)
			last := updated.Messages[len(updated.Messages)-1]
			assert.Equal(t, role, last.Role)
			assert.True(t, strings.HasPrefix(last.ID, "msg_"))
			// The clock is frozen, so only the monotonic bump moves it.
			assert.True(t, updated.UpdatedAt.After(prev), "append %d did not advance updated_at", i)
			prev = updated.UpdatedAt
		}
	})

	t.Run("Success - only the first user message sets the title", func(t *testing.T) {
		convs, _, _ := setupConversationService(t, false)
		conv, err := convs.Create(ctx)
		require.NoError(t, err)

		conv, err = convs.Append(ctx, conv.ID, model.Message{Role: model.RoleAssistant, Provider: "gemini", Content: "assistant first"})
		require.NoError(t, err)
		assert.Equal(t, model.DefaultConversationTitle, conv.Title)

		long := strings.Repeat("가", 31)
		conv, err = convs.Append(ctx, conv.ID, model.Message{Role: model.RoleUser, Content: long})
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("가", 30)+"...", conv.Title)

		conv, err = convs.Append(ctx, conv.ID, model.Message{Role: model.RoleUser, Content: "second question"})
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("가", 30)+"...", conv.Title)
	})

	t.Run("Success - short message is used as is", func(t *testing.T) {
		convs, _, _ := setupConversationService(t, false)
		conv, err := convs.Create(ctx)
		require.NoError(t, err)

		conv, err = convs.Append(ctx, conv.ID, model.Message{Role: model.RoleUser, Content: "Hello there"})
		require.NoError(t, err)
		assert.Equal(t, "Hello there", conv.Title)
	})

	t.Run("Failure - unknown conversation", func(t *testing.T) {
		convs, _, _ := setupConversationService(t, false)
		_, err := convs.Append(ctx, "conv_missing", model.Message{Role: model.RoleUser, Content: "x"})
		assert.ErrorIs(t, err, app_errors.ErrNotFound)
	})

	t.Run("Failure - unknown role", func(t *testing.T) {
		convs, _, _ := setupConversationService(t, false)
		conv, err := convs.Create(ctx)
		require.NoError(t, err)
		_, err = convs.Append(ctx, conv.ID, model.Message{Role: "system", Content: "x"})
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})
}

func TestConversationService_RenameAndFavorite(t *testing.T) {
	ctx := context.Background()
	convs, _, _ := setupConversationService(t, false)
	conv, err := convs.Create(ctx)
	require.NoError(t, err)

	renamed, err := convs.Rename(ctx, conv.ID, "  Trip planning  ")
	require.NoError(t, err)
	assert.Equal(t, "Trip planning", renamed.Title)
	assert.True(t, renamed.UpdatedAt.After(conv.UpdatedAt))

	_, err = convs.Rename(ctx, conv.ID, "   ")
	assert.ErrorIs(t, err, app_errors.ErrValidation)

	_, err = convs.Rename(ctx, "conv_missing", "x")
	assert.ErrorIs(t, err, app_errors.ErrNotFound)

	fav, err := convs.ToggleFavorite(ctx, conv.ID)
	require.NoError(t, err)
	assert.True(t, fav.IsFavorite)

	fav, err = convs.ToggleFavorite(ctx, conv.ID)
	require.NoError(t, err)
	assert.False(t, fav.IsFavorite)
}

func TestConversationService_MoveToFolder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - existing folder and back to none", func(t *testing.T) {
		convs, folders, _ := setupConversationService(t, true)
		conv, err := convs.Create(ctx)
		require.NoError(t, err)
		folder, err := folders.Create(ctx, "Work")
		require.NoError(t, err)

		moved, err := convs.MoveToFolder(ctx, conv.ID, &folder.ID)
		require.NoError(t, err)
		assert.True(t, moved.InFolder(folder.ID))

		moved, err = convs.MoveToFolder(ctx, conv.ID, strPtr(""))
		require.NoError(t, err)
		assert.Nil(t, moved.FolderID)
	})

	t.Run("Success - permissive mode accepts unknown folder", func(t *testing.T) {
		convs, _, _ := setupConversationService(t, false)
		conv, err := convs.Create(ctx)
		require.NoError(t, err)

		moved, err := convs.MoveToFolder(ctx, conv.ID, strPtr("folder_ghost"))
		require.NoError(t, err)
		assert.True(t, moved.InFolder("folder_ghost"))

		// Still reachable from the sidebar's general group.
		sb, err := convs.Sidebar(ctx)
		require.NoError(t, err)
		require.Len(t, sb.General(), 1)
		assert.Equal(t, conv.ID, sb.General()[0].ID)
	})

	t.Run("Failure - validating mode rejects unknown folder", func(t *testing.T) {
		convs, _, _ := setupConversationService(t, true)
		conv, err := convs.Create(ctx)
		require.NoError(t, err)

		_, err = convs.MoveToFolder(ctx, conv.ID, strPtr("folder_ghost"))
		assert.ErrorIs(t, err, app_errors.ErrNotFound)

		stored, err := convs.Get(ctx, conv.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.FolderID)
	})
}

func TestConversationService_Delete(t *testing.T) {
	ctx := context.Background()
	convs, _, rec := setupConversationService(t, false)

	first, err := convs.Create(ctx)
	require.NoError(t, err)
	second, err := convs.Create(ctx)
	require.NoError(t, err)

	t.Run("Success - deleting an inactive conversation keeps the pointer", func(t *testing.T) {
		require.NoError(t, convs.Delete(ctx, first.ID))
		active, err := convs.Active(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, second.ID, active.ID)
	})

	t.Run("Success - deleting the active conversation clears it", func(t *testing.T) {
		require.NoError(t, convs.Delete(ctx, second.ID))
		active, err := convs.Active(ctx)
		require.NoError(t, err)
		assert.Nil(t, active)
		assert.Nil(t, rec.lastChanged())
		assert.Nil(t, rec.activeID)
	})

	t.Run("Failure - unknown conversation", func(t *testing.T) {
		assert.ErrorIs(t, convs.Delete(ctx, first.ID), app_errors.ErrNotFound)
	})
}

func TestConversationService_Select(t *testing.T) {
	ctx := context.Background()
	convs, _, _ := setupConversationService(t, false)

	first, err := convs.Create(ctx)
	require.NoError(t, err)
	_, err = convs.Create(ctx)
	require.NoError(t, err)

	selected, err := convs.Select(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, selected.ID)

	active, err := convs.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, active.ID)

	_, err = convs.Select(ctx, "conv_missing")
	assert.ErrorIs(t, err, app_errors.ErrNotFound)
}

func TestConversationService_Search(t *testing.T) {
	ctx := context.Background()
	convs, _, _ := setupConversationService(t, false)

	goConv, err := convs.Create(ctx)
	require.NoError(t, err)
	_, err = convs.Append(ctx, goConv.ID, model.Message{Role: model.RoleUser, Content: "Explain Goroutines"})
	require.NoError(t, err)

	other, err := convs.Create(ctx)
	require.NoError(t, err)
	_, err = convs.Append(ctx, other.ID, model.Message{Role: model.RoleUser, Content: "Weather"})
	require.NoError(t, err)
	_, err = convs.Append(ctx, other.ID, model.Message{Role: model.RoleAssistant, Provider: "claude", Content: "Sunny with a chance of GOROUTINES"})
	require.NoError(t, err)

	t.Run("Blank query is not a search", func(t *testing.T) {
		for _, q := range []string{"", "   "} {
			results, active, err := convs.Search(ctx, q)
			require.NoError(t, err)
			assert.False(t, active, "query %q", q)
			assert.Nil(t, results)
		}
	})

	t.Run("No matches is an active search with zero results", func(t *testing.T) {
		results, active, err := convs.Search(ctx, "zzzzz")
		require.NoError(t, err)
		assert.True(t, active)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("Matches titles and bodies case-insensitively", func(t *testing.T) {
		results, active, err := convs.Search(ctx, "goroutines")
		require.NoError(t, err)
		assert.True(t, active)
		require.Len(t, results, 2)
		// Most recently updated first.
		assert.Equal(t, other.ID, results[0].ID)
		assert.Equal(t, goConv.ID, results[1].ID)
	})

	t.Run("Surrounding spaces are part of the query", func(t *testing.T) {
		joined, err := convs.Create(ctx)
		require.NoError(t, err)
		_, err = convs.Append(ctx, joined.ID, model.Message{Role: model.RoleUser, Content: "concatenate"})
		require.NoError(t, err)

		results, active, err := convs.Search(ctx, " cat")
		require.NoError(t, err)
		assert.True(t, active)
		assert.Empty(t, results)

		results, _, err = convs.Search(ctx, "EXPLAIN ")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, goConv.ID, results[0].ID)
	})
}

func TestConversationService_RateMessage(t *testing.T) {
	ctx := context.Background()
	convs, _, _ := setupConversationService(t, false)

	conv, err := convs.Create(ctx)
	require.NoError(t, err)
	conv, err = convs.Append(ctx, conv.ID, model.Message{Role: model.RoleUser, Content: "q"})
	require.NoError(t, err)
	conv, err = convs.Append(ctx, conv.ID, model.Message{Role: model.RoleAssistant, Provider: "claude", Content: "a"})
	require.NoError(t, err)
	userID, answerID := conv.Messages[0].ID, conv.Messages[1].ID

	t.Run("Same rating twice clears it", func(t *testing.T) {
		rated, err := convs.RateMessage(ctx, conv.ID, answerID, model.RatingUp)
		require.NoError(t, err)
		require.NotNil(t, rated.Messages[1].Rating)
		assert.Equal(t, model.RatingUp, *rated.Messages[1].Rating)

		rated, err = convs.RateMessage(ctx, conv.ID, answerID, model.RatingDown)
		require.NoError(t, err)
		assert.Equal(t, model.RatingDown, *rated.Messages[1].Rating)

		rated, err = convs.RateMessage(ctx, conv.ID, answerID, model.RatingDown)
		require.NoError(t, err)
		assert.Nil(t, rated.Messages[1].Rating)
	})

	t.Run("Failure - user messages cannot be rated", func(t *testing.T) {
		_, err := convs.RateMessage(ctx, conv.ID, userID, model.RatingUp)
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})

	t.Run("Failure - unknown message", func(t *testing.T) {
		_, err := convs.RateMessage(ctx, conv.ID, "msg_missing", model.RatingUp)
		assert.ErrorIs(t, err, app_errors.ErrNotFound)
	})

	t.Run("Failure - invalid rating", func(t *testing.T) {
		_, err := convs.RateMessage(ctx, conv.ID, answerID, "meh")
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})
}

func TestConversationService_Sidebar(t *testing.T) {
	ctx := context.Background()
	convs, folders, _ := setupConversationService(t, false)

	work, err := folders.Create(ctx, "Work")
	require.NoError(t, err)

	filed, err := convs.Create(ctx)
	require.NoError(t, err)
	_, err = convs.MoveToFolder(ctx, filed.ID, &work.ID)
	require.NoError(t, err)

	loose, err := convs.Create(ctx)
	require.NoError(t, err)
	_, err = convs.Rename(ctx, loose.ID, "Loose")
	require.NoError(t, err)
	_, err = convs.ToggleFavorite(ctx, loose.ID)
	require.NoError(t, err)

	sb, err := convs.Sidebar(ctx)
	require.NoError(t, err)

	require.Len(t, sb.Folders, 1)
	require.Len(t, sb.Conversations, 2)
	assert.Equal(t, loose.ID, sb.Conversations[0].ID)
	require.NotNil(t, sb.ActiveID)
	assert.Equal(t, loose.ID, *sb.ActiveID)

	require.Len(t, sb.InFolder(work.ID), 1)
	assert.Equal(t, filed.ID, sb.InFolder(work.ID)[0].ID)
	require.Len(t, sb.General(), 1)
	assert.Equal(t, loose.ID, sb.General()[0].ID)
	require.Len(t, sb.Favorites(), 1)
	assert.Equal(t, loose.ID, sb.Favorites()[0].ID)
}
