package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

func TestSettingsClient_Get(t *testing.T) {
	t.Parallel()

	t.Run("successful get", func(t *testing.T) {
		t.Parallel()

		client, recorder := NewTestClient(t, http.StatusOK, `{
			"projectName": "Docs",
			"userSettings": {"usersEnabled": true},
			"locales": [{"locale": "en", "isDefault": true}, {"locale": "it", "isDefault": false}]
		}`)

		settings, err := client.Settings().Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Docs", settings.ProjectName)
		assert.True(t, settings.UserSettings.UsersEnabled)
		assert.Equal(t, []atlas.LocaleSettings{{Locale: "en", IsDefault: true}, {Locale: "it"}}, settings.Locales)
		assert.Equal(t, "/api/admin/settings", recorder.Last().Path)
	})

	t.Run("unauthorized", func(t *testing.T) {
		t.Parallel()

		client, _ := NewTestClient(t, http.StatusUnauthorized, "")

		settings, err := client.Settings().Get(context.Background())
		require.ErrorIs(t, err, atlas.ErrUnauthorized)
		assert.Nil(t, settings)
	})
}
