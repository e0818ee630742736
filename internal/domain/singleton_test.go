package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeSettings(t *testing.T, body string) domain.SiteSettingsUpdate {
	t.Helper()
	var u domain.SiteSettingsUpdate
	require.NoError(t, json.Unmarshal([]byte(body), &u))
	return u
}

func TestSiteSettingsUpdateWritesOnlyPresentFields(t *testing.T) {
	u := decodeSettings(t, `{"tagline": "Builder", "phone": null, "location": ""}`)
	require.NoError(t, domain.Validate(u))

	assert.Equal(t, domain.Assignments{
		{Column: "tagline", Value: "Builder"},
		{Column: "phone", Value: nil},
		{Column: "location", Value: ""},
	}, u.Assignments())
}

func TestSiteSettingsUpdateEmpty(t *testing.T) {
	u := decodeSettings(t, `{}`)
	require.NoError(t, domain.Validate(u))
	assert.Empty(t, u.Assignments())
}

func TestSiteSettingsUpdateRejectsNullOnRequiredColumn(t *testing.T) {
	u := decodeSettings(t, `{"full_name": null}`)

	err := domain.Validate(u)
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "full_name", ve.Field)
	assert.Equal(t, "cannot be null", ve.Message)
}

func TestSiteSettingsUpdateValidatesSocialLinks(t *testing.T) {
	u := decodeSettings(t, `{"social_links": [
		{"platform": "GitHub", "url": "https://github.com/jane"},
		{"platform": "Mastodon", "url": "not a url"}
	]}`)

	err := domain.Validate(u)
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "social_links[1].url", ve.Field)
	assert.Equal(t, "must be a valid URL", ve.Message)
}

func TestSiteSettingsUpdateSocialLinksAssignment(t *testing.T) {
	u := decodeSettings(t, `{"social_links": [{"platform": "GitHub", "url": "https://github.com/jane", "icon": "github"}]}`)
	require.NoError(t, domain.Validate(u))

	assert.Equal(t, domain.Assignments{{
		Column: "social_links",
		Value:  []domain.SocialLink{{Platform: "GitHub", URL: "https://github.com/jane", Icon: "github"}},
	}}, u.Assignments())
}

func TestAboutMeUpdate(t *testing.T) {
	var u domain.AboutMeUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"journey_text": "Started with BASIC"}`), &u))
	require.NoError(t, domain.Validate(u))
	assert.Equal(t, domain.Assignments{{Column: "journey_text", Value: "Started with BASIC"}}, u.Assignments())

	var bad domain.AboutMeUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"highlights": [{"icon": "rocket", "title": "Ship"}]}`), &bad))
	var ve *domain.ValidationError
	require.True(t, errors.As(domain.Validate(bad), &ve))
	assert.Equal(t, "highlights[0].description", ve.Field)

	var null domain.AboutMeUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"highlights": null}`), &null))
	assert.ErrorIs(t, domain.Validate(null), domain.ErrValidation)
}

func TestCreateShapeAssignments(t *testing.T) {
	subject := "Hello"
	c := domain.ContactInput{Name: "Jane", Email: "jane@example.com", Subject: &subject, Message: "hi"}
	assert.Equal(t, domain.Assignments{
		{Column: "name", Value: "Jane"},
		{Column: "email", Value: "jane@example.com"},
		{Column: "subject", Value: "Hello"},
		{Column: "message", Value: "hi"},
		{Column: "read", Value: false},
	}, c.Assignments())

	p := domain.ProjectInput{Title: "t", Description: "d", Technologies: []string{"Go"}}
	cols := p.Assignments()
	assert.Equal(t, []string{"title", "description", "technologies", "github_url", "live_url", "image_url", "featured"}, cols.Columns())
	assert.Nil(t, cols[3].Value, "unset optional link is written as NULL")
}
