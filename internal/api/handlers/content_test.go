package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/dheerajjx/portfolio/internal/api/handlers"
	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/dheerajjx/portfolio/internal/service"
	"github.com/dheerajjx/portfolio/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHandlers_DeleteUnknownID(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ts.Reset(t)
	token := testutil.Authenticate(t, ts, adminEmail)

	for _, collection := range []string{"memories", "thoughts", "gallery", "herobg"} {
		t.Run(collection, func(t *testing.T) {
			req := testutil.CreateAuthenticatedRequest(t, http.MethodDelete, ts.APIURL("/"+collection+"/"+uuid.NewString()), nil, token)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Not found")
		})
	}
}

func TestContentHandlers_Delete(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ts.Reset(t)
	token := testutil.Authenticate(t, ts, adminEmail)

	thought := testutil.NewThoughtBuilder().Build(t, ts.DB.DB)

	req := testutil.CreateAuthenticatedRequest(t, http.MethodDelete, ts.APIURL("/thoughts/"+thought.ID.String()), nil, token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)
	var result handlers.DeleteResponse
	testutil.AssertJSONResponse(t, resp, &result)
	assert.Equal(t, thought.ID.String(), result.ID)
	assert.Equal(t, int64(0), ts.DB.Count(t, &domain.Thought{}))
}

func TestContentHandlers_RequireToken(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ts.Reset(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/thoughts"},
		{http.MethodPut, "/thoughts/" + uuid.NewString()},
		{http.MethodDelete, "/gallery/" + uuid.NewString()},
		{http.MethodGet, "/herobg/all"},
		{http.MethodPut, "/story"},
		{http.MethodPut, "/about"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := testutil.CreateAuthenticatedRequest(t, tt.method, ts.APIURL(tt.path), nil, "")
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
		})
	}
}

func TestThoughtHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ts.Reset(t)
	token := testutil.Authenticate(t, ts, adminEmail)

	t.Run("json body", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/thoughts"), map[string]string{
			"title":    "On patience",
			"excerpt":  "Slow is smooth",
			"content":  "Body",
			"category": "Mindset",
			"readTime": "4 min read",
		}, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusCreated)
		var thought domain.Thought
		testutil.AssertJSONResponse(t, resp, &thought)
		assert.NotEmpty(t, thought.Date)
		assert.Contains(t, domain.ThoughtGradients, thought.Gradient)
	})

	t.Run("unknown category", func(t *testing.T) {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/thoughts"), map[string]string{
			"title":    "x",
			"excerpt":  "x",
			"content":  "x",
			"category": "Cooking",
			"readTime": "1 min read",
		}, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Cooking")
	})
}

func TestGalleryHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ts.Reset(t)
	token := testutil.Authenticate(t, ts, adminEmail)

	req := testutil.CreateMultipartRequest(t, http.MethodPost, ts.APIURL("/gallery"),
		map[string]string{"title": "Dusk", "category": "Street", "iso": "ISO 800"},
		[]testutil.Upload{{Field: "image", Filename: "dusk.png"}}, token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusCreated)
	var image domain.GalleryImage
	testutil.AssertJSONResponse(t, resp, &image)
	assert.Equal(t, "ISO 800", image.ISO)
	assert.Equal(t, domain.DefaultShutter, image.Shutter)
	assert.Equal(t, domain.DefaultAperture, image.Aperture)
}

func TestHeroBgHandler(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("current with an empty pool", func(t *testing.T) {
		ts.Reset(t)
		testutil.NewHeroBgBuilder().Inactive().Build(t, ts.DB.DB)

		resp, err := http.Get(ts.APIURL("/herobg/current"))
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	})

	t.Run("current picks from the active pool", func(t *testing.T) {
		ts.Reset(t)
		active := testutil.NewHeroBgBuilder().Build(t, ts.DB.DB)
		testutil.NewHeroBgBuilder().Inactive().Build(t, ts.DB.DB)

		resp, err := http.Get(ts.APIURL("/herobg/current"))
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var image domain.HeroBgImage
		testutil.AssertJSONResponse(t, resp, &image)
		assert.Equal(t, active.ID, image.ID)
	})

	t.Run("public list hides inactive images", func(t *testing.T) {
		ts.Reset(t)
		token := testutil.Authenticate(t, ts, adminEmail)
		testutil.NewHeroBgBuilder().CreatedAt(time.Now().Add(-time.Minute)).Build(t, ts.DB.DB)
		testutil.NewHeroBgBuilder().Inactive().Build(t, ts.DB.DB)

		resp, err := http.Get(ts.APIURL("/herobg"))
		require.NoError(t, err)
		defer resp.Body.Close()
		var public []domain.HeroBgImage
		testutil.AssertJSONResponse(t, resp, &public)
		assert.Len(t, public, 1)

		req := testutil.CreateAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/herobg/all"), nil, token)
		all, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer all.Body.Close()
		var everything []domain.HeroBgImage
		testutil.AssertJSONResponse(t, all, &everything)
		assert.Len(t, everything, 2)
	})

	t.Run("create inactive from a form flag", func(t *testing.T) {
		ts.Reset(t)
		token := testutil.Authenticate(t, ts, adminEmail)

		req := testutil.CreateMultipartRequest(t, http.MethodPost, ts.APIURL("/herobg"),
			map[string]string{"label": "Night", "active": "false"},
			[]testutil.Upload{{Field: "image", Filename: "night.png"}}, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusCreated)
		var image domain.HeroBgImage
		testutil.AssertJSONResponse(t, resp, &image)
		assert.False(t, image.Active)
		assert.NotEmpty(t, image.RemoteID)
	})
}

func TestStoryHandler(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("first read seeds the default story", func(t *testing.T) {
		ts.Reset(t)

		resp, err := http.Get(ts.APIURL("/story"))
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var story domain.Story
		testutil.AssertJSONResponse(t, resp, &story)
		assert.Len(t, story.Chapters, 7)
		assert.Equal(t, int64(1), ts.DB.Count(t, &domain.Story{}))

		again, err := http.Get(ts.APIURL("/story"))
		require.NoError(t, err)
		defer again.Body.Close()
		var second domain.Story
		testutil.AssertJSONResponse(t, again, &second)
		assert.Equal(t, story.ID, second.ID)
	})

	t.Run("replace keeps omitted parts", func(t *testing.T) {
		ts.Reset(t)
		token := testutil.Authenticate(t, ts, adminEmail)

		quote := "Keep going"
		req := testutil.CreateAuthenticatedRequest(t, http.MethodPut, ts.APIURL("/story"), service.StoryInput{SignatureQuote: &quote}, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var story domain.Story
		testutil.AssertJSONResponse(t, resp, &story)
		assert.Equal(t, quote, story.SignatureQuote)
		assert.Len(t, story.Highlights, 4)
	})
}

func TestAboutHandler(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("not found before the first save", func(t *testing.T) {
		ts.Reset(t)

		resp, err := http.Get(ts.APIURL("/about"))
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	})

	t.Run("multipart save with image", func(t *testing.T) {
		ts.Reset(t)
		token := testutil.Authenticate(t, ts, adminEmail)

		req := testutil.CreateMultipartRequest(t, http.MethodPut, ts.APIURL("/about"),
			map[string]string{"bio": "Engineer", "skills": "Go, Photography"},
			[]testutil.Upload{{Field: "image", Filename: "me.png"}}, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var about domain.About
		testutil.AssertJSONResponse(t, resp, &about)
		assert.Equal(t, "Engineer", about.Bio)
		assert.Equal(t, []string{"Go", "Photography"}, []string(about.Skills))
		assert.Contains(t, about.ImageURL, "about_portfolio/")

		public, err := http.Get(ts.APIURL("/about"))
		require.NoError(t, err)
		defer public.Body.Close()
		var stored domain.About
		testutil.AssertJSONResponse(t, public, &stored)
		assert.Equal(t, about.ID, stored.ID)
	})

	t.Run("json skills list", func(t *testing.T) {
		ts.Reset(t)
		token := testutil.Authenticate(t, ts, adminEmail)

		req := testutil.CreateAuthenticatedRequest(t, http.MethodPut, ts.APIURL("/about"), map[string]any{
			"bio":    "Engineer",
			"skills": []string{"Go", "SQL"},
		}, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var about domain.About
		testutil.AssertJSONResponse(t, resp, &about)
		assert.Equal(t, []string{"Go", "SQL"}, []string(about.Skills))
	})
}

func TestPhilosophyHandler_Today(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/philosophy/today"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)
	var today service.Philosophy
	testutil.AssertJSONResponse(t, resp, &today)
	assert.NotEmpty(t, today.Quote)
	assert.NotEmpty(t, today.Author)
	assert.GreaterOrEqual(t, today.Day, 1)
}
