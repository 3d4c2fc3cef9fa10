package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/directdev/portal/internal/common"
	"github.com/directdev/portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second)
}

func TestGetTokens(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login/loader", r.URL.Path)
		require.Empty(t, r.Header.Get("Cookie"), "token call must be unauthenticated")
		_, _ = w.Write([]byte(`{"token1": "aaa", "token2": "bbb"}`))
	}))

	tokens, err := c.GetTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "aaa", tokens.First)
	assert.Equal(t, "bbb", tokens.Second)
}

func TestGetTokens_BadStatus(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := c.GetTokens(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrBadStatus)
}

func TestSignIn_CarriesFormAndCookie(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "student", r.PostForm.Get("username"))
		assert.Equal(t, "pw", r.PostForm.Get("password"))
		assert.Equal(t, "t1", r.PostForm.Get("token1"))
		assert.Equal(t, "t2", r.PostForm.Get("token2"))
		assert.Equal(t, "old=cookie", r.Header.Get("Cookie"))

		w.Header().Set("Set-Cookie", "session=fresh")
		w.Header().Set("Location", "/home")
		w.WriteHeader(http.StatusFound)
	}))

	res, err := c.SignIn(context.Background(), "student", "pw", &models.Tokens{First: "t1", Second: "t2"}, "old=cookie")
	require.NoError(t, err)
	assert.Equal(t, "session=fresh", res.Cookie)
}

func TestSignIn_RedirectNotFollowed(t *testing.T) {
	var calls int
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Location", "/elsewhere")
		w.WriteHeader(http.StatusFound)
	}))

	_, err := c.SignIn(context.Background(), "u", "p", &models.Tokens{}, "")
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "redirect must not be followed")
}

func TestSignIn_NoCookieHeader(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	res, err := c.SignIn(context.Background(), "u", "p", &models.Tokens{}, "")
	require.NoError(t, err)
	assert.Empty(t, res.Cookie)
}

func TestSignIn_Rejected(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.SignIn(context.Background(), "u", "bad", &models.Tokens{}, "")
	assert.ErrorIs(t, err, common.ErrBadStatus)
}

func TestGetTerms(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/student/terms", r.URL.Path)
		assert.Equal(t, "session=abc", r.Header.Get("Cookie"))
		_, _ = w.Write([]byte(`[{"value": 2410, "description": "Odd 2024"}, {"value": 2320}]`))
	}))

	terms, err := c.GetTerms(context.Background(), "session=abc")
	require.NoError(t, err)
	require.Len(t, terms, 2)
	assert.Equal(t, 2410, terms[0].Value)
}

func TestGetExams_PostsTermBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/student/schedule/exams", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`[{"date": "2024-03-10", "courseId": "COMP6047"}]`))
	}))

	exams, err := c.GetExams(context.Background(), models.ExamRequest{Term: "2410"}, "session=abc")
	require.NoError(t, err)
	require.Len(t, exams, 1)
	assert.Equal(t, "COMP6047", exams[0].CourseID)
}

func TestGetProfile_UnwrapsArray(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/student/profile", r.URL.Path)
		_, _ = w.Write([]byte(`{"Profile": [{"ACAD_PROG_DESCR": "Computer Science",
			"ACAD_CAREER_DESCR": "Undergraduate", "BIRTHDATE": "2001-05-04",
			"NAMA": "Jane Student", "NIM": "2201234567"}]}`))
	}))

	profile, err := c.GetProfile(context.Background(), "session=abc")
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", profile.Major)
	assert.Equal(t, "Undergraduate", profile.Degree)
	assert.Equal(t, "Jane Student", profile.Name)
	assert.Equal(t, "2201234567", profile.StudentID)
}

func TestGetProfile_EmptyArray(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Profile": []}`))
	}))

	_, err := c.GetProfile(context.Background(), "session=abc")
	assert.Error(t, err)
}

func TestGetFinanceSummary_TakesFirstElement(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"charge": 15000000, "payment": 12000000}]`))
	}))

	summary, err := c.GetFinanceSummary(context.Background(), "session=abc")
	require.NoError(t, err)
	assert.Equal(t, 15000000, summary.Charge)
	assert.Equal(t, 12000000, summary.Payment)
}

func TestGetResources_OneCallPerCourse(t *testing.T) {
	var paths []string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`[{"courseId": "x", "title": "slides", "url": "https://cdn/x"}]`))
	}))

	courses := []*models.Course{{ID: "COMP6047"}, {ID: "MATH6025"}}
	resources, err := c.GetResources(context.Background(), "session=abc", courses)
	require.NoError(t, err)
	assert.Len(t, resources, 2)
	assert.Equal(t, []string{
		"/student/courses/COMP6047/resources",
		"/student/courses/MATH6025/resources",
	}, paths)
}
