package web

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formContext(t *testing.T, values url.Values) echo.Context {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestRegisterFormValidate(t *testing.T) {
	cases := []struct {
		name   string
		values url.Values
		field  string // expected failing field, empty means valid
	}{
		{"valid", url.Values{"email": {"a@b.com"}, "password": {"supersecret"}, "confirm_password": {"supersecret"}}, ""},
		{"missing email", url.Values{"password": {"supersecret"}, "confirm_password": {"supersecret"}}, "email"},
		{"bad email", url.Values{"email": {"not-an-email"}, "password": {"supersecret"}, "confirm_password": {"supersecret"}}, "email"},
		{"short password", url.Values{"email": {"a@b.com"}, "password": {"short"}, "confirm_password": {"short"}}, "password"},
		{"mismatch", url.Values{"email": {"a@b.com"}, "password": {"supersecret"}, "confirm_password": {"different1"}}, "confirm_password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := parseRegisterForm(formContext(t, tc.values))
			ok := form.Validate()
			if tc.field == "" {
				assert.True(t, ok)
				assert.Empty(t, form.Errors)
			} else {
				assert.False(t, ok)
				assert.Contains(t, form.Errors, tc.field)
			}
		})
	}
}

func TestTaskFormInput(t *testing.T) {
	form := parseTaskForm(formContext(t, url.Values{
		"title":       {"Report"},
		"description": {"quarterly"},
		"deadline":    {"2026-09-01T12:30"},
		"priority":    {"3"},
		"category_id": {"7"},
		"is_done":     {"on"},
	}))

	input, ok := form.Input()
	require.True(t, ok)
	assert.Equal(t, "Report", input.Title)
	assert.Equal(t, 3, input.Priority)
	assert.Equal(t, uint(7), input.CategoryID)
	assert.True(t, input.IsDone)
	require.NotNil(t, input.Deadline)
	assert.True(t, input.Deadline.Equal(time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)))
}

func TestTaskFormInputBadDeadline(t *testing.T) {
	form := parseTaskForm(formContext(t, url.Values{
		"title":    {"Report"},
		"deadline": {"next tuesday"},
	}))

	_, ok := form.Input()
	assert.False(t, ok)
	assert.Contains(t, form.Errors, "deadline")
}

func TestTaskFormEmptyOptionalFields(t *testing.T) {
	form := parseTaskForm(formContext(t, url.Values{"title": {"Report"}}))

	input, ok := form.Input()
	require.True(t, ok)
	assert.Nil(t, input.Deadline)
	assert.Zero(t, input.CategoryID)
	assert.Zero(t, input.Priority) // the service applies the medium default
}

func TestSafeNext(t *testing.T) {
	assert.Equal(t, "/stats", safeNext("/stats"))
	assert.Equal(t, "/tasks?show=open", safeNext("/tasks?show=open"))
	assert.Equal(t, "/tasks", safeNext(""))
	assert.Equal(t, "/tasks", safeNext("https://evil.example"))
	assert.Equal(t, "/tasks", safeNext("//evil.example"))
}

func TestSafeNextFromReferer(t *testing.T) {
	assert.Equal(t, "/tasks?show=open", safeNextFromReferer("http://localhost:8080/tasks?show=open"))
	assert.Equal(t, "/tasks", safeNextFromReferer("::not a url"))
	assert.Equal(t, "/tasks", safeNextFromReferer(""))
}
