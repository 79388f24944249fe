package onboardingclient

import (
	"context"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/v1/onboarding", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestListOnboarding(t *testing.T) {
	t.Run(`envelope response`, func(t *testing.T) {
		server := newServer(t, http.StatusOK, `{"status":"success","data":[
			{"id":"o-1","candidate":{"id":"c-1","name":"Jane Doe"},"status":"In Progress","start_date":"2024-03-05","documents_completed":true},
			{"id":"o-2","documents_completed":false}
		]}`)
		list, err := New(server.URL+"/api/v1/", "", 0).ListOnboarding(context.TODO())
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "o-1", list[0].ID)
		require.NotNil(t, list[0].Candidate)
		require.Equal(t, "Jane Doe", list[0].Candidate.Name)
		require.Equal(t, "2024-03-05", *list[0].StartDate)
		require.Equal(t, true, list[0].DocumentsCompleted)
		require.Nil(t, list[1].Candidate)
		require.Nil(t, list[1].StartDate)
	})

	t.Run(`plain array response`, func(t *testing.T) {
		server := newServer(t, http.StatusOK, `[{"id":"o-1","status":"Completed"}]`)
		list, err := New(server.URL+"/api/v1", "", 0).ListOnboarding(context.TODO())
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "Completed", list[0].Status)
	})

	t.Run(`empty list`, func(t *testing.T) {
		server := newServer(t, http.StatusOK, `{"status":"success"}`)
		list, err := New(server.URL+"/api/v1", "", 0).ListOnboarding(context.TODO())
		require.Nil(t, err)
		require.NotNil(t, list)
		require.Len(t, list, 0)
	})

	t.Run(`server error`, func(t *testing.T) {
		server := newServer(t, http.StatusInternalServerError, `{"status":"fail","message":"db down"}`)
		list, err := New(server.URL+"/api/v1", "", 0).ListOnboarding(context.TODO())
		require.Nil(t, list)
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "500")
	})

	t.Run(`client error`, func(t *testing.T) {
		server := newServer(t, http.StatusNotFound, ``)
		_, err := New(server.URL+"/api/v1", "", 0).ListOnboarding(context.TODO())
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "404")
	})

	t.Run(`fail envelope with ok status`, func(t *testing.T) {
		server := newServer(t, http.StatusOK, `{"status":"fail","message":"db down"}`)
		_, err := New(server.URL+"/api/v1", "", 0).ListOnboarding(context.TODO())
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "db down")
	})

	t.Run(`malformed body`, func(t *testing.T) {
		server := newServer(t, http.StatusOK, `{"status":"success","data":[{"id":`)
		_, err := New(server.URL+"/api/v1", "", 0).ListOnboarding(context.TODO())
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "ошибка сериализации ответа")
	})

	t.Run(`network error`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		uri := server.URL
		server.Close()
		_, err := New(uri, "", 0).ListOnboarding(context.TODO())
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "ошибка отправки запроса в сервис онбординга")
	})

	t.Run(`service token is sent`, func(t *testing.T) {
		secret := "test-secret"
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			require.True(t, strings.HasPrefix(header, "Bearer "))
			token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(token *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			})
			require.Nil(t, err)
			require.True(t, token.Valid)
			sub, err := token.Claims.GetSubject()
			require.Nil(t, err)
			require.Equal(t, "onboarding-board", sub)
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()
		list, err := New(server.URL, secret, 60).ListOnboarding(context.TODO())
		require.Nil(t, err)
		require.Len(t, list, 0)
	})
}
