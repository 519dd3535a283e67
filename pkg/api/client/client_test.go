package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"team-showcase.backend/internal/domain/entities"
)

func TestNew_NormalizesBaseURL(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())

	c, err = New(" localhost:8080/ ")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.BaseURL())

	_, err = New("http://[::1")
	assert.Error(t, err)
}

func TestUnwrapData(t *testing.T) {
	assert.JSONEq(t, `[1,2]`, string(unwrapData([]byte(`{"data":[1,2]}`))))
	assert.JSONEq(t, `[1,2]`, string(unwrapData([]byte(` [1,2] `))))
	assert.JSONEq(t, `{"name":"x"}`, string(unwrapData([]byte(`{"name":"x"}`))))
	assert.JSONEq(t, `{"id":"a"}`, string(unwrapData([]byte(`{"success":true,"data":{"id":"a"}}`))))
}

func TestDo_ErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/stats":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid status","details":"allowed: pending"}`))
		case "/api/team/info":
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream broke"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"boom","details":{"code":7}}`))
		}
	}))
	defer srv.Close()
	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.Stats(context.Background())
	var apiErr APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "invalid status", apiErr.Message)
	assert.Equal(t, "allowed: pending", apiErr.Details)
	assert.True(t, IsStatus(err, http.StatusBadRequest))
	assert.Contains(t, err.Error(), "allowed: pending")

	_, err = c.Profile(context.Background())
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "upstream broke", apiErr.Message)

	_, err = c.ListAchievements(context.Background())
	require.True(t, errors.As(err, &apiErr))
	assert.JSONEq(t, `{"code":7}`, apiErr.Details)

	assert.Equal(t, "api request failed with status 404", APIError{Status: 404}.Error())
}

func TestDo_TransportAndDecodeErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":"not a list"}`))
	}))
	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.ListMembers(context.Background(), false)
	assert.ErrorContains(t, err, "decode response")

	srv.Close()
	_, err = c.ListMembers(context.Background(), false)
	assert.ErrorContains(t, err, "perform request")

	var nilClient *Client
	_, err = nilClient.Stats(context.Background())
	assert.Error(t, err)
}

func TestRequests_CarryTokenAndPaths(t *testing.T) {
	type seen struct {
		method, path, query, auth, idem string
		body                            map[string]any
	}
	var got []seen
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := seen{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, auth: r.Header.Get("Authorization"), idem: r.Header.Get(IdempotencyHeader)}
		_ = json.NewDecoder(r.Body).Decode(&s.body)
		got = append(got, s)
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/team/applications":
			_, _ = w.Write([]byte(`{"data":[]}`))
		case r.Method == http.MethodDelete:
			_, _ = w.Write([]byte(`{"message":"Deleted","data":{"deleted":true}}`))
		default:
			_, _ = w.Write([]byte(`{"data":{}}`))
		}
	}))
	defer srv.Close()
	c, err := New(srv.URL, WithToken(" tok "), WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	ctx := context.Background()
	id := uuid.MustParse("0190a1b2-0000-7000-8000-000000000001")
	name := "New"

	_, err = c.ListApplications(ctx, "pending")
	require.NoError(t, err)
	_, err = c.UpdateMember(ctx, id, entities.MemberPatch{Name: &name})
	require.NoError(t, err)
	require.NoError(t, c.PurgeMember(ctx, id))
	_, err = c.ApplyWithKey(ctx, "key-1", entities.SubmitApplicationInput{Name: "A", Email: "a@b.com", Skills: "web"})
	require.NoError(t, err)

	require.Len(t, got, 4)
	assert.Equal(t, "status=pending", got[0].query)
	assert.Equal(t, "Bearer tok", got[0].auth)
	assert.Equal(t, http.MethodPut, got[1].method)
	assert.Equal(t, map[string]any{"name": "New"}, got[1].body)
	assert.Equal(t, "/api/team/members/"+id.String()+"/permanent", got[2].path)
	assert.Equal(t, "key-1", got[3].idem)
}

func TestHealth_DegradedIsNotAnError(t *testing.T) {
	status := http.StatusServiceUnavailable
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		if status == http.StatusServiceUnavailable {
			_, _ = w.Write([]byte(`{"status":"degraded","store":"document","connected":false,"error":"no servers"}`))
		}
	}))
	defer srv.Close()
	c, err := New(srv.URL)
	require.NoError(t, err)

	h, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.False(t, h.Connected)
	assert.Equal(t, "document", h.Store)

	status = http.StatusInternalServerError
	_, err = c.Health(context.Background())
	assert.True(t, IsStatus(err, http.StatusInternalServerError))
}

func TestShowcase_Fallbacks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	c, err := New(srv.URL)
	require.NoError(t, err)

	var failed []string
	show := NewShowcase(c)
	show.OnError = func(op string, err error) { failed = append(failed, op) }
	ctx := context.Background()

	assert.Equal(t, entities.DefaultTeamProfile(), show.Profile(ctx))
	members := show.Members(ctx)
	assert.NotNil(t, members)
	assert.Empty(t, members)
	assert.Empty(t, show.Achievements(ctx))
	assert.Equal(t, []string{"profile", "members", "achievements"}, failed)

	_, err = show.Apply(ctx, entities.SubmitApplicationInput{Name: "A"})
	assert.True(t, IsStatus(err, http.StatusInternalServerError))
}
