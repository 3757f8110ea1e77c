package integration_testing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/vprekovic/fitlog/internal/tracker/intake"
	"github.com/vprekovic/fitlog/internal/tracker/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppRequest(t *testing.T, method, path string, body io.Reader) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, serverEndpoint+path, body)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "FitLog/1.0")
	req.Header.Set("Authorization", "test")
	req.Header.Set("Content-Type", "application/json")
	return req
}

func Test_Server(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	suite := newSuite(ctx)
	require.NotNil(t, suite)
	defer suite.cleanup()

	httpClient := &http.Client{Timeout: 10 * time.Second}

	// wait for the server to come up
	require.Eventually(t, func() bool {
		resp, err := httpClient.Do(newAppRequest(t, "GET", "/", nil))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 200*time.Millisecond)

	t.Run("version", func(t *testing.T) {
		req := newAppRequest(t, "GET", "/version", nil)
		resp, err := httpClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		respBytes, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "test-version-info", string(respBytes))
	})

	t.Run("add and get intake entry", func(t *testing.T) {
		addReq := newAppRequest(t, "POST", "/intake", strings.NewReader(
			`{"quantity":"water","value":500}`,
		))
		resp, err := httpClient.Do(addReq)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var addResp intake.AddEntryResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&addResp))
		require.NotZero(t, addResp.Entry.ID)
		assert.Equal(t, intake.QuantityWater, addResp.Entry.Quantity)
		assert.InDelta(t, 500, addResp.TodayTotal, 0.001)

		getReq := newAppRequest(t, "GET", fmt.Sprintf("/intake/%d", addResp.Entry.ID), nil)
		getResp, err := httpClient.Do(getReq)
		require.NoError(t, err)
		defer getResp.Body.Close()

		require.Equal(t, http.StatusOK, getResp.StatusCode)
		var gotEntry intake.Entry
		require.NoError(t, json.NewDecoder(getResp.Body).Decode(&gotEntry))
		assert.Equal(t, addResp.Entry.ID, gotEntry.ID)
		assert.InDelta(t, 500, gotEntry.Value, 0.001)
	})

	t.Run("set goal and get streak", func(t *testing.T) {
		setGoalReq := newAppRequest(t, "PUT", "/goals", strings.NewReader(
			`{"quantity":"water","threshold":2000}`,
		))
		resp, err := httpClient.Do(setGoalReq)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		streakReq := newAppRequest(t, "GET", "/stats/streak/water", nil)
		streakResp, err := httpClient.Do(streakReq)
		require.NoError(t, err)
		defer streakResp.Body.Close()

		require.Equal(t, http.StatusOK, streakResp.StatusCode)
		var streakStats stats.StreakStats
		require.NoError(t, json.NewDecoder(streakResp.Body).Decode(&streakStats))
		assert.InDelta(t, 2000, streakStats.Goal, 0.001)
		// the 500ml entry from above does not meet the goal
		assert.Equal(t, 0, streakStats.Streak)
		assert.False(t, streakStats.TodayMet)
	})

	t.Run("unknown path", func(t *testing.T) {
		req := newAppRequest(t, "GET", "/nope", nil)
		resp, err := httpClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
