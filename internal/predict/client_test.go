package predict

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() types.NormalizedProfile {
	return types.NormalizedProfile{
		Age:               34,
		JoiningYear:       2018,
		ExperienceYears:   6,
		CurrentSalary:     100000,
		ExpectedSalary:    112000,
		EducationCode:     2,
		PerformanceRating: 8,
		AnnualGrowth:      12000,
		SalaryGrowthRate:  0.12,
		Tenure:            5,
	}
}

func TestPredictRetention_DecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict/retention", r.URL.Path)

		// The full normalized feature vector must reach the model server.
		var features map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&features))
		assert.Equal(t, 2.0, features["education_encoded"])
		assert.Equal(t, 5.0, features["tenure"])

		_ = json.NewEncoder(w).Encode(RetentionPrediction{
			WillLeave:        true,
			LeaveProbability: 0.83,
			StayProbability:  0.17,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, zerolog.Nop())
	got, err := c.PredictRetention(context.Background(), testProfile())
	require.NoError(t, err)

	assert.True(t, got.WillLeave)
	assert.InDelta(t, 0.83, got.LeaveProbability, 1e-9)
}

func TestPredictSalaryAndSkillRating(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/predict/salary":
			_, _ = w.Write([]byte(`{"predicted_salary": 118250.55}`))
		case "/predict/skill-rating":
			_, _ = w.Write([]byte(`{"skill_rating": 7.4}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, zerolog.Nop())

	salary, err := c.PredictSalary(context.Background(), testProfile())
	require.NoError(t, err)
	assert.InDelta(t, 118250.55, salary, 1e-9)

	rating, err := c.PredictSkillRating(context.Background(), testProfile())
	require.NoError(t, err)
	assert.InDelta(t, 7.4, rating, 1e-9)
}

func TestPredictRole_DecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"role": "Data Scientist", "confidence": 0.91}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, zerolog.Nop())
	got, err := c.PredictRole(context.Background(), testProfile())
	require.NoError(t, err)

	assert.Equal(t, "Data Scientist", got.Role)
	assert.InDelta(t, 0.91, got.Confidence, 1e-9)
}

func TestPredict_ServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, zerolog.Nop())
	_, err := c.PredictRetention(context.Background(), testProfile())

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestPredict_UnreachableHostIsUnavailable(t *testing.T) {
	// Reserved TEST-NET address: connection refused without real traffic.
	c := NewClient("http://192.0.2.1:9", zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.PredictSalary(ctx, testProfile())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestPredict_BadRequestIsNotUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, zerolog.Nop())
	_, err := c.PredictSkillRating(context.Background(), testProfile())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
}
