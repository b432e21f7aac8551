package rest_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/brawl-tournament/internal/entities"
	dnderr "github.com/KirkDiggler/brawl-tournament/internal/errors"
	"github.com/KirkDiggler/brawl-tournament/internal/handlers/rest"
	mocktournament "github.com/KirkDiggler/brawl-tournament/internal/services/tournament/mock"
	"github.com/KirkDiggler/brawl-tournament/internal/testutils"
)

func newServer(t *testing.T) (*mocktournament.MockService, *prometheus.Registry, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocktournament.NewMockService(ctrl)
	reg := prometheus.NewRegistry()

	h := rest.NewHandler(&rest.HandlerConfig{
		TournamentService: svc,
		Gatherer:          reg,
	})
	return svc, reg, h.Router()
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	_, _, router := newServer(t)

	w := get(t, router, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestGetTournament(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		stored         *entities.Tournament
		err            error
		expectedStatus int
	}{
		{
			name:           "Success",
			id:             "t-1",
			stored:         testutils.CreateTestTournament("t-1", "Punk", "Nefor", "Normis"),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Not Found",
			id:             "missing",
			err:            dnderr.NotFoundf("tournament not found: missing"),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Service Failure",
			id:             "boom",
			err:            errors.New("redis down"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, router := newServer(t)
			svc.EXPECT().GetTournament(gomock.Any(), tt.id).Return(tt.stored, tt.err)

			w := get(t, router, "/tournaments/"+tt.id)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var body struct {
				ID        string                  `json:"id"`
				Fights    []*entities.FightResult `json:"fights"`
				Standings []*entities.Standing    `json:"standings"`
			}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, "t-1", body.ID)
			assert.Len(t, body.Fights, 3)
			require.Len(t, body.Standings, 3)
			assert.Equal(t, "Punk", body.Standings[0].Name)
			assert.Equal(t, 2, body.Standings[0].Wins)
		})
	}
}

func TestGetStandings(t *testing.T) {
	svc, _, router := newServer(t)
	svc.EXPECT().GetTournament(gomock.Any(), "t-2").
		Return(testutils.CreateTestTournament("t-2", "a", "b"), nil)

	w := get(t, router, "/tournaments/t-2/standings")
	require.Equal(t, http.StatusOK, w.Code)

	var standings []*entities.Standing
	require.NoError(t, json.NewDecoder(w.Body).Decode(&standings))
	require.Len(t, standings, 2)
	assert.Equal(t, &entities.Standing{Name: "a", Wins: 1}, standings[0])
	assert.Equal(t, &entities.Standing{Name: "b", Losses: 1}, standings[1])
}

func TestListTournaments(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		svc, _, router := newServer(t)
		svc.EXPECT().ListTournaments(gomock.Any(), 20).
			Return([]*entities.Tournament{testutils.CreateTestTournament("t", "a", "b")}, nil)

		w := get(t, router, "/tournaments")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"t"`)
	})

	t.Run("explicit limit", func(t *testing.T) {
		svc, _, router := newServer(t)
		svc.EXPECT().ListTournaments(gomock.Any(), 3).Return([]*entities.Tournament{}, nil)

		w := get(t, router, "/tournaments?limit=3")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("bad limit", func(t *testing.T) {
		_, _, router := newServer(t)

		w := get(t, router, "/tournaments?limit=-1")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	_, reg, router := newServer(t)

	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "brawl_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	w := get(t, router, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "brawl_test_total 1")
}

func TestNewHandler_PanicsWithoutService(t *testing.T) {
	assert.Panics(t, func() {
		rest.NewHandler(&rest.HandlerConfig{})
	})
}
