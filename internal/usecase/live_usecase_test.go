package usecase_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-dashboard/config"
	"hospital-dashboard/internal/infrastructure/httpclient"
	"hospital-dashboard/internal/infrastructure/session"
	"hospital-dashboard/internal/repository"
	"hospital-dashboard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLivePatients_IDsStayInsideTheirSegment(t *testing.T) {
	var received []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		received = append(received, r.Method+" "+r.URL.EscapedPath())
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	log := quietLogger()
	client, err := httpclient.New(ts.URL+"/api", time.Second, session.New(session.NewMemoryStorage(), log), log)
	require.NoError(t, err)

	store := repository.NewStore()
	patients := usecase.NewPatientUsecase(
		&usecase.Backend{Mode: config.BackendLive, Client: client, Clock: clock},
		log,
		repository.NewPatientRepository(store),
		repository.NewPatientRecordRepository(store),
	)

	require.NoError(t, patients.DeletePatient(ctx(), "."))
	require.NoError(t, patients.DeletePatient(ctx(), ".."))
	require.NoError(t, patients.DeletePatientDocument(ctx(), "1", ".."))
	require.NoError(t, patients.DeletePatient(ctx(), "a/b"))
	require.NoError(t, patients.DeletePatient(ctx(), "v1.2"))

	assert.Equal(t, []string{
		"DELETE /api/patients/%2E",
		"DELETE /api/patients/%2E%2E",
		"DELETE /api/patients/1/documents/%2E%2E",
		"DELETE /api/patients/a%2Fb",
		"DELETE /api/patients/v1.2",
	}, received)
}
