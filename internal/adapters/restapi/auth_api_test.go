package restapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/eduportal/eduportal-mobile/internal/domain/auth"
)

func TestLoginProfessor_Success(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"token":"t1","professor":{"_id":"p1","role":"admin"}}`))
	}))

	res, err := client.LoginProfessor(context.Background(), "ana@x.com", "pw")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/professores/login", gotPath)
	assert.Equal(t, map[string]string{"email": "ana@x.com", "password": "pw"}, gotBody)
	assert.Equal(t, "t1", res.Token)
	require.NotNil(t, res.Professor)
	assert.Equal(t, "p1", res.Professor.ID)
	assert.True(t, res.Professor.IsAdmin())
}

func TestLoginProfessor_Rejected(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"wrong password"}`))
	}))

	_, err := client.LoginProfessor(context.Background(), "ana@x.com", "bad")

	var authErr *domainauth.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "wrong password", authErr.Message)
	assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
}

func TestLoginStudent_TokenOnly(t *testing.T) {
	var gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"token":"t2"}`))
	}))

	res, err := client.LoginStudent(context.Background(), "davi@x.com", "pw")

	require.NoError(t, err)
	assert.Equal(t, "/api/alunos/login", gotPath)
	assert.Equal(t, "t2", res.Token)
	assert.Nil(t, res.Student)
}

func TestProbeStudent_WrappedShape(t *testing.T) {
	var gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"aluno":{"_id":"s1","name":"Davi"}}`))
	}))

	st, err := client.ProbeStudent(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/api/alunos/me", gotPath)
	assert.Equal(t, "s1", st.ID)
}

func TestProbeProfessor_MalformedBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected":"shape"}`))
	}))

	_, err := client.ProbeProfessor(context.Background())

	var malformed *domainauth.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
}

func TestLoginProfessor_MissingToken(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"professor":{"_id":"p1"}}`))
	}))

	_, err := client.LoginProfessor(context.Background(), "ana@x.com", "pw")

	var malformed *domainauth.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
}

func TestProbe_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err = client.ProbeProfessor(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
