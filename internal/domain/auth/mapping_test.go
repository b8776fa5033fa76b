package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeProfessor_Wrapped(t *testing.T) {
	data := []byte(`{"professor":{"_id":"p1","name":"Ana","email":"ana@x.com","role":"admin","disciplinas":["math","cs"]}}`)

	p, err := DecodeProfessor("/api/professores/me", data)

	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, "admin", p.BackendRole)
	assert.True(t, p.IsAdmin())
	assert.Equal(t, []string{"math", "cs"}, p.Subjects)
}

func TestDecodeProfessor_Bare(t *testing.T) {
	data := []byte(`{"_id":"p2","name":"Bruno","email":"b@x.com","role":"professor"}`)

	p, err := DecodeProfessor("/api/professores/me", data)

	require.NoError(t, err)
	assert.Equal(t, "p2", p.ID)
	assert.False(t, p.IsAdmin())
}

func TestDecodeProfessor_PlainIDField(t *testing.T) {
	data := []byte(`{"id":"p3","name":"Caio"}`)

	p, err := DecodeProfessor("/api/professores/me", data)

	require.NoError(t, err)
	assert.Equal(t, "p3", p.ID)
}

func TestDecodeProfessor_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `garbage`},
		{name: "json array", data: `[1,2,3]`},
		{name: "object without id", data: `{"name":"ghost"}`},
		{name: "wrapped without id", data: `{"professor":{"name":"ghost"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeProfessor("/api/professores/me", []byte(tt.data))

			var malformed *MalformedResponseError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, "/api/professores/me", malformed.Endpoint)
		})
	}
}

func TestDecodeStudent_WrappedAndBare(t *testing.T) {
	wrapped := []byte(`{"aluno":{"_id":"s1","name":"Davi","disciplinas":["bio"]}}`)
	bare := []byte(`{"_id":"s2","name":"Eva"}`)

	st, err := DecodeStudent("/api/alunos/me", wrapped)
	require.NoError(t, err)
	assert.Equal(t, "s1", st.ID)
	assert.Equal(t, []string{"bio"}, st.Subjects)

	st, err = DecodeStudent("/api/alunos/me", bare)
	require.NoError(t, err)
	assert.Equal(t, "s2", st.ID)
}

func TestDecodeProfessorLogin(t *testing.T) {
	t.Run("with embedded identity", func(t *testing.T) {
		data := []byte(`{"token":"t1","professor":{"_id":"p1","role":"admin"}}`)

		res, err := DecodeProfessorLogin("/api/professores/login", data)

		require.NoError(t, err)
		assert.Equal(t, "t1", res.Token)
		require.NotNil(t, res.Professor)
		assert.Equal(t, "p1", res.Professor.ID)
		assert.Nil(t, res.Student)
	})

	t.Run("token only", func(t *testing.T) {
		res, err := DecodeProfessorLogin("/api/professores/login", []byte(`{"token":"t2"}`))

		require.NoError(t, err)
		assert.Equal(t, "t2", res.Token)
		assert.Nil(t, res.Professor)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := DecodeProfessorLogin("/api/professores/login", []byte(`{}`))

		var malformed *MalformedResponseError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("embedded identity without id", func(t *testing.T) {
		_, err := DecodeProfessorLogin("/api/professores/login", []byte(`{"token":"t3","professor":{"name":"x"}}`))

		var malformed *MalformedResponseError
		require.ErrorAs(t, err, &malformed)
	})
}

func TestDecodeStudentLogin(t *testing.T) {
	data := []byte(`{"token":"t1","aluno":{"_id":"s1"}}`)

	res, err := DecodeStudentLogin("/api/alunos/login", data)

	require.NoError(t, err)
	assert.Equal(t, "t1", res.Token)
	require.NotNil(t, res.Student)
	assert.Equal(t, "s1", res.Student.ID)
	assert.Nil(t, res.Professor)
}

func TestAuthError_Messages(t *testing.T) {
	withStatus := &AuthError{Op: "login professor", Message: "invalid credentials", StatusCode: 401}
	assert.Contains(t, withStatus.Error(), "invalid credentials")
	assert.Contains(t, withStatus.Error(), "401")

	transport := &AuthError{Op: "probe aluno", Message: "could not reach the server"}
	assert.Contains(t, transport.Error(), "could not reach the server")
}
