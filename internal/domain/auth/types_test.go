package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmpty(t *testing.T) {
	sess := Empty()

	assert.Equal(t, RoleNone, sess.Role)
	assert.Empty(t, sess.Token)
	assert.Nil(t, sess.Professor)
	assert.Nil(t, sess.Student)
	assert.False(t, sess.IsLogged())
	assert.False(t, sess.IsBootstrapping)
}

func TestForProfessor_RoleDerivation(t *testing.T) {
	tests := []struct {
		name        string
		backendRole string
		want        Role
	}{
		{name: "plain professor", backendRole: "professor", want: RoleProfessor},
		{name: "admin professor", backendRole: "admin", want: RoleAdmin},
		{name: "empty backend role", backendRole: "", want: RoleProfessor},
		{name: "unknown backend role", backendRole: "superuser", want: RoleProfessor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := ForProfessor("tok", ProfessorIdentity{ID: "p1", BackendRole: tt.backendRole})

			assert.Equal(t, tt.want, sess.Role)
			assert.NotNil(t, sess.Professor)
			assert.Nil(t, sess.Student)
			assert.True(t, sess.IsProfessor())
			assert.Equal(t, tt.want == RoleAdmin, sess.IsAdmin())
		})
	}
}

func TestForStudent(t *testing.T) {
	sess := ForStudent("tok", StudentIdentity{ID: "s1"})

	assert.Equal(t, RoleStudent, sess.Role)
	assert.NotNil(t, sess.Student)
	assert.Nil(t, sess.Professor)
	assert.True(t, sess.IsStudent())
	assert.False(t, sess.IsProfessor())
	assert.False(t, sess.IsAdmin())
}

func TestSession_IdentityVariantsAreExclusive(t *testing.T) {
	prof := ForProfessor("t1", ProfessorIdentity{ID: "p1"})
	student := ForStudent("t2", StudentIdentity{ID: "s1"})

	assert.Nil(t, prof.Student)
	assert.Nil(t, student.Professor)
}
