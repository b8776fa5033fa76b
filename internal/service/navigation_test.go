package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/eduportal/eduportal-mobile/internal/domain/auth"
	"github.com/eduportal/eduportal-mobile/internal/testutil"
)

func TestDeriveNavigation(t *testing.T) {
	tests := []struct {
		name string
		sess domainauth.Session
		want []Section
	}{
		{
			name: "signed out",
			sess: domainauth.Empty(),
			want: []Section{SectionPosts, SectionLogin, SectionAccount},
		},
		{
			name: "student",
			sess: domainauth.ForStudent("tok", testutil.StudentIdentity("s1")),
			want: []Section{SectionPosts, SectionAccount},
		},
		{
			name: "professor",
			sess: domainauth.ForProfessor("tok", testutil.ProfessorIdentity("p1")),
			want: []Section{SectionPosts, SectionManage, SectionAccount},
		},
		{
			name: "admin",
			sess: domainauth.ForProfessor("tok", testutil.AdminIdentity("p1")),
			want: []Section{SectionPosts, SectionManage, SectionAdmin, SectionAccount},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := DeriveNavigation(tt.sess)
			assert.False(t, surface.Loading)
			assert.Equal(t, tt.want, surface.Sections)
		})
	}
}

func TestDeriveNavigation_WhileBootstrapping(t *testing.T) {
	sess := domainauth.Empty()
	sess.IsBootstrapping = true

	surface := DeriveNavigation(sess)

	assert.True(t, surface.Loading)
	assert.Equal(t, []Section{SectionPosts, SectionAccount}, surface.Sections)
	assert.False(t, surface.Has(SectionLogin))
}

func TestNavigationSurface_Has(t *testing.T) {
	surface := NavigationSurface{Sections: []Section{SectionPosts, SectionAccount}}
	assert.True(t, surface.Has(SectionPosts))
	assert.False(t, surface.Has(SectionAdmin))
}

func TestNavigationComposer_TracksSessionChanges(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	identity := testutil.AdminIdentity("p1")

	composer := NewNavigationComposer(f.manager)
	defer composer.Close()

	// Pre-bootstrap the surface is the loading one.
	assert.True(t, composer.Current().Loading)

	var changes []NavigationSurface
	composer.OnChange(func(surface NavigationSurface) {
		changes = append(changes, surface)
	})

	gomock.InOrder(
		f.api.EXPECT().LoginProfessor(ctx, "ana@x.com", "pw").
			Return(domainauth.LoginResult{Token: "tok-1", Professor: &identity}, nil),
		f.tokens.EXPECT().Save(ctx, "tok-1").Return(nil),
		f.api.EXPECT().ApplyToken("tok-1"),
		f.tokens.EXPECT().Clear(ctx).Return(nil),
		f.api.EXPECT().ApplyToken(""),
	)

	require.NoError(t, f.manager.SignInProfessor(ctx, "ana@x.com", "pw"))
	assert.True(t, composer.Current().Has(SectionAdmin))
	assert.False(t, composer.Current().Has(SectionLogin))

	require.NoError(t, f.manager.SignOut(ctx))
	assert.False(t, composer.Current().Has(SectionAdmin))
	assert.True(t, composer.Current().Has(SectionLogin))

	require.Len(t, changes, 2)
	assert.True(t, changes[0].Has(SectionManage))
	assert.True(t, changes[1].Has(SectionLogin))
}

func TestNavigationComposer_CloseDetaches(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	composer := NewNavigationComposer(f.manager)
	composer.Close()

	f.tokens.EXPECT().Clear(ctx).Return(nil)
	f.api.EXPECT().ApplyToken("")
	require.NoError(t, f.manager.SignOut(ctx))

	// The surface stays at whatever it was when the composer detached.
	assert.True(t, composer.Current().Loading)
}
