package service

import (
	"sync"

	domainauth "github.com/eduportal/eduportal-mobile/internal/domain/auth"
)

// Section is a top-level navigation destination.
type Section string

const (
	SectionPosts   Section = "posts"
	SectionLogin   Section = "login"
	SectionManage  Section = "manage"
	SectionAdmin   Section = "admin"
	SectionAccount Section = "account"
)

// NavigationSurface is the set of reachable sections for a session, in
// display order. While Loading is true the surrounding shell renders a
// neutral indicator; neither Login nor the authenticated sections appear.
type NavigationSurface struct {
	Loading  bool
	Sections []Section
}

// Has reports whether s is part of the surface.
func (n NavigationSurface) Has(s Section) bool {
	for _, have := range n.Sections {
		if have == s {
			return true
		}
	}
	return false
}

// DeriveNavigation computes the navigation surface for a session snapshot.
// Posts and Account are always reachable. Login appears only when signed
// out, Manage for professors and admins, Admin for admins only.
func DeriveNavigation(sess domainauth.Session) NavigationSurface {
	if sess.IsBootstrapping {
		return NavigationSurface{
			Loading:  true,
			Sections: []Section{SectionPosts, SectionAccount},
		}
	}

	sections := []Section{SectionPosts}
	if sess.Role == domainauth.RoleNone {
		sections = append(sections, SectionLogin)
	}
	if sess.IsProfessor() {
		sections = append(sections, SectionManage)
	}
	if sess.IsAdmin() {
		sections = append(sections, SectionAdmin)
	}
	sections = append(sections, SectionAccount)

	return NavigationSurface{Sections: sections}
}

// NavigationComposer keeps a derived surface in lockstep with the session
// manager. It holds no policy of its own; every recompute is the pure
// DeriveNavigation of the published snapshot.
type NavigationComposer struct {
	mu       sync.RWMutex
	current  NavigationSurface
	onChange func(NavigationSurface)
	cancel   func()
}

// NewNavigationComposer derives the initial surface and subscribes to the
// manager so the surface recomputes synchronously on every session change.
// Construct it before the first mutation runs so no change is missed.
func NewNavigationComposer(m *SessionManager) *NavigationComposer {
	c := &NavigationComposer{}
	c.apply(DeriveNavigation(m.Snapshot()))
	c.cancel = m.Subscribe(func(sess domainauth.Session) {
		c.apply(DeriveNavigation(sess))
	})
	return c
}

// Current returns the latest derived surface.
func (c *NavigationComposer) Current() NavigationSurface {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// OnChange registers a hook invoked after each recompute, for shells that
// redraw on navigation changes.
func (c *NavigationComposer) OnChange(fn func(NavigationSurface)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// Close detaches the composer from the session manager.
func (c *NavigationComposer) Close() {
	if c.cancel != nil {
		c.cancel()
	}
}

func (c *NavigationComposer) apply(surface NavigationSurface) {
	c.mu.Lock()
	c.current = surface
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn(surface)
	}
}
