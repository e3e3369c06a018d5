// Package app holds the top-level state machine selecting the active view.
package app

import (
	"time"
)

// View identifies the active screen. Exactly one is active at a time.
type View int

const (
	ViewListing View = iota
	ViewLogin
	ViewSignup
	ViewProfile
	ViewDetail
)

func (v View) String() string {
	switch v {
	case ViewListing:
		return "listing"
	case ViewLogin:
		return "login"
	case ViewSignup:
		return "signup"
	case ViewProfile:
		return "profile"
	case ViewDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// DefaultSignupDelay is how long the signup confirmation stays on screen
// before routing to the login view.
const DefaultSignupDelay = 2 * time.Second

// Auth exposes the authentication gate. *session.Store satisfies it.
type Auth interface {
	IsAuthenticated() bool
}

// Controller selects the active view. Transitions happen only on explicit
// user actions except the post-signup routing to Login and the post-login
// routing to Profile. State lives entirely in memory for the controller's
// lifetime.
type Controller struct {
	auth        Auth
	view        View
	detailID    string
	signupDelay time.Duration
}

// Option configures the controller.
type Option func(*Controller)

// WithSignupDelay overrides the post-signup confirmation delay.
func WithSignupDelay(d time.Duration) Option {
	return func(c *Controller) {
		c.signupDelay = d
	}
}

// NewController creates a controller starting on the listing view.
func NewController(auth Auth, opts ...Option) *Controller {
	c := &Controller{
		auth:        auth,
		view:        ViewListing,
		signupDelay: DefaultSignupDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// View returns the active view.
func (c *Controller) View() View {
	return c.view
}

// DetailID returns the selected photographer id while on the detail view.
func (c *Controller) DetailID() string {
	return c.detailID
}

// Goto moves to the requested view. A move to Profile while unauthenticated
// is refused and reported as false; the caller simply does not render it.
func (c *Controller) Goto(v View) bool {
	if v == ViewProfile && !c.auth.IsAuthenticated() {
		return false
	}
	if v != ViewDetail {
		c.detailID = ""
	}
	c.view = v
	return true
}

// Select enters the detail view for one listing entry.
func (c *Controller) Select(id string) {
	c.detailID = id
	c.view = ViewDetail
}

// Back returns from the detail view to the listing.
func (c *Controller) Back() {
	c.detailID = ""
	c.view = ViewListing
}

// LoggedIn routes to the profile view after a successful login.
func (c *Controller) LoggedIn() {
	c.view = ViewProfile
	c.detailID = ""
}

// SignedUp holds the confirmation on screen for the fixed delay, then
// routes to the login view; the user logs in manually from there.
func (c *Controller) SignedUp() {
	time.Sleep(c.signupDelay)
	c.view = ViewLogin
	c.detailID = ""
}

// LoggedOut returns to the listing from any view.
func (c *Controller) LoggedOut() {
	c.view = ViewListing
	c.detailID = ""
}
