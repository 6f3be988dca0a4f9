// Package accessgate decides, for every navigation, whether the requesting
// account may see a view and where to send it otherwise. The decision is a
// pure function of (account, view): it is re-evaluated from scratch on every
// request and always resolves to a valid destination, never an error.
package accessgate

import "github.com/artistry-gallery/artistry/internal/domain"

// View identifies a navigable surface.
type View string

const (
	ViewGallery         View = "gallery"
	ViewLogin           View = "login"
	ViewAdminDashboard  View = "admin"
	ViewArtistDashboard View = "artist"
	ViewCart            View = "cart"
	ViewProfile         View = "profile"
	ViewNotFound        View = "notfound"
)

// Path returns the route for a view, used as a redirect target.
func (v View) Path() string {
	switch v {
	case ViewLogin:
		return "/login"
	case ViewAdminDashboard:
		return "/admin"
	case ViewArtistDashboard:
		return "/artist"
	case ViewCart:
		return "/cart"
	case ViewProfile:
		return "/profile"
	default:
		return "/"
	}
}

// allowedRoles maps each protected view to the roles that may enter. Views
// absent from the map are public.
var allowedRoles = map[View][]domain.Role{
	ViewAdminDashboard:  {domain.RoleAdmin},
	ViewArtistDashboard: {domain.RoleArtist},
	ViewCart:            {domain.RoleBuyer},
	ViewProfile:         {domain.RoleBuyer},
}

// Decision is the outcome of one gate evaluation.
type Decision struct {
	Allowed bool
	// RedirectTo is the destination view when not allowed.
	RedirectTo View
	// RecordFrom is set when the requested view should be remembered for the
	// post-login return (the unauthenticated case).
	RecordFrom bool
}

// Decide evaluates the gate for an account (nil when unauthenticated) and a
// requested view.
func Decide(acct *domain.Account, view View) Decision {
	roles, protected := allowedRoles[view]
	if !protected {
		return Decision{Allowed: true}
	}
	if acct == nil {
		return Decision{RedirectTo: ViewLogin, RecordFrom: true}
	}
	for _, r := range roles {
		if acct.Role == r {
			return Decision{Allowed: true}
		}
	}
	return Decision{RedirectTo: HomeView(acct.Role)}
}

// HomeView is the role's landing view: admins and artists go to their
// dashboards, everyone else to the gallery.
func HomeView(role domain.Role) View {
	switch role {
	case domain.RoleAdmin:
		return ViewAdminDashboard
	case domain.RoleArtist:
		return ViewArtistDashboard
	default:
		return ViewGallery
	}
}

// LoginDestination resolves where a fresh login lands: admins and artists on
// their dashboards, buyers back on the view they originally asked for (or
// the gallery when none was recorded).
func LoginDestination(role domain.Role, from string) string {
	switch role {
	case domain.RoleAdmin:
		return ViewAdminDashboard.Path()
	case domain.RoleArtist:
		return ViewArtistDashboard.Path()
	default:
		if from != "" {
			return from
		}
		return ViewGallery.Path()
	}
}
