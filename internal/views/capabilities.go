package views

import "eventease/internal/models"

// Capabilities is the single place role strings are interpreted. Pages and
// the sidebar consume this instead of switching on the role themselves, so
// action visibility cannot drift between screens. None of it is a security
// boundary; the backend re-checks every call.
type Capabilities struct {
	CanCreateEvent        bool
	CanPublishEvent       bool
	CanManageTicketTypes  bool
	CanViewEventBookings  bool
	CanAssignTasks        bool
	CanManageUsers        bool
	CanApproveVendors     bool
	CanApproveVenues      bool
	CanCreateVendor       bool
	CanTransitionPayments bool
	CanReviewSlips        bool
	CanBroadcast          bool
	CanDeletePayments     bool
	CanViewAllPayments    bool
}

func ResolveCapabilities(role string) Capabilities {
	switch role {
	case models.RoleOrganizer:
		return Capabilities{
			CanCreateEvent:       true,
			CanPublishEvent:      true,
			CanManageTicketTypes: true,
			CanViewEventBookings: true,
			CanAssignTasks:       true,
		}
	case models.RoleAdmin:
		return Capabilities{
			CanAssignTasks:        true,
			CanManageUsers:        true,
			CanApproveVendors:     true,
			CanApproveVenues:      true,
			CanTransitionPayments: true,
			CanReviewSlips:        true,
			CanBroadcast:          true,
			CanDeletePayments:     true,
			CanViewAllPayments:    true,
		}
	case models.RoleVendor:
		return Capabilities{
			CanCreateVendor: true,
		}
	default:
		return Capabilities{}
	}
}

// NavLink is one sidebar entry.
type NavLink struct {
	Path    string
	Label   string
	Section string
}

// NavLinks returns the sidebar link set for a role: the base set plus the
// role-conditional sections, recomputed on every navigation.
func NavLinks(role string) []NavLink {
	links := []NavLink{
		{Path: "/dashboard", Label: "Dashboard"},
		{Path: "/profile", Label: "My Profile"},
		{Path: "/notifications", Label: "Notifications"},
		{Path: "/events", Label: "Events"},
		{Path: "/bookings", Label: "My Bookings"},
		{Path: "/mypayments", Label: "My Payments"},
		{Path: "/my-tasks", Label: "My Tasks"},
		{Path: "/reviews", Label: "Reviews"},
		{Path: "/vendors", Label: "Vendors"},
		{Path: "/venues", Label: "Venues"},
	}

	switch role {
	case models.RoleOrganizer:
		links = append(links,
			NavLink{Path: "/my-events", Label: "My Events", Section: "ORGANIZER"},
			NavLink{Path: "/ticket-types", Label: "Ticket Types", Section: "ORGANIZER"},
			NavLink{Path: "/organizer/bookings", Label: "Event Bookings", Section: "ORGANIZER"},
			NavLink{Path: "/tasks", Label: "Team Tasks", Section: "ORGANIZER"},
		)
	case models.RoleAdmin:
		links = append(links,
			NavLink{Path: "/users", Label: "Users", Section: "ADMIN"},
			NavLink{Path: "/payments", Label: "Payments", Section: "ADMIN"},
			NavLink{Path: "/admin/payments", Label: "Slip Review", Section: "ADMIN"},
			NavLink{Path: "/admin/notifications", Label: "Broadcast", Section: "ADMIN"},
			NavLink{Path: "/tasks", Label: "All Tasks", Section: "ADMIN"},
		)
	}

	return links
}
