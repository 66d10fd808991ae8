// Package views holds the derived-view logic of the dashboard: filter
// predicates, capability resolution and local form guards. Everything here is
// a pure function of a fetched collection plus the current selection; nothing
// issues network calls or mutates its input.
package views

import (
	"strings"
	"time"

	"eventease/internal/models"
)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// FilterUsers applies the conjunction of a role filter and a free-text
// search. The search matches case-insensitively against username, email and
// role. roleFilter "ALL" or "" disables the role predicate.
func FilterUsers(users []models.User, roleFilter, query string) []models.User {
	query = strings.TrimSpace(query)

	result := make([]models.User, 0, len(users))
	for _, u := range users {
		if roleFilter != "" && roleFilter != "ALL" && u.Role != roleFilter {
			continue
		}
		if query != "" && !containsFold(u.Username, query) && !containsFold(u.Email, query) && !containsFold(u.Role, query) {
			continue
		}
		result = append(result, u)
	}
	return result
}

// RoleCounts tallies users per role for the stat cards.
func RoleCounts(users []models.User) map[string]int {
	counts := make(map[string]int)
	for _, u := range users {
		counts[u.Role]++
	}
	return counts
}

// FilterVendors searches name, category and address.
func FilterVendors(vendors []models.Vendor, query string) []models.Vendor {
	query = strings.TrimSpace(query)
	if query == "" {
		return vendors
	}

	result := make([]models.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if containsFold(v.Name, query) || containsFold(v.Category, query) || containsFold(v.Address, query) {
			result = append(result, v)
		}
	}
	return result
}

// FilterVenues searches name and address.
func FilterVenues(venues []models.Venue, query string) []models.Venue {
	query = strings.TrimSpace(query)
	if query == "" {
		return venues
	}

	result := make([]models.Venue, 0, len(venues))
	for _, v := range venues {
		if containsFold(v.Name, query) || containsFold(v.Address, query) {
			result = append(result, v)
		}
	}
	return result
}

// FilterNotifications narrows the inbox to the selected tab: "unread" shows
// unread only, anything else shows all.
func FilterNotifications(notifications []models.Notification, tab string) []models.Notification {
	if tab != "unread" {
		return notifications
	}

	result := make([]models.Notification, 0, len(notifications))
	for _, n := range notifications {
		if n.Status == models.NotificationUnread {
			result = append(result, n)
		}
	}
	return result
}

// CountUnread reports how many notifications in the collection are unread.
func CountUnread(notifications []models.Notification) int {
	count := 0
	for _, n := range notifications {
		if n.Status == models.NotificationUnread {
			count++
		}
	}
	return count
}

// FilterEvents narrows an unpaged event list by scope: "upcoming" keeps
// events starting after now, "past" those that already started. Used by
// pages that hold a full collection; the paged events search is backend-side.
func FilterEvents(events []models.Event, scope string, now time.Time) []models.Event {
	if scope != "upcoming" && scope != "past" {
		return events
	}

	result := make([]models.Event, 0, len(events))
	for _, e := range events {
		upcoming := e.StartTime.After(now)
		if (scope == "upcoming") == upcoming {
			result = append(result, e)
		}
	}
	return result
}

// FilterTasksByStatus keeps tasks in the given status; empty keeps all.
func FilterTasksByStatus(tasks []models.Task, status string) []models.Task {
	if status == "" {
		return tasks
	}

	result := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == status {
			result = append(result, t)
		}
	}
	return result
}
