package views

import (
	"testing"
	"time"

	"eventease/internal/models"

	"github.com/stretchr/testify/assert"
)

func testUsers() []models.User {
	return []models.User{
		{ID: 1, Username: "alice", Email: "alice@example.com", Role: models.RoleAdmin},
		{ID: 2, Username: "bob", Email: "bob@example.com", Role: models.RoleUser},
		{ID: 3, Username: "carol", Email: "carol@corp.io", Role: models.RoleOrganizer},
		{ID: 4, Username: "Davide", Email: "d@corp.io", Role: models.RoleUser},
	}
}

func TestFilterUsersByRole(t *testing.T) {
	users := testUsers()

	result := FilterUsers(users, models.RoleUser, "")
	assert.Len(t, result, 2)
	for _, u := range result {
		assert.Equal(t, models.RoleUser, u.Role)
	}

	// "ALL" и пустая строка отключают фильтр по роли
	assert.Len(t, FilterUsers(users, "ALL", ""), 4)
	assert.Len(t, FilterUsers(users, "", ""), 4)
}

func TestFilterUsersByQuery(t *testing.T) {
	users := testUsers()

	// Поиск без учета регистра по имени
	result := FilterUsers(users, "", "DAVIDE")
	assert.Len(t, result, 1)
	assert.Equal(t, "Davide", result[0].Username)

	// Поиск по домену почты
	result = FilterUsers(users, "", "corp.io")
	assert.Len(t, result, 2)

	// Поиск по роли как тексту
	result = FilterUsers(users, "", "organizer")
	assert.Len(t, result, 1)
	assert.Equal(t, "carol", result[0].Username)
}

func TestFilterUsersConjunction(t *testing.T) {
	users := testUsers()

	// Оба предиката должны выполняться одновременно
	result := FilterUsers(users, models.RoleUser, "corp.io")
	assert.Len(t, result, 1)
	assert.Equal(t, "Davide", result[0].Username)

	result = FilterUsers(users, models.RoleAdmin, "corp.io")
	assert.Empty(t, result)
}

func TestRoleCounts(t *testing.T) {
	counts := RoleCounts(testUsers())

	assert.Equal(t, 2, counts[models.RoleUser])
	assert.Equal(t, 1, counts[models.RoleAdmin])
	assert.Equal(t, 1, counts[models.RoleOrganizer])
	assert.Zero(t, counts[models.RoleVendor])
}

func TestFilterVendors(t *testing.T) {
	vendors := []models.Vendor{
		{ID: 1, Name: "Golden Catering", Category: "Catering", Address: "Almaty"},
		{ID: 2, Name: "Stage Masters", Category: "AV", Address: "Astana"},
	}

	assert.Len(t, FilterVendors(vendors, ""), 2)
	assert.Len(t, FilterVendors(vendors, "catering"), 1)
	assert.Len(t, FilterVendors(vendors, "astana"), 1)
	assert.Empty(t, FilterVendors(vendors, "flowers"))
}

func TestFilterVenues(t *testing.T) {
	venues := []models.Venue{
		{ID: 1, Name: "Grand Hall", Address: "Main street 1"},
		{ID: 2, Name: "Riverside Loft", Address: "Dock 5"},
	}

	assert.Len(t, FilterVenues(venues, "hall"), 1)
	assert.Len(t, FilterVenues(venues, "dock"), 1)
	assert.Len(t, FilterVenues(venues, ""), 2)
}

func TestFilterNotifications(t *testing.T) {
	notifications := []models.Notification{
		{ID: 1, Status: models.NotificationUnread},
		{ID: 2, Status: models.NotificationRead},
		{ID: 3, Status: models.NotificationUnread},
	}

	unread := FilterNotifications(notifications, "unread")
	assert.Len(t, unread, 2)

	all := FilterNotifications(notifications, "all")
	assert.Len(t, all, 3)

	assert.Equal(t, 2, CountUnread(notifications))
}

func TestFilterEventsByScope(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	events := []models.Event{
		{ID: 1, Name: "past", StartTime: now.Add(-48 * time.Hour)},
		{ID: 2, Name: "upcoming", StartTime: now.Add(48 * time.Hour)},
	}

	upcoming := FilterEvents(events, "upcoming", now)
	assert.Len(t, upcoming, 1)
	assert.Equal(t, "upcoming", upcoming[0].Name)

	past := FilterEvents(events, "past", now)
	assert.Len(t, past, 1)
	assert.Equal(t, "past", past[0].Name)

	assert.Len(t, FilterEvents(events, "", now), 2)
}

func TestFilterTasksByStatus(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Status: models.TaskTodo},
		{ID: 2, Status: models.TaskDone},
		{ID: 3, Status: models.TaskTodo},
	}

	assert.Len(t, FilterTasksByStatus(tasks, models.TaskTodo), 2)
	assert.Len(t, FilterTasksByStatus(tasks, models.TaskDone), 1)
	assert.Len(t, FilterTasksByStatus(tasks, ""), 3)
}
