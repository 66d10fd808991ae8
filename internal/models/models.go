package models

import "time"

// Roles known to the dashboard. The backend owns the authoritative set;
// these drive navigation and action visibility only.
const (
	RoleUser      = "USER"
	RoleOrganizer = "ORGANIZER"
	RoleVendor    = "VENDOR"
	RoleAdmin     = "ADMIN"
)

// Event statuses
const (
	EventDraft     = "DRAFT"
	EventPublished = "PUBLISHED"
	EventCancelled = "CANCELLED"
)

// Booking statuses
const (
	BookingConfirmed = "CONFIRMED"
	BookingCancelled = "CANCELLED"
	BookingPending   = "PENDING"
)

// Payment statuses
const (
	PaymentPending  = "PENDING"
	PaymentSuccess  = "SUCCESS"
	PaymentFailed   = "FAILED"
	PaymentRefunded = "REFUNDED"
)

// Task statuses
const (
	TaskTodo       = "TODO"
	TaskInProgress = "IN_PROGRESS"
	TaskDone       = "DONE"
	TaskCancelled  = "CANCELLED"
)

// Notification statuses and types
const (
	NotificationUnread   = "UNREAD"
	NotificationRead     = "READ"
	NotificationArchived = "ARCHIVED"

	NotificationTypeGeneral     = "GENERAL"
	NotificationTypeEventUpdate = "EVENT_UPDATE"
	NotificationTypeBooking     = "BOOKING"
	NotificationTypeTask        = "TASK"
	NotificationTypeSystem      = "SYSTEM"
)

// Page - страница пагинированного списка в формате бэкенда
type Page[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"number"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}

// Event - событие, принадлежит организатору
type Event struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TicketType belongs to an event; Sold is maintained server-side and the
// dashboard only derives remaining availability from it.
type TicketType struct {
	ID       int64   `json:"id"`
	EventID  int64   `json:"eventId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`
	Sold     int     `json:"sold"`
}

// Booking - бронирование билетов пользователем
type Booking struct {
	ID           int64     `json:"id"`
	EventID      int64     `json:"eventId"`
	EventName    string    `json:"eventName,omitempty"`
	TicketTypeID int64     `json:"ticketTypeId"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Payment - платеж по бронированию
type Payment struct {
	ID            int64     `json:"id"`
	BookingID     int64     `json:"bookingId"`
	EventID       int64     `json:"eventId"`
	PayerUsername string    `json:"payerUsername"`
	Method        string    `json:"method"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	Reference     string    `json:"reference,omitempty"`
	SlipURL       string    `json:"slipUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Task - задача команды события
type Task struct {
	ID                 int64      `json:"id"`
	EventID            int64      `json:"eventId"`
	AssignedToUserID   int64      `json:"assignedToUserId,omitempty"`
	AssignedToUsername string     `json:"assignedToUsername,omitempty"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Status             string     `json:"status"`
	DueDate            *time.Time `json:"dueDate,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// Notification - уведомление в инбоксе пользователя
type Notification struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// User - учетная запись
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// SimpleUser is the trimmed shape returned by /api/users/simple for
// assignment dropdowns.
type SimpleUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Vendor - поставщик услуг, создается ролью VENDOR, одобряется админом
type Vendor struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	Address     string    `json:"address,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Description string    `json:"description,omitempty"`
	Approved    bool      `json:"approved"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Venue - площадка проведения событий
type Venue struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address,omitempty"`
	Description string    `json:"description,omitempty"`
	Capacity    int       `json:"capacity,omitempty"`
	Approved    bool      `json:"approved"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Review - отзыв о событии, изменяется только автором
type Review struct {
	ID             int64     `json:"id"`
	EventID        int64     `json:"eventId,omitempty"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment,omitempty"`
	AuthorUsername string    `json:"authorUsername"`
	CreatedAt      time.Time `json:"createdAt"`
}
