package models

// LoginRequest - модель для входа
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session pair the dashboard persists.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// RegisterRequest - модель для регистрации (POST /api/users)
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ForgotPasswordResponse - ответ на запрос сброса пароля. Token присутствует
// только в dev-окружении бэкенда и используется для прямой ссылки на сброс.
type ForgotPasswordResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// EventRequest - модель создания/обновления события
type EventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// TicketTypeRequest - модель создания типа билета
type TicketTypeRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`
}

// BookingRequest - модель создания/обновления бронирования
type BookingRequest struct {
	EventID      int64 `json:"eventId"`
	TicketTypeID int64 `json:"ticketTypeId"`
	Quantity     int   `json:"quantity"`
}

// PaymentRequest - модель создания платежа
type PaymentRequest struct {
	BookingID int64   `json:"bookingId"`
	Method    string  `json:"method"`
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference,omitempty"`
}

// TaskRequest - модель создания/обновления задачи
type TaskRequest struct {
	EventID          int64  `json:"eventId"`
	AssignedToUserID int64  `json:"assignedToUserId,omitempty"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	DueDate          string `json:"dueDate,omitempty"`
}

// BroadcastRequest - модель админской рассылки уведомлений
type BroadcastRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// VendorRequest - модель создания/обновления поставщика
type VendorRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Address     string `json:"address,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Description string `json:"description,omitempty"`
}

// VenueRequest - модель создания/обновления площадки
type VenueRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
	Capacity    int    `json:"capacity,omitempty"`
}

// ReviewRequest - модель создания/обновления отзыва
type ReviewRequest struct {
	EventID int64  `json:"eventId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}
