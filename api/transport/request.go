package transport

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ActivityRequest struct {
	Sport    string `json:"sport"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Time     string `json:"time"`
	Capacity int    `json:"capacity"`
}

type FeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
