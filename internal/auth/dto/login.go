package dto

type LoginInput struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	StayLoggedIn bool   `json:"stay_logged_in"`
	IPAddress    string `json:"-"`
	UserAgent    string `json:"-"`
}

type LoginOutput struct {
	SubjectID string      `json:"subject_id"`
	Token     TokenOutput `json:"token"`
}
