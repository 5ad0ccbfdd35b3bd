package dto

type LoginInput struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}
