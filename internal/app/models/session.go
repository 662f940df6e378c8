package models

type Session struct {
	UserID      string `json:"userId"`
	PhoneNumber string `json:"phoneNumber"`
}
