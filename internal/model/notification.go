package model

type Notification struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
