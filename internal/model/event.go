package model

import "time"

type Event struct {
	Seq       int64     `json:"seq"`
	Topic     string    `json:"topic"`
	Type      string    `json:"type"`
	Data      any       `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}
