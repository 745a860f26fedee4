package model

// Snapshot is the full feed state at one point in time.
type Snapshot struct {
	Users         []User         `json:"users"`
	Posts         []Post         `json:"posts"`
	Notifications []Notification `json:"notifications"`
}
