package domain

import "time"

type Notification struct {
	Title string
	Body  string
	// MessageData is an opaque json document delivered to the device as is.
	MessageData string
	Image       string
	ClickAction string
	// SendDate is the time the service should deliver at, zero means now.
	SendDate   time.Time
	Recipients Recipients
}
