package domain

import "fmt"

type Platform uint8

const (
	PlatformIOS Platform = iota
	PlatformAndroid
)

// Key returns the platform key used by the notifications api.
func (p Platform) Key() string {
	switch p {
	case PlatformIOS:
		return "IOS"
	case PlatformAndroid:
		return "AND"
	}
	return fmt.Sprintf("Platform(%d)", uint8(p))
}

func (p Platform) String() string {
	switch p {
	case PlatformIOS:
		return "ios"
	case PlatformAndroid:
		return "android"
	}
	return p.Key()
}

// TokenGroup is a named server-side collection of device tokens.
type TokenGroup struct {
	Name   string
	Tokens []string
}
