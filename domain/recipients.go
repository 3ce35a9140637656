package domain

// Recipients addresses a notification. It is one of Tokens, PlatformTokens or Group.
type Recipients interface {
	isRecipients()
}

// Tokens is a flat list of device tokens without platform information.
//
// Deprecated: use PlatformTokens so the service can route each token to its platform.
type Tokens []string

// PlatformTokens holds device tokens split by platform.
type PlatformTokens struct {
	IOS     []string
	Android []string
}

// ByPlatform returns the non-empty token lists keyed by platform.
func (pt PlatformTokens) ByPlatform() map[Platform][]string {
	res := make(map[Platform][]string, 2)
	if len(pt.IOS) > 0 {
		res[PlatformIOS] = pt.IOS
	}
	if len(pt.Android) > 0 {
		res[PlatformAndroid] = pt.Android
	}
	return res
}

// Group addresses every token of a server-side token group.
type Group string

func (Tokens) isRecipients()         {}
func (PlatformTokens) isRecipients() {}
func (Group) isRecipients()          {}
