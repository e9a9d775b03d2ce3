package domain

// contentTypePlatform is the fixed lookup from content type to its natural
// publication platform. Content types without an entry (e.g. blog posts)
// have no platform and always resolve to manual publication.
var contentTypePlatform = map[ContentType]Platform{
	ContentTweet:       PlatformTwitter,
	ContentThread:      PlatformTwitter,
	ContentPost:        PlatformInstagram,
	ContentReel:        PlatformInstagram,
	ContentStory:       PlatformInstagram,
	ContentLinkedIn:    PlatformLinkedIn,
	ContentVideoScript: PlatformYouTube,
}

// PlatformFor returns the platform a content type publishes to, or false when
// the content type has no natural platform.
func PlatformFor(ct ContentType) (Platform, bool) {
	p, ok := contentTypePlatform[ct]
	return p, ok
}
