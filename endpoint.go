package oauth1

// Endpoint groups a provider's three OAuth1 URLs needed to complete the
// three-legged authorization dance (RFC 5849 section 2): obtaining a
// temporary credential, directing the resource owner to authorize it, and
// exchanging it for a token credential.
type Endpoint struct {
	RequestTokenURL string
	AuthorizeURL    string
	AccessTokenURL  string
}
