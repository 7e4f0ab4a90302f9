package models

// ClientConfigKey is the key under which [ClientConfig.APIBaseURL] is stored
// in the client's key/value settings table.
const ClientConfigKey = "apiBaseUrl"

// ClientConfig is the user-editable client configuration that survives
// restarts. It is loaded once at startup and passed explicitly into every
// controller operation that talks to the posts API.
type ClientConfig struct {
	// APIBaseURL is the root address of the posts API, e.g.
	// "http://localhost:5002/api". Requests go to APIBaseURL + "/posts".
	APIBaseURL string `json:"apiBaseUrl"`
}

// IsEmpty reports whether no base URL has been configured.
func (c ClientConfig) IsEmpty() bool {
	return c.APIBaseURL == ""
}
