package couchdb

import "net/url"

// redactURL hides the password component of a CouchDB URL for logs and errors.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "***"
	}
	return u.Redacted()
}
