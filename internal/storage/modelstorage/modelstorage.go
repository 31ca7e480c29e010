// Package modelstorage provides locally used types and their structure for storage objects.
package modelstorage

// URLStorageEntry is one line of the file storage.
type URLStorageEntry struct {
	SURL string `json:"slug"`
	URL  string `json:"url"`
}
