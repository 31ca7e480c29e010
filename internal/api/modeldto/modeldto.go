// Package modeldto provides the data transfer objects of the shortening API.
package modeldto

type (
	// RequestURL is the body of a shortening request.
	RequestURL struct {
		URL string `json:"url"`
	}

	// ResponseURL is the body of a successful shortening response.
	ResponseURL struct {
		ShortenedURL string `json:"shortened_url"`
	}

	// ResponseError is the body of a failed shortening response.
	ResponseError struct {
		Message string `json:"message,omitempty"`
	}
)
