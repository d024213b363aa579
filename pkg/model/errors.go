package model

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrCredentialMissing means the Gemini API key was not supplied
	ErrCredentialMissing = goerr.New("gemini api key is missing")

	// ErrEmptyResponse means the model returned no text at all
	ErrEmptyResponse = goerr.New("empty response from model")

	// ErrMalformedOutput means the model text did not contain a parsable JSON payload
	ErrMalformedOutput = goerr.New("malformed model output")

	// ErrNoImagePayload means the image stage found no inline binary part in the response
	ErrNoImagePayload = goerr.New("no image payload in model response")

	ErrSessionNotFound = goerr.New("session not found")
)
