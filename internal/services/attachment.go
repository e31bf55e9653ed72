package services

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"
)

// Attachment is an image payload that has been read into memory and is
// waiting to be committed to a post. Acquiring and committing are separate
// steps: reading the file is the only conceptually asynchronous part of post
// creation, and splitting it out makes the ordering of other session actions
// relative to the read an explicit caller decision rather than a callback
// side effect.
type Attachment struct {
	Token   string
	DataURI string
}

// AcquireAttachment reads the file at path and returns it as a data URI with
// a sniffed media type, ready to be passed to PostService.Create. Each
// acquisition gets a fresh token so staged payloads can be told apart.
func AcquireAttachment(path string) (*Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}

	mime := http.DetectContentType(data)
	uri := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)

	return &Attachment{Token: uuid.NewString(), DataURI: uri}, nil
}
