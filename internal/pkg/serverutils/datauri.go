package serverutils

import (
	"encoding/base64"
	"strings"
)

// DecodeDataURI decodes a base64 data URI ("data:audio/webm;base64,....")
// into its MIME type and raw bytes. Bare base64 without the data: prefix is
// accepted too; the MIME type is then empty.
func DecodeDataURI(uri string) (mimeType string, data []byte, err error) {
	payload := uri
	if strings.HasPrefix(uri, "data:") {
		rest := uri[len("data:"):]
		comma := strings.Index(rest, ",")
		if comma < 0 {
			return "", nil, NewClientError("malformed data URI")
		}
		meta := rest[:comma]
		payload = rest[comma+1:]
		mimeType = strings.TrimSuffix(meta, ";base64")
	}

	data, decodeErr := base64.StdEncoding.DecodeString(payload)
	if decodeErr != nil {
		return "", nil, NewClientError("payload is not valid base64")
	}
	if len(data) == 0 {
		return "", nil, NewClientError("payload is empty")
	}
	return mimeType, data, nil
}
