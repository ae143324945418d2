package drive

// apiFileList is the files.list response envelope from the Drive v3 API.
type apiFileList struct {
	Files []apiFile `json:"files"`
}

// apiFile is a single file entry. Size comes back as a decimal string;
// image metadata is only present for image MIME types the backend has
// processed.
type apiFile struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Size               string            `json:"size"`
	ImageMediaMetadata *apiImageMetadata `json:"imageMediaMetadata"`
}

type apiImageMetadata struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// apiError is the error envelope the Drive API returns on non-2xx responses
// (auth failures, quota exhaustion, unknown folder).
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
