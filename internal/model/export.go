package model

// ExportRequest asks for a password to be packaged as a downloadable text file.
type ExportRequest struct {
	Password string `json:"password"`
}

// Export is a rendered text file ready to be sent as an attachment.
type Export struct {
	Filename string
	Content  string
}
