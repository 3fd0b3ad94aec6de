package domain

// ZoomMode governs how a rendered page is scaled
type ZoomMode string

const (
	ZoomFitWidth   ZoomMode = "fitWidth"
	ZoomFitHeight  ZoomMode = "fitHeight"
	ZoomPercentage ZoomMode = "percentage"
)

// DocumentInfo describes a successfully loaded document
type DocumentInfo struct {
	Ref       string // the reference the user supplied (path or URL)
	Location  string // resolved local path the document was opened from
	Title     string
	PageCount int
}
