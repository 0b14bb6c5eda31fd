package domain

var (
	MessageSuccessRecordView   = "view recorded"
	MessageSuccessGetWatched   = "success get watched recipes"
	MessageSuccessClearWatched = "watch history cleared"

	MessageFailedRecordView = "failed to record view"
	MessageFailedGetWatched = "failed to get watched recipes"
)

type (
	ClearWatchedResponse struct {
		Removed int64 `json:"removed"`
	}
)
