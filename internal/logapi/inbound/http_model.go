package inbound

import "github.com/FirstLegoLeague/ms-logger/internal/pkg/pkglog"

type SetLevelRequest struct {
	// Level is a level name or a numeric index.
	Level any `json:"level"`
}

type LevelResponse struct {
	Level string `json:"level"`
	Value int    `json:"value"`
}

func newLevelResponse(l pkglog.Level) LevelResponse {
	return LevelResponse{Level: l.String(), Value: int(l)}
}

func (LevelResponse) Message() string {
	return "current log level"
}
