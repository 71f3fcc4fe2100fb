// Package lira provides an API for conversing with the Lira companion backend.
package lira

import (
	"context"

	"runtime.link/api"
)

// API specification.
type API struct {
	api.Specification `api:"Lira"
		generates companion replies along with an emotional reading
		of the conversation.
	`
	Generate func(context.Context, Request) (Response, error) `http:"POST /api/lira/generate"
		submits one conversational turn, the backend recalls and stores
		the relevant memories before replying.`
}

// Request for one conversational turn. Long-term memory is keyed by the
// user, short-term memory by the session.
type Request struct {
	User    string `json:"user_id"`
	Session string `json:"session_id"`
	Text    string `json:"text"`
}

// Response to a conversational turn.
type Response struct {
	Output  string  `json:"output"`
	Emotion Emotion `json:"emotion"`
}

// Emotion summarises the strongest emotions the backend detected in the
// turn, strongest first. Second and third place may be absent.
type Emotion struct {
	FirstLabel  string  `json:"emotion_1st_label"`
	FirstScore  float64 `json:"emotion_1st_score"`
	SecondLabel string  `json:"emotion_2nd_label,omitempty"`
	SecondScore float64 `json:"emotion_2nd_score,omitempty"`
	ThirdLabel  string  `json:"emotion_3rd_label,omitempty"`
	ThirdScore  float64 `json:"emotion_3rd_score,omitempty"`
	Mode        string  `json:"emotion_mode,omitempty"`
}
