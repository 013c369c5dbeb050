package icebreaker

import (
	"net/url"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client-side routes the engine links or redirects to.
const (
	SessionRoute = "/ice-breaker-session"
	SummaryRoute = "/activity-end"
)

// SummaryPath is where participants go once a session ended.
func SummaryPath(channelID, sessionID primitive.ObjectID) string {
	return route(SummaryRoute, channelID, sessionID, false)
}

// SessionPath links to the live view of a session, or to its read-only
// history when history is set.
func SessionPath(channelID, sessionID primitive.ObjectID, history bool) string {
	return route(SessionRoute, channelID, sessionID, history)
}

func route(path string, channelID, sessionID primitive.ObjectID, history bool) string {
	q := url.Values{}
	q.Set("channelId", channelID.Hex())
	q.Set("sessionId", sessionID.Hex())
	if history {
		q.Set("mode", "history")
	}
	return (&url.URL{Path: path, RawQuery: q.Encode()}).String()
}
