package models

// ChannelRequest is the body of POST /channels and PATCH /channels/{id}.
type ChannelRequest struct {
	Name string `json:"name"`
}

// JoinRequest is the optional body of POST /channels/{id}/members.
type JoinRequest struct {
	Bio string `json:"bio"`
}

// InterestsRequest is the body of PUT /channels/{id}/interests.
type InterestsRequest struct {
	Interests []string `json:"interests"`
}

// MessageRequest is the body of POST .../messages.
type MessageRequest struct {
	Text string `json:"text"`
}
