package domain

// MessageItem is a single member message as returned by the upstream API.
// UserName is a pointer so an absent field can be told apart from an empty
// one; absent renders with the "Unknown" placeholder.
type MessageItem struct {
	UserName  *string `json:"user_name"`
	Message   string  `json:"message"`
	Timestamp string  `json:"timestamp"`
}

// MessagesResponse is the upstream document shape. A missing items field
// decodes as an empty list.
type MessagesResponse struct {
	Items []MessageItem `json:"items"`
}
