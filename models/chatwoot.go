package models

// ChatwootAttachment is a single attachment in a Chatwoot webhook payload.
type ChatwootAttachment struct {
	FileType string `json:"file_type"`
	DataURL  string `json:"data_url"`
}

// ChatwootContact carries sender/contact identity fields.
type ChatwootContact struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// ChatwootConversation identifies the Chatwoot conversation.
type ChatwootConversation struct {
	ID int `json:"id"`
}

// ChatwootWebhookPayload is the inbound webhook body for message events.
type ChatwootWebhookPayload struct {
	Event        string               `json:"event"`
	Content      string               `json:"content"`
	MessageType  string               `json:"message_type"` // incoming, outgoing
	Sender       ChatwootContact      `json:"sender"`
	Contact      ChatwootContact      `json:"contact"`
	Conversation ChatwootConversation `json:"conversation"`
	Attachments  []ChatwootAttachment `json:"attachments"`
	Private      bool                 `json:"private"`
}
