package queue

const TypeMessageProcessed = "message:processed"

// MessageProcessedPayload notifies external subscribers that the agent
// handled an inbound message.
type MessageProcessedPayload struct {
	ConversationID string `json:"conversation_id"`
	Platform       string `json:"platform"`
	ClientID       string `json:"client_id"`
	UserMessage    string `json:"user_message"`
	ReplyText      string `json:"reply_text"`
	ProductsFound  int    `json:"products_found"`
}
