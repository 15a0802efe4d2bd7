package socket

// ClientResponse 下行帧
type ClientResponse struct {
	Event   string `json:"event"`
	Payload any    `json:"payload,omitempty"`
}

// ClientRequest 上行帧，event: ping / join / leave
type ClientRequest struct {
	Event string `json:"event"`
	Topic string `json:"topic,omitempty"`
}
