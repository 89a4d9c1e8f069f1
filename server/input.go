package server

// 入站消息的简单 JSON 结构（WebSocket 文本消息）
// 按键示例：{"type":"key","state":"down","key":"w"}
// 控制示例：{"type":"start"} / {"type":"menu"}
type InboundMessage struct {
    Type  string `json:"type"`
    State string `json:"state,omitempty"` // down / up
    Key   string `json:"key,omitempty"`  // 按键名，大小写不敏感
}
