package socket

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"Crux/pkg/log"
	"Crux/pkg/snowflake"

	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	bufferSize = 64 // 每个连接的下行缓冲，满了丢消息
)

// Client 一条 websocket 连接
type Client struct {
	cid      int64
	uid      uint64
	conn     *websocket.Conn
	hub      *Hub
	out      chan []byte
	closed   atomic.Bool
	lastTime int64 // 最近一次心跳 Unix 秒

	mu     sync.Mutex
	topics map[string]struct{}
}

func NewClient(hub *Hub, conn *websocket.Conn, uid uint64) *Client {
	c := &Client{
		cid:    snowflake.GenID(),
		uid:    uid,
		conn:   conn,
		hub:    hub,
		out:    make(chan []byte, bufferSize),
		topics: make(map[string]struct{}),
	}
	atomic.StoreInt64(&c.lastTime, time.Now().Unix())

	go c.writePump()
	health.insert(c)

	return c
}

func (c *Client) Cid() int64  { return c.cid }
func (c *Client) Uid() uint64 { return c.uid }

func (c *Client) Closed() bool {
	return c.closed.Load()
}

func (c *Client) Close(code int, reason string) {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	health.delete(c)
	c.hub.RemoveAll(c)

	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason), time.Now().Add(writeWait))
	_ = c.conn.Close()
	close(c.out)
}

// Write 编码并写入下行缓冲
func (c *Client) Write(resp *ClientResponse) error {
	body, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	c.push(body)
	return nil
}

// push 非阻塞投递，缓冲满返回 false
func (c *Client) push(body []byte) bool {
	if c.Closed() {
		return false
	}
	defer func() {
		// 与 Close 并发时 out 可能已关
		_ = recover()
	}()
	select {
	case c.out <- body:
		return true
	default:
		return false
	}
}

func (c *Client) writePump() {
	for body := range c.out {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, body); err != nil {
			c.Close(websocket.CloseAbnormalClosure, "write error")
			return
		}
	}
}

// ReadLoop 处理上行帧：ping 心跳、join/leave 订阅
func (c *Client) ReadLoop() {
	defer c.Close(websocket.CloseNormalClosure, "closed")

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			// 客户端断开是正常行为
			return
		}

		event := gjson.GetBytes(data, "event").String()
		switch event {
		case "ping":
			atomic.StoreInt64(&c.lastTime, time.Now().Unix())
			_ = c.Write(&ClientResponse{Event: "pong"})
		case "join":
			topic := gjson.GetBytes(data, "topic").String()
			if !ValidTopic(topic, c.uid) {
				log.L.Warn("join rejected", zap.String("topic", topic), zap.Uint64("uid", c.uid))
				continue
			}
			c.hub.Subscribe(c, topic)
		case "leave":
			topic := gjson.GetBytes(data, "topic").String()
			c.hub.Unsubscribe(c, topic)
		default:
			log.L.Warn("unknown ws event", zap.String("event", event), zap.Int64("cid", c.cid))
		}
	}
}

func (c *Client) addTopic(topic string) {
	c.mu.Lock()
	c.topics[topic] = struct{}{}
	c.mu.Unlock()
}

func (c *Client) removeTopic(topic string) {
	c.mu.Lock()
	delete(c.topics, topic)
	c.mu.Unlock()
}

func (c *Client) drainTopics() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.topics))
	for t := range c.topics {
		out = append(out, t)
	}
	c.topics = make(map[string]struct{})
	return out
}
