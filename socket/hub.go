package socket

import (
	"encoding/json"
	"strconv"
	"strings"

	"Crux/pkg/log"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// Hub 话题广播中心。只管连接和话题的成员关系，不碰业务数据；
// 成员关系跟随连接生命周期，断开即清空，不落库。
type Hub struct {
	topics cmap.ConcurrentMap[string, cmap.ConcurrentMap[string, *Client]]
}

func NewHub() *Hub {
	return &Hub{
		topics: cmap.New[cmap.ConcurrentMap[string, *Client]](),
	}
}

// Publish 往话题广播事件。只做尽力投递：
// 没有订阅者直接返回，订阅者写缓冲满了丢弃并记日志，永远不阻塞调用方。
func (h *Hub) Publish(topic string, event string, payload any) {
	room, ok := h.topics.Get(topic)
	if ok && room.Count() == 0 {
		ok = false
	}
	if !ok {
		return
	}

	body, err := json.Marshal(&ClientResponse{Event: event, Payload: payload})
	if err != nil {
		log.L.Error("marshal event error", zap.String("event", event), zap.Error(err))
		return
	}

	var wg conc.WaitGroup
	for item := range room.IterBuffered() {
		c := item.Val
		wg.Go(func() {
			if !c.push(body) {
				log.L.Warn("drop event, client buffer full",
					zap.String("topic", topic),
					zap.String("event", event),
					zap.Int64("cid", c.cid),
				)
			}
		})
	}
	if r := wg.WaitAndRecover(); r != nil {
		log.L.Error("publish panic", zap.String("topic", topic), zap.Any("recover", r.Value))
	}
}

// Subscribe 连接加入话题
func (h *Hub) Subscribe(c *Client, topic string) {
	h.topics.SetIfAbsent(topic, cmap.New[*Client]())
	if room, ok := h.topics.Get(topic); ok {
		room.Set(strconv.FormatInt(c.cid, 10), c)
	}
	c.addTopic(topic)
}

// Unsubscribe 连接退出话题
func (h *Hub) Unsubscribe(c *Client, topic string) {
	h.leaveRoom(c, topic)
	c.removeTopic(topic)
}

// RemoveAll 断开时把连接从所有话题里摘掉
func (h *Hub) RemoveAll(c *Client) {
	for _, topic := range c.drainTopics() {
		h.leaveRoom(c, topic)
	}
}

// 空房间直接回收，不然话题表会随着被看过的帖子无限涨。
// 回收和并发 Subscribe 之间有竞争窗口，丢的只是房间壳，重新 Subscribe 会再建
func (h *Hub) leaveRoom(c *Client, topic string) {
	room, ok := h.topics.Get(topic)
	if !ok {
		return
	}
	room.Remove(strconv.FormatInt(c.cid, 10))
	if room.Count() == 0 {
		h.topics.Remove(topic)
	}
}

// Subscribers 话题当前订阅连接数
func (h *Hub) Subscribers(topic string) int {
	room, ok := h.topics.Get(topic)
	if !ok {
		return 0
	}
	return room.Count()
}

// ValidTopic 校验话题格式 {kind}:{id}，user 话题只能订阅自己的
func ValidTopic(topic string, uid uint64) bool {
	kind, id, ok := strings.Cut(topic, ":")
	if !ok || id == "" {
		return false
	}
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil || n == 0 {
		return false
	}
	switch kind {
	case "post", "conversation", "group":
		return true
	case "user":
		return n == uid
	}
	return false
}
