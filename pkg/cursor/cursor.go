package cursor

import (
	"errors"

	hashids "github.com/speps/go-hashids/v2"
)

// 评论/通知列表的分页游标。对外是不透明字符串，内部是 hashid 编码的雪花 ID，
// 客户端不应该解析它，只原样带回。
var h *hashids.HashID

func init() {
	hd := hashids.NewData()
	hd.Salt = "crux.cursor.v1"
	hd.MinLength = 12
	h, _ = hashids.NewWithData(hd)
}

var ErrInvalid = errors.New("invalid cursor")

func Encode(id int64) string {
	s, err := h.EncodeInt64([]int64{id})
	if err != nil {
		return ""
	}
	return s
}

func Decode(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	ids, err := h.DecodeInt64WithError(s)
	if err != nil || len(ids) != 1 || ids[0] <= 0 {
		return 0, ErrInvalid
	}
	return ids[0], nil
}
