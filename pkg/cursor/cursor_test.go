package cursor

import (
	"testing"

	"Crux/pkg/snowflake"
)

func TestEncodeDecode(t *testing.T) {
	id := snowflake.GenID()

	s := Encode(id)
	if s == "" {
		t.Fatal("encode returned empty cursor")
	}

	got, err := Decode(s)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got != id {
		t.Fatalf("round trip mismatch: want %d got %d", id, got)
	}
}

// 空游标表示第一页
func TestDecode_Empty(t *testing.T) {
	got, err := Decode("")
	if err != nil {
		t.Fatalf("decode empty: %v", err)
	}
	if got != 0 {
		t.Fatalf("empty cursor should decode to 0, got %d", got)
	}
}

func TestDecode_Garbage(t *testing.T) {
	for _, s := range []string{"!!!", "abc def", "00000000"} {
		if _, err := Decode(s); err == nil {
			t.Fatalf("expected error for cursor %q", s)
		}
	}
}

// 游标顺序与 ID 顺序一致（雪花 ID 随时间递增，翻页依赖这一点）
func TestEncode_PreservesOrder(t *testing.T) {
	a := snowflake.GenID()
	b := snowflake.GenID()
	if b <= a {
		t.Fatalf("snowflake ids not increasing: %d %d", a, b)
	}

	da, err := Decode(Encode(a))
	if err != nil {
		t.Fatal(err)
	}
	db, err := Decode(Encode(b))
	if err != nil {
		t.Fatal(err)
	}
	if db <= da {
		t.Fatalf("decoded order broken: %d %d", da, db)
	}
}
