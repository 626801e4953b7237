package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func mustParseDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("解析日期 %q 失败: %v", s, err)
	}
	return d
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := mustParseDate(t, "2024-06-10")

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("序列化失败: %v", err)
	}
	if string(b) != `"2024-06-10"` {
		t.Fatalf("期望序列化为 \"2024-06-10\"，实际为 %s", b)
	}

	var parsed Date
	if err := json.Unmarshal(b, &parsed); err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}
	if !parsed.Equal(d.Time) {
		t.Fatalf("期望得到 %v，实际为 %v", d, parsed)
	}
}

func TestDateUnmarshalNull(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatalf("反序列化 null 失败: %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("null 应解析为零值日期，实际为 %v", d)
	}
}

func TestDateUnmarshalInvalid(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2024/06/10"`), &d); err == nil {
		t.Fatal("非法格式应返回错误")
	}

	// 裸的日期字面量不是合法的 JSON 字符串
	if err := d.UnmarshalJSON([]byte(`2024-06-10`)); err == nil {
		t.Fatal("未加引号的日期应返回错误")
	}
}

func TestDateScanDropsTimePart(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2024, time.June, 10, 13, 45, 0, 0, time.Local)); err != nil {
		t.Fatalf("扫描失败: %v", err)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Fatalf("扫描后应丢弃时间部分，实际为 %v", d.Time)
	}
	if d.String() != "2024-06-10" {
		t.Fatalf("期望日期为 2024-06-10，实际为 %s", d)
	}
}

func TestDurationDays(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2024-06-10", "2024-06-10", 1},
		{"2024-06-10", "2024-06-12", 3},
		{"2024-05-01", "2024-05-05", 5},
		{"2024-06-12", "2024-06-10", 3}, // 取绝对值
	}

	for _, tc := range cases {
		got := DurationDays(mustParseDate(t, tc.start), mustParseDate(t, tc.end))
		if got != tc.want {
			t.Errorf("DurationDays(%s, %s) = %d，期望 %d", tc.start, tc.end, got, tc.want)
		}
	}
}
