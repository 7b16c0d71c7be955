package fallback

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestFirst(t *testing.T) {
	if got := First("", "b", "c"); got != "b" {
		t.Errorf("Expected 'b', got '%s'", got)
	}

	if got := First(0, 0, 7); got != 7 {
		t.Errorf("Expected 7, got %d", got)
	}

	if got := First[string](); got != "" {
		t.Errorf("Expected empty string, got '%s'", got)
	}
}

func TestFirstString(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{name: "first wins", values: []string{"a", "b"}, want: "a"},
		{name: "skips blank", values: []string{"  ", "", "b"}, want: "b"},
		{name: "trims", values: []string{" c "}, want: "c"},
		{name: "all empty", values: []string{"", " "}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstString(tt.values...); got != tt.want {
				t.Errorf("Expected '%s', got '%s'", tt.want, got)
			}
		})
	}
}

func TestString(t *testing.T) {
	obj := gjson.Parse(`{"title":"","description":null,"text":"hello","content":"ignored","nested":{"a":"b"}}`)

	if got := String(obj, "title", "description", "text", "content"); got != "hello" {
		t.Errorf("Expected 'hello', got '%s'", got)
	}

	if got := String(obj, "nested", "missing"); got != "" {
		t.Errorf("Expected objects to be skipped, got '%s'", got)
	}

	if got := String(obj, "nested.a"); got != "b" {
		t.Errorf("Expected nested path lookup 'b', got '%s'", got)
	}
}

func TestStringPrecedence(t *testing.T) {
	obj := gjson.Parse(`{"url":"https://a","link":"https://b"}`)

	if got := String(obj, "url", "link"); got != "https://a" {
		t.Errorf("Expected first path to win, got '%s'", got)
	}

	if got := String(obj, "link", "url"); got != "https://b" {
		t.Errorf("Expected first path to win, got '%s'", got)
	}
}

func TestInt(t *testing.T) {
	obj := gjson.Parse(`{"likes":0,"num_likes":12,"reactions":40}`)

	if got := Int(obj, "likes", "num_likes", "reactions"); got != 12 {
		t.Errorf("Expected 12, got %d", got)
	}

	if got := Int(obj, "missing"); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
}

func TestArray(t *testing.T) {
	obj := gjson.Parse(`{"articles":[],"posts":null,"featured":[{"id":1},{"id":2}],"activities":[{"id":3}]}`)

	items := Array(obj, "articles", "posts", "featured", "activities")
	if len(items) != 2 {
		t.Fatalf("Expected 2 items from featured, got %d", len(items))
	}

	if items[0].Get("id").Int() != 1 {
		t.Errorf("Expected first featured item, got %s", items[0].Raw)
	}

	empty := Array(obj, "missing")
	if empty == nil || len(empty) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", empty)
	}
}

func TestResult(t *testing.T) {
	obj := gjson.Parse(`{"starts_at":null,"start":{"year":2020,"month":3}}`)

	r := Result(obj, "starts_at", "start")
	if r.Get("year").Int() != 2020 {
		t.Errorf("Expected start object, got %s", r.Raw)
	}

	if Result(obj, "missing").Exists() {
		t.Error("Expected missing result")
	}
}
