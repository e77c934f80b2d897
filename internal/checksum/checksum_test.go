package checksum

import "testing"

func TestSum(t *testing.T) {
	const empty = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := Sum(nil); got != empty {
		t.Errorf("Sum(nil) = %s", got)
	}
}

func TestETag(t *testing.T) {
	a, b := ETag([]byte("a")), ETag([]byte("b"))
	if a == b {
		t.Error("different content should give different tags")
	}
	if len(a) != 18 || a[0] != '"' || a[len(a)-1] != '"' {
		t.Errorf("ETag = %s", a)
	}
}
