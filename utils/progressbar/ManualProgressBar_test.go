package progressbar

import (
	"bytes"
	"strings"
	"testing"
)

func TestManualProgressBar(t *testing.T) {
	var out bytes.Buffer
	bar := NewManualProgressBar(&out, 10, 4)

	bar.Increment()
	if bar.Progress() != 0.25 {
		t.Fatalf("progress \n\twant(0.25) \n\thave(%v)", bar.Progress())
	}
	for i := 0; i < 10; i++ {
		bar.Increment()
	}
	if bar.Progress() != 1.0 {
		t.Fatalf("progress past max \n\twant(1) \n\thave(%v)", bar.Progress())
	}

	bar.Display()
	if !strings.Contains(out.String(), "100.00%") {
		t.Fatalf("display \n\twant(100.00%%) \n\thave(%q)", out.String())
	}
	if n := strings.Count(bar.String(), "█"); n != 10 {
		t.Errorf("filled width \n\twant(10) \n\thave(%v)", n)
	}
}
