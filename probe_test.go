package payrun

import "testing"

func TestFits(t *testing.T) {
	cases := []struct {
		name      string
		fileSize  int64
		available uint64
		want      bool
	}{
		{"tiny file, plenty of memory", 1 << 10, 1 << 30, true},
		{"empty file", 0, 1 << 20, true},
		{"file larger than memory allows", 1 << 30, 1 << 20, false},
		{"no memory available", 1 << 10, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := fits(tc.fileSize, tc.available); got != tc.want {
				t.Errorf("fits(%d, %d) = %t, want %t", tc.fileSize, tc.available, got, tc.want)
			}
		})
	}
}
