// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package draw

import (
	"reflect"
	"testing"

	"github.com/js-arias/swisstree/style"
)

func TestSetStyle(t *testing.T) {
	defer func() {
		threshold = 0
		modesFlag = ""
	}()

	st := style.Default()
	threshold = 0
	if err := setStyle(&st, map[string]bool{}); err != nil {
		t.Fatalf("default style: %v", err)
	}
	if st.Threshold != 90 {
		t.Errorf("threshold without flag: got %g, want %g", st.Threshold, 90.0)
	}

	if err := setStyle(&st, map[string]bool{"threshold": true}); err != nil {
		t.Fatalf("threshold 0: %v", err)
	}
	if st.Threshold != 0 {
		t.Errorf("threshold: got %g, want %g", st.Threshold, 0.0)
	}

	modesFlag = " R, c ,"
	if err := setStyle(&st, map[string]bool{"modes": true}); err != nil {
		t.Fatalf("modes: %v", err)
	}
	if want := []string{"r", "c"}; !reflect.DeepEqual(st.Modes, want) {
		t.Errorf("modes: got %v, want %v", st.Modes, want)
	}

	threshold = -1
	if err := setStyle(&st, map[string]bool{"threshold": true}); err == nil {
		t.Errorf("negative threshold: expecting error")
	}
}
