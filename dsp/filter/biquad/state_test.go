package biquad

import "testing"

func TestState_Layout(t *testing.T) {
	st := NewState(2, 3)
	if st.Sections() != 2 || st.Channels() != 3 {
		t.Fatalf("dims = (%d, %d), want (2, 3)", st.Sections(), st.Channels())
	}

	for sec := range 2 {
		for slot := range 2 {
			for ch := range 3 {
				st.Set(sec, slot, ch, float64(100*sec+10*slot+ch))
			}
		}
	}

	row := st.Slot(1, 0)
	want := []float64{100, 101, 102}
	for i := range want {
		if row[i] != want[i] {
			t.Fatalf("Slot(1,0)[%d] = %v, want %v", i, row[i], want[i])
		}
	}

	row[2] = -1
	if st.At(1, 0, 2) != -1 {
		t.Fatal("Slot does not alias state storage")
	}

	ch := st.Channel(1)
	if ch[0] != [2]float64{1, 11} || ch[1] != [2]float64{101, 111} {
		t.Fatalf("Channel(1) = %v", ch)
	}
}

func TestState_CloneIsIndependent(t *testing.T) {
	st := NewState(1, 2)
	st.Set(0, 1, 1, 5)

	c := st.Clone()
	c.Set(0, 1, 1, 7)
	if st.At(0, 1, 1) != 5 {
		t.Fatal("clone shares storage with original")
	}

	st.Reset()
	if st.At(0, 1, 1) != 0 || c.At(0, 1, 1) != 7 {
		t.Fatal("Reset did not zero only the receiver")
	}
}

func TestState_OutOfRangePanics(t *testing.T) {
	st := NewState(1, 1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for slot 2")
		}
	}()
	st.At(0, 2, 0)
}
