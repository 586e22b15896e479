package measure

import "testing"

func TestCheckpointGate_Linear(t *testing.T) {
	g := NewCheckpointGate(5, false)

	for n := uint64(1); n < 5; n++ {
		if g.Hit(n) {
			t.Fatalf("Hit(%d) fired before step", n)
		}
	}
	if !g.Hit(5) {
		t.Fatal("Hit(5) should fire at the first threshold")
	}
	if g.Hit(6) {
		t.Fatal("Hit(6) should not fire again until the next threshold")
	}
	if !g.Hit(10) {
		t.Fatal("Hit(10) should fire at the second threshold")
	}
}

func TestCheckpointGate_Log10(t *testing.T) {
	g := NewCheckpointGate(2, true)

	if !g.Hit(2) {
		t.Fatal("Hit(2) should fire at the first threshold")
	}
	if g.Hit(5) {
		t.Fatal("Hit(5) should not fire before the next log10 threshold")
	}
	if !g.Hit(20) {
		t.Fatal("Hit(20) should fire at the second threshold")
	}
	if !g.Hit(200) {
		t.Fatal("Hit(200) should fire at the third threshold")
	}
}

func TestCheckpointGate_ZeroStepNeverFires(t *testing.T) {
	g := NewCheckpointGate(0, false)
	for n := uint64(0); n < 100; n++ {
		if g.Hit(n) {
			t.Fatalf("Hit(%d) fired with step=0", n)
		}
	}
}
